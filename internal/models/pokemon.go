package models

import "gorm.io/gorm"

// Pokemon represents a creature owned by a user. SpeciesID refers to the
// external species catalog; the six IV columns are per-instance stat
// modifiers rolled at capture time.
type Pokemon struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index"`
	SpeciesID  int    `gorm:"not null"`
	Name       string `gorm:"size:255;not null"`
	Level      int    `gorm:"not null;default:1"`
	Experience int    `gorm:"not null;default:0"`
	IsShiny    bool   `gorm:"not null;default:false"`
	CurrentHP  int
	MaxHP      int

	IVHP        int `gorm:"not null;default:10"`
	IVAttack    int `gorm:"not null;default:10"`
	IVDefense   int `gorm:"not null;default:10"`
	IVSpAttack  int `gorm:"not null;default:10"`
	IVSpDefense int `gorm:"not null;default:10"`
	IVSpeed     int `gorm:"not null;default:10"`

	Moves []PokemonMove `gorm:"foreignKey:PokemonID"`
}

// PokemonMove is a learned move with its remaining and maximum use count.
type PokemonMove struct {
	gorm.Model
	PokemonID uint   `gorm:"not null;index"`
	MoveID    int    `gorm:"not null"`
	Name      string `gorm:"size:255;not null"`
	Type      string `gorm:"size:50"`
	Power     int
	PP        int `gorm:"not null"`
	PPMax     int `gorm:"not null"`
}
