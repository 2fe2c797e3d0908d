package models

import "gorm.io/gorm"

// User represents a registered trainer.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`

	Badges       int `gorm:"not null;default:0"`
	GymsDefeated int `gorm:"not null;default:0"`

	Pokemons []Pokemon `gorm:"foreignKey:UserID"`
}
