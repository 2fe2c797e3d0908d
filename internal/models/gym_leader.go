package models

import "gorm.io/gorm"

// GymLeader is seed data describing a gym and the badge it awards.
// PokemonTeam is a JSON-encoded list of species names.
type GymLeader struct {
	gorm.Model
	Name        string `gorm:"size:255;unique;not null"`
	Type        string `gorm:"size:50;not null"`
	BadgeName   string `gorm:"size:255;not null"`
	PokemonTeam string `gorm:"not null"`
	Difficulty  int    `gorm:"not null;default:1"`
}
