package models

import "gorm.io/gorm"

// Battle logs one resolved battle action for auditing and replay.
type Battle struct {
	gorm.Model
	GameID       uint   `gorm:"not null;index"`
	PlayerID     uint   `gorm:"not null;index"`
	PokemonID    *uint  // player's creature; nil for creature-less actions (flee)
	OpponentType string `gorm:"size:50;not null"` // "wild" or "gymLeader"
	OpponentID   int    `gorm:"not null"`         // species id of the opponent
	Action       string `gorm:"size:50;not null"`
	Result       string `gorm:"size:255"`
}
