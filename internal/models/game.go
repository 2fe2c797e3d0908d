package models

import "gorm.io/gorm"

// GameStatus is the lifecycle state of a game session.
type GameStatus string

const (
	GameStatusWaiting  GameStatus = "waiting"
	GameStatusActive   GameStatus = "active"
	GameStatusFinished GameStatus = "finished"
)

// Game is the durable record of a game session. The authoritative in-session
// state lives in the game registry; these rows mirror committed results.
type Game struct {
	gorm.Model
	Status      GameStatus `gorm:"size:50;not null;default:'waiting';index"`
	MaxPlayers  int        `gorm:"not null;default:4"`
	CurrentTurn *uint
	WinnerID    *uint

	Players []GamePlayer `gorm:"foreignKey:GameID"`

	Winner *User `gorm:"foreignKey:WinnerID"`
}

// GamePlayer is a user's membership in one game, with their board position.
type GamePlayer struct {
	gorm.Model
	GameID           uint `gorm:"not null;index"`
	UserID           uint `gorm:"not null;index"`
	Position         int  `gorm:"not null;default:0"`
	CurrentPokemonID *uint

	User User `gorm:"foreignKey:UserID"`
}
