package game

import "sync"

// Status is the lifecycle state of a session.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// DefaultMaxPlayers is the fixed session capacity.
const DefaultMaxPlayers = 4

// CreatureMove is a move with its remaining and maximum use count.
type CreatureMove struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Power int    `json:"power"`
	PP    int    `json:"pp"`
	PPMax int    `json:"pp_max"`
}

// Creature is the in-session mirror of a persisted creature record.
type Creature struct {
	ID         uint           `json:"id"`
	SpeciesID  int            `json:"species_id"`
	Name       string         `json:"name"`
	Level      int            `json:"level"`
	Experience int            `json:"experience"`
	IsShiny    bool           `json:"is_shiny"`
	CurrentHP  int            `json:"current_hp"`
	MaxHP      int            `json:"max_hp"`
	Attack     int            `json:"attack"`
	Defense    int            `json:"defense"`
	Types      []string       `json:"types"`
	Moves      []CreatureMove `json:"moves"`
}

// PlayerState is one player's slice of a session. Turn order is fixed at
// join order; a reconnecting player resumes their original slot.
type PlayerState struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Position  int    `json:"position"`
	Badges    int    `json:"badges"`
	Connected bool   `json:"connected"`

	Active *Creature  `json:"active_creature,omitempty"`
	Owned  []Creature `json:"owned_creatures,omitempty"`

	// pending is the unresolved encounter from this player's last roll.
	pending *Encounter
}

// Session is the authoritative in-memory state of one match. All reads and
// writes go through mu; the registry hands out sessions but never touches
// their fields.
type Session struct {
	mu sync.Mutex

	ID         uint
	Status     Status
	MaxPlayers int
	Players    []*PlayerState
	TurnIndex  int
	WinnerID   uint
}

// Snapshot is an immutable copy of a session, safe to serialize.
type Snapshot struct {
	ID         uint          `json:"session_id"`
	Status     Status        `json:"status"`
	MaxPlayers int           `json:"max_players"`
	Players    []PlayerState `json:"players"`
	TurnIndex  int           `json:"turn_index"`
	TurnUserID uint          `json:"turn_user_id,omitempty"`
	WinnerID   uint          `json:"winner_id,omitempty"`
}

// snapshotLocked copies the session state. Callers must hold s.mu.
func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:         s.ID,
		Status:     s.Status,
		MaxPlayers: s.MaxPlayers,
		TurnIndex:  s.TurnIndex,
		WinnerID:   s.WinnerID,
	}
	for _, p := range s.Players {
		snap.Players = append(snap.Players, *p)
	}
	if s.Status == StatusActive && s.TurnIndex < len(s.Players) {
		snap.TurnUserID = s.Players[s.TurnIndex].UserID
	}
	return snap
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// playerLocked finds a member by user id. Callers must hold s.mu.
func (s *Session) playerLocked(userID uint) (*PlayerState, int) {
	for i, p := range s.Players {
		if p.UserID == userID {
			return p, i
		}
	}
	return nil, -1
}
