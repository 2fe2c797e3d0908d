package game

// Event type names pushed to session subscribers. Every payload embeds a
// full session snapshot so subscribers can rebuild their view without a
// separate fetch.
const (
	EventSessionStarted  = "session-started"
	EventPlayerJoined    = "player-joined"
	EventPlayerMoved     = "player-moved"
	EventTurnChanged     = "turn-changed"
	EventBattleResolved  = "battle-resolved"
	EventPlayerLeft      = "player-left"
	EventSessionFinished = "session-finished"
)

// Broadcaster fans a committed state transition out to every subscriber of a
// session. The engine publishes while holding the session lock, so delivery
// order matches commit order.
type Broadcaster interface {
	Publish(sessionID uint, eventType string, payload any)
}

type SessionStartedEvent struct {
	TurnUserID uint     `json:"turn_user_id"`
	Session    Snapshot `json:"session"`
}

type PlayerJoinedEvent struct {
	UserID      uint     `json:"user_id"`
	Username    string   `json:"username"`
	PlayerCount int      `json:"player_count"`
	Session     Snapshot `json:"session"`
}

type PlayerMovedEvent struct {
	UserID      uint       `json:"user_id"`
	DieRoll     int        `json:"die_roll"`
	NewPosition int        `json:"new_position"`
	Space       SpaceKind  `json:"space"`
	Encounter   *Encounter `json:"encounter,omitempty"`
	Session     Snapshot   `json:"session"`
}

type TurnChangedEvent struct {
	TurnUserID uint     `json:"turn_user_id"`
	Session    Snapshot `json:"session"`
}

type BattleResolvedEvent struct {
	UserID  uint          `json:"user_id"`
	Outcome BattleOutcome `json:"outcome"`
	Session Snapshot      `json:"session"`
}

type PlayerLeftEvent struct {
	UserID      uint     `json:"user_id"`
	PlayerCount int      `json:"player_count"`
	Session     Snapshot `json:"session"`
}

type SessionFinishedEvent struct {
	WinnerID uint     `json:"winner_id"`
	Session  Snapshot `json:"session"`
}
