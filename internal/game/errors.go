package game

import "errors"

// Engine error taxonomy. Handlers map these onto HTTP statuses; none of them
// is ever broadcast to other session members.
var (
	// ErrSessionNotFound covers unknown sessions and sessions that are no
	// longer joinable.
	ErrSessionNotFound = errors.New("session not found")

	// ErrPlayerNotFound means the user is not a member of the session.
	ErrPlayerNotFound = errors.New("player not found in session")

	// ErrSessionFull rejects a join that would exceed the player capacity.
	ErrSessionFull = errors.New("session is full")

	// ErrDuplicateJoin rejects joining the same session twice.
	ErrDuplicateJoin = errors.New("player already joined this session")

	// ErrSessionNotActive gates actions that require a running game.
	ErrSessionNotActive = errors.New("session is not active")

	// ErrNotYourTurn rejects position-changing actions by anyone but the
	// current turn holder.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrStaleAction rejects a battle decision for an encounter that has
	// already been resolved or discarded.
	ErrStaleAction = errors.New("stale action: no pending encounter")

	// ErrInvalidAction covers malformed or forbidden battle actions.
	ErrInvalidAction = errors.New("invalid battle action")

	// ErrNoActiveCreature means the player has no creature able to fight.
	ErrNoActiveCreature = errors.New("no active creature")

	// ErrEncounterUnavailable degrades a roll gracefully: the movement
	// stands, only the encounter is missing.
	ErrEncounterUnavailable = errors.New("encounter unavailable")
)
