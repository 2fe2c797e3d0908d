package game

import (
	"context"
	"fmt"

	"pokeboard/backend/internal/pokeapi"
)

// Lookup is the opaque, cacheable species data service the engine depends
// on. *pokeapi.Client satisfies it.
type Lookup interface {
	Pokemon(ctx context.Context, idOrName string) (*pokeapi.Pokemon, error)
	Species(ctx context.Context, idOrName string) (*pokeapi.Species, error)
	SpeciesCount(ctx context.Context) (int, error)
	TypeRelations(ctx context.Context, typeName string) (*pokeapi.TypeRelations, error)
}

// Engine drives session lifecycle, turn sequencing, movement, encounters,
// and battle resolution. Every mutation of one session happens under that
// session's lock; events are published before the lock is released so
// subscribers observe transitions in commit order.
type Engine struct {
	registry  *Registry
	board     BoardConfig
	lookup    Lookup
	rng       RandomSource
	broadcast Broadcaster
}

// NewEngine wires the engine from its collaborators. A nil broadcaster
// disables push events (useful in tests).
func NewEngine(registry *Registry, board BoardConfig, lookup Lookup, rng RandomSource, broadcast Broadcaster) *Engine {
	if rng == nil {
		rng = DefaultSource()
	}
	return &Engine{
		registry:  registry,
		board:     board,
		lookup:    lookup,
		rng:       rng,
		broadcast: broadcast,
	}
}

// Board exposes the configured board geometry.
func (e *Engine) Board() BoardConfig { return e.board }

func (e *Engine) publish(sessionID uint, eventType string, payload any) {
	if e.broadcast != nil {
		e.broadcast.Publish(sessionID, eventType, payload)
	}
}

// CreateSession allocates a new waiting session under an id assigned by the
// persistence collaborator.
func (e *Engine) CreateSession(id uint) error {
	_, err := e.registry.Create(id, DefaultMaxPlayers)
	return err
}

// Snapshot returns a consistent copy of one session's state.
func (e *Engine) Snapshot(sessionID uint) (Snapshot, error) {
	s, err := e.registry.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// JoinResult reports the effect of a join.
type JoinResult struct {
	Started     bool `json:"started"`
	PlayerCount int  `json:"player_count"`
}

// Join adds a player to a waiting session. The join that reaches capacity
// atomically flips the session to active with the first player as turn
// holder; Started is true exactly once, so the start event fires once.
func (e *Engine) Join(sessionID, userID uint, username string, active *Creature) (JoinResult, error) {
	s, err := e.registry.Get(sessionID)
	if err != nil {
		return JoinResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, _ := s.playerLocked(userID); p != nil {
		return JoinResult{}, ErrDuplicateJoin
	}
	if len(s.Players) >= s.MaxPlayers {
		return JoinResult{}, ErrSessionFull
	}
	if s.Status != StatusWaiting {
		return JoinResult{}, ErrSessionNotFound
	}

	player := &PlayerState{
		UserID:    userID,
		Username:  username,
		Connected: true,
		Active:    active,
	}
	if active != nil {
		player.Owned = []Creature{*active}
	}
	s.Players = append(s.Players, player)

	res := JoinResult{PlayerCount: len(s.Players)}
	if len(s.Players) == s.MaxPlayers {
		s.Status = StatusActive
		s.TurnIndex = 0
		res.Started = true
	}

	e.publish(s.ID, EventPlayerJoined, PlayerJoinedEvent{
		UserID:      userID,
		Username:    username,
		PlayerCount: res.PlayerCount,
		Session:     s.snapshotLocked(),
	})
	if res.Started {
		e.publish(s.ID, EventSessionStarted, SessionStartedEvent{
			TurnUserID: s.Players[0].UserID,
			Session:    s.snapshotLocked(),
		})
	}
	return res, nil
}

// Leave removes a player. A departing turn holder passes the turn first; an
// emptied session is destroyed.
func (e *Engine) Leave(sessionID, userID uint) error {
	s, err := e.registry.Get(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	_, idx := s.playerLocked(userID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrPlayerNotFound
	}

	if s.Status == StatusActive && idx == s.TurnIndex {
		advanceTurnLocked(s)
	}

	s.Players = append(s.Players[:idx], s.Players[idx+1:]...)
	if idx < s.TurnIndex {
		s.TurnIndex--
	} else if s.TurnIndex >= len(s.Players) {
		s.TurnIndex = 0
	}

	if len(s.Players) == 0 {
		s.mu.Unlock()
		e.registry.Remove(sessionID)
		return nil
	}

	e.publish(s.ID, EventPlayerLeft, PlayerLeftEvent{
		UserID:      userID,
		PlayerCount: len(s.Players),
		Session:     s.snapshotLocked(),
	})
	s.mu.Unlock()
	return nil
}

// SetConnected tracks the push-channel presence of a player. A turn holder
// going offline passes the turn to the next connected player.
func (e *Engine) SetConnected(sessionID, userID uint, connected bool) error {
	s, err := e.registry.Get(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, idx := s.playerLocked(userID)
	if p == nil {
		return ErrPlayerNotFound
	}
	p.Connected = connected

	if !connected && s.Status == StatusActive && idx == s.TurnIndex {
		if advanceTurnLocked(s) {
			e.publish(s.ID, EventTurnChanged, TurnChangedEvent{
				TurnUserID: s.Players[s.TurnIndex].UserID,
				Session:    s.snapshotLocked(),
			})
		}
	}
	return nil
}

// RollResult is the direct response to a roll action. EncounterErr carries
// the degraded-encounter warning; the movement itself has committed.
type RollResult struct {
	DieRoll      int        `json:"die_roll"`
	NewPosition  int        `json:"new_position"`
	Space        SpaceKind  `json:"space"`
	Encounter    *Encounter `json:"encounter,omitempty"`
	EncounterErr error      `json:"-"`
	TurnUserID   uint       `json:"turn_user_id"`
}

// Roll validates the actor, moves them by one die roll, generates the
// landing encounter, and passes the turn. The species lookup runs under the
// session lock because the encounter depends on the freshly committed
// position; callers tolerate the added latency on this one request.
func (e *Engine) Roll(ctx context.Context, sessionID, userID uint) (*RollResult, error) {
	s, err := e.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateActorLocked(s, userID); err != nil {
		return nil, err
	}

	p := s.Players[s.TurnIndex]
	die := RollDie(e.rng)
	p.Position = Move(p.Position, die, e.board.TotalSpaces)
	space := Classify(p.Position, e.board)

	res := &RollResult{
		DieRoll:     die,
		NewPosition: p.Position,
		Space:       space,
	}

	enc, encErr := e.generateEncounter(ctx, p.Position, space)
	if encErr != nil {
		// Movement always succeeds even when flavor data does not.
		res.EncounterErr = encErr
	} else {
		p.pending = enc
		res.Encounter = enc
	}

	advanceTurnLocked(s)
	res.TurnUserID = s.Players[s.TurnIndex].UserID

	e.publish(s.ID, EventPlayerMoved, PlayerMovedEvent{
		UserID:      userID,
		DieRoll:     die,
		NewPosition: p.Position,
		Space:       space,
		Encounter:   res.Encounter,
		Session:     s.snapshotLocked(),
	})
	e.publish(s.ID, EventTurnChanged, TurnChangedEvent{
		TurnUserID: res.TurnUserID,
		Session:    s.snapshotLocked(),
	})
	return res, nil
}

// ResolveBattle applies one battle decision against the player's pending
// encounter. Each call is a single self-contained resolution; a decision
// arriving after the encounter is gone fails with ErrStaleAction and is not
// applied.
func (e *Engine) ResolveBattle(ctx context.Context, sessionID, userID uint, action Action, moveID int) (*BattleOutcome, error) {
	s, err := e.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Status != StatusActive {
		return nil, ErrSessionNotActive
	}
	p, _ := s.playerLocked(userID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	enc := p.pending
	if enc == nil {
		return nil, ErrStaleAction
	}

	var out *BattleOutcome
	switch action {
	case ActionAttack:
		out, err = e.resolveAttack(ctx, s, p, enc, moveID)
	case ActionCapture:
		out, err = e.resolveCapture(p, enc)
	case ActionFlee:
		out, err = e.resolveFlee(p, enc)
	default:
		err = fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	if err != nil {
		return nil, err
	}
	out.OpponentKind = enc.Kind
	out.OpponentSpeciesID = enc.SpeciesID

	e.publish(s.ID, EventBattleResolved, BattleResolvedEvent{
		UserID:  userID,
		Outcome: *out,
		Session: s.snapshotLocked(),
	})
	if out.SessionFinished {
		e.publish(s.ID, EventSessionFinished, SessionFinishedEvent{
			WinnerID: s.WinnerID,
			Session:  s.snapshotLocked(),
		})
	}
	return out, nil
}

func (e *Engine) resolveAttack(ctx context.Context, s *Session, p *PlayerState, enc *Encounter, moveID int) (*BattleOutcome, error) {
	c := p.Active
	if c == nil {
		return nil, ErrNoActiveCreature
	}

	mv := pickMove(c, moveID)
	if mv == nil {
		return nil, fmt.Errorf("%w: no usable move", ErrInvalidAction)
	}

	// Type relations are fetched before any state changes, so an upstream
	// failure leaves the battle untouched and retryable.
	rel, err := e.lookup.TypeRelations(ctx, mv.Type)
	if err != nil {
		return nil, err
	}
	eff := Effectiveness(enc.Types, TypeChart{
		DoubleDamageTo: rel.DoubleDamageTo,
		HalfDamageTo:   rel.HalfDamageTo,
		NoDamageTo:     rel.NoDamageTo,
	})

	crit := e.rng.Float64() < critChance
	power := mv.Power
	if power <= 0 {
		power = 50
	}
	dmg := Damage(c.Level, power, c.Attack, enc.Stats.Defense, eff, crit)

	mv.PP--
	enc.RemainingHP -= dmg

	out := &BattleOutcome{
		Action:        ActionAttack,
		Damage:        dmg,
		Critical:      crit,
		Effectiveness: eff,
		OpponentHP:    enc.RemainingHP,
	}

	if enc.RemainingHP <= 0 {
		out.OpponentHP = 0
		out.Defeated = true
		p.pending = nil

		if enc.Kind == EncounterGymLeader {
			p.Badges++
			out.BadgeEarned = true
			if enc.Elite || p.Badges >= e.board.GymLeaderCount {
				s.Status = StatusFinished
				s.WinnerID = p.UserID
				out.SessionFinished = true
			}
		} else {
			xp := ExperienceGain(enc.Level)
			out.ExperienceGained = xp
			out.LevelUp = grantExperience(c, xp)
		}
	}
	return out, nil
}

func (e *Engine) resolveCapture(p *PlayerState, enc *Encounter) (*BattleOutcome, error) {
	if enc.Kind == EncounterGymLeader {
		return nil, fmt.Errorf("%w: cannot capture a leader's creature", ErrInvalidAction)
	}

	chance := CaptureChance(enc.CaptureRate, enc.RemainingHP, enc.Stats.HP, enc.Level, e.board.MaxLevel)
	out := &BattleOutcome{
		Action:     ActionCapture,
		OpponentHP: enc.RemainingHP,
	}
	if e.rng.Float64() < chance {
		out.CaptureSuccess = true
		p.pending = nil

		captured := Creature{
			SpeciesID: enc.SpeciesID,
			Name:      enc.SpeciesName,
			Level:     enc.Level,
			IsShiny:   enc.IsShiny,
			CurrentHP: enc.Stats.HP,
			MaxHP:     enc.Stats.HP,
			Attack:    enc.Stats.Attack,
			Defense:   enc.Stats.Defense,
			Types:     enc.Types,
		}
		p.Owned = append(p.Owned, captured)
		out.Captured = &captured
	}
	return out, nil
}

func (e *Engine) resolveFlee(p *PlayerState, enc *Encounter) (*BattleOutcome, error) {
	if enc.Kind == EncounterGymLeader {
		return nil, fmt.Errorf("%w: cannot flee a leader battle", ErrInvalidAction)
	}

	out := &BattleOutcome{Action: ActionFlee, OpponentHP: enc.RemainingHP}
	if e.rng.Float64() < fleeChance {
		out.FleeSuccess = true
		p.pending = nil
	}
	return out, nil
}

// pickMove selects the requested move, or the first one with uses left when
// no id is given.
func pickMove(c *Creature, moveID int) *CreatureMove {
	for i := range c.Moves {
		mv := &c.Moves[i]
		if mv.PP <= 0 {
			continue
		}
		if moveID == 0 || mv.ID == moveID {
			return mv
		}
	}
	if len(c.Moves) == 0 && moveID == 0 {
		// Creatures without learned moves fall back to a bare struggle.
		return &CreatureMove{Name: "struggle", Type: "normal", Power: 50, PP: 1, PPMax: 1}
	}
	return nil
}
