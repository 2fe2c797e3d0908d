package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"pokeboard/backend/internal/pokeapi"
)

// fakeLookup serves canned species data so engine tests never touch the
// network. A non-nil err fails every call.
type fakeLookup struct {
	hp  int
	err error
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{hp: 35}
}

func (f *fakeLookup) Pokemon(ctx context.Context, idOrName string) (*pokeapi.Pokemon, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pokeapi.Pokemon{
		ID:    25,
		Name:  "pikachu",
		Types: []string{"electric"},
		Stats: pokeapi.Stats{HP: f.hp, Attack: 55, Defense: 40, Speed: 90},
		Sprites: pokeapi.Sprites{
			FrontDefault: "https://img.example/25.png",
			FrontShiny:   "https://img.example/25-shiny.png",
		},
	}, nil
}

func (f *fakeLookup) Species(ctx context.Context, idOrName string) (*pokeapi.Species, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pokeapi.Species{ID: 25, Name: "pikachu", CaptureRate: 190}, nil
}

func (f *fakeLookup) SpeciesCount(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return 151, nil
}

func (f *fakeLookup) TypeRelations(ctx context.Context, typeName string) (*pokeapi.TypeRelations, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pokeapi.TypeRelations{
		DoubleDamageTo: []string{"water", "flying"},
		HalfDamageTo:   []string{"grass", "electric", "dragon"},
		NoDamageTo:     []string{"ground"},
	}, nil
}

// recordingBroadcaster captures published events in delivery order.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) Publish(sessionID uint, eventType string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, eventType)
}

func (b *recordingBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	copy(out, b.events)
	return out
}

// stubSource pins every probabilistic outcome: Float64 always returns f,
// IntN always returns n (clamped below its bound).
type stubSource struct {
	f float64
	n int
}

func (s stubSource) Float64() float64 { return s.f }
func (s stubSource) IntN(n int) int {
	if s.n < n {
		return s.n
	}
	return 0
}

func newTestEngine(lookup Lookup, rng RandomSource, broadcast Broadcaster) *Engine {
	return NewEngine(NewRegistry(), testBoard, lookup, rng, broadcast)
}

func testCreature(id uint) *Creature {
	return &Creature{
		ID:        id,
		SpeciesID: 25,
		Name:      "pikachu",
		Level:     10,
		CurrentHP: 35,
		MaxHP:     35,
		Attack:    50,
		Defense:   40,
		Types:     []string{"electric"},
		Moves: []CreatureMove{
			{ID: 1, Name: "thunderbolt", Type: "electric", Power: 90, PP: 15, PPMax: 15},
		},
	}
}

// fillSession creates session 1 and joins four players (user ids 1..4).
func fillSession(t *testing.T, e *Engine) *Session {
	t.Helper()
	if err := e.CreateSession(1); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	for id := uint(1); id <= 4; id++ {
		res, err := e.Join(1, id, fmt.Sprintf("player%d", id), testCreature(id))
		if err != nil {
			t.Fatalf("Join(user %d): %v", id, err)
		}
		if want := id == 4; res.Started != want {
			t.Fatalf("Join(user %d): Started = %v, want %v", id, res.Started, want)
		}
	}
	s, err := e.registry.Get(1)
	if err != nil {
		t.Fatalf("registry.Get: %v", err)
	}
	return s
}

func TestJoinLifecycle(t *testing.T) {
	bc := &recordingBroadcaster{}
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, bc)
	fillSession(t, e)

	snap, err := e.Snapshot(1)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Status != StatusActive {
		t.Errorf("status = %q, want active", snap.Status)
	}
	if snap.TurnUserID != 1 {
		t.Errorf("turn holder = %d, want first joiner", snap.TurnUserID)
	}

	// Capacity wins over the not-joinable state for outsiders.
	if _, err := e.Join(1, 5, "player5", testCreature(5)); !errors.Is(err, ErrSessionFull) {
		t.Errorf("fifth join: got %v, want ErrSessionFull", err)
	}
	if _, err := e.Join(1, 2, "player2", testCreature(2)); !errors.Is(err, ErrDuplicateJoin) {
		t.Errorf("rejoin: got %v, want ErrDuplicateJoin", err)
	}

	events := bc.types()
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5: %v", len(events), events)
	}
	for i := 0; i < 4; i++ {
		if events[i] != EventPlayerJoined {
			t.Errorf("event %d = %q, want player-joined", i, events[i])
		}
	}
	if events[4] != EventSessionStarted {
		t.Errorf("last event = %q, want session-started", events[4])
	}
}

func TestJoinWaitingSessionOnly(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	if err := e.CreateSession(1); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := e.Join(1, 1, "player1", testCreature(1)); err != nil {
		t.Fatalf("Join: %v", err)
	}

	s, _ := e.registry.Get(1)
	s.mu.Lock()
	s.Status = StatusFinished
	s.mu.Unlock()

	if _, err := e.Join(1, 2, "player2", testCreature(2)); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("join finished session: got %v, want ErrSessionNotFound", err)
	}
}

func TestRollAdvancesTurn(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99, n: 2}, nil)
	fillSession(t, e)

	res, err := e.Roll(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if res.DieRoll != 3 {
		t.Errorf("die roll = %d, want 3", res.DieRoll)
	}
	if res.NewPosition != 3 {
		t.Errorf("new position = %d, want 3", res.NewPosition)
	}
	if res.Space != SpaceNormal {
		t.Errorf("space = %q, want normal", res.Space)
	}
	if res.Encounter == nil || res.Encounter.Kind != EncounterWild {
		t.Fatalf("encounter = %+v, want a wild encounter", res.Encounter)
	}
	if res.TurnUserID != 2 {
		t.Errorf("turn passed to %d, want 2", res.TurnUserID)
	}
}

func TestRollOntoGymLeaderSpace(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99, n: 4}, nil)
	fillSession(t, e)

	res, err := e.Roll(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if res.NewPosition != 5 {
		t.Fatalf("position = %d, want 5", res.NewPosition)
	}
	if res.Space != SpaceGymLeader {
		t.Errorf("space = %q, want gymLeader", res.Space)
	}
	if res.Encounter == nil || res.Encounter.Kind != EncounterGymLeader {
		t.Fatalf("encounter = %+v, want a leader battle", res.Encounter)
	}
	if res.Encounter.Level != 32 {
		t.Errorf("leader level = %d, want 32", res.Encounter.Level)
	}
}

func TestRollOutOfTurn(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	fillSession(t, e)

	if _, err := e.Roll(context.Background(), 1, 3); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("got %v, want ErrNotYourTurn", err)
	}
}

func TestRollBeforeStart(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	if err := e.CreateSession(1); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := e.Join(1, 1, "player1", testCreature(1)); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if _, err := e.Roll(context.Background(), 1, 1); !errors.Is(err, ErrSessionNotActive) {
		t.Errorf("got %v, want ErrSessionNotActive", err)
	}
}

func TestRollConcurrentSingleWinner(t *testing.T) {
	e := newTestEngine(newFakeLookup(), DefaultSource(), nil)
	fillSession(t, e)

	// User 1 holds the turn; user 3 is never next, so exactly one of the
	// two simultaneous rolls may commit.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []uint{1, 3} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, errs[i] = e.Roll(context.Background(), 1, userID)
		}(i, userID)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrNotYourTurn) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("%d rolls committed, want exactly 1", succeeded)
	}
}

func TestRollSkipsDisconnectedPlayer(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	fillSession(t, e)

	if err := e.SetConnected(1, 2, false); err != nil {
		t.Fatalf("SetConnected: %v", err)
	}
	res, err := e.Roll(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if res.TurnUserID != 3 {
		t.Errorf("turn passed to %d, want 3 (skipping disconnected 2)", res.TurnUserID)
	}
}

func TestDisconnectingHolderPassesTurn(t *testing.T) {
	bc := &recordingBroadcaster{}
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, bc)
	s := fillSession(t, e)

	if err := e.SetConnected(1, 1, false); err != nil {
		t.Fatalf("SetConnected: %v", err)
	}
	if snap := s.Snapshot(); snap.TurnUserID != 2 {
		t.Errorf("turn holder = %d, want 2", snap.TurnUserID)
	}

	events := bc.types()
	if events[len(events)-1] != EventTurnChanged {
		t.Errorf("last event = %q, want turn-changed", events[len(events)-1])
	}
}

func TestRollSurvivesLookupOutage(t *testing.T) {
	lookup := newFakeLookup()
	lookup.err = errors.New("upstream down")
	e := newTestEngine(lookup, stubSource{f: 0.99, n: 2}, nil)
	fillSession(t, e)

	res, err := e.Roll(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if res.NewPosition != 3 {
		t.Errorf("movement did not commit: position %d, want 3", res.NewPosition)
	}
	if res.Encounter != nil {
		t.Error("encounter should be omitted on lookup failure")
	}
	if !errors.Is(res.EncounterErr, ErrEncounterUnavailable) {
		t.Errorf("EncounterErr = %v, want ErrEncounterUnavailable", res.EncounterErr)
	}
	if res.TurnUserID != 2 {
		t.Errorf("turn did not advance: holder %d, want 2", res.TurnUserID)
	}
}

// setPending injects an unresolved encounter for a player, standing in for a
// prior roll.
func setPending(s *Session, userID uint, enc *Encounter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, _ := s.playerLocked(userID)
	p.pending = enc
}

func wildEncounter(hp int) *Encounter {
	return &Encounter{
		Kind:        EncounterWild,
		SpeciesID:   25,
		SpeciesName: "pikachu",
		Level:       12,
		Types:       []string{"electric"},
		Stats:       pokeapi.Stats{HP: hp, Attack: 55, Defense: 40},
		CaptureRate: 190,
		RemainingHP: hp,
	}
}

func gymEncounter(elite bool) *Encounter {
	return &Encounter{
		Kind:        EncounterGymLeader,
		Leader:      "Brock",
		Elite:       elite,
		SpeciesID:   95,
		SpeciesName: "onix",
		Level:       32,
		Types:       []string{"rock", "ground"},
		Stats:       pokeapi.Stats{HP: 5, Attack: 45, Defense: 160},
		RemainingHP: 5,
	}
}

func TestBattleWithoutEncounter(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	fillSession(t, e)

	if _, err := e.ResolveBattle(context.Background(), 1, 1, ActionAttack, 0); !errors.Is(err, ErrStaleAction) {
		t.Errorf("got %v, want ErrStaleAction", err)
	}
}

func TestAttackDefeatsWild(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)
	setPending(s, 2, wildEncounter(5))

	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1)
	if err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}
	if out.Action != ActionAttack || out.OpponentKind != EncounterWild {
		t.Errorf("outcome header = %q/%q, want attack/wild", out.Action, out.OpponentKind)
	}
	if out.Critical {
		t.Error("crit rolled despite pinned rng")
	}
	// Electric vs electric is resisted.
	if out.Effectiveness != 0.5 {
		t.Errorf("effectiveness = %v, want 0.5", out.Effectiveness)
	}
	if out.Damage < 5 {
		t.Errorf("damage = %d, should overwhelm 5 HP", out.Damage)
	}
	if !out.Defeated || out.OpponentHP != 0 {
		t.Errorf("defeat flags = %v/%d, want true/0", out.Defeated, out.OpponentHP)
	}
	if want := ExperienceGain(12); out.ExperienceGained != want {
		t.Errorf("experience = %d, want %d", out.ExperienceGained, want)
	}

	// The encounter is consumed; a follow-up decision is stale.
	if _, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1); !errors.Is(err, ErrStaleAction) {
		t.Errorf("second decision: got %v, want ErrStaleAction", err)
	}
}

func TestAttackWhittlesDown(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)
	setPending(s, 2, wildEncounter(500))

	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1)
	if err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}
	if out.Defeated {
		t.Fatal("a 500 HP opponent should survive one hit")
	}
	if out.OpponentHP != 500-out.Damage {
		t.Errorf("opponent HP = %d, want %d", out.OpponentHP, 500-out.Damage)
	}

	// Damage persists across decisions on the same encounter.
	out2, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1)
	if err != nil {
		t.Fatalf("second attack: %v", err)
	}
	if out2.OpponentHP >= out.OpponentHP {
		t.Errorf("second attack did not stack: %d -> %d", out.OpponentHP, out2.OpponentHP)
	}
}

func TestAttackSpendsMoveUses(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)
	setPending(s, 2, wildEncounter(500))

	if _, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1); err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}

	s.mu.Lock()
	p, _ := s.playerLocked(2)
	pp := p.Active.Moves[0].PP
	s.mu.Unlock()
	if pp != 14 {
		t.Errorf("move PP = %d, want 14", pp)
	}
}

func TestAttackWithoutActiveCreature(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)
	setPending(s, 2, wildEncounter(5))

	s.mu.Lock()
	p, _ := s.playerLocked(2)
	p.Active = nil
	s.mu.Unlock()

	if _, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 0); !errors.Is(err, ErrNoActiveCreature) {
		t.Errorf("got %v, want ErrNoActiveCreature", err)
	}
}

func TestAttackRetryableOnRelationOutage(t *testing.T) {
	lookup := newFakeLookup()
	e := newTestEngine(lookup, stubSource{f: 0.99}, nil)
	s := fillSession(t, e)
	setPending(s, 2, wildEncounter(5))

	lookup.err = errors.New("upstream down")
	if _, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1); err == nil {
		t.Fatal("expected the relation lookup failure to surface")
	}

	// Nothing was consumed: the same decision succeeds once upstream heals.
	lookup.err = nil
	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !out.Defeated {
		t.Error("retry should resolve the battle")
	}
}

func TestCaptureWild(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0}, nil)
	s := fillSession(t, e)
	enc := wildEncounter(35)
	enc.RemainingHP = 1
	setPending(s, 2, enc)

	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionCapture, 0)
	if err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}
	if !out.CaptureSuccess || out.Captured == nil {
		t.Fatalf("capture failed with pinned rng: %+v", out)
	}
	if out.Captured.SpeciesID != 25 {
		t.Errorf("captured species %d, want 25", out.Captured.SpeciesID)
	}

	s.mu.Lock()
	p, _ := s.playerLocked(2)
	owned := len(p.Owned)
	pending := p.pending
	s.mu.Unlock()
	if owned != 2 {
		t.Errorf("owned creatures = %d, want 2 (starter + capture)", owned)
	}
	if pending != nil {
		t.Error("capture should consume the encounter")
	}
}

func TestCaptureFailureKeepsEncounter(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)
	enc := wildEncounter(35)
	enc.RemainingHP = 1
	setPending(s, 2, enc)

	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionCapture, 0)
	if err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}
	if out.CaptureSuccess {
		t.Fatal("capture succeeded with rng pinned above the cap")
	}

	s.mu.Lock()
	p, _ := s.playerLocked(2)
	pending := p.pending
	s.mu.Unlock()
	if pending == nil {
		t.Error("failed capture should keep the encounter pending")
	}
}

func TestFleeWild(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0}, nil)
	s := fillSession(t, e)
	setPending(s, 2, wildEncounter(35))

	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionFlee, 0)
	if err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}
	if !out.FleeSuccess {
		t.Fatal("flee failed with pinned rng")
	}

	if _, err := e.ResolveBattle(context.Background(), 1, 2, ActionFlee, 0); !errors.Is(err, ErrStaleAction) {
		t.Errorf("after flee: got %v, want ErrStaleAction", err)
	}
}

func TestGymBattleForbidsCaptureAndFlee(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0}, nil)
	s := fillSession(t, e)
	setPending(s, 2, gymEncounter(false))

	if _, err := e.ResolveBattle(context.Background(), 1, 2, ActionCapture, 0); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("capture vs leader: got %v, want ErrInvalidAction", err)
	}
	if _, err := e.ResolveBattle(context.Background(), 1, 2, ActionFlee, 0); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("flee vs leader: got %v, want ErrInvalidAction", err)
	}
}

func TestGymDefeatGrantsBadge(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)
	setPending(s, 2, gymEncounter(false))

	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1)
	if err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}
	if !out.Defeated || !out.BadgeEarned {
		t.Fatalf("defeat/badge = %v/%v, want true/true", out.Defeated, out.BadgeEarned)
	}
	if out.SessionFinished {
		t.Error("one badge should not finish the session")
	}
	if out.ExperienceGained != 0 {
		t.Error("leader battles award no experience")
	}

	s.mu.Lock()
	p, _ := s.playerLocked(2)
	badges := p.Badges
	s.mu.Unlock()
	if badges != 1 {
		t.Errorf("badges = %d, want 1", badges)
	}
}

func TestEliteDefeatFinishesSession(t *testing.T) {
	bc := &recordingBroadcaster{}
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, bc)
	s := fillSession(t, e)
	setPending(s, 2, gymEncounter(true))

	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1)
	if err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}
	if !out.SessionFinished {
		t.Fatal("elite defeat should finish the session")
	}

	snap := s.Snapshot()
	if snap.Status != StatusFinished {
		t.Errorf("status = %q, want finished", snap.Status)
	}
	if snap.WinnerID != 2 {
		t.Errorf("winner = %d, want 2", snap.WinnerID)
	}

	events := bc.types()
	if events[len(events)-1] != EventSessionFinished {
		t.Errorf("last event = %q, want session-finished", events[len(events)-1])
	}
}

func TestAllBadgesFinishesSession(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)

	s.mu.Lock()
	p, _ := s.playerLocked(2)
	p.Badges = testBoard.GymLeaderCount - 1
	s.mu.Unlock()
	setPending(s, 2, gymEncounter(false))

	out, err := e.ResolveBattle(context.Background(), 1, 2, ActionAttack, 1)
	if err != nil {
		t.Fatalf("ResolveBattle: %v", err)
	}
	if !out.BadgeEarned || !out.SessionFinished {
		t.Errorf("badge/finished = %v/%v, want true/true", out.BadgeEarned, out.SessionFinished)
	}
}

func TestLeaveAdvancesTurn(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)

	if err := e.Leave(1, 1); err != nil {
		t.Fatalf("Leave: %v", err)
	}
	snap := s.Snapshot()
	if len(snap.Players) != 3 {
		t.Fatalf("players = %d, want 3", len(snap.Players))
	}
	if snap.TurnUserID != 2 {
		t.Errorf("turn holder = %d, want 2", snap.TurnUserID)
	}
}

func TestLastLeaveDestroysSession(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	if err := e.CreateSession(1); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := e.Join(1, 1, "player1", testCreature(1)); err != nil {
		t.Fatalf("Join: %v", err)
	}

	if err := e.Leave(1, 1); err != nil {
		t.Fatalf("Leave: %v", err)
	}
	if _, err := e.Snapshot(1); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound after last leave", err)
	}
	if e.registry.Len() != 0 {
		t.Errorf("registry holds %d sessions, want 0", e.registry.Len())
	}
}

func TestLeaveUnknownPlayer(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	fillSession(t, e)

	if err := e.Leave(1, 99); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("got %v, want ErrPlayerNotFound", err)
	}
}

func TestInvalidBattleAction(t *testing.T) {
	e := newTestEngine(newFakeLookup(), stubSource{f: 0.99}, nil)
	s := fillSession(t, e)
	setPending(s, 2, wildEncounter(35))

	if _, err := e.ResolveBattle(context.Background(), 1, 2, Action("dance"), 0); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("got %v, want ErrInvalidAction", err)
	}
}
