package game

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"pokeboard/backend/internal/pokeapi"
)

// EncounterKind distinguishes wild encounters from scripted leader battles.
type EncounterKind string

const (
	EncounterWild      EncounterKind = "wild"
	EncounterGymLeader EncounterKind = "gymLeader"
)

// shinyChance is the independent roll for a wild encounter being shiny.
const shinyChance = 0.01

// Encounter is the ephemeral opponent generated by landing on a space. It
// lives until one battle interaction resolves or discards it.
type Encounter struct {
	Kind        EncounterKind `json:"kind"`
	Leader      string        `json:"leader,omitempty"`
	Elite       bool          `json:"elite,omitempty"`
	SpeciesID   int           `json:"species_id"`
	SpeciesName string        `json:"species_name"`
	Level       int           `json:"level"`
	IsShiny     bool          `json:"is_shiny,omitempty"`
	Sprite      string        `json:"sprite"`
	Types       []string      `json:"types"`
	Stats       pokeapi.Stats `json:"stats"`
	CaptureRate int           `json:"-"`
	RemainingHP int           `json:"remaining_hp"`
}

// gymRoster is the fixed pool of leaders with their signature species.
var gymRoster = []struct {
	Name    string
	Species string
}{
	{"Brock", "onix"},
	{"Misty", "starmie"},
	{"Lt. Surge", "raichu"},
	{"Erika", "vileplume"},
	{"Koga", "weezing"},
	{"Sabrina", "alakazam"},
	{"Blaine", "arcanine"},
	{"Giovanni", "nidoking"},
}

// WildLevelWindow computes the level range for a wild encounter from board
// progress: the floor rises linearly toward the track end, the window is
// five levels wide.
func WildLevelWindow(position int, cfg BoardConfig) (minLevel, maxLevel int) {
	progress := float64(position) / float64(cfg.TotalSpaces)
	minLevel = int(math.Floor(float64(cfg.MinLevel) + progress*float64(cfg.LevelSpan)))
	maxLevel = minLevel + 5
	return minLevel, maxLevel
}

// GymLeaderLevel scales a leader's creature with board position.
func GymLeaderLevel(position int) int {
	return 30 + position/2
}

// generateEncounter builds the opponent for a landing space. A lookup
// failure yields ErrEncounterUnavailable; the caller keeps the movement
// result and omits the encounter.
func (e *Engine) generateEncounter(ctx context.Context, position int, kind SpaceKind) (*Encounter, error) {
	switch kind {
	case SpaceGymLeader, SpaceEliteFour:
		return e.generateGymEncounter(ctx, position, kind == SpaceEliteFour)
	default:
		return e.generateWildEncounter(ctx, position)
	}
}

func (e *Engine) generateWildEncounter(ctx context.Context, position int) (*Encounter, error) {
	count, err := e.lookup.SpeciesCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncounterUnavailable, err)
	}

	speciesID := e.rng.IntN(count) + 1
	p, err := e.lookup.Pokemon(ctx, strconv.Itoa(speciesID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncounterUnavailable, err)
	}
	species, err := e.lookup.Species(ctx, strconv.Itoa(p.ID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncounterUnavailable, err)
	}

	minLevel, maxLevel := WildLevelWindow(position, e.board)
	level := minLevel + e.rng.IntN(maxLevel-minLevel+1)
	shiny := e.rng.Float64() < shinyChance

	sprite := p.Sprites.FrontDefault
	if shiny {
		sprite = p.Sprites.FrontShiny
	}

	return &Encounter{
		Kind:        EncounterWild,
		SpeciesID:   p.ID,
		SpeciesName: p.Name,
		Level:       level,
		IsShiny:     shiny,
		Sprite:      sprite,
		Types:       p.Types,
		Stats:       p.Stats,
		CaptureRate: species.CaptureRate,
		RemainingHP: p.Stats.HP,
	}, nil
}

func (e *Engine) generateGymEncounter(ctx context.Context, position int, elite bool) (*Encounter, error) {
	leader := gymRoster[e.rng.IntN(len(gymRoster))]

	p, err := e.lookup.Pokemon(ctx, leader.Species)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncounterUnavailable, err)
	}

	// Leader encounters never roll shiny.
	return &Encounter{
		Kind:        EncounterGymLeader,
		Leader:      leader.Name,
		Elite:       elite,
		SpeciesID:   p.ID,
		SpeciesName: p.Name,
		Level:       GymLeaderLevel(position),
		Sprite:      p.Sprites.FrontDefault,
		Types:       p.Types,
		Stats:       p.Stats,
		RemainingHP: p.Stats.HP,
	}, nil
}
