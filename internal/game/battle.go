package game

import "math"

// critChance is the independent critical hit roll.
const critChance = 1.0 / 16

// critMultiplier scales damage when a critical hit lands.
const critMultiplier = 1.5

// fleeChance is the fixed odds of escaping a wild encounter.
const fleeChance = 0.5

// maxCaptureChance caps capture probability regardless of inputs.
const maxCaptureChance = 0.9

// Action is a player's choice for one battle resolution.
type Action string

const (
	ActionAttack  Action = "attack"
	ActionCapture Action = "capture"
	ActionFlee    Action = "flee"
)

// BattleOutcome is the result of one self-contained battle resolution. It is
// returned to the caller and broadcast; it is never stored.
type BattleOutcome struct {
	Action            Action        `json:"action"`
	OpponentKind      EncounterKind `json:"opponent_kind"`
	OpponentSpeciesID int           `json:"opponent_species_id"`

	Damage        int     `json:"damage,omitempty"`
	Critical      bool    `json:"critical,omitempty"`
	Effectiveness float64 `json:"effectiveness,omitempty"`
	Defeated      bool    `json:"defeated,omitempty"`
	OpponentHP    int     `json:"opponent_hp"`

	CaptureSuccess bool      `json:"capture_success,omitempty"`
	Captured       *Creature `json:"captured,omitempty"`

	FleeSuccess bool `json:"flee_success,omitempty"`

	ExperienceGained int  `json:"experience_gained,omitempty"`
	LevelUp          bool `json:"level_up,omitempty"`
	BadgeEarned      bool `json:"badge_earned,omitempty"`
	SessionFinished  bool `json:"session_finished,omitempty"`
}

// Damage computes attack damage from explicit inputs:
//
//	base   = floor((2*level/5 + 2) * power * attack/defense)
//	damage = max(1, floor((base/50 + 2) * effectiveness))
//
// A critical hit scales the result by critMultiplier before the clamp.
func Damage(attackerLevel, movePower, attack, defense int, effectiveness float64, critical bool) int {
	if defense < 1 {
		defense = 1
	}
	base := math.Floor((2*float64(attackerLevel)/5 + 2) * float64(movePower) * float64(attack) / float64(defense))
	dmg := math.Floor((base/50 + 2) * effectiveness)
	if critical {
		dmg = math.Floor(dmg * critMultiplier)
	}
	if dmg < 1 {
		return 1
	}
	return int(dmg)
}

// Effectiveness folds the type-relation data of the move type over every
// defender type: double (2.0), halved (0.5) or nullified (0.0); unlisted
// combinations stay at 1.0.
func Effectiveness(defenderTypes []string, rel TypeChart) float64 {
	m := 1.0
	for _, dt := range defenderTypes {
		switch {
		case contains(rel.NoDamageTo, dt):
			m *= 0
		case contains(rel.DoubleDamageTo, dt):
			m *= 2
		case contains(rel.HalfDamageTo, dt):
			m *= 0.5
		}
	}
	return m
}

// TypeChart carries the offensive relations of one move type.
type TypeChart struct {
	DoubleDamageTo []string
	HalfDamageTo   []string
	NoDamageTo     []string
}

// CaptureChance derives the capture probability from the opponent's capture
// rate, remaining health, and level, clamped to [0, maxCaptureChance].
func CaptureChance(baseRate, currentHP, maxHP, level, maxLevel int) float64 {
	if maxHP < 1 || maxLevel < 1 {
		return 0
	}
	chance := (float64(baseRate) / 255) *
		(1 - float64(currentHP)/float64(maxHP)) *
		(1 - float64(level)/float64(maxLevel))
	if chance < 0 {
		return 0
	}
	if chance > maxCaptureChance {
		return maxCaptureChance
	}
	return chance
}

// ExperienceGain is the XP awarded for defeating a wild opponent.
func ExperienceGain(opponentLevel int) int {
	return opponentLevel * 15
}

// experienceToLevel is the XP threshold to advance past a level.
func experienceToLevel(level int) int {
	return level * 100
}

// grantExperience applies XP to a creature, leveling it up as thresholds are
// crossed. Level-ups grow max HP slightly and heal to full.
func grantExperience(c *Creature, xp int) (levelUp bool) {
	c.Experience += xp
	for c.Experience >= experienceToLevel(c.Level) {
		c.Experience -= experienceToLevel(c.Level)
		c.Level++
		c.MaxHP += 2
		c.CurrentHP = c.MaxHP
		levelUp = true
	}
	return levelUp
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
