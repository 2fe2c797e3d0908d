package game

import "math"

// BoardConfig fixes the track geometry and the wild encounter level curve.
type BoardConfig struct {
	TotalSpaces    int
	GymLeaderCount int
	// EliteFourSpaces > 0 marks the final space as the Elite Four trigger.
	EliteFourSpaces int
	MinLevel        int
	MaxLevel        int
	LevelSpan       int
}

// SpaceKind classifies a landing space.
type SpaceKind string

const (
	SpaceNormal    SpaceKind = "normal"
	SpaceGymLeader SpaceKind = "gymLeader"
	SpaceEliteFour SpaceKind = "eliteFour"
)

// RollDie draws a uniform die value in [1, 6]. This is the only randomness
// source for movement.
func RollDie(rng RandomSource) int {
	return rng.IntN(6) + 1
}

// Move advances a position by a die roll, clamped to the track end. Movement
// never wraps.
func Move(position, roll, totalSpaces int) int {
	next := position + roll
	if next > totalSpaces {
		return totalSpaces
	}
	return next
}

// GymPositions returns the set of gym leader spaces, spread evenly over the
// track: floor(k * totalSpaces/(count+1)) for k = 1..count.
func GymPositions(totalSpaces, count int) []int {
	positions := make([]int, 0, count)
	for k := 1; k <= count; k++ {
		positions = append(positions, int(math.Floor(float64(k)*(float64(totalSpaces)/float64(count+1)))))
	}
	return positions
}

// Classify categorizes a board position. The final space is the Elite Four
// trigger when configured; gym leader spaces follow the fixed formula.
func Classify(position int, cfg BoardConfig) SpaceKind {
	if cfg.EliteFourSpaces > 0 && position == cfg.TotalSpaces {
		return SpaceEliteFour
	}
	for _, p := range GymPositions(cfg.TotalSpaces, cfg.GymLeaderCount) {
		if p == position {
			return SpaceGymLeader
		}
	}
	return SpaceNormal
}
