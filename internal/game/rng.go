package game

import "math/rand/v2"

// RandomSource abstracts random number generation so every probabilistic
// outcome (die rolls, encounters, crits, capture, flee) can be replayed with
// a seeded generator in tests.
type RandomSource interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntN returns a uniform draw in [0, n).
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }
func (defaultSource) IntN(n int) int   { return rand.IntN(n) }

// DefaultSource returns the process-wide generator. It is safe for
// concurrent use.
func DefaultSource() RandomSource { return defaultSource{} }

type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a reproducible generator for tests. It is not safe
// for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
func (s *seededSource) IntN(n int) int   { return s.r.IntN(n) }
