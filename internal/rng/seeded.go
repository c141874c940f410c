package rng

import (
	"math/rand"
	"time"
)

// Seeded is a reproducible generator backed by math/rand
// It is not safe for concurrent use and must never shuffle a real-money deck.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a generator for the seed
// If seed is 0, the current time is used
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Seed returns the seed used by the generator
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
