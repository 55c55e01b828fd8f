package rng

import (
	"math/rand"
	"time"
)

// Seeded wraps math/rand with an explicit seed
// It is not safe for concurrent use; the engine only draws while holding its lock.
type Seeded struct {
	seed int64
	r    *rand.Rand
}

// NewSeeded returns a generator for the seed. A seed of 0 uses the current time.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// Seed returns the seed used
func (s *Seeded) Seed() int64 {
	return s.seed
}
