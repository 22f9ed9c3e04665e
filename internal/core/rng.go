package core

import "math/rand/v2"

// DefaultSeed is used when no seed is given, so unseeded runs are repeatable.
const DefaultSeed = 1

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// selects DefaultSeed.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Range returns a float32 uniformly drawn from [min, max).
func (r *RNG) Range(min, max float32) float32 {
	return r.r.Float32()*(max-min) + min
}
