// Package random provides the seeded uniform source used for parameter initialization.
//
// There is no process-wide state: every consumer owns a *Source and reseeds it
// explicitly, so two sources created with the same seed produce the same sequence.
package random

import (
	"math"
	"math/rand"
)

// Source is a deterministic pseudo-random number generator.
//
// A Source is not safe for concurrent use.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New creates a source seeded with seed.
func New(seed int64) *Source {
	//nolint:gosec // Weight initialization is not security-critical.
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed resets the source to the beginning of the sequence for seed.
func (s *Source) Seed(seed int64) {
	s.seed = seed
	s.rng.Seed(seed)
}

// CurrentSeed returns the seed the source was last (re)seeded with.
func (s *Source) CurrentSeed() int64 {
	return s.seed
}

// Uniform returns a value drawn uniformly from [low, high).
func (s *Source) Uniform(low, high float64) float64 {
	return low + s.rng.Float64()*(high-low)
}

// Normal returns a value drawn from N(mu, sigma²) using the Box-Muller transform.
func (s *Source) Normal(mu, sigma float64) float64 {
	u1 := s.rng.Float64()
	for u1 == 0 {
		u1 = s.rng.Float64()
	}
	u2 := s.rng.Float64()
	return mu + sigma*math.Sqrt(-2*math.Log(u1))*math.Cos(2*math.Pi*u2)
}
