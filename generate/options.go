// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors PANIC on meaningless inputs (nil RNG).
//     Generators themselves never panic on user input.
//   • Determinism is explicit: seed with WithSeed or WithRand.

package generate

import (
	"math/rand"
)

// Option customizes a generator call by mutating its genConfig before
// carving begins.
type Option func(*genConfig)

// WithRand provides an explicit RNG. The generator advances r; pass a fresh
// source per concurrent call. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Two calls with the
// same seed and dimensions return identical grids.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
