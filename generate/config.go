// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// config.go — internal configuration resolved from options.
//
// Defaults:
//   • rng = time-seeded source when neither WithSeed nor WithRand is given.
//
// newGenConfig applies options in order; later options override earlier ones.

package generate

import (
	"math/rand"
	"time"
)

// genConfig aggregates the knobs shared by all generators.
type genConfig struct {
	// rng drives every random choice; never nil after newGenConfig.
	rng *rand.Rand
}

// newGenConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}
