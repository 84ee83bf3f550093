// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// options.go — functional options and resolved configuration for
// Generate and Build.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on nil arguments; numeric values are
//     validated by Generate/Build and reported as ErrInvalidDimension.
//   • Determinism is explicit: seed with WithSeed, or hand over a source
//     with WithRand/WithSource. No option → defaultSeed.

package maze

import (
	"math/rand"

	"github.com/katalvlaran/lvmaze/tilemap"
)

// Source is the RNG consumed by the builders; *rand.Rand satisfies it.
type Source = tilemap.Source

// Deterministic defaults.
const (
	// DefaultCorridorSize is the floor-block thickness used when no
	// WithCorridorSize option is given.
	DefaultCorridorSize = 2
	// defaultSeed seeds the RNG when neither WithSeed nor WithRand/WithSource is used.
	defaultSeed int64 = 1
)

// Option customizes a Generate or Build call.
type Option func(*config)

// config aggregates every knob used by the builders.
type config struct {
	corridorSize int
	src          Source
}

// WithCorridorSize sets the tile thickness of floor blocks and connectors.
// Values below 1 make Generate/Build fail with ErrInvalidDimension.
func WithCorridorSize(n int) Option {
	return func(c *config) {
		c.corridorSize = n
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit *rand.Rand. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.src = r
	}
}

// WithSource provides any uniform integer Source. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("maze: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// newConfig applies opts in order (last wins) over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{corridorSize: DefaultCorridorSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}
