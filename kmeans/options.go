// SPDX-License-Identifier: MIT
// Package: linproj/kmeans
//
// options.go — functional options and deterministic defaults.
//
// Deterministic defaults:
//   • restarts  = 10
//   • maxIter   = 300
//   • tolerance = 1e-9 (largest squared centroid shift that counts as converged)
//   • rng       = rand.New(rand.NewSource(1))
//   • logger    = zerolog.Nop()
//
// Option constructors panic on meaningless values; Fit never panics.

package kmeans

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"
)

// Defaults applied when the corresponding option is absent.
const (
	DefaultRestarts  = 10
	DefaultMaxIter   = 300
	DefaultTolerance = 1e-9
)

// config aggregates clustering knobs. Copied by value into KMeans.
type config struct {
	restarts  int
	maxIter   int
	tolerance float64
	rng       *rand.Rand
	logger    zerolog.Logger
}

// Option customizes a KMeans.
type Option func(*config)

// WithRestarts sets the number of independent k-means++ restarts; the lowest
// inertia wins. Panics if n < 1.
func WithRestarts(n int) Option {
	if n < 1 {
		panic("kmeans: WithRestarts(n<1)")
	}
	return func(c *config) { c.restarts = n }
}

// WithMaxIter caps Lloyd iterations per restart. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("kmeans: WithMaxIter(n<1)")
	}
	return func(c *config) { c.maxIter = n }
}

// WithTolerance sets the convergence threshold on the largest squared centroid
// shift. Panics if tol < 0 or NaN.
func WithTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic("kmeans: WithTolerance(tol<0)")
	}
	return func(c *config) { c.tolerance = tol }
}

// WithSeed uses a private source seeded with seed (0 selects the default seed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand uses the caller's source. Panics on nil. The source is advanced by Fit.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("kmeans: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithLogger attaches a zerolog logger; restarts are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// newConfig builds the config from defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		restarts:  DefaultRestarts,
		maxIter:   DefaultMaxIter,
		tolerance: DefaultTolerance,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultRNGSeed)
	}

	return cfg
}
