// SPDX-License-Identifier: MIT
// Package: linproj/adversarial
//
// options.go — functional options and deterministic defaults.
//
// Deterministic defaults:
//   • scenario = ReferenceScenario()
//   • rng      = rand.New(rand.NewSource(1))
//   • logger   = zerolog.Nop()
//   • PCA      = pca.New(1) with its own defaults
//
// Option constructors panic on meaningless values.

package adversarial

import (
	"math/rand"

	"github.com/katalvlaran/linproj/pca"
	"github.com/rs/zerolog"
)

// defaultRNGSeed is used when no seed or source is configured, or seed == 0.
const defaultRNGSeed int64 = 1

// config aggregates generator knobs.
type config struct {
	scenario Scenario
	rng      *rand.Rand
	logger   zerolog.Logger
	pcaOpts  []pca.Option
}

// Option customizes an AdversarialExamples generator.
type Option func(*config)

// WithScenario selects the cluster layout. Panics if s fails Validate.
func WithScenario(s Scenario) Option {
	if err := s.Validate(); err != nil {
		panic("adversarial: WithScenario: " + err.Error())
	}
	return func(c *config) { c.scenario = s }
}

// WithSeed uses a private source seeded with seed (0 selects the default seed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand uses the caller's source. Panics on nil. The source is advanced
// by every Generate call.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("adversarial: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithLogger attaches a zerolog logger. Covariance repairs and ignored
// arguments are logged at warn level, generation at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithPCAOptions forwards options to the PCA(1) fit of PCAAdversarialData.
func WithPCAOptions(opts ...pca.Option) Option {
	return func(c *config) { c.pcaOpts = append([]pca.Option(nil), opts...) }
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// newConfig builds the config from defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		scenario: ReferenceScenario(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultRNGSeed)
	}

	return cfg
}
