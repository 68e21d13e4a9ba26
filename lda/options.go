// SPDX-License-Identifier: MIT
// Package: linproj/lda
//
// options.go — functional options and deterministic defaults for the estimator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; Fit and
//     Transform never panic.
//   • newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • solver    = SolverCholesky
//   • scatter   = ScatterWeighted
//   • imagTol   = matrix.DefaultImagTol
//   • shrinkage = 0
//   • signFlip  = true
//   • logger    = zerolog.Nop()

package lda

import (
	"math"

	"github.com/katalvlaran/linproj/matrix"
	"github.com/rs/zerolog"
)

// Solver selects how the generalized problem Sb·v = λ·Sw·v is solved.
type Solver int

const (
	// SolverCholesky reduces to the symmetric problem L⁻¹·Sb·L⁻ᵀ with Sw = L·Lᵀ.
	// The spectrum is real by construction.
	SolverCholesky Solver = iota
	// SolverGeneral eigendecomposes Sw⁻¹·Sb with a non-symmetric solver and
	// keeps real parts after a tolerance check.
	SolverGeneral
)

// String implements fmt.Stringer for log fields.
func (s Solver) String() string {
	switch s {
	case SolverCholesky:
		return "cholesky"
	case SolverGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// Scatter selects how class statistics are weighted.
type Scatter int

const (
	// ScatterWeighted uses Sw = Σ_c Σ_{i∈c} (x_i−μ_c)(x_i−μ_c)ᵀ and
	// Sb = Σ_c n_c·(μ_c−μ)(μ_c−μ)ᵀ, so large classes weigh more.
	ScatterWeighted Scatter = iota
	// ScatterUnweighted uses Sw = Σ_c Cov_c and Sb = Σ_c (μ_c−μ)(μ_c−μ)ᵀ,
	// every class counting once regardless of its size.
	ScatterUnweighted
)

// String implements fmt.Stringer for log fields.
func (s Scatter) String() string {
	switch s {
	case ScatterWeighted:
		return "weighted"
	case ScatterUnweighted:
		return "unweighted"
	default:
		return "unknown"
	}
}

const (
	defaultSolver   = SolverCholesky
	defaultScatter  = ScatterWeighted
	defaultSignFlip = true
)

// config aggregates all estimator knobs. Copied by value into the estimator.
type config struct {
	solver    Solver
	scatter   Scatter
	imagTol   float64 // relative to the largest |λ|; SolverGeneral only
	shrinkage float64 // α in Sw + α·I
	signFlip  bool
	logger    zerolog.Logger
}

// Option customizes an LDA estimator.
type Option func(*config)

// WithSolver selects the eigen strategy. Panics on an unknown value.
func WithSolver(s Solver) Option {
	if s != SolverCholesky && s != SolverGeneral {
		panic("lda: WithSolver(unknown)")
	}
	return func(c *config) { c.solver = s }
}

// WithScatter selects the scatter weighting. Panics on an unknown value.
func WithScatter(s Scatter) Option {
	if s != ScatterWeighted && s != ScatterUnweighted {
		panic("lda: WithScatter(unknown)")
	}
	return func(c *config) { c.scatter = s }
}

// WithImagTolerance sets the largest accepted |Im λ| relative to max|λ| for
// SolverGeneral. Panics if tol <= 0 or not finite.
func WithImagTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("lda: WithImagTolerance(tol<=0)")
	}
	return func(c *config) { c.imagTol = tol }
}

// WithShrinkage adds α·I to the within-class scatter before solving.
// Panics if alpha < 0 or not finite.
func WithShrinkage(alpha float64) Option {
	if !(alpha >= 0) || math.IsInf(alpha, 0) {
		panic("lda: WithShrinkage(alpha<0)")
	}
	return func(c *config) { c.shrinkage = alpha }
}

// WithSignFlip toggles the deterministic sign convention (largest-|x| entry
// of every component positive).
func WithSignFlip(on bool) Option {
	return func(c *config) { c.signFlip = on }
}

// WithLogger attaches a zerolog logger; fits are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// newConfig builds the config from defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		solver:   defaultSolver,
		scatter:  defaultScatter,
		imagTol:  matrix.DefaultImagTol,
		signFlip: defaultSignFlip,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
