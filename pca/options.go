// SPDX-License-Identifier: MIT
// Package: linproj/pca
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
//   • solver   = SolverJacobi
//   • tol      = matrix.DefaultJacobiTol
//   • maxIter  = 0 (auto: max(matrix.DefaultJacobiMaxIter, autoSweeps·d²))
//   • signFlip = true
//   • logger   = zerolog.Nop()

package pca

import (
	"github.com/katalvlaran/linproj/matrix"
	"github.com/rs/zerolog"
)

// Solver selects the symmetric eigensolver used on the covariance matrix.
type Solver int

const (
	// SolverJacobi uses the native Jacobi kernel (matrix.Eigen).
	SolverJacobi Solver = iota
	// SolverGonum uses gonum's LAPACK-backed EigenSym (matrix.EigenSymmetric).
	SolverGonum
)

// String implements fmt.Stringer for log fields.
func (s Solver) String() string {
	switch s {
	case SolverJacobi:
		return "jacobi"
	case SolverGonum:
		return "gonum"
	default:
		return "unknown"
	}
}

const (
	defaultSolver   = SolverJacobi
	defaultSignFlip = true

	// autoSweeps bounds the rotation budget per d² when maxIter is left at auto.
	autoSweeps = 10
)

// config aggregates all estimator knobs. Copied by value into the estimator.
type config struct {
	solver   Solver
	tol      float64 // Jacobi convergence threshold (relative)
	maxIter  int     // Jacobi rotation cap; 0 = auto
	signFlip bool    // orient components deterministically
	logger   zerolog.Logger
}

// Option customizes a PCA estimator.
type Option func(*config)

// WithSolver selects the eigensolver. Panics on an unknown value.
func WithSolver(s Solver) Option {
	if s != SolverJacobi && s != SolverGonum {
		panic("pca: WithSolver(unknown)")
	}
	return func(c *config) { c.solver = s }
}

// WithTolerance sets the Jacobi convergence threshold. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("pca: WithTolerance(tol<=0)")
	}
	return func(c *config) { c.tol = tol }
}

// WithMaxIter caps Jacobi rotations. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("pca: WithMaxIter(n<1)")
	}
	return func(c *config) { c.maxIter = n }
}

// WithSignFlip toggles the deterministic sign convention (largest-|x| entry
// of every component positive). Disabled, components keep solver signs.
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
		tol:      matrix.DefaultJacobiTol,
		signFlip: defaultSignFlip,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rotationBudget resolves the Jacobi rotation cap for d features.
func (c config) rotationBudget(d int) int {
	if c.maxIter > 0 {
		return c.maxIter
	}

	return max(matrix.DefaultJacobiMaxIter, autoSweeps*d*d)
}
