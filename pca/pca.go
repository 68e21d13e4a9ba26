// SPDX-License-Identifier: MIT
// Package: linproj/pca
//
// pca.go — the PCA estimator.
//
// Algorithm (Fit):
//   1. mean_j = Σ_i X[i,j] / n.
//   2. Cov = (Xcᵀ·Xc)/(n−1) with Xc = X − mean (matrix.Covariance).
//   3. Symmetric eigendecomposition of Cov (Jacobi or gonum).
//   4. Stable descending sort by eigenvalue; keep the leading k columns.
//   5. Optional sign convention (matrix.FlipSigns).
//
// Transform: (X − mean)·components using the FIT-time mean.
//
// Complexity:
//   • Fit: O(n·d² + eig(d)) time, O(n·d + d²) space.
//   • Transform: O(n·d·k) time.

package pca

import "github.com/katalvlaran/linproj/matrix"

// Method names used as error context.
const (
	methodFit          = "Fit"
	methodTransform    = "Transform"
	methodFitTransform = "FitTransform"
)

// PCA projects data onto the directions of maximum variance.
// A PCA value is not safe for concurrent use.
type PCA struct {
	nComponents int
	cfg         config

	// Fitted state; nil until the first successful Fit.
	mean       []float64
	components *matrix.Dense // d × k, orthonormal columns
	variance   []float64     // k selected eigenvalues, descending
	total      float64       // trace of the covariance (sum of all eigenvalues)
}

// New returns an unfitted estimator keeping nComponents directions.
// nComponents is validated against the data in Fit.
func New(nComponents int, opts ...Option) *PCA {
	return &PCA{nComponents: nComponents, cfg: newConfig(opts...)}
}

// NComponents reports the configured number of components.
func (p *PCA) NComponents() int { return p.nComponents }

// IsFitted reports whether Fit has succeeded at least once.
func (p *PCA) IsFitted() bool { return p.components != nil }

// Fit computes the mean and the leading principal directions of X
// (n samples × d features) and returns the estimator for chaining.
//
// Errors:
//   - ErrNilInput for a nil X.
//   - ErrDimension for n < 2, nComponents < 1 or nComponents > d.
//   - Wrapped matrix errors (e.g. matrix.ErrMatrixEigenFailed).
//
// On error the previously fitted state is left untouched.
func (p *PCA) Fit(X matrix.Matrix) (*PCA, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return p, pcaErrorf(methodFit, ErrNilInput)
	}
	n, d := X.Rows(), X.Cols()
	if n < 2 || p.nComponents < 1 || p.nComponents > d {
		return p, pcaErrorf(methodFit, ErrDimension)
	}

	cov, mean, err := matrix.Covariance(X)
	if err != nil {
		return p, pcaErrorf(methodFit, err)
	}
	pairs, err := p.decompose(cov, d)
	if err != nil {
		return p, pcaErrorf(methodFit, err)
	}
	sorted, err := matrix.SortEigenDescending(pairs, false)
	if err != nil {
		return p, pcaErrorf(methodFit, err)
	}
	components, err := matrix.LeadingColumns(sorted.Vectors, p.nComponents)
	if err != nil {
		return p, pcaErrorf(methodFit, err)
	}
	if p.cfg.signFlip {
		if err = matrix.FlipSigns(components); err != nil {
			return p, pcaErrorf(methodFit, err)
		}
	}

	var total float64
	for _, v := range sorted.Values {
		total += v
	}

	// Commit only after every step succeeded.
	p.mean = mean
	p.components = components
	p.variance = append([]float64(nil), sorted.Values[:p.nComponents]...)
	p.total = total

	p.cfg.logger.Debug().
		Str("solver", p.cfg.solver.String()).
		Int("samples", n).
		Int("features", d).
		Int("components", p.nComponents).
		Floats64("explained_variance", p.variance).
		Msg("pca: fitted")

	return p, nil
}

// decompose runs the configured symmetric eigensolver on the covariance.
func (p *PCA) decompose(cov matrix.Matrix, d int) (matrix.EigenPairs, error) {
	if p.cfg.solver == SolverGonum {
		return matrix.EigenSymmetric(cov)
	}

	return matrix.EigenSym(cov, p.cfg.tol, p.cfg.rotationBudget(d))
}

// Transform projects X onto the fitted components: (X − mean)·components.
// The result has shape (n, nComponents).
//
// Errors:
//   - ErrNotFitted before a successful Fit.
//   - ErrNilInput, ErrDimension (feature count differs from the fitted one).
func (p *PCA) Transform(X matrix.Matrix) (matrix.Matrix, error) {
	if !p.IsFitted() {
		return nil, pcaErrorf(methodTransform, ErrNotFitted)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, pcaErrorf(methodTransform, ErrNilInput)
	}
	if X.Cols() != len(p.mean) {
		return nil, pcaErrorf(methodTransform, ErrDimension)
	}

	Xc, err := matrix.CenterWith(X, p.mean)
	if err != nil {
		return nil, pcaErrorf(methodTransform, err)
	}
	Y, err := matrix.Mul(Xc, p.components)
	if err != nil {
		return nil, pcaErrorf(methodTransform, err)
	}

	return Y, nil
}

// FitTransform is Fit followed by Transform on the same data.
func (p *PCA) FitTransform(X matrix.Matrix) (matrix.Matrix, error) {
	if _, err := p.Fit(X); err != nil {
		return nil, pcaErrorf(methodFitTransform, err)
	}

	return p.Transform(X)
}

// Components returns a copy of the d × k basis (columns are unit-norm, orthogonal).
func (p *PCA) Components() (*matrix.Dense, error) {
	if !p.IsFitted() {
		return nil, ErrNotFitted
	}

	return p.components.Clone().(*matrix.Dense), nil
}

// Mean returns a copy of the fit-time per-feature mean.
func (p *PCA) Mean() ([]float64, error) {
	if !p.IsFitted() {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), p.mean...), nil
}

// ExplainedVariance returns the eigenvalues of the selected components, descending.
func (p *PCA) ExplainedVariance() ([]float64, error) {
	if !p.IsFitted() {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), p.variance...), nil
}

// ExplainedVarianceRatio returns each selected eigenvalue divided by the total
// variance (trace of the covariance). All zeros for constant data.
func (p *PCA) ExplainedVarianceRatio() ([]float64, error) {
	if !p.IsFitted() {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(p.variance))
	if p.total <= 0 {
		return out, nil
	}
	for i, v := range p.variance {
		out[i] = v / p.total
	}

	return out, nil
}
