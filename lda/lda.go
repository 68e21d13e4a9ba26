// SPDX-License-Identifier: MIT
// Package: linproj/lda
//
// lda.go — the LDA estimator.
//
// Algorithm (Fit):
//   1. Group rows by label; reject layouts with < 2 classes or a class of size < 2.
//   2. Global mean μ and per-class means μ_c.
//   3. Within-class scatter Sw and between-class scatter Sb (see Scatter).
//   4. Optional shrinkage: Sw ← Sw + α·I.
//   5. Solve Sb·v = λ·Sw·v (Cholesky reduction or Sw⁻¹·Sb general eigen).
//   6. Stable sort by |λ| descending; keep the leading k unit-norm columns.
//   7. Optional sign convention (matrix.FlipSigns).
//
// Transform: X·components. Data is NOT centered; the projection differs from
// the centered one by the constant row μ·components.
//
// Complexity:
//   • Fit: O(n·d² + C·d² + d³) time for C classes, O(n·d + d²) space.
//   • Transform: O(n·d·k) time.

package lda

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/linproj/matrix"
	"gonum.org/v1/gonum/floats"
)

// Method names used as error context.
const (
	methodFit          = "Fit"
	methodTransform    = "Transform"
	methodFitTransform = "FitTransform"
)

// minClassSize is the smallest class for which a within-class scatter is defined.
const minClassSize = 2

// LDA projects data onto the directions that best separate labelled classes.
// An LDA value is not safe for concurrent use.
type LDA struct {
	nComponents int
	cfg         config

	// Fitted state; nil until the first successful Fit.
	mean        []float64
	components  *matrix.Dense // d × k, unit-norm columns
	eigenvalues []float64     // k selected λ, descending by |λ|
	classes     []int         // ascending distinct labels
	classMeans  [][]float64   // aligned with classes
}

// classGroup holds the rows of one label.
type classGroup struct {
	label int
	rows  [][]float64
}

// New returns an unfitted estimator keeping nComponents directions.
// nComponents is validated against the data in Fit.
func New(nComponents int, opts ...Option) *LDA {
	return &LDA{nComponents: nComponents, cfg: newConfig(opts...)}
}

// NComponents reports the configured number of components.
func (l *LDA) NComponents() int { return l.nComponents }

// IsFitted reports whether Fit has succeeded at least once.
func (l *LDA) IsFitted() bool { return l.components != nil }

// Fit learns the discriminant directions of X (n samples × d features) with
// labels y (len n, arbitrary integer ids) and returns the estimator for chaining.
//
// Errors:
//   - ErrNilInput for a nil X or y.
//   - ErrDimension for n < 2, len(y) != n, nComponents < 1 or nComponents > d.
//   - ErrDegenerateClass for fewer than two classes or a class with one sample.
//   - ErrSingularScatter, ErrComplexEigen (wrapping the matrix cause).
//
// On error the previously fitted state is left untouched.
func (l *LDA) Fit(X matrix.Matrix, y []int) (*LDA, error) {
	if err := matrix.ValidateNotNil(X); err != nil || y == nil {
		return l, ldaErrorf(methodFit, ErrNilInput)
	}
	n, d := X.Rows(), X.Cols()
	if n < 2 || len(y) != n || l.nComponents < 1 || l.nComponents > d {
		return l, ldaErrorf(methodFit, ErrDimension)
	}

	groups, err := groupByClass(X, y)
	if err != nil {
		return l, ldaErrorf(methodFit, err)
	}
	mean, err := matrix.ColumnMeans(X)
	if err != nil {
		return l, ldaErrorf(methodFit, err)
	}
	Sw, Sb, classMeans, err := l.scatterMatrices(groups, mean)
	if err != nil {
		return l, ldaErrorf(methodFit, err)
	}
	if l.cfg.shrinkage > 0 {
		if Sw, err = shrink(Sw, l.cfg.shrinkage); err != nil {
			return l, ldaErrorf(methodFit, err)
		}
	}

	pairs, err := l.solve(Sw, Sb)
	if err != nil {
		return l, ldaErrorf(methodFit, err)
	}
	sorted, err := matrix.SortEigenDescending(pairs, true)
	if err != nil {
		return l, ldaErrorf(methodFit, err)
	}
	components, err := matrix.LeadingColumns(sorted.Vectors, l.nComponents)
	if err != nil {
		return l, ldaErrorf(methodFit, err)
	}
	if l.cfg.signFlip {
		if err = matrix.FlipSigns(components); err != nil {
			return l, ldaErrorf(methodFit, err)
		}
	}

	classes := make([]int, len(groups))
	for c, g := range groups {
		classes[c] = g.label
	}

	// Commit only after every step succeeded.
	l.mean = mean
	l.components = components
	l.eigenvalues = append([]float64(nil), sorted.Values[:l.nComponents]...)
	l.classes = classes
	l.classMeans = classMeans

	if l.nComponents > len(classes)-1 {
		l.cfg.logger.Warn().
			Int("components", l.nComponents).
			Int("classes", len(classes)).
			Msg("lda: components beyond classes-1 carry no between-class variance")
	}
	l.cfg.logger.Debug().
		Str("solver", l.cfg.solver.String()).
		Str("scatter", l.cfg.scatter.String()).
		Float64("shrinkage", l.cfg.shrinkage).
		Int("samples", n).
		Int("features", d).
		Int("classes", len(classes)).
		Floats64("eigenvalues", l.eigenvalues).
		Msg("lda: fitted")

	return l, nil
}

// groupByClass splits the rows of X by label, classes in ascending label order.
func groupByClass(X matrix.Matrix, y []int) ([]classGroup, error) {
	d := X.Cols()
	dense, isDense := X.(*matrix.Dense)
	index := make(map[int]int)
	var groups []classGroup

	var i, j, k int
	var ok bool
	var v float64
	var err error
	var row []float64
	for i = 0; i < len(y); i++ {
		if isDense {
			if row, err = dense.Row(i); err != nil {
				return nil, err
			}
		} else {
			row = make([]float64, d)
			for j = 0; j < d; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, err
				}
				row[j] = v
			}
		}
		if k, ok = index[y[i]]; !ok {
			k = len(groups)
			index[y[i]] = k
			groups = append(groups, classGroup{label: y[i]})
		}
		groups[k].rows = append(groups[k].rows, row)
	}

	sort.Slice(groups, func(a, b int) bool { return groups[a].label < groups[b].label })
	if len(groups) < 2 {
		return nil, fmt.Errorf("%d distinct label(s): %w", len(groups), ErrDegenerateClass)
	}
	for _, g := range groups {
		if len(g.rows) < minClassSize {
			return nil, fmt.Errorf("class %d has %d sample(s): %w", g.label, len(g.rows), ErrDegenerateClass)
		}
	}

	return groups, nil
}

// scatterMatrices accumulates Sw and Sb over the class groups and returns the
// class means alongside.
func (l *LDA) scatterMatrices(groups []classGroup, mean []float64) (matrix.Matrix, matrix.Matrix, [][]float64, error) {
	d := len(mean)
	var Sw, Sb matrix.Matrix
	var err error
	if Sw, err = matrix.NewZeros(d, d); err != nil {
		return nil, nil, nil, err
	}
	if Sb, err = matrix.NewZeros(d, d); err != nil {
		return nil, nil, nil, err
	}

	classMeans := make([][]float64, len(groups))
	diff := make([]float64, d)
	var Xc *matrix.Dense
	var S matrix.Matrix
	var B *matrix.Dense
	var mu []float64
	var weight float64
	for c, g := range groups {
		if Xc, err = matrix.NewDenseFromRows(g.rows); err != nil {
			return nil, nil, nil, err
		}
		weight = 1
		if l.cfg.scatter == ScatterWeighted {
			S, mu, err = matrix.Scatter(Xc)
			weight = float64(len(g.rows))
		} else {
			S, mu, err = matrix.Covariance(Xc)
		}
		if err != nil {
			return nil, nil, nil, err
		}
		if Sw, err = matrix.Add(Sw, S); err != nil {
			return nil, nil, nil, err
		}

		floats.SubTo(diff, mu, mean)
		if B, err = matrix.Outer(diff, diff, weight); err != nil {
			return nil, nil, nil, err
		}
		if Sb, err = matrix.Add(Sb, B); err != nil {
			return nil, nil, nil, err
		}
		classMeans[c] = mu
	}

	return Sw, Sb, classMeans, nil
}

// shrink returns Sw + alpha·I.
func shrink(Sw matrix.Matrix, alpha float64) (matrix.Matrix, error) {
	I, err := matrix.NewIdentity(Sw.Rows())
	if err != nil {
		return nil, err
	}
	aI, err := matrix.Scale(I, alpha)
	if err != nil {
		return nil, err
	}

	return matrix.Add(Sw, aI)
}

// solve dispatches the generalized eigenproblem Sb·v = λ·Sw·v to the
// configured solver and maps matrix failures onto lda sentinels.
func (l *LDA) solve(Sw, Sb matrix.Matrix) (matrix.EigenPairs, error) {
	if l.cfg.solver == SolverGeneral {
		M, err := matrix.Solve(Sw, Sb)
		if err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				return matrix.EigenPairs{}, numericError(ErrSingularScatter, err)
			}
			return matrix.EigenPairs{}, err
		}
		pairs, err := matrix.EigenGeneral(M, l.cfg.imagTol)
		if err != nil {
			if errors.Is(err, matrix.ErrComplexEigen) {
				return matrix.EigenPairs{}, numericError(ErrComplexEigen, err)
			}
			return matrix.EigenPairs{}, err
		}
		return pairs, nil
	}

	pairs, err := matrix.GeneralizedEigenSym(Sb, Sw)
	if err != nil {
		if errors.Is(err, matrix.ErrNotPositiveDefinite) || errors.Is(err, matrix.ErrSingular) {
			return matrix.EigenPairs{}, numericError(ErrSingularScatter, err)
		}
		return matrix.EigenPairs{}, err
	}

	return pairs, nil
}

// Transform projects X onto the fitted components: X·components.
// The data is not centered. The result has shape (n, nComponents).
//
// Errors:
//   - ErrNotFitted before a successful Fit.
//   - ErrNilInput, ErrDimension (feature count differs from the fitted one).
func (l *LDA) Transform(X matrix.Matrix) (matrix.Matrix, error) {
	if !l.IsFitted() {
		return nil, ldaErrorf(methodTransform, ErrNotFitted)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, ldaErrorf(methodTransform, ErrNilInput)
	}
	if X.Cols() != len(l.mean) {
		return nil, ldaErrorf(methodTransform, ErrDimension)
	}

	Y, err := matrix.Mul(X, l.components)
	if err != nil {
		return nil, ldaErrorf(methodTransform, err)
	}

	return Y, nil
}

// FitTransform is Fit followed by Transform on the same data.
func (l *LDA) FitTransform(X matrix.Matrix, y []int) (matrix.Matrix, error) {
	if _, err := l.Fit(X, y); err != nil {
		return nil, ldaErrorf(methodFitTransform, err)
	}

	return l.Transform(X)
}

// Components returns a copy of the d × k basis (unit-norm columns; orthogonal
// in the Sw inner product, not in general Euclidean-orthogonal).
func (l *LDA) Components() (*matrix.Dense, error) {
	if !l.IsFitted() {
		return nil, ErrNotFitted
	}

	return l.components.Clone().(*matrix.Dense), nil
}

// Mean returns a copy of the fit-time global mean.
func (l *LDA) Mean() ([]float64, error) {
	if !l.IsFitted() {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), l.mean...), nil
}

// Eigenvalues returns the generalized eigenvalues of the selected components.
func (l *LDA) Eigenvalues() ([]float64, error) {
	if !l.IsFitted() {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), l.eigenvalues...), nil
}

// Classes returns the distinct labels seen in Fit, ascending.
func (l *LDA) Classes() ([]int, error) {
	if !l.IsFitted() {
		return nil, ErrNotFitted
	}

	return append([]int(nil), l.classes...), nil
}

// ClassMeans returns a copy of the per-class means, aligned with Classes.
func (l *LDA) ClassMeans() ([][]float64, error) {
	if !l.IsFitted() {
		return nil, ErrNotFitted
	}
	out := make([][]float64, len(l.classMeans))
	for c, mu := range l.classMeans {
		out[c] = append([]float64(nil), mu...)
	}

	return out, nil
}
