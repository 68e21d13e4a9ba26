// SPDX-License-Identifier: MIT
// Package pca_test verifies the PCA estimator contract: shapes, orthonormal
// basis, centering with the fit-time mean, determinism and error handling.
package pca_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linproj/matrix"
	"github.com/katalvlaran/linproj/pca"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const atol = 1e-8

// correlatedData builds n rows of 3-D data with a dominant direction.
func correlatedData(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		z := rng.NormFloat64() * 5
		rows[i] = []float64{
			3 + z + 0.3*rng.NormFloat64(),
			-1 + 0.5*z + 0.3*rng.NormFloat64(),
			2 + 0.2*rng.NormFloat64(),
		}
	}
	X, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return X
}

func rowNorm(t *testing.T, m matrix.Matrix, i int) float64 {
	t.Helper()
	var sq float64
	for j := 0; j < m.Cols(); j++ {
		v, err := m.At(i, j)
		require.NoError(t, err)
		sq += v * v
	}

	return math.Sqrt(sq)
}

func TestFitTransform_FullRankPreservesCenteredNorms(t *testing.T) {
	X := correlatedData(t, 60, 1)
	p := pca.New(3)
	Y, err := p.FitTransform(X)
	require.NoError(t, err)
	require.Equal(t, 60, Y.Rows())
	require.Equal(t, 3, Y.Cols())

	Xc, _, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	for i := 0; i < X.Rows(); i++ {
		require.InDelta(t, rowNorm(t, Xc, i), rowNorm(t, Y, i), 1e-9)
	}
}

func TestFit_ComponentsOrthonormal(t *testing.T) {
	for _, solver := range []pca.Solver{pca.SolverJacobi, pca.SolverGonum} {
		solver := solver
		t.Run(solver.String(), func(t *testing.T) {
			p, err := pca.New(2, pca.WithSolver(solver)).Fit(correlatedData(t, 80, 2))
			require.NoError(t, err)
			W, err := p.Components()
			require.NoError(t, err)
			Wt, err := matrix.Transpose(W)
			require.NoError(t, err)
			G, err := matrix.Mul(Wt, W)
			require.NoError(t, err)
			I, err := matrix.NewIdentity(2)
			require.NoError(t, err)
			ok, err := matrix.AllClose(G, I, 0, atol)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestTransform_UsesFitTimeMean(t *testing.T) {
	train := correlatedData(t, 50, 3)
	p, err := pca.New(2).Fit(train)
	require.NoError(t, err)

	test := correlatedData(t, 10, 4)
	got, err := p.Transform(test)
	require.NoError(t, err)

	mean, err := p.Mean()
	require.NoError(t, err)
	W, err := p.Components()
	require.NoError(t, err)
	Xc, err := matrix.CenterWith(test, mean)
	require.NoError(t, err)
	want, err := matrix.Mul(Xc, W)
	require.NoError(t, err)

	ok, err := matrix.AllClose(got, want, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFit_DominantDirectionAndVariance(t *testing.T) {
	p, err := pca.New(1).Fit(correlatedData(t, 400, 5))
	require.NoError(t, err)

	W, err := p.Components()
	require.NoError(t, err)
	v, err := W.Col(0)
	require.NoError(t, err)
	// Leading direction ≈ (1, 0.5, 0)/‖·‖, oriented positive.
	norm := math.Hypot(1, 0.5)
	require.InDelta(t, 1/norm, v[0], 0.02)
	require.InDelta(t, 0.5/norm, v[1], 0.02)
	require.InDelta(t, 0, v[2], 0.02)

	ratio, err := p.ExplainedVarianceRatio()
	require.NoError(t, err)
	require.Greater(t, ratio[0], 0.95)
}

func TestFit_ExplainedVarianceDescendingAndSumsToOne(t *testing.T) {
	p, err := pca.New(3).Fit(correlatedData(t, 100, 6))
	require.NoError(t, err)
	ev, err := p.ExplainedVariance()
	require.NoError(t, err)
	require.GreaterOrEqual(t, ev[0], ev[1])
	require.GreaterOrEqual(t, ev[1], ev[2])

	ratio, err := p.ExplainedVarianceRatio()
	require.NoError(t, err)
	require.InDelta(t, 1.0, ratio[0]+ratio[1]+ratio[2], 1e-12)
}

func TestFit_RefitIsIdentical(t *testing.T) {
	X := correlatedData(t, 70, 7)
	a, err := pca.New(2).Fit(X)
	require.NoError(t, err)
	b, err := pca.New(2).Fit(X)
	require.NoError(t, err)

	Wa, _ := a.Components()
	Wb, _ := b.Components()
	require.Equal(t, Wa.RawRows(), Wb.RawRows())
}

func TestFit_SolversAgree(t *testing.T) {
	X := correlatedData(t, 90, 8)
	j, err := pca.New(3, pca.WithSolver(pca.SolverJacobi)).Fit(X)
	require.NoError(t, err)
	g, err := pca.New(3, pca.WithSolver(pca.SolverGonum)).Fit(X)
	require.NoError(t, err)

	Wj, _ := j.Components()
	Wg, _ := g.Components()
	ok, err := matrix.AllClose(Wj, Wg, 0, 1e-7)
	require.NoError(t, err)
	require.True(t, ok)

	ej, _ := j.ExplainedVariance()
	eg, _ := g.ExplainedVariance()
	require.InDeltaSlice(t, eg, ej, 1e-9)
}

func TestFit_Errors(t *testing.T) {
	X := correlatedData(t, 10, 9)

	_, err := pca.New(0).Fit(X)
	require.ErrorIs(t, err, pca.ErrDimension)

	_, err = pca.New(4).Fit(X)
	require.ErrorIs(t, err, pca.ErrDimension)

	one, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	_, err = pca.New(1).Fit(one)
	require.ErrorIs(t, err, pca.ErrDimension)

	_, err = pca.New(1).Fit(nil)
	require.ErrorIs(t, err, pca.ErrNilInput)

	var typedNil *matrix.Dense
	_, err = pca.New(1).Fit(typedNil)
	require.ErrorIs(t, err, pca.ErrNilInput)
}

func TestFit_FailureKeepsPreviousState(t *testing.T) {
	X := correlatedData(t, 30, 10)
	p, err := pca.New(2).Fit(X)
	require.NoError(t, err)
	before, _ := p.Components()

	narrow, err := matrix.NewDenseFromRows([][]float64{{1}, {2}, {3}})
	require.NoError(t, err)
	_, err = p.Fit(narrow)
	require.ErrorIs(t, err, pca.ErrDimension)

	after, err := p.Components()
	require.NoError(t, err)
	require.Equal(t, before.RawRows(), after.RawRows())
}

func TestTransform_Errors(t *testing.T) {
	X := correlatedData(t, 10, 11)
	p := pca.New(1)
	require.False(t, p.IsFitted())

	_, err := p.Transform(X)
	require.ErrorIs(t, err, pca.ErrNotFitted)
	_, err = p.Components()
	require.ErrorIs(t, err, pca.ErrNotFitted)
	_, err = p.ExplainedVarianceRatio()
	require.ErrorIs(t, err, pca.ErrNotFitted)

	_, err = p.Fit(X)
	require.NoError(t, err)
	require.True(t, p.IsFitted())

	wrong, err := matrix.NewDenseFromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	_, err = p.Transform(wrong)
	require.ErrorIs(t, err, pca.ErrDimension)
	_, err = p.Transform(nil)
	require.ErrorIs(t, err, pca.ErrNilInput)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	p, err := pca.New(1).Fit(correlatedData(t, 20, 12))
	require.NoError(t, err)

	m, _ := p.Mean()
	m[0] = 1e9
	m2, _ := p.Mean()
	require.NotEqual(t, 1e9, m2[0])

	W, _ := p.Components()
	require.NoError(t, W.Set(0, 0, 42))
	W2, _ := p.Components()
	v, _ := W2.At(0, 0)
	require.NotEqual(t, 42.0, v)
}

func TestFit_ConstantDataHasZeroRatio(t *testing.T) {
	X, err := matrix.NewDenseFromRows([][]float64{{1, 1}, {1, 1}, {1, 1}})
	require.NoError(t, err)
	p, err := pca.New(2).Fit(X)
	require.NoError(t, err)
	ratio, err := p.ExplainedVarianceRatio()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, ratio)
}

func TestFit_LogsAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := pca.New(1, pca.WithLogger(logger)).Fit(correlatedData(t, 15, 13))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"message":"pca: fitted"`)
	require.Contains(t, buf.String(), `"solver":"jacobi"`)
}
