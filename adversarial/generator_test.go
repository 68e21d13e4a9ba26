// SPDX-License-Identifier: MIT
package adversarial_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linproj/adversarial"
	"github.com/katalvlaran/linproj/kmeans"
	"github.com/katalvlaran/linproj/matrix"
	"github.com/katalvlaran/linproj/pca"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	nSamples   = 500
	fixedSeed  = 42
	restarts   = 25
	minPurity  = 0.95
	maxPurity  = 0.65
	momentDraw = 20000
)

func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func purity(t *testing.T, points [][]float64, truth []int) float64 {
	t.Helper()
	res, err := kmeans.New(2, kmeans.WithSeed(1), kmeans.WithRestarts(restarts)).Fit(points)
	require.NoError(t, err)
	p, err := kmeans.Purity(res.Labels, truth)
	require.NoError(t, err)

	return p
}

func TestParallelBands_SeparableOnlyBeforePCA(t *testing.T) {
	opts := []adversarial.Option{
		adversarial.WithScenario(adversarial.ParallelBandsScenario()),
		adversarial.WithSeed(fixedSeed),
	}

	ds, err := adversarial.NewAdversarialExamples(opts...).Generate(nSamples)
	require.NoError(t, err)
	raw := purity(t, ds.X.RawRows(), ds.Labels)
	require.GreaterOrEqual(t, raw, minPurity)

	proj, labels, err := adversarial.NewAdversarialExamples(opts...).PCAAdversarialData(nSamples, 2)
	require.NoError(t, err)
	require.Equal(t, ds.Labels, labels)
	projected := purity(t, rowsOf(t, proj), labels)
	require.LessOrEqual(t, projected, maxPurity)
}

func TestReference_ShapesAndLabels(t *testing.T) {
	proj, labels, err := adversarial.NewAdversarialExamples(adversarial.WithSeed(fixedSeed)).PCAAdversarialData(nSamples, 2)
	require.NoError(t, err)
	require.Equal(t, 2*nSamples, proj.Rows())
	require.Equal(t, 1, proj.Cols())
	require.Len(t, labels, 2*nSamples)
	for i, l := range labels {
		if i < nSamples {
			require.Equal(t, 0, l)
		} else {
			require.Equal(t, 1, l)
		}
	}
}

func TestReference_ProjectionMatchesIndependentPCA(t *testing.T) {
	proj, _, err := adversarial.NewAdversarialExamples(adversarial.WithSeed(fixedSeed)).PCAAdversarialData(nSamples, 2)
	require.NoError(t, err)

	ds, err := adversarial.NewAdversarialExamples(adversarial.WithSeed(fixedSeed)).Generate(nSamples)
	require.NoError(t, err)
	want, err := pca.New(1).FitTransform(ds.X)
	require.NoError(t, err)

	ok, err := matrix.AllClose(proj, want, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGenerate_DeterministicUnderSeed(t *testing.T) {
	a, err := adversarial.NewAdversarialExamples(adversarial.WithSeed(7)).Generate(50)
	require.NoError(t, err)
	b, err := adversarial.NewAdversarialExamples(adversarial.WithRand(rand.New(rand.NewSource(7)))).Generate(50)
	require.NoError(t, err)
	require.Equal(t, a.X.RawRows(), b.X.RawRows())

	c, err := adversarial.NewAdversarialExamples(adversarial.WithSeed(8)).Generate(50)
	require.NoError(t, err)
	require.NotEqual(t, a.X.RawRows(), c.X.RawRows())
}

func TestGenerate_SuccessiveCallsAdvanceSource(t *testing.T) {
	gen := adversarial.NewAdversarialExamples()
	a, err := gen.Generate(10)
	require.NoError(t, err)
	b, err := gen.Generate(10)
	require.NoError(t, err)
	require.NotEqual(t, a.X.RawRows(), b.X.RawRows())
}

// sampleCov returns the sample covariance of rows [from, to) of X.
func sampleCov(t *testing.T, X *matrix.Dense, from, to int) ([]float64, matrix.Matrix) {
	t.Helper()
	sub, err := matrix.NewDenseFromRows(X.RawRows()[from:to])
	require.NoError(t, err)
	cov, mean, err := matrix.Covariance(sub)
	require.NoError(t, err)

	return mean, cov
}

func TestGenerate_MomentsMatchRepairedCovariance(t *testing.T) {
	ds, err := adversarial.NewAdversarialExamples(adversarial.WithSeed(3)).Generate(momentDraw)
	require.NoError(t, err)

	mean0, cov0 := sampleCov(t, ds.X, 0, momentDraw)
	require.InDeltaSlice(t, []float64{10, 10}, mean0, 0.15)
	want0, err := matrix.NewDenseFromRows([][]float64{{20, 0}, {0, 20}})
	require.NoError(t, err)
	ok, err := matrix.AllClose(cov0, want0, 0.05, 0.5)
	require.NoError(t, err)
	require.True(t, ok, "cov0 = %v", cov0)

	// PSD part of (C+Cᵀ)/2 = [[0, 1.5], [1.5, 2]]: λ₊·v·vᵀ with v ∝ (1.5, λ₊).
	lam := 1 + math.Sqrt(3.25)
	s := lam / (1.5*1.5 + lam*lam)
	want1, err := matrix.NewDenseFromRows([][]float64{
		{s * 1.5 * 1.5, s * 1.5 * lam},
		{s * 1.5 * lam, s * lam * lam},
	})
	require.NoError(t, err)
	mean1, cov1 := sampleCov(t, ds.X, momentDraw, 2*momentDraw)
	require.InDeltaSlice(t, []float64{1, 3}, mean1, 0.05)
	ok, err = matrix.AllClose(cov1, want1, 0.05, 0.05)
	require.NoError(t, err)
	require.True(t, ok, "cov1 = %v", cov1)
}

func TestGenerate_CustomScenario(t *testing.T) {
	sc := adversarial.Scenario{
		Name: "three-points",
		Clusters: []adversarial.Cluster{
			{Mean: []float64{-1}, Cov: [][]float64{{0}}},
			{Mean: []float64{0}, Cov: [][]float64{{0}}},
			{Mean: []float64{1}, Cov: [][]float64{{0}}},
		},
	}
	ds, err := adversarial.NewAdversarialExamples(adversarial.WithScenario(sc)).Generate(2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1}, {-1}, {0}, {0}, {1}, {1}}, ds.X.RawRows())
	require.Equal(t, []int{0, 0, 1, 1, 2, 2}, ds.Labels)
}

func TestGenerate_InvalidSamples(t *testing.T) {
	gen := adversarial.NewAdversarialExamples()
	_, err := gen.Generate(0)
	require.ErrorIs(t, err, adversarial.ErrInvalidSamples)
	_, _, err = gen.PCAAdversarialData(-3, 2)
	require.ErrorIs(t, err, adversarial.ErrInvalidSamples)
}

func TestPCAAdversarialData_DefaultGenerator(t *testing.T) {
	proj, labels, err := adversarial.PCAAdversarialData(20, 2)
	require.NoError(t, err)
	require.Equal(t, 40, proj.Rows())
	require.Len(t, labels, 40)
}

func TestPCAAdversarialData_ForwardsPCAOptions(t *testing.T) {
	jac, _, err := adversarial.NewAdversarialExamples().PCAAdversarialData(100, 2)
	require.NoError(t, err)
	gon, _, err := adversarial.NewAdversarialExamples(
		adversarial.WithPCAOptions(pca.WithSolver(pca.SolverGonum)),
	).PCAAdversarialData(100, 2)
	require.NoError(t, err)

	ok, err := matrix.AllClose(jac, gon, 0, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestReference_LogsRepairsAndIgnoredFeatures(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)
	gen := adversarial.NewAdversarialExamples(adversarial.WithLogger(logger))

	_, _, err := gen.PCAAdversarialData(10, 5)
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "nFeatures ignored")
	require.Contains(t, out, "covariance not symmetric")
	require.Contains(t, out, "negative eigenvalues clipped")
	require.Contains(t, out, `"cluster":1`)
	require.NotContains(t, out, `"cluster":0`)
}
