// SPDX-License-Identifier: MIT
// Package matrix_test verifies the Jacobi eigensolver and the spectral post-processing helpers.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linproj/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Jacobi ----------

// TestEigen_Errors verifies error paths: non-square, non-symmetric, and forced non-convergence.
func TestEigen_Errors(t *testing.T) {
	_, _, err := matrix.Eigen(MustDense(t, 2, 3), 1e-10, 50)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	asym := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	_, _, err = matrix.Eigen(asym, 1e-12, 50)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	// zero iterations with nonzero off-diagonals → ErrMatrixEigenFailed
	sym := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	_, _, err = matrix.Eigen(sym, 1e-12, 0)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

// TestEigen_Diagonal_NoRotation: diagonal matrices return exact diagonal as eigenvalues and Q=I.
func TestEigen_Diagonal_NoRotation(t *testing.T) {
	A := NewFilledDense(t, 3, 3, []float64{3, 0, 0, 0, -1, 0, 0, 0, 7})
	vals, Q, err := matrix.Eigen(A, 1e-12, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{3, -1, 7}, vals)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareClose(t, Q, I, 0, 0)
}

// TestEigen_2x2_Analytic: [[2,1],[1,2]] has eigenvalues {1,3}; Q orthonormal; A*Q≈Q*D.
func TestEigen_2x2_Analytic(t *testing.T) {
	A := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	vals, Q, err := matrix.Eigen(hide{A}, 1e-12, 50)
	require.NoError(t, err)
	got := []float64{math.Min(vals[0], vals[1]), math.Max(vals[0], vals[1])}
	sliceClose(t, got, []float64{1, 3}, 0, 1e-12)
	propOrthonormalColumns(t, Q, 1e-12)
	propEigenEquation(t, A, Q, vals, 1e-10)
}

// TestEigen_RandomSymmetric checks the eigen equation and orthonormality on a dense 6×6 input.
func TestEigen_RandomSymmetric(t *testing.T) {
	A := RandSymmetric(t, 6, 42)
	vals, Q, err := matrix.Eigen(A, matrix.DefaultJacobiTol, matrix.DefaultJacobiMaxIter)
	require.NoError(t, err)
	propOrthonormalColumns(t, Q, 1e-10)
	propEigenEquation(t, A, Q, vals, 1e-9)
}

// TestEigen_LargeScaleConverges ensures the threshold scales with the input norm.
func TestEigen_LargeScaleConverges(t *testing.T) {
	A := RandSymmetric(t, 5, 3)
	big, err := matrix.Scale(A, 1e8)
	require.NoError(t, err)
	vals, Q, err := matrix.Eigen(big, matrix.DefaultJacobiTol, matrix.DefaultJacobiMaxIter)
	require.NoError(t, err)
	propEigenEquation(t, big, Q, vals, 1e-2)
}

// ---------- Spectral helpers ----------

func TestSortEigenDescending(t *testing.T) {
	vecs := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	pairs := matrix.EigenPairs{Values: []float64{1, -5, 3}, Vectors: vecs}

	byValue, err := matrix.SortEigenDescending(pairs, false)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, -5}, byValue.Values)
	CompareClose(t, byValue.Vectors, NewFilledDense(t, 2, 3, []float64{3, 1, 2, 6, 4, 5}), 0, 0)

	byMag, err := matrix.SortEigenDescending(pairs, true)
	require.NoError(t, err)
	require.Equal(t, []float64{-5, 3, 1}, byMag.Values)

	// input untouched
	require.Equal(t, []float64{1, -5, 3}, pairs.Values)

	_, err = matrix.SortEigenDescending(matrix.EigenPairs{Values: []float64{1}, Vectors: vecs}, false)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSortEigenDescending_StableOnTies(t *testing.T) {
	vecs := NewFilledDense(t, 1, 3, []float64{10, 20, 30})
	got, err := matrix.SortEigenDescending(matrix.EigenPairs{Values: []float64{2, 2, 2}, Vectors: vecs}, false)
	require.NoError(t, err)
	CompareClose(t, got.Vectors, vecs, 0, 0)
}

func TestLeadingColumns(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	lead, err := matrix.LeadingColumns(m, 2)
	require.NoError(t, err)
	CompareClose(t, lead, NewFilledDense(t, 2, 2, []float64{1, 2, 4, 5}), 0, 0)

	_, err = matrix.LeadingColumns(m, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.LeadingColumns(m, 4)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNormalizeColumnsAndFlipSigns(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{
		3, 0, 1,
		-4, 0, -2,
	})
	require.NoError(t, matrix.NormalizeColumns(m))
	CompareClose(t, m, NewFilledDense(t, 2, 3, []float64{
		0.6, 0, 1 / math.Sqrt(5),
		-0.8, 0, -2 / math.Sqrt(5),
	}), 0, 1e-15)

	require.NoError(t, matrix.FlipSigns(m))
	CompareClose(t, m, NewFilledDense(t, 2, 3, []float64{
		-0.6, 0, -1 / math.Sqrt(5),
		0.8, 0, 2 / math.Sqrt(5),
	}), 0, 1e-15)

	require.ErrorIs(t, matrix.FlipSigns(nil), matrix.ErrNilMatrix)
}
