// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and solvers.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linproj/matrix"
	"github.com/stretchr/testify/require"
)

// Shared tolerances for floating-point comparisons.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-12
	AtolEig  = 1e-9
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return d
}

// RandFilledDense RETURNS an r×c *Dense with deterministic U(-1,1) values.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// RandSymmetric RETURNS a deterministic symmetric n×n matrix (B + Bᵀ)/2.
func RandSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	B := RandFilledDense(t, n, n, seed)
	S, err := matrix.Symmetrize(B)
	require.NoError(t, err)

	return S.(*matrix.Dense)
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "AllClose=false (rtol=%g, atol=%g)\n got:\n%v want:\n%v", rtol, atol, a, b)
}

// sliceClose ASSERTS |a[i]-b[i]| ≤ atol + rtol*|b[i]| element-wise.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	require.Len(t, a, len(b))
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// propEigenEquation ASSERTS A·v_k ≈ λ_k·v_k for every column k of Q.
func propEigenEquation(t *testing.T, A matrix.Matrix, Q matrix.Matrix, vals []float64, atol float64) {
	t.Helper()
	n := A.Rows()
	var i, j, k int
	var lhs float64
	for k = 0; k < len(vals); k++ {
		for i = 0; i < n; i++ {
			lhs = 0
			for j = 0; j < n; j++ {
				lhs += MustAt(t, A, i, j) * MustAt(t, Q, j, k)
			}
			require.InDeltaf(t, vals[k]*MustAt(t, Q, i, k), lhs, atol, "A·v != λ·v at (%d,%d)", i, k)
		}
	}
}

// propOrthonormalColumns ASSERTS QᵀQ ≈ I.
func propOrthonormalColumns(t *testing.T, Q matrix.Matrix, atol float64) {
	t.Helper()
	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	G, err := matrix.Mul(Qt, Q)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(Q.Cols())
	require.NoError(t, err)
	CompareClose(t, G, I, 0, atol)
}
