// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise and broadcast kernels (ew*) shared by
//     the statistics, spectral and sampling helpers.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

// ewBroadcastCols computes out[i,j] = X[i,j] + sign*v[j].
// sign=-1 centers columns, sign=+1 shifts rows by a mean vector.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastCols(X Matrix, v []float64, sign float64, tag string) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(v) != c {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var i, j, base int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] + sign*v[j]
			}
		}
		return out, nil
	}

	var x float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if x, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*c+j] = x + sign*v[j]
		}
	}

	return out, nil
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	return ewBroadcastCols(X, colMeans, -1, "broadcastSubCols")
}

// ewBroadcastAddCols computes out[i,j] = X[i,j] + shift[j].
func ewBroadcastAddCols(X Matrix, shift []float64) (Matrix, error) {
	return ewBroadcastCols(X, shift, +1, "broadcastAddCols")
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// AI-Hint: with scale = sqrt(eigenvalues) it turns an eigenvector basis Q into Q·Λ^½.
func ewScaleCols(X Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != c {
		return nil, matrixErrorf("scaleCols", ErrDimensionMismatch)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = src.data[base+j] * scale[j]
		}
	}

	return out, nil
}

// ewSymmetrize returns (A + Aᵀ)/2 for a square A.
// Time: O(n^2). Space: O(n^2).
func ewSymmetrize(A Matrix) (Matrix, error) {
	if err := ValidateSquare(A); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	src, err := asDense(A)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	n := src.r
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	var i, j int
	var avg float64
	for i = 0; i < n; i++ {
		out.data[i*n+i] = src.data[i*n+i]
		for j = i + 1; j < n; j++ {
			avg = 0.5 * (src.data[i*n+j] + src.data[j*n+i])
			out.data[i*n+j] = avg
			out.data[j*n+i] = avg
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = ValidateTolerance(rtol); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if atol, err = ValidateTolerance(atol); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, _ = a.At(i, j) // shapes validated above
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
