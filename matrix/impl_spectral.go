// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Post-process eigen decompositions into the canonical order the estimators expose:
//     descending sort (by value or magnitude), leading-column selection, unit
//     normalization and a deterministic sign convention.

package matrix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	opSortEigen        = "SortEigenDescending"
	opLeadingColumns   = "LeadingColumns"
	opNormalizeColumns = "NormalizeColumns"
	opFlipSigns        = "FlipSigns"
)

// SortEigenDescending returns a copy of the eigenpairs reordered so that values
// are non-increasing. When byMagnitude is true the key is |value|.
// The sort is stable: equal keys keep their solver order, which makes the
// output reproducible for repeated eigenvalues.
//
// Errors:
//   - ErrNilMatrix (nil Vectors), ErrDimensionMismatch (len(Values) != Vectors.Cols()).
//
// Complexity:
//   - Time O(n log n + n^2), Space O(n^2).
func SortEigenDescending(p EigenPairs, byMagnitude bool) (EigenPairs, error) {
	if err := ValidateNotNil(p.Vectors); err != nil {
		return EigenPairs{}, matrixErrorf(opSortEigen, err)
	}
	n := len(p.Values)
	if n != p.Vectors.c {
		return EigenPairs{}, matrixErrorf(opSortEigen, ErrDimensionMismatch)
	}

	key := func(k int) float64 {
		if byMagnitude {
			return math.Abs(p.Values[k])
		}
		return p.Values[k]
	}
	order := make([]int, n)
	var k int
	for k = 0; k < n; k++ {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool { return key(order[a]) > key(order[b]) })

	rows := p.Vectors.r
	vecs, err := NewDense(rows, n)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opSortEigen, err)
	}
	vals := make([]float64, n)
	var i, src int
	for k, src = range order {
		vals[k] = p.Values[src]
		for i = 0; i < rows; i++ {
			vecs.data[i*n+k] = p.Vectors.data[i*n+src]
		}
	}

	return EigenPairs{Values: vals, Vectors: vecs}, nil
}

// LeadingColumns returns a copy of the first k columns of m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (k < 1 or k > Cols()).
// Complexity: O(r*k).
func LeadingColumns(m *Dense, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLeadingColumns, err)
	}
	if k < 1 || k > m.c {
		return nil, matrixErrorf(opLeadingColumns, ErrDimensionMismatch)
	}
	out, err := NewDense(m.r, k)
	if err != nil {
		return nil, matrixErrorf(opLeadingColumns, err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		copy(out.data[i*k:(i+1)*k], m.data[i*m.c:i*m.c+k])
	}

	return out, nil
}

// NormalizeColumns scales every column of m in place to unit Euclidean length.
// Zero columns are left unchanged.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func NormalizeColumns(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opNormalizeColumns, err)
	}
	var j int
	var col []float64
	var norm float64
	for j = 0; j < m.c; j++ {
		col, _ = m.Col(j) // j in range
		norm = floats.Norm(col, 2)
		if norm == NormZero {
			continue
		}
		floats.Scale(1/norm, col)
		if err := m.SetCol(j, col); err != nil {
			return matrixErrorf(opNormalizeColumns, err)
		}
	}

	return nil
}

// FlipSigns orients every column of m in place so that its entry of largest
// absolute value is positive (first such entry on ties). Eigenvectors are only
// defined up to sign; this fixes one representative so that repeated fits agree.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FlipSigns(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFlipSigns, err)
	}
	var i, j, arg int
	var best, a float64
	for j = 0; j < m.c; j++ {
		arg, best = 0, -1
		for i = 0; i < m.r; i++ {
			if a = math.Abs(m.data[i*m.c+j]); a > best {
				arg, best = i, a
			}
		}
		if m.data[arg*m.c+j] >= 0 {
			continue
		}
		for i = 0; i < m.r; i++ {
			m.data[i*m.c+j] = -m.data[i*m.c+j]
		}
	}

	return nil
}
