// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - CenterColumns returns the means; feed them to CenterWith for unseen data.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ---------- Statistics ----------

// ColumnMeans returns the per-column (per-feature) mean of X.
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// CenterColumns returns a column-centered copy of X and the column means.
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// CenterWith subtracts caller-provided column means from every row of X.
func CenterWith(X Matrix, means []float64) (Matrix, error) { return centerWith(X, means) }

// ShiftColumns adds shift[j] to every element of column j (the inverse of CenterWith).
func ShiftColumns(X Matrix, shift []float64) (Matrix, error) { return ewBroadcastAddCols(X, shift) }

// ScaleColumns multiplies column j of X by scale[j].
func ScaleColumns(X Matrix, scale []float64) (Matrix, error) { return ewScaleCols(X, scale) }

// Covariance returns the sample covariance (c×c) of the columns of X and the column means.
// Requires at least two rows.
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }

// Scatter returns Xcᵀ·Xc for the column-centered Xc and the column means.
func Scatter(X Matrix) (Matrix, []float64, error) { return scatter(X) }

// ---------- Comparison & Structure ----------

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// Symmetrize returns (A + Aᵀ)/2 for a square A.
func Symmetrize(A Matrix) (Matrix, error) { return ewSymmetrize(A) }

// EigenSym runs the native Jacobi solver and packs the result as EigenPairs.
// Values are unsorted; see SortEigenDescending.
func EigenSym(m Matrix, tol float64, maxIter int) (EigenPairs, error) {
	vals, Q, err := Eigen(m, tol, maxIter)
	if err != nil {
		return EigenPairs{}, err
	}

	return EigenPairs{Values: vals, Vectors: Q.(*Dense)}, nil
}
