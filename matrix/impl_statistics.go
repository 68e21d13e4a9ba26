// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the dataset statistics the estimators are built on (column means,
//     centering, sample covariance, class scatter) as deterministic compositions
//     over canonical kernels (Mul/Transpose/Scale) and ew* micro-kernels.
//
// Exposed API (via api.go):
//   - ColumnMeans(X)        -> means               // per-feature mean
//   - CenterColumns(X)      -> (Xc, means)         // subtract per-column mean
//   - CenterWith(X, means)  -> Xc                  // subtract caller-provided means
//   - Covariance(X)         -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Scatter(X)            -> (S, means)          // scatter matrix Xcᵀ Xc (no normalization)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCenterWith    = "CenterWith"
	opCovariance    = "Covariance"
	opScatter       = "Scatter"
)

// columnMeans returns Σ_i X[i,j] / r for every column j.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Accumulate sums in a deterministic pass (Dense fast-path; At fallback).
//   - Stage 3: Divide by r.
//
// Errors:
//   - ErrNilMatrix, wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var i, j, base int
	var v float64
	var err error
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Compute column means (columnMeans).
//   - Stage 2: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c); reuse them to center unseen data with CenterWith.
//
// Errors:
//   - ErrNilMatrix from validation, wrapped At errors from fallback paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// centerWith subtracts the given per-column means (len == Cols(X)).
// Estimators use it to apply fit-time centering to new data.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(means) != Cols(X)).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerWith(X Matrix, means []float64) (Matrix, error) {
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, matrixErrorf(opCenterWith, err)
	}

	return Xc, nil
}

// scatter computes the unnormalized scatter matrix S = Xcᵀ Xc where Xc is
// the column-centered X. Used for within-class scatter accumulation.
//
// Behavior highlights:
//   - A single observation yields the zero matrix (its own mean).
//   - Output is exactly symmetric (see Mul determinism notes).
//
// Errors:
//   - ErrNilMatrix, wrapped kernel errors.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func scatter(X Matrix) (Matrix, []float64, error) {
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opScatter, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opScatter, err)
	}
	S, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opScatter, err)
	}

	return S, means, nil
}

// covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X, require r>=2 (sample denominator).
//   - Stage 2: Reuse scatter, then scale by 1/(r-1).
//
// Behavior highlights:
//   - Symmetric output; diagonal equals per-column sample variances.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped kernel errors.
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
func covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	S, means, err := scatter(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(S, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
