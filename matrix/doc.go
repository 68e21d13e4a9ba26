// Package matrix provides the dense linear-algebra layer the estimators are built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe (error-returning) accessors
//     and dataset constructors (NewDenseFrom, NewDenseFromRows).
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, Outer.
//   - Dataset statistics: ColumnMeans, CenterColumns, CenterWith, Covariance, Scatter.
//   - Eigen solvers: the native Jacobi kernel (Eigen, EigenSym) and gonum-backed
//     EigenSymmetric, EigenGeneral and GeneralizedEigenSym, plus Solve.
//   - Spectral post-processing: SortEigenDescending, LeadingColumns,
//     NormalizeColumns and FlipSigns.
//
// Every operation validates its inputs and returns sentinel errors from
// errors.go wrapped with the operation name; match them with errors.Is.
// Results are always fresh matrices unless a function documents in-place behavior.
//
// See the examples in this package and in pca and lda for usage patterns.
package matrix
