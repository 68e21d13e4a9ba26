// Package linproj is a small library of linear projections for labelled and
// unlabelled numeric data, built on explicit linear algebra: centering,
// covariance and scatter matrices, and eigendecompositions.
//
// What is inside
//
//	matrix/      — dense row-major Matrix, kernels (Mul, Transpose, Outer, …),
//	               statistics (ColumnMeans, Covariance, Scatter), eigensolvers
//	               (native Jacobi; gonum symmetric, general and Cholesky-reduced
//	               generalized) and eigenpair ranking (SortEigenDescending, FlipSigns)
//	pca/         — Principal Component Analysis: unsupervised, maximizes variance
//	lda/         — Linear Discriminant Analysis: supervised, maximizes class separation
//	adversarial/ — Gaussian-cluster generator for datasets that defeat PCA
//	kmeans/      — k-means++ clustering and the purity score, used to measure
//	               whether a projection keeps classes apart
//	examples/    — runnable programs
//
// Conventions shared by every package
//
//   - Estimators follow New(k, opts...) → Fit → Transform; a failed Fit never
//     leaves partial state behind, accessors return copies.
//   - Configuration is functional options; option constructors panic on
//     nonsensical values, algorithms return errors.
//   - Errors are package sentinels wrapped with the failing method; match
//     them with errors.Is.
//   - Randomness is explicit: a seeded *rand.Rand per generator, never the
//     process-global source.
//   - Logging is github.com/rs/zerolog and silent by default (zerolog.Nop()).
//
// Quick example:
//
//	X, _ := matrix.NewDenseFromRows(rows)
//	Y, err := pca.New(2).FitTransform(X)      // (n × 2) principal scores
//	Z, err := lda.New(1).FitTransform(X, y)   // (n × 1) discriminant scores
//
//	go get github.com/katalvlaran/linproj
package linproj
