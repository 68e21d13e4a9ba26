// SPDX-License-Identifier: MIT

// Package pca implements Principal Component Analysis, the unsupervised
// linear projection onto the directions of maximum variance.
//
// Fit centers the data with the per-feature mean, forms the sample
// covariance (divisor n−1), eigendecomposes it and keeps the nComponents
// eigenvectors with the largest eigenvalues as the columns of a d × k basis.
// Transform projects new data with the fit-time mean: (X − mean)·components.
//
// Two symmetric eigensolvers are available:
//
//	pca.New(2)                                    // native Jacobi kernel (default)
//	pca.New(2, pca.WithSolver(pca.SolverGonum))   // gonum mat.EigenSym
//
// Components are oriented deterministically by default (the entry with the
// largest magnitude in every column is positive); WithSignFlip(false) keeps
// the solver's signs. Eigenvalue ties keep the solver's order (stable sort).
//
// Errors are sentinels (ErrDimension, ErrNotFitted, ErrNilInput) wrapped with
// the method name; use errors.Is. A failed Fit leaves earlier state intact.
package pca
