// SPDX-License-Identifier: MIT
// Package: linproj/lda
//
// errors.go — sentinel errors for the lda package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the method context with ldaErrorf (%w wrapping).
//   • Numeric failures are reported with an lda sentinel AND the underlying
//     matrix sentinel, so both errors.Is checks hold.

package lda

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension indicates a shape problem: fewer than two samples, a
	// component count outside [1, n_features], len(y) != n_samples, or a
	// feature-count mismatch in Transform.
	ErrDimension = errors.New("lda: invalid dimensions")

	// ErrNotFitted indicates Transform (or an accessor) was used before a successful Fit.
	ErrNotFitted = errors.New("lda: estimator is not fitted")

	// ErrNilInput indicates a nil data matrix or label slice.
	ErrNilInput = errors.New("lda: nil input")

	// ErrDegenerateClass indicates fewer than two distinct classes, or a class
	// with fewer than two samples (its within-class scatter is undefined).
	ErrDegenerateClass = errors.New("lda: degenerate class layout")

	// ErrSingularScatter indicates the within-class scatter cannot be inverted:
	// not positive definite (Cholesky solver) or singular (general solver).
	// WithShrinkage regularizes such inputs.
	ErrSingularScatter = errors.New("lda: within-class scatter is singular")

	// ErrComplexEigen indicates the general solver produced eigenpairs with
	// imaginary parts above the configured tolerance.
	ErrComplexEigen = errors.New("lda: complex eigenpairs")
)

// ldaErrorf wraps err with the given method context ("<Method>: <err>").
// Complexity: O(1).
func ldaErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// numericError reports a matrix-layer failure under an lda sentinel while
// keeping the original chain reachable.
func numericError(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
