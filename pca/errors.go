// SPDX-License-Identifier: MIT
// Package: linproj/pca
//
// errors.go — sentinel errors for the pca package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the method context with pcaErrorf (%w wrapping).
//   • Numeric failures from the matrix layer (eigen non-convergence) are wrapped
//     unchanged, so matrix sentinels stay reachable too.

package pca

import (
	"errors"
	"fmt"
)

// ErrDimension indicates a shape problem: fewer than two samples, a component
// count outside [1, n_features], or a feature-count mismatch in Transform.
var ErrDimension = errors.New("pca: invalid dimensions")

// ErrNotFitted indicates Transform (or an accessor) was used before a successful Fit.
var ErrNotFitted = errors.New("pca: estimator is not fitted")

// ErrNilInput indicates a nil data matrix.
var ErrNilInput = errors.New("pca: nil input")

// pcaErrorf wraps err with the given method context ("<Method>: <err>").
// Complexity: O(1).
func pcaErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
