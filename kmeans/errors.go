// SPDX-License-Identifier: MIT
// Package: linproj/kmeans
//
// errors.go — sentinel errors for clustering and scoring.
//
// Callers branch with errors.Is; call sites attach context with kmeansErrorf.

package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK indicates k < 1 or k greater than the number of points.
	ErrInvalidK = errors.New("kmeans: invalid number of clusters")

	// ErrEmptyInput indicates no points (or zero-dimensional points).
	ErrEmptyInput = errors.New("kmeans: empty input")

	// ErrLengthMismatch indicates ragged points, or label slices of different length.
	ErrLengthMismatch = errors.New("kmeans: length mismatch")
)

// kmeansErrorf wraps err with the given method context ("<Method>: <err>").
func kmeansErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
