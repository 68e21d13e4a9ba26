// SPDX-License-Identifier: MIT
// Package: linproj/adversarial
//
// errors.go — sentinel errors for dataset generation.

package adversarial

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSamples indicates a per-cluster sample count below one.
	ErrInvalidSamples = errors.New("adversarial: number of samples must be >= 1")

	// ErrInvalidScenario indicates a scenario without clusters, with clusters
	// of different dimensions, or with a covariance that is not d × d and finite.
	ErrInvalidScenario = errors.New("adversarial: invalid scenario")
)

// advErrorf wraps err with the given method context ("<Method>: <err>").
func advErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
