// SPDX-License-Identifier: MIT
// Package: linproj/kmeans
//
// purity.go — external clustering score against ground-truth labels.

package kmeans

const methodPurity = "Purity"

// Purity scores a clustering against ground truth: for every cluster take the
// count of its most frequent true class, sum over clusters, divide by n.
// 1 means every cluster is a single class; for two balanced classes, 0.5 is
// the chance level. Label values are arbitrary ids on both sides.
//
// Errors:
//   - ErrEmptyInput for empty slices.
//   - ErrLengthMismatch when len(assign) != len(truth).
//
// Complexity: O(n) time, O(clusters · classes) space.
func Purity(assign, truth []int) (float64, error) {
	if len(assign) != len(truth) {
		return 0, kmeansErrorf(methodPurity, ErrLengthMismatch)
	}
	if len(assign) == 0 {
		return 0, kmeansErrorf(methodPurity, ErrEmptyInput)
	}

	counts := make(map[int]map[int]int)
	for i, c := range assign {
		if counts[c] == nil {
			counts[c] = make(map[int]int)
		}
		counts[c][truth[i]]++
	}

	var hits, most int
	for _, byClass := range counts {
		most = 0
		for _, cnt := range byClass {
			most = max(most, cnt)
		}
		hits += most
	}

	return float64(hits) / float64(len(assign)), nil
}
