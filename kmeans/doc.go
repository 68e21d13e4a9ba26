// SPDX-License-Identifier: MIT

// Package kmeans implements k-means clustering (k-means++ seeding, Lloyd
// iterations, best-of-n restarts) and the purity score.
//
// The package exists to measure separability: a projection keeps two classes
// apart when 2-means on the projected points recovers the classes, i.e.
// Purity(result.Labels, truth) is close to 1. For two balanced classes a
// purity near 0.5 means the projection mixed them.
//
// Randomness is explicit and reproducible. Without WithSeed or WithRand a
// fixed seed is used; every restart draws from its own stream derived from
// the configured source.
//
//	res, err := kmeans.New(2, kmeans.WithSeed(7), kmeans.WithRestarts(25)).Fit(points)
//	purity, err := kmeans.Purity(res.Labels, truth)
package kmeans
