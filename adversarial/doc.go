// SPDX-License-Identifier: MIT

// Package adversarial generates labelled Gaussian-cluster datasets that
// expose the main limitation of PCA: it ranks directions by variance and
// ignores labels, so classes separated along a low-variance direction are
// mixed by the first principal component.
//
// A generator is configured with a Scenario (a list of clusters, each a mean
// and a covariance) and an explicit random source:
//
//	gen := adversarial.NewAdversarialExamples(
//		adversarial.WithScenario(adversarial.ParallelBandsScenario()),
//		adversarial.WithSeed(42),
//	)
//	ds, err := gen.Generate(500)                   // raw 2-D data + labels
//	proj, labels, err := gen.PCAAdversarialData(500, 2) // PCA(1) projection + labels
//
// ReferenceScenario is the default. Its second covariance, [[0, 1], [2, 2]],
// is neither symmetric nor positive semi-definite; it is symmetrized and its
// negative eigenvalue clipped to zero before sampling, and both repairs are
// logged at warn level. ParallelBandsScenario places two elongated bands on
// top of each other: 2-means on the raw data recovers them, 2-means on the
// PCA(1) projection does not.
package adversarial
