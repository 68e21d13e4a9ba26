// SPDX-License-Identifier: MIT

package matrix

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry, orthogonality helpers).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultJacobiTol is the off-diagonal convergence threshold of Eigen.
	DefaultJacobiTol = 1e-12

	// DefaultJacobiMaxIter caps the number of single rotations performed by Eigen.
	// Each rotation annihilates one pivot; dimensions up to a few dozen converge
	// well below this cap.
	DefaultJacobiMaxIter = 20000

	// DefaultImagTol is the relative tolerance under which an imaginary part
	// returned by the general eigensolver is treated as round-off.
	DefaultImagTol = 1e-8
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and similar accumulations.
const ZeroSum = 0.0
