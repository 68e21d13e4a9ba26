// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Native symmetric eigensolver (cyclic-pivot Jacobi rotations). It has no
//     dependencies beyond the package itself and serves as the default PCA kernel.
//   - The gonum-backed solvers in impl_gonum.go cover the same contract and
//     the non-symmetric case.

package matrix

import (
	"fmt"
	"math"
)

const opEigen = "Eigen"

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input (not nil, square, symmetric up to
//     DefaultEpsilon relative to the Frobenius norm).
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and apply a Jacobi rotation.
//   - Stage 3: Verify convergence; read eigenvalues from the diagonal.
//
// Inputs:
//   - m: symmetric Matrix; n := m.Rows().
//   - tol: convergence threshold relative to max(1, ‖m‖_F) (typ. 1e-10..1e-12).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - Matrix: Q whose columns are orthonormal eigenvectors; column k belongs to value k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry, ErrNaNInf (bad tol),
//     ErrMatrixEigenFailed (max off-diagonal above threshold after maxIter).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n^2) with n^2 per pivot search and O(n) per rotation, Space O(n^2).
//
// AI-Hints:
//   - Results are unsorted; pass them through SortEigenDescending before selecting components.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	scale := math.Max(1, frobenius(src))
	if err = ValidateSymmetric(src, DefaultEpsilon*scale); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	threshold := tol * scale

	n := src.r
	A := src.Clone().(*Dense) // working copy; the input is never mutated
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, j, base   int
		p, q               int     // current pivot indices
		maxOff, off        float64 // current max |A[p,q]|
		app, aqq, apq      float64 // pivot block entries
		aip, aiq, qip, qiq float64 // temporaries for A[i,p], A[i,q] and Q[i,p], Q[i,q]
		newIP, newIQ       float64 // updated values for A[i,p] and A[i,q]
		theta, t, c, s     float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]|.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[base+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff <= threshold {
			break
		}

		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		// θ = (aqq−app)/(2*apq), t = sign(θ)/(|θ|+√(θ²+1)), c = 1/√(1+t²), s = t*c.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			A.data[i*n+p], A.data[p*n+i] = newIP, newIP
			A.data[i*n+q], A.data[q*n+i] = newIQ, newIQ
		}
		A.data[p*n+p] = app - t*apq
		A.data[q*n+q] = aqq + t*apq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Final convergence check after the last rotation.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			if off = math.Abs(A.data[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > threshold {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrMatrixEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}

// frobenius returns ‖d‖_F = sqrt(Σ d_ij²).
func frobenius(d *Dense) float64 {
	var sq float64
	for _, v := range d.data {
		sq += v * v
	}

	return math.Sqrt(sq)
}
