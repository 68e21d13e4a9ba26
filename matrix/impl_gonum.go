// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense to gonum.org/v1/gonum/mat for the decompositions that are not
//     worth re-implementing natively: LAPACK-grade symmetric eigen, the general
//     (non-symmetric) eigenproblem, Cholesky and dense linear solves.
//   - Every bridge copies at the boundary; gonum values never escape the package.
//
// Exposed API:
//   - EigenSymmetric(A)          -> EigenPairs   // gonum EigenSym, ascending as returned
//   - EigenGeneral(A, imagTol)   -> EigenPairs   // gonum Eigen, real parts only
//   - GeneralizedEigenSym(A, B)  -> EigenPairs   // A·w = λ·B·w with B SPD, via Cholesky reduction
//   - Solve(A, B)                -> X            // A·X = B

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	opEigenSymmetric = "EigenSymmetric"
	opEigenGeneral   = "EigenGeneral"
	opGeneralized    = "GeneralizedEigenSym"
	opSolve          = "Solve"
)

// toGonum copies d into a fresh *mat.Dense.
func toGonum(d *Dense) *mat.Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf)
}

// toGonumSym copies the upper triangle of a square d into a *mat.SymDense.
func toGonumSym(d *Dense) *mat.SymDense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewSymDense(d.r, buf)
}

// fromGonum copies any gonum matrix into a Dense. Values coming out of gonum
// are finite for finite inputs, so the numeric policy is not re-checked.
func fromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// symmetricDense validates A as square and symmetric (relative to its Frobenius
// norm) and returns it as *Dense.
func symmetricDense(A Matrix) (*Dense, error) {
	if err := ValidateSquare(A); err != nil {
		return nil, err
	}
	d, err := asDense(A)
	if err != nil {
		return nil, err
	}
	if err = ValidateSymmetric(d, DefaultEpsilon*math.Max(1, frobenius(d))); err != nil {
		return nil, err
	}

	return d, nil
}

// EigenSymmetric decomposes a symmetric matrix with gonum's EigenSym.
// Values come back ascending (gonum order); use SortEigenDescending to rank them.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func EigenSymmetric(A Matrix) (EigenPairs, error) {
	d, err := symmetricDense(A)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opEigenSymmetric, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(toGonumSym(d), true); !ok {
		return EigenPairs{}, matrixErrorf(opEigenSymmetric, ErrMatrixEigenFailed)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	Q, err := fromGonum(&vecs)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opEigenSymmetric, err)
	}

	return EigenPairs{Values: es.Values(nil), Vectors: Q}, nil
}

// EigenGeneral decomposes a real square (possibly non-symmetric) matrix with
// gonum's Eigen and keeps the real parts of values and right eigenvectors.
//
// Implementation:
//   - Stage 1: Factorize with right eigenvectors.
//   - Stage 2: Reject any value whose imaginary part exceeds imagTol·max(1, ρ),
//     where ρ is the largest |λ|; smaller imaginary parts are treated as round-off.
//   - Stage 3: Copy real parts; columns are rescaled to unit length.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad imagTol),
//     ErrMatrixEigenFailed, ErrComplexEigen.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func EigenGeneral(A Matrix, imagTol float64) (EigenPairs, error) {
	if err := ValidateSquare(A); err != nil {
		return EigenPairs{}, matrixErrorf(opEigenGeneral, err)
	}
	imagTol, err := ValidateTolerance(imagTol)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opEigenGeneral, err)
	}
	d, err := asDense(A)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opEigenGeneral, err)
	}

	var eg mat.Eigen
	if ok := eg.Factorize(toGonum(d), mat.EigenRight); !ok {
		return EigenPairs{}, matrixErrorf(opEigenGeneral, ErrMatrixEigenFailed)
	}
	cvals := eg.Values(nil)
	var cvecs mat.CDense
	eg.VectorsTo(&cvecs)

	rho := 1.0
	for _, v := range cvals {
		rho = math.Max(rho, cmplx.Abs(v))
	}
	n := len(cvals)
	vals := make([]float64, n)
	Q, err := NewDense(n, n)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opEigenGeneral, err)
	}
	var i, k int
	for k = 0; k < n; k++ {
		if math.Abs(imag(cvals[k])) > imagTol*rho {
			return EigenPairs{}, matrixErrorf(opEigenGeneral, fmt.Errorf("value %d = %v: %w", k, cvals[k], ErrComplexEigen))
		}
		vals[k] = real(cvals[k])
		for i = 0; i < n; i++ {
			Q.data[i*n+k] = real(cvecs.At(i, k))
		}
	}
	if err = NormalizeColumns(Q); err != nil {
		return EigenPairs{}, matrixErrorf(opEigenGeneral, err)
	}

	return EigenPairs{Values: vals, Vectors: Q}, nil
}

// GeneralizedEigenSym solves A·w = λ·B·w for symmetric A and symmetric
// positive-definite B.
//
// Implementation:
//   - Stage 1: Cholesky B = L·Lᵀ (gonum Cholesky); failure means B is not SPD.
//   - Stage 2: C = L⁻¹·A·L⁻ᵀ, symmetrized to remove round-off asymmetry.
//   - Stage 3: Symmetric eigen C·y = λ·y, then w = L⁻ᵀ·y.
//   - Stage 4: Rescale every w to unit Euclidean length.
//
// Behavior highlights:
//   - All λ are real by construction; values come back ascending.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNotPositiveDefinite,
//     ErrSingular, ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func GeneralizedEigenSym(A, B Matrix) (EigenPairs, error) {
	a, err := symmetricDense(A)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opGeneralized, err)
	}
	b, err := symmetricDense(B)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opGeneralized, err)
	}
	if a.r != b.r {
		return EigenPairs{}, matrixErrorf(opGeneralized, ErrDimensionMismatch)
	}

	var ch mat.Cholesky
	if ok := ch.Factorize(toGonumSym(b)); !ok {
		return EigenPairs{}, matrixErrorf(opGeneralized, ErrNotPositiveDefinite)
	}
	var L, Linv mat.TriDense
	ch.LTo(&L)
	if err = Linv.InverseTri(&L); err != nil {
		return EigenPairs{}, matrixErrorf(opGeneralized, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	var C mat.Dense
	C.Product(&Linv, toGonum(a), Linv.T())
	reduced, err := fromGonum(&C)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opGeneralized, err)
	}
	sym, err := ewSymmetrize(reduced)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opGeneralized, err)
	}
	pairs, err := EigenSymmetric(sym)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opGeneralized, err)
	}

	var W mat.Dense
	W.Mul(Linv.T(), toGonum(pairs.Vectors))
	vecs, err := fromGonum(&W)
	if err != nil {
		return EigenPairs{}, matrixErrorf(opGeneralized, err)
	}
	if err = NormalizeColumns(vecs); err != nil {
		return EigenPairs{}, matrixErrorf(opGeneralized, err)
	}

	return EigenPairs{Values: pairs.Values, Vectors: vecs}, nil
}

// Solve returns X with A·X = B for square A (gonum Dense.Solve, LU with pivoting).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (exactly singular or
//     numerically ill-conditioned A).
//
// Complexity:
//   - Time O(n^3 + n^2*m), Space O(n^2 + n*m).
func Solve(A, B Matrix) (*Dense, error) {
	if err := ValidateSquare(A); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateMulCompatible(A, B); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	a, err := asDense(A)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	b, err := asDense(B)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var x mat.Dense
	if err = x.Solve(toGonum(a), toGonum(b)); err != nil {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	return fromGonum(&x)
}
