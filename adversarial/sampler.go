// SPDX-License-Identifier: MIT
// Package: linproj/adversarial
//
// sampler.go — multivariate normal draws from a possibly malformed covariance.
//
// Repair pipeline (per cluster, once per Generate):
//   1. C ← (C + Cᵀ)/2.
//   2. C = Q·diag(λ)·Qᵀ (symmetric eigendecomposition).
//   3. λ₊ = max(λ, 0); factor A = Q·diag(sqrt(λ₊)), so A·Aᵀ is the nearest
//      PSD matrix to C in Frobenius norm.
//   4. x = μ + A·z with z ~ N(0, I).
//
// Repairs (asymmetry, clipped eigenvalues) are reported to the caller for logging.

package adversarial

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/linproj/matrix"
	"gonum.org/v1/gonum/floats"
)

// sampler draws from one cluster.
type sampler struct {
	mean   []float64
	factor matrix.Matrix // d × d, A with A·Aᵀ = PSD part of the covariance
	z      []float64     // scratch

	asymmetric bool
	clipped    []float64 // eigenvalues < -tol that were set to zero
}

// newSampler factors the covariance of cl. cl must have passed Validate.
func newSampler(cl Cluster) (*sampler, error) {
	C, err := matrix.NewDenseFromRows(cl.Cov)
	if err != nil {
		return nil, err
	}
	s := &sampler{
		mean:       append([]float64(nil), cl.Mean...),
		z:          make([]float64, len(cl.Mean)),
		asymmetric: matrix.ValidateSymmetric(C, 0) != nil,
	}

	S, err := matrix.Symmetrize(C)
	if err != nil {
		return nil, err
	}
	pairs, err := matrix.EigenSymmetric(S)
	if err != nil {
		return nil, err
	}

	tol := matrix.DefaultEpsilon * math.Max(1, floats.Norm(pairs.Values, math.Inf(1)))
	roots := make([]float64, len(pairs.Values))
	for k, v := range pairs.Values {
		if v < -tol {
			s.clipped = append(s.clipped, v)
		}
		roots[k] = math.Sqrt(math.Max(v, 0))
	}
	if s.factor, err = matrix.ScaleColumns(pairs.Vectors, roots); err != nil {
		return nil, err
	}

	return s, nil
}

// draw writes one sample into dst (len d).
func (s *sampler) draw(rng *rand.Rand, dst []float64) error {
	for i := range s.z {
		s.z[i] = rng.NormFloat64()
	}
	v, err := matrix.MatVec(s.factor, s.z)
	if err != nil {
		return err
	}
	floats.AddTo(dst, s.mean, v)

	return nil
}
