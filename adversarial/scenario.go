// SPDX-License-Identifier: MIT
// Package: linproj/adversarial
//
// scenario.go — Gaussian cluster layouts.
//
// A Scenario lists clusters; cluster c contributes samples labelled c.
// Covariances are taken as given: non-symmetric or indefinite matrices are
// accepted and repaired at sampling time (see sampler.go).

package adversarial

import (
	"fmt"
	"math"
)

// Cluster is one Gaussian component: mean μ (len d) and covariance Cov (d × d).
type Cluster struct {
	Mean []float64
	Cov  [][]float64
}

// Scenario is an ordered list of clusters of equal dimension.
type Scenario struct {
	Name     string
	Clusters []Cluster
}

// ReferenceScenario is the default layout: a broad isotropic cluster around
// (10, 10) with covariance diag(20, 20), and a cluster around (1, 3) with the
// non-symmetric, indefinite covariance [[0, 1], [2, 2]].
func ReferenceScenario() Scenario {
	return Scenario{
		Name: "reference",
		Clusters: []Cluster{
			{Mean: []float64{10, 10}, Cov: [][]float64{{20, 0}, {0, 20}}},
			{Mean: []float64{1, 3}, Cov: [][]float64{{0, 1}, {2, 2}}},
		},
	}
}

// Parallel bands geometry: each band has x-variance bandVarX and y-variance
// bandVarY; band centers sit at ±bandOffsetY. The total y-variance
// bandOffsetY² + bandVarY stays below bandVarX, so the first principal
// direction is x, along which the bands overlap completely. A 2-means split
// along y still beats one along x: bandVarX < (π/2)·bandOffsetY².
const (
	bandVarX    = 34.0
	bandVarY    = 0.25
	bandOffsetY = 5.0
)

// ParallelBandsScenario returns two horizontal bands stacked along y.
// They are separable in 2-D, but their PCA(1) projection mixes them.
func ParallelBandsScenario() Scenario {
	cov := [][]float64{{bandVarX, 0}, {0, bandVarY}}

	return Scenario{
		Name: "parallel-bands",
		Clusters: []Cluster{
			{Mean: []float64{0, bandOffsetY}, Cov: cov},
			{Mean: []float64{0, -bandOffsetY}, Cov: cov},
		},
	}
}

// Dim reports the common dimension of the clusters (0 for an empty scenario).
func (s Scenario) Dim() int {
	if len(s.Clusters) == 0 {
		return 0
	}

	return len(s.Clusters[0].Mean)
}

// Validate checks the structural contract of s.
func (s Scenario) Validate() error {
	if len(s.Clusters) == 0 {
		return fmt.Errorf("no clusters: %w", ErrInvalidScenario)
	}
	d := s.Dim()
	if d == 0 {
		return fmt.Errorf("zero-dimensional mean: %w", ErrInvalidScenario)
	}
	for c, cl := range s.Clusters {
		if len(cl.Mean) != d || len(cl.Cov) != d {
			return fmt.Errorf("cluster %d: dimension != %d: %w", c, d, ErrInvalidScenario)
		}
		for i, row := range cl.Cov {
			if len(row) != d {
				return fmt.Errorf("cluster %d: covariance row %d has %d entries: %w", c, i, len(row), ErrInvalidScenario)
			}
			for _, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("cluster %d: non-finite covariance: %w", c, ErrInvalidScenario)
				}
			}
		}
		for _, v := range cl.Mean {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("cluster %d: non-finite mean: %w", c, ErrInvalidScenario)
			}
		}
	}

	return nil
}
