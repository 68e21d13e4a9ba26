// SPDX-License-Identifier: MIT
// Package: linproj/adversarial
//
// generator.go — labelled datasets and their PCA(1) projection.
//
// Layout: cluster 0 rows first, then cluster 1, …; Labels[i] is the cluster index.
// Every Generate call advances the generator's random source.

package adversarial

import (
	"github.com/katalvlaran/linproj/matrix"
	"github.com/katalvlaran/linproj/pca"
)

const (
	methodGenerate           = "Generate"
	methodPCAAdversarialData = "PCAAdversarialData"
)

// Dataset is a generated sample: X has one row per observation, Labels the
// originating cluster of every row.
type Dataset struct {
	X      *matrix.Dense
	Labels []int
}

// AdversarialExamples generates datasets that probe PCA's blind spot: classes
// separated along a direction of low variance. Not safe for concurrent use.
type AdversarialExamples struct {
	cfg config
}

// NewAdversarialExamples returns a generator; see options.go for defaults.
func NewAdversarialExamples(opts ...Option) *AdversarialExamples {
	return &AdversarialExamples{cfg: newConfig(opts...)}
}

// Scenario returns the configured cluster layout.
func (a *AdversarialExamples) Scenario() Scenario { return a.cfg.scenario }

// Generate draws nSamples points from every cluster of the scenario.
// The result has len(Clusters)·nSamples rows.
//
// Errors:
//   - ErrInvalidSamples for nSamples < 1.
//   - Wrapped matrix errors if a covariance cannot be factored.
func (a *AdversarialExamples) Generate(nSamples int) (*Dataset, error) {
	if nSamples < 1 {
		return nil, advErrorf(methodGenerate, ErrInvalidSamples)
	}
	sc := a.cfg.scenario
	d := sc.Dim()

	samplers := make([]*sampler, len(sc.Clusters))
	var err error
	for c, cl := range sc.Clusters {
		if samplers[c], err = newSampler(cl); err != nil {
			return nil, advErrorf(methodGenerate, err)
		}
		if samplers[c].asymmetric {
			a.cfg.logger.Warn().
				Str("scenario", sc.Name).
				Int("cluster", c).
				Msg("adversarial: covariance not symmetric, using (C+Cᵀ)/2")
		}
		if len(samplers[c].clipped) > 0 {
			a.cfg.logger.Warn().
				Str("scenario", sc.Name).
				Int("cluster", c).
				Floats64("clipped_eigenvalues", samplers[c].clipped).
				Msg("adversarial: covariance not positive semi-definite, negative eigenvalues clipped to zero")
		}
	}

	rows := len(sc.Clusters) * nSamples
	data := make([]float64, rows*d)
	labels := make([]int, rows)
	var i, r int
	for c, s := range samplers {
		for i = 0; i < nSamples; i++ {
			r = c*nSamples + i
			if err = s.draw(a.cfg.rng, data[r*d:(r+1)*d]); err != nil {
				return nil, advErrorf(methodGenerate, err)
			}
			labels[r] = c
		}
	}
	X, err := matrix.NewDenseFrom(rows, d, data)
	if err != nil {
		return nil, advErrorf(methodGenerate, err)
	}

	a.cfg.logger.Debug().
		Str("scenario", sc.Name).
		Int("clusters", len(sc.Clusters)).
		Int("samples_per_cluster", nSamples).
		Msg("adversarial: generated")

	return &Dataset{X: X, Labels: labels}, nil
}

// PCAAdversarialData generates nSamples points per cluster, fits PCA with one
// component on the whole dataset and returns the (rows × 1) projection with
// the labels. nFeatures is informational: scenarios fix their own dimension,
// and a different value is logged at warn level and ignored.
//
// Errors:
//   - ErrInvalidSamples for nSamples < 1.
//   - Wrapped pca errors from the projection.
func (a *AdversarialExamples) PCAAdversarialData(nSamples, nFeatures int) (matrix.Matrix, []int, error) {
	if d := a.cfg.scenario.Dim(); nFeatures != d {
		a.cfg.logger.Warn().
			Int("n_features", nFeatures).
			Int("scenario_dim", d).
			Msg("adversarial: nFeatures ignored, scenario dimension is fixed")
	}
	ds, err := a.Generate(nSamples)
	if err != nil {
		return nil, nil, advErrorf(methodPCAAdversarialData, err)
	}
	proj, err := pca.New(1, a.cfg.pcaOpts...).FitTransform(ds.X)
	if err != nil {
		return nil, nil, advErrorf(methodPCAAdversarialData, err)
	}

	return proj, ds.Labels, nil
}

// PCAAdversarialData runs the method of the same name on a generator with
// default settings (reference scenario, default seed).
func PCAAdversarialData(nSamples, nFeatures int) (matrix.Matrix, []int, error) {
	return NewAdversarialExamples().PCAAdversarialData(nSamples, nFeatures)
}
