// SPDX-License-Identifier: MIT
// Package: linproj/kmeans
//
// kmeans.go — Lloyd's algorithm with k-means++ seeding and restarts.
//
// Algorithm (one restart):
//   1. k-means++: first centroid uniform; every next one drawn with probability
//      proportional to D(x)², the squared distance to the nearest chosen centroid.
//   2. Assign every point to its nearest centroid (ties → lowest index).
//   3. Recompute centroids as cluster means. An emptied cluster takes the point
//      farthest from its own centroid.
//   4. Stop when the largest squared centroid shift ≤ tolerance or maxIter is hit.
//
// Fit keeps the restart with the lowest inertia (first one on ties).
//
// Complexity: O(restarts · maxIter · n · k · d) time, O(n + k·d) space.

package kmeans

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const methodFit = "Fit"

// KMeans clusters points into k groups. Not safe for concurrent use: Fit
// advances the configured random source.
type KMeans struct {
	k   int
	cfg config
}

// Result is the best clustering found by Fit.
type Result struct {
	Labels     []int       // cluster index in [0, k) per point
	Centroids  [][]float64 // k centroids of dimension d
	Inertia    float64     // Σ squared distance to the assigned centroid
	Iterations int         // Lloyd iterations of the winning restart
}

// New returns a KMeans for k clusters. k is validated against the data in Fit.
func New(k int, opts ...Option) *KMeans {
	return &KMeans{k: k, cfg: newConfig(opts...)}
}

// Fit clusters points (n rows of equal dimension d).
//
// Errors:
//   - ErrEmptyInput for no points or d == 0.
//   - ErrLengthMismatch for ragged rows.
//   - ErrInvalidK for k < 1 or k > n.
func (km *KMeans) Fit(points [][]float64) (*Result, error) {
	n := len(points)
	if n == 0 || len(points[0]) == 0 {
		return nil, kmeansErrorf(methodFit, ErrEmptyInput)
	}
	d := len(points[0])
	for _, p := range points {
		if len(p) != d {
			return nil, kmeansErrorf(methodFit, ErrLengthMismatch)
		}
	}
	if km.k < 1 || km.k > n {
		return nil, kmeansErrorf(methodFit, ErrInvalidK)
	}

	var best *Result
	var res *Result
	var r int
	for r = 0; r < km.cfg.restarts; r++ {
		res = km.lloyd(points, deriveRNG(km.cfg.rng, uint64(r)))
		km.cfg.logger.Debug().
			Int("restart", r).
			Int("iterations", res.Iterations).
			Float64("inertia", res.Inertia).
			Msg("kmeans: restart finished")
		if best == nil || res.Inertia < best.Inertia {
			best = res
		}
	}

	return best, nil
}

// lloyd runs one seeded restart to convergence.
func (km *KMeans) lloyd(points [][]float64, rng *rand.Rand) *Result {
	n, d, k := len(points), len(points[0]), km.k
	centroids := seedPlusPlus(points, k, rng)
	labels := make([]int, n)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, d)
	}
	counts := make([]int, k)

	var it, i, c int
	var shift, moved float64
	for it = 1; it <= km.cfg.maxIter; it++ {
		for i = 0; i < n; i++ {
			labels[i], _ = nearest(points[i], centroids)
		}

		for c = 0; c < k; c++ {
			floats.Scale(0, sums[c])
			counts[c] = 0
		}
		for i = 0; i < n; i++ {
			floats.Add(sums[labels[i]], points[i])
			counts[labels[i]]++
		}

		shift = 0
		for c = 0; c < k; c++ {
			if counts[c] == 0 {
				i = farthest(points, labels, centroids)
				labels[i] = c
				copy(sums[c], points[i])
				counts[c] = 1
			}
			floats.Scale(1/float64(counts[c]), sums[c])
			moved = floats.Distance(sums[c], centroids[c], 2)
			shift = math.Max(shift, moved*moved)
			copy(centroids[c], sums[c])
		}
		if shift <= km.cfg.tolerance {
			break
		}
	}
	if it > km.cfg.maxIter {
		it = km.cfg.maxIter
	}

	var inertia, dist float64
	for i = 0; i < n; i++ {
		labels[i], dist = nearest(points[i], centroids)
		inertia += dist
	}

	return &Result{Labels: labels, Centroids: centroids, Inertia: inertia, Iterations: it}
}

// seedPlusPlus picks k initial centroids with the k-means++ rule.
// When every remaining point coincides with a chosen centroid the next pick is uniform.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, append([]float64(nil), points[rng.Intn(n)]...))

	d2 := make([]float64, n)
	var i int
	var total, target float64
	for len(centroids) < k {
		total = 0
		for i = 0; i < n; i++ {
			_, d2[i] = nearest(points[i], centroids)
			total += d2[i]
		}
		pick := rng.Intn(n)
		if total > 0 {
			target = rng.Float64() * total
			for i = 0; i < n; i++ {
				if target -= d2[i]; target < 0 {
					pick = i
					break
				}
			}
		}
		centroids = append(centroids, append([]float64(nil), points[pick]...))
	}

	return centroids
}

// nearest returns the index of the closest centroid and the squared distance.
func nearest(p []float64, centroids [][]float64) (int, float64) {
	best, bestD := 0, math.Inf(1)
	var dist float64
	for c, ctr := range centroids {
		dist = floats.Distance(p, ctr, 2)
		if dist*dist < bestD {
			best, bestD = c, dist*dist
		}
	}

	return best, bestD
}

// farthest returns the point farthest from its assigned centroid (first on ties).
func farthest(points [][]float64, labels []int, centroids [][]float64) int {
	arg, best := 0, -1.0
	var dist float64
	for i, p := range points {
		if dist = floats.Distance(p, centroids[labels[i]], 2); dist > best {
			arg, best = i, dist
		}
	}

	return arg
}
