// SPDX-License-Identifier: MIT
// Package: linproj/kmeans
//
// rng.go — deterministic random streams for seeding and restarts.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A KMeans owns its base stream;
//     every restart draws from its own derived stream.

package kmeans

import "math/rand"

// defaultRNGSeed is used when no seed or source is configured, or seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates the stream for one restart. base.Int63() is consumed once,
// so the sequence of derived streams is itself reproducible from base.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), stream)))
}
