// Package testutil provides testing utilities for kets.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that generates random kets and bases
// in both representations.
//
// # Random Kets
//
//	rng := testutil.NewRNG(seed)
//	k := rng.LosslessKet(200)            // components in (-0.5, 0.5]
//	b := rng.LosslessBasis(30, 200)      // 30 kets of width 200
//	o := rng.OrthonormalBasis(30, 200)   // same, orthonormalized
//	c := rng.CompactBasis(30, 200)       // random magnitudes and phases
package testutil
