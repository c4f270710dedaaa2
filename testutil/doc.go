// Package testutil provides testing utilities for taxa.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for labels and split masks.
//
//	rng := testutil.NewRNG(4711)
//	labels := rng.Labels(50, 20)   // 50 labels, some repeated
//	split := rng.Split(50)         // random mask over 50 taxa
package testutil
