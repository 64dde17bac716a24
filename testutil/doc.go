// Package testutil provides helpers for randomized tests of bit vectors.
//
// It deliberately works on plain []bool and index pairs so that any package,
// including bitvec's own internals, can use it without an import cycle.
//
//	rng := testutil.NewRNG(4711)
//	ref := rng.Bools(128)          // reference model
//	lo, hi := rng.Span(len(ref))   // random half-open range
package testutil
