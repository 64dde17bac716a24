package benchmark_test

import (
	"fmt"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard vector sizes in bits.
const (
	bitsSmall  = 1 << 10
	bitsMedium = 1 << 16
	bitsLarge  = 1 << 22 // 512 KiB packed
)

var sizes = []int{bitsSmall, bitsMedium, bitsLarge}

func sizeName(n int) string {
	return fmt.Sprintf("bits=%d", n)
}

// randomVector returns a vector of n bits, each On with probability density.
func randomVector(rng *testutil.RNG, n int, density float64) *bitvec.BitVector {
	return bitvec.FromBytes(testutil.Pack(rng.Sparse(n, density)), n)
}
