package testutil

import (
	"math/rand"
	"sync"
)

// RNG wraps a seeded generator. It is safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates an RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // test data
		seed: seed,
	}
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Bools returns n pseudo-random booleans.
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// Sparse returns n booleans, each true with probability p.
func (r *RNG) Sparse(n int, p float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < p
	}
	return out
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, n)
	_, _ = r.rand.Read(out)
	return out
}

// Span returns a random half-open range lo <= hi within [0, n].
func (r *RNG) Span(n int) (lo, hi int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lo = r.rand.Intn(n + 1)
	hi = lo + r.rand.Intn(n-lo+1)
	return lo, hi
}

// Pack packs bits MSB first, the layout bitvec uses for byte buffers.
func Pack(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}

// Splice returns a copy of ref with [lo, hi) replaced by repl.
func Splice(ref []bool, lo, hi int, repl []bool) []bool {
	out := make([]bool, 0, len(ref)-(hi-lo)+len(repl))
	out = append(out, ref[:lo]...)
	out = append(out, repl...)
	return append(out, ref[hi:]...)
}
