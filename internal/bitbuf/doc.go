// Package bitbuf provides the dense storage behind a bit vector.
//
// Bits are packed most-significant-bit first: bit 0 is the high bit of
// byte 0, bit 8 the high bit of byte 1, and so on. This is the same layout
// the public constructors accept, so a byte buffer can be adopted with a
// single copy.
//
// Two forms exist:
//
//   - Frozen: read-only and freely shareable. MutableCopy produces a
//     privately owned Buffer.
//   - Buffer: privately owned and mutable. Immutable lends a read-only view
//     of the same bytes without copying; Clone produces an independent copy.
//
// Both forms keep the padding bits of the last byte (positions >= Len)
// cleared, so growing appends off bits and byte-wise comparison is exact.
//
// Callers are responsible for bounds checking; out-of-range positions fail
// with the runtime's slice index panic.
package bitbuf
