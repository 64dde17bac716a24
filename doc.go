// Package bitvec provides a resizable bit vector with value semantics and
// copy-on-write storage.
//
// Cloning a vector is O(1). The clone and the original share storage until
// one of them writes; only then is the storage duplicated, and only if it is
// still shared at that moment. A vector that is never shared is never
// copied.
//
// # Quick Start
//
//	v := bitvec.FromBits(bitvec.On, bitvec.Off, bitvec.On)
//	w := v.Clone()      // O(1), shares storage
//	w.Set(1, bitvec.On) // w copies once, v is unchanged
//	fmt.Println(v.Bits(), w.Bits()) // 101 111
//
// # Byte Buffers
//
// Bits are numbered left to right: bit 0 is the most significant bit of the
// first byte. FromBytes wraps a copy of a byte buffer as a frozen snapshot;
// the first write thaws it into a mutable buffer.
//
//	v := bitvec.FromBytes([]byte{0xE0}, 3) // 111
//	dst := make([]byte, 1)
//	v.CopyBitsIn(bitvec.Span(1, 3), dst)   // dst[0] == 0xC0
//
// # Splicing
//
// ReplaceRange replaces a subrange with a bit sequence of any length,
// shifting the tail in place. Append, Insert, Remove and RemoveRange are
// built on it.
//
// # Contract Violations
//
// Out-of-range indices, inverted ranges, negative lengths and short
// destination buffers are programmer errors: they panic with an error that
// wraps ErrOutOfRange, ErrInvalidRange, ErrNegativeLength or ErrShortBuffer.
// Searches that find nothing return (-1, false) and never panic.
//
// # Persistence
//
// The codec package frames a vector as bytes (optionally LZ4 or ZSTD
// compressed, CRC32C protected). The store package saves named vectors to
// any blobstore.BlobStore: memory, local disk, S3, S3 with a DynamoDB
// commit log, or MinIO.
//
// # Concurrency
//
// A BitVector has a single mutator. Distinct clones of one vector may be
// used from different goroutines.
package bitvec
