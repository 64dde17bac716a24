// Package hash provides the CRC32-Castagnoli checksum that protects encoded
// bit vectors.
//
// Go's hash/crc32 uses SSE4.2 or the ARM CRC extension for the Castagnoli
// polynomial when the CPU has it, so the table is built once and shared.
//
//	sum := hash.CRC32C(payload)
//	if !hash.Verify(payload, sum) { ... }
package hash
