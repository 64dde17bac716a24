// Package codec encodes bit vectors as self-describing binary frames.
//
// A frame is a fixed 28-byte little-endian header followed by the payload:
//
//	offset size field
//	0      4    magic "BVEC"
//	4      1    format version (1)
//	5      1    compression (0 none, 1 LZ4 block, 2 ZSTD)
//	6      2    reserved, zero
//	8      8    bit count
//	16     4    raw length in bytes, (bit count + 7) / 8
//	20     4    payload length in bytes
//	24     4    CRC32-Castagnoli of the raw bytes
//	28     ...  payload
//
// The raw bytes are the vector packed most significant bit first. When the
// requested compression does not bring the payload below 90% of the raw
// size, the raw bytes are stored and the compression field is 0.
//
// Changing the frame layout is a breaking change: bump the version.
package codec
