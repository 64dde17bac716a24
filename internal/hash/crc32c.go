package hash

import (
	"hash"
	"hash/crc32"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// CRC32C returns the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// Update returns the checksum of crc's input followed by data.
func Update(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, castagnoli, data)
}

// Verify reports whether data has checksum want.
func Verify(data []byte, want uint32) bool {
	return CRC32C(data) == want
}

// NewCRC32C returns a streaming CRC32-Castagnoli hash.
func NewCRC32C() hash.Hash32 {
	return crc32.New(castagnoli)
}
