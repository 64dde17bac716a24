package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/internal/hash"
)

const (
	// Version is the frame format version written by Marshal.
	Version = 1

	headerSize = 28
)

var magic = []byte("BVEC")

// Codec encodes and decodes bit vectors. The zero value writes
// uncompressed frames. A Codec is safe for concurrent use.
type Codec struct {
	Compression Compression
}

// Default compresses with LZ4.
var Default = Codec{Compression: CompressionLZ4}

// ByName returns the codec with the given stable name.
func ByName(name string) (Codec, bool) {
	c, ok := ParseCompression(name)
	return Codec{Compression: c}, ok
}

// Name returns the stable name of the codec ("none", "lz4" or "zstd").
func (c Codec) Name() string {
	return c.Compression.String()
}

// Marshal encodes v as a frame.
func (c Codec) Marshal(v *bitvec.BitVector) ([]byte, error) {
	raw := v.Bytes()

	bits, err := conv.IntToUint64(v.Len())
	if err != nil {
		return nil, err
	}
	rawLen, err := conv.IntToUint32(len(raw))
	if err != nil {
		return nil, fmt.Errorf("codec: vector too large: %w", err)
	}

	payload, used, err := compress(raw, c.Compression)
	if err != nil {
		return nil, err
	}
	payloadLen, err := conv.IntToUint32(len(payload))
	if err != nil {
		return nil, fmt.Errorf("codec: payload too large: %w", err)
	}

	out := make([]byte, headerSize+len(payload))
	copy(out[0:4], magic)
	out[4] = Version
	out[5] = byte(used)
	binary.LittleEndian.PutUint64(out[8:], bits)
	binary.LittleEndian.PutUint32(out[16:], rawLen)
	binary.LittleEndian.PutUint32(out[20:], payloadLen)
	binary.LittleEndian.PutUint32(out[24:], hash.CRC32C(raw))
	copy(out[headerSize:], payload)

	return out, nil
}

// Unmarshal decodes a frame. The returned vector owns its storage and does
// not alias data.
func (c Codec) Unmarshal(data []byte) (*bitvec.BitVector, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	raw, err := decompress(data[headerSize:], h.compression, h.rawLen)
	if err != nil {
		return nil, err
	}
	if !hash.Verify(raw, h.checksum) {
		return nil, ErrChecksum
	}

	return bitvec.FromBytes(raw, h.bits), nil
}

// Info describes a frame without decoding its payload.
type Info struct {
	Version     uint8
	Compression Compression
	Bits        int
	RawSize     int
	PayloadSize int
	Checksum    uint32
}

// Inspect parses and validates the header of data.
func Inspect(data []byte) (Info, error) {
	h, err := parseHeader(data)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Version:     data[4],
		Compression: h.compression,
		Bits:        h.bits,
		RawSize:     h.rawLen,
		PayloadSize: len(data) - headerSize,
		Checksum:    h.checksum,
	}, nil
}

type header struct {
	compression Compression
	bits        int
	rawLen      int
	checksum    uint32
}

func parseHeader(data []byte) (header, error) {
	if len(data) < headerSize {
		return header{}, fmt.Errorf("%w: %d bytes, header needs %d", ErrInvalidFormat, len(data), headerSize)
	}
	if !bytes.Equal(data[0:4], magic) {
		return header{}, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, data[0:4])
	}
	if v := data[4]; v != Version {
		return header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	comp := Compression(data[5])
	if comp > CompressionZSTD {
		return header{}, fmt.Errorf("%w: compression %d", ErrInvalidFormat, comp)
	}
	if binary.LittleEndian.Uint16(data[6:]) != 0 {
		return header{}, fmt.Errorf("%w: reserved bytes set", ErrInvalidFormat)
	}

	bits, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(data[8:]))
	if err != nil {
		return header{}, fmt.Errorf("%w: bit count: %w", ErrInvalidFormat, err)
	}
	rawLen, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[16:]))
	if err != nil {
		return header{}, fmt.Errorf("%w: raw length: %w", ErrInvalidFormat, err)
	}
	if want := (bits + 7) / 8; rawLen != want {
		return header{}, &ErrLengthMismatch{Field: "raw", Expected: want, Actual: rawLen}
	}
	payloadLen, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[20:]))
	if err != nil {
		return header{}, fmt.Errorf("%w: payload length: %w", ErrInvalidFormat, err)
	}
	if got := len(data) - headerSize; got != payloadLen {
		return header{}, &ErrLengthMismatch{Field: "payload", Expected: payloadLen, Actual: got}
	}

	return header{
		compression: comp,
		bits:        bits,
		rawLen:      rawLen,
		checksum:    binary.LittleEndian.Uint32(data[24:]),
	}, nil
}
