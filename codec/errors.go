package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned for data that is not a well-formed frame.
	ErrInvalidFormat = errors.New("codec: invalid format")

	// ErrChecksum is returned when the decoded bytes do not match the stored
	// checksum.
	ErrChecksum = errors.New("codec: checksum mismatch")

	// ErrUnsupportedVersion is returned for a frame written by a newer
	// format version.
	ErrUnsupportedVersion = errors.New("codec: unsupported version")

	// ErrUnknownCompression is returned when encoding with a compression
	// this package does not implement.
	ErrUnknownCompression = errors.New("codec: unknown compression")
)

// ErrLengthMismatch indicates that a length recorded in the header does not
// agree with the data. It wraps ErrInvalidFormat.
type ErrLengthMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("codec: %s length mismatch: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidFormat }
