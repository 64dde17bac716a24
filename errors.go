package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the panic value (wrapped) for an index or range that
	// lies outside the vector, and the error returned when a position does
	// not fit the target representation.
	ErrOutOfRange = errors.New("bitvec: index out of range")

	// ErrInvalidRange is the panic value (wrapped) for a range whose lower
	// bound exceeds its upper bound.
	ErrInvalidRange = errors.New("bitvec: invalid range")

	// ErrInvalidBit is the panic value (wrapped) for an integer other than
	// 0 or 1 used where a Bit is required.
	ErrInvalidBit = errors.New("bitvec: invalid bit value")

	// ErrShortBuffer is the panic value (wrapped) for a destination buffer
	// too small to receive the requested bits.
	ErrShortBuffer = errors.New("bitvec: short buffer")

	// ErrNegativeLength is returned (or panicked, wrapped) for a negative
	// bit count.
	ErrNegativeLength = errors.New("bitvec: negative length")
)

// Contract violations are programmer errors and fail fast. The panic value
// is an error wrapping one of the sentinels above, so a recover site can
// still use errors.Is.
func violation(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...))
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		violation(ErrOutOfRange, "index %d, length %d", i, n)
	}
}

func checkRange(r Range, n int) {
	if r.Lo > r.Hi {
		violation(ErrInvalidRange, "[%d, %d)", r.Lo, r.Hi)
	}
	if r.Lo < 0 || r.Hi > n {
		violation(ErrOutOfRange, "range [%d, %d), length %d", r.Lo, r.Hi, n)
	}
}
