package bitvec

import "fmt"

// Range is a half-open interval [Lo, Hi) of bit positions.
type Range struct {
	Lo int
	Hi int
}

// Span returns the Range [lo, hi).
func Span(lo, hi int) Range {
	return Range{Lo: lo, Hi: hi}
}

// Len returns the number of positions in r.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// IsEmpty reports whether r contains no positions.
func (r Range) IsEmpty() bool {
	return r.Hi <= r.Lo
}

// Contains reports whether i lies in r.
func (r Range) Contains(i int) bool {
	return i >= r.Lo && i < r.Hi
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Lo, r.Hi)
}
