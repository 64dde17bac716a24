package bitbuf

import (
	"bytes"
	"fmt"
)

// Buffer is the mutable form of a bit sequence.
//
// It embeds the read side, so every Frozen query is available on a Buffer
// directly.
type Buffer struct {
	Frozen
}

// NewBuffer returns a Buffer of n off bits.
func NewBuffer(n int) *Buffer {
	if n < 0 {
		panic(fmt.Sprintf("bitbuf: negative length %d", n))
	}
	return &Buffer{Frozen: Frozen{data: make([]byte, byteLen(n)), n: n}}
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{Frozen: Frozen{data: bytes.Clone(b.data), n: b.n}}
}

// Immutable returns a read-only view of b without copying.
// The view reflects later mutations of b.
func (b *Buffer) Immutable() *Frozen {
	return &b.Frozen
}

// Set sets bit i.
func (b *Buffer) Set(i int, on bool) {
	if on {
		b.data[i>>3] |= mask(i)
	} else {
		b.data[i>>3] &^= mask(i)
	}
}

// Flip toggles bit i.
func (b *Buffer) Flip(i int) {
	b.data[i>>3] ^= mask(i)
}

// SetRange sets every bit in [lo, hi).
func (b *Buffer) SetRange(lo, hi int, on bool) {
	for ; lo < hi && lo&7 != 0; lo++ {
		b.Set(lo, on)
	}

	var fill byte
	if on {
		fill = 0xFF
	}
	for ; lo+8 <= hi; lo += 8 {
		b.data[lo>>3] = fill
	}

	for ; lo < hi; lo++ {
		b.Set(lo, on)
	}
}

// FlipRange toggles every bit in [lo, hi).
func (b *Buffer) FlipRange(lo, hi int) {
	for ; lo < hi && lo&7 != 0; lo++ {
		b.Flip(lo)
	}
	for ; lo+8 <= hi; lo += 8 {
		b.data[lo>>3] ^= 0xFF
	}
	for ; lo < hi; lo++ {
		b.Flip(lo)
	}
}

// SetAll sets every bit.
func (b *Buffer) SetAll(on bool) {
	b.SetRange(0, b.n, on)
}

// Resize changes the length to n. Growing appends off bits; shrinking
// discards trailing bits.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bitbuf: negative length %d", n))
	}

	nb := byteLen(n)
	switch {
	case n < b.n:
		clear(b.data[nb:])
		b.data = b.data[:nb]
		b.n = n
		clearTail(b.data, n)
	case n > b.n:
		b.data = append(b.data, make([]byte, nb-len(b.data))...)
		b.n = n
	}
}
