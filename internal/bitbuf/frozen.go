package bitbuf

import (
	"bytes"
	"fmt"
	"math/bits"
)

// Frozen is the immutable form of a bit sequence.
type Frozen struct {
	data []byte
	n    int
}

// NewFrozen copies the first n bits of src into a new Frozen.
// It panics if n is negative or src holds fewer than n bits.
func NewFrozen(src []byte, n int) *Frozen {
	if n < 0 || n > len(src)*8 {
		panic(fmt.Sprintf("bitbuf: %d bits requested from a %d byte buffer", n, len(src)))
	}

	data := make([]byte, byteLen(n))
	copy(data, src)
	clearTail(data, n)

	return &Frozen{data: data, n: n}
}

// Len returns the number of bits.
func (f *Frozen) Len() int {
	return f.n
}

// Get reports whether bit i is on.
func (f *Frozen) Get(i int) bool {
	return f.data[i>>3]&mask(i) != 0
}

// Count returns the number of on bits in [lo, hi).
func (f *Frozen) Count(lo, hi int) int {
	c := 0
	for ; lo < hi && lo&7 != 0; lo++ {
		if f.Get(lo) {
			c++
		}
	}
	for ; lo+8 <= hi; lo += 8 {
		c += bits.OnesCount8(f.data[lo>>3])
	}
	for ; lo < hi; lo++ {
		if f.Get(lo) {
			c++
		}
	}
	return c
}

// First returns the lowest position in [lo, hi) whose bit equals on, or -1.
func (f *Frozen) First(lo, hi int, on bool) int {
	for i := lo; i < hi; {
		if i&7 == 0 && i+8 <= hi {
			b := f.data[i>>3]
			if !on {
				b = ^b
			}
			if b == 0 {
				i += 8
				continue
			}
			return i + bits.LeadingZeros8(b)
		}
		if f.Get(i) == on {
			return i
		}
		i++
	}
	return -1
}

// Last returns the highest position in [lo, hi) whose bit equals on, or -1.
func (f *Frozen) Last(lo, hi int, on bool) int {
	for i := hi - 1; i >= lo; {
		// i is the last bit of its byte and the whole byte is in range.
		if i&7 == 7 && i-7 >= lo {
			b := f.data[i>>3]
			if !on {
				b = ^b
			}
			if b == 0 {
				i -= 8
				continue
			}
			return i - bits.TrailingZeros8(b)
		}
		if f.Get(i) == on {
			return i
		}
		i--
	}
	return -1
}

// CopyBits packs the bits in [lo, hi) into dst, MSB first, starting at the
// high bit of dst[0]. Unused low bits of the last written byte are cleared.
// It panics if dst is shorter than the packed length.
func (f *Frozen) CopyBits(lo, hi int, dst []byte) {
	n := hi - lo
	nb := byteLen(n)
	if len(dst) < nb {
		panic(fmt.Sprintf("bitbuf: destination holds %d bytes, %d required", len(dst), nb))
	}

	src := lo >> 3
	shift := uint(lo & 7)
	for k := 0; k < nb; k++ {
		b := f.data[src+k] << shift
		if shift != 0 && src+k+1 < len(f.data) {
			b |= f.data[src+k+1] >> (8 - shift)
		}
		dst[k] = b
	}
	clearTail(dst[:nb], n)
}

// Packed returns the packed bytes. The slice aliases the storage and must
// not be modified.
func (f *Frozen) Packed() []byte {
	return f.data
}

// Equal reports whether f and o hold the same bit sequence.
func (f *Frozen) Equal(o *Frozen) bool {
	return f.n == o.n && bytes.Equal(f.data, o.data)
}

// MutableCopy returns a privately owned Buffer holding the same bits.
func (f *Frozen) MutableCopy() *Buffer {
	return &Buffer{Frozen: Frozen{data: bytes.Clone(f.data), n: f.n}}
}

// String renders the bits as '0' and '1' characters.
func (f *Frozen) String() string {
	var sb bytes.Buffer
	sb.Grow(f.n)
	for i := 0; i < f.n; i++ {
		if f.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func byteLen(n int) int {
	return (n + 7) >> 3
}

func mask(i int) byte {
	return 0x80 >> uint(i&7)
}

// clearTail zeroes the padding bits after position n in the last byte.
func clearTail(data []byte, n int) {
	if r := n & 7; r != 0 {
		data[n>>3] &= byte(0xFF << (8 - uint(r)))
	}
}
