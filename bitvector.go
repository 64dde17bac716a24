package bitvec

import (
	"github.com/hupe1980/bitvec/internal/bitbuf"
	"github.com/hupe1980/bitvec/internal/cow"
)

// BitVector is an ordered, resizable sequence of bits with value semantics.
//
// Clone is the copy operation: it is O(1) and shares storage with the
// original until either side writes. A BitVector must not be copied by
// assignment (v2 := *v); the copy would alias the original's storage.
//
// The zero value is an empty vector ready to use. A BitVector is not safe
// for concurrent mutation; distinct clones may be used from different
// goroutines.
type BitVector struct {
	storage cow.Pair[*bitbuf.Frozen, *bitbuf.Buffer]
}

var emptyFrozen = bitbuf.NewFrozen(nil, 0)

// New returns an empty vector.
func New() *BitVector {
	return &BitVector{storage: cow.NewPairOwned[*bitbuf.Frozen](bitbuf.NewBuffer(0))}
}

// FromBytes returns a vector holding the first n bits of data. Bits are
// numbered left to right: bit 0 is the most significant bit of data[0].
// data is copied. It panics if n is negative or exceeds 8*len(data).
func FromBytes(data []byte, n int) *BitVector {
	if n < 0 {
		violation(ErrNegativeLength, "%d", n)
	}
	if n > len(data)*8 {
		violation(ErrOutOfRange, "%d bits requested from %d bytes", n, len(data))
	}
	return &BitVector{storage: cow.NewPair[*bitbuf.Frozen, *bitbuf.Buffer](bitbuf.NewFrozen(data, n))}
}

// FromBits returns a vector holding bits in order.
func FromBits(bits ...Bit) *BitVector {
	buf := bitbuf.NewBuffer(len(bits))
	for i, b := range bits {
		if b == On {
			buf.Set(i, true)
		}
	}
	return &BitVector{storage: cow.NewPairOwned[*bitbuf.Frozen](buf)}
}

// Clone returns an independent copy of v. Storage is shared until one of
// the two is written.
func (v *BitVector) Clone() *BitVector {
	return &BitVector{storage: v.storage.Share()}
}

// Release drops v's claim on its storage and leaves v empty. Releasing a
// clone that is no longer needed lets the remaining holder write without
// copying.
func (v *BitVector) Release() {
	v.storage.Release()
}

// Len returns the number of bits.
func (v *BitVector) Len() int {
	return v.read().Len()
}

// SetLen resizes v to n bits. Growing appends Off bits; shrinking discards
// trailing bits. It panics if n is negative.
func (v *BitVector) SetLen(n int) {
	if n < 0 {
		violation(ErrNegativeLength, "%d", n)
	}
	if n == v.Len() {
		return
	}
	v.write().Resize(n)
}

// Get returns the bit at index i. It panics unless 0 <= i < Len().
func (v *BitVector) Get(i int) Bit {
	f := v.read()
	checkIndex(i, f.Len())
	return BitFromBool(f.Get(i))
}

// Set sets the bit at index i. It panics unless 0 <= i < Len().
func (v *BitVector) Set(i int, b Bit) {
	checkIndex(i, v.Len())
	v.write().Set(i, b == On)
}

// all returns the full extent of v.
func (v *BitVector) all() Range {
	return Range{Hi: v.Len()}
}

func (v *BitVector) read() *bitbuf.Frozen {
	if v.storage.IsZero() {
		return emptyFrozen
	}
	return v.storage.Read()
}

func (v *BitVector) write() *bitbuf.Buffer {
	if v.storage.IsZero() {
		v.storage = cow.NewPairOwned[*bitbuf.Frozen](bitbuf.NewBuffer(0))
	}
	return v.storage.Write()
}
