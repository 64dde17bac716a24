package bitvec

import "iter"

// All returns an iterator over index/bit pairs in ascending order.
func (v *BitVector) All() iter.Seq2[int, Bit] {
	return func(yield func(int, Bit) bool) {
		f := v.read()
		for i := 0; i < f.Len(); i++ {
			if !yield(i, BitFromBool(f.Get(i))) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/bit pairs in descending order.
func (v *BitVector) Backward() iter.Seq2[int, Bit] {
	return func(yield func(int, Bit) bool) {
		f := v.read()
		for i := f.Len() - 1; i >= 0; i-- {
			if !yield(i, BitFromBool(f.Get(i))) {
				return
			}
		}
	}
}

// Slice returns the bits of v as a new slice.
func (v *BitVector) Slice() []Bit {
	f := v.read()
	out := make([]Bit, f.Len())
	for i := range out {
		out[i] = BitFromBool(f.Get(i))
	}
	return out
}
