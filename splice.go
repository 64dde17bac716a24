package bitvec

// ReplaceRange replaces the bits in r with bits, growing or shrinking v by
// the difference in length. It panics if r is not within [0, Len()].
//
// The tail after r is shifted in place. When shrinking, sources are visited
// in ascending order so each is read before the gap closes over it; when
// growing, in descending order so each is read before the shifted tail
// reaches it.
func (v *BitVector) ReplaceRange(r Range, bits []Bit) {
	n := v.Len()
	checkRange(r, n)
	if r.IsEmpty() && len(bits) == 0 {
		return
	}

	buf := v.write()

	switch d := len(bits) - r.Len(); {
	case d < 0:
		d = -d
		for src := r.Hi; src < n; src++ {
			buf.Set(src-d, buf.Get(src))
		}
		buf.Resize(n - d)
	case d > 0:
		buf.Resize(n + d)
		for src := n - 1; src >= r.Hi; src-- {
			buf.Set(src+d, buf.Get(src))
		}
	}

	for k, b := range bits {
		buf.Set(r.Lo+k, b == On)
	}
}

// Append adds bits to the end of v.
func (v *BitVector) Append(bits ...Bit) {
	n := v.Len()
	v.ReplaceRange(Range{Lo: n, Hi: n}, bits)
}

// AppendVector adds the bits of o to the end of v. o may be v itself.
func (v *BitVector) AppendVector(o *BitVector) {
	v.Append(o.Slice()...)
}

// Insert inserts bits before index i. i may equal Len().
func (v *BitVector) Insert(i int, bits ...Bit) {
	v.ReplaceRange(Range{Lo: i, Hi: i}, bits)
}

// Remove deletes and returns the bit at index i.
func (v *BitVector) Remove(i int) Bit {
	b := v.Get(i)
	v.ReplaceRange(Range{Lo: i, Hi: i + 1}, nil)
	return b
}

// RemoveRange deletes the bits in r.
func (v *BitVector) RemoveRange(r Range) {
	v.ReplaceRange(r, nil)
}

// RemoveAll deletes every bit.
func (v *BitVector) RemoveAll() {
	v.SetLen(0)
}
