package bitvec

// Contains reports whether b occurs anywhere in v.
func (v *BitVector) Contains(b Bit) bool {
	return v.ContainsIn(b, v.all())
}

// ContainsIn reports whether b occurs in r.
func (v *BitVector) ContainsIn(b Bit, r Range) bool {
	_, ok := v.FirstIndexIn(b, r)
	return ok
}

// CountOf returns the number of occurrences of b in v.
func (v *BitVector) CountOf(b Bit) int {
	return v.CountOfIn(b, v.all())
}

// CountOfIn returns the number of occurrences of b in r.
func (v *BitVector) CountOfIn(b Bit, r Range) int {
	f := v.read()
	checkRange(r, f.Len())

	on := f.Count(r.Lo, r.Hi)
	if b == On {
		return on
	}
	return r.Len() - on
}

// FirstIndex returns the lowest index holding b. ok is false if b does not
// occur.
func (v *BitVector) FirstIndex(b Bit) (int, bool) {
	return v.FirstIndexIn(b, v.all())
}

// FirstIndexIn returns the lowest index in r holding b.
func (v *BitVector) FirstIndexIn(b Bit, r Range) (int, bool) {
	f := v.read()
	checkRange(r, f.Len())

	i := f.First(r.Lo, r.Hi, b == On)
	return i, i >= 0
}

// LastIndex returns the highest index holding b. ok is false if b does not
// occur.
func (v *BitVector) LastIndex(b Bit) (int, bool) {
	return v.LastIndexIn(b, v.all())
}

// LastIndexIn returns the highest index in r holding b.
func (v *BitVector) LastIndexIn(b Bit, r Range) (int, bool) {
	f := v.read()
	checkRange(r, f.Len())

	i := f.Last(r.Lo, r.Hi, b == On)
	return i, i >= 0
}

// CopyBits packs all bits of v into dst, most significant bit first.
// dst must hold at least (Len()+7)/8 bytes.
func (v *BitVector) CopyBits(dst []byte) {
	v.CopyBitsIn(v.all(), dst)
}

// CopyBitsIn packs the bits in r into dst, starting at the most significant
// bit of dst[0]. Unused low bits of the last written byte are cleared.
func (v *BitVector) CopyBitsIn(r Range, dst []byte) {
	f := v.read()
	checkRange(r, f.Len())
	if need := (r.Len() + 7) / 8; len(dst) < need {
		violation(ErrShortBuffer, "need %d bytes, got %d", need, len(dst))
	}
	f.CopyBits(r.Lo, r.Hi, dst)
}

// Bytes returns the bits of v packed most significant bit first.
func (v *BitVector) Bytes() []byte {
	dst := make([]byte, (v.Len()+7)/8)
	v.CopyBits(dst)
	return dst
}
