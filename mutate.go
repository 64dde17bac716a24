package bitvec

// FlipBit toggles the bit at index i.
func (v *BitVector) FlipBit(i int) {
	checkIndex(i, v.Len())
	v.write().Flip(i)
}

// FlipBits toggles every bit in r.
func (v *BitVector) FlipBits(r Range) {
	checkRange(r, v.Len())
	if r.IsEmpty() {
		return
	}
	v.write().FlipRange(r.Lo, r.Hi)
}

// FlipAll toggles every bit.
func (v *BitVector) FlipAll() {
	v.FlipBits(v.all())
}

// SetAll sets every bit to b.
func (v *BitVector) SetAll(b Bit) {
	v.SetBits(v.all(), b)
}

// SetBits sets every bit in r to b.
func (v *BitVector) SetBits(r Range, b Bit) {
	checkRange(r, v.Len())
	if r.IsEmpty() {
		return
	}
	v.write().SetRange(r.Lo, r.Hi, b == On)
}
