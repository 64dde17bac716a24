package bitvec

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether v and o hold the same bits, whether or not they
// share storage. A nil vector equals only nil.
func (v *BitVector) Equal(o *BitVector) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	return v.read().Equal(o.read())
}

// Hash returns a structural hash: equal vectors hash equally.
func (v *BitVector) Hash() uint64 {
	f := v.read()

	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(f.Len()))

	d := xxhash.New()
	_, _ = d.Write(n[:])
	_, _ = d.Write(f.Packed())
	return d.Sum64()
}

// Bits renders v as a string of '0' and '1' characters. It is O(n).
func (v *BitVector) Bits() string {
	return v.read().String()
}

// String describes v. It is O(n).
func (v *BitVector) String() string {
	f := v.read()
	return fmt.Sprintf("BitVector(count: %d, bits: %s)", f.Len(), f.String())
}
