package bitvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitvec/internal/bitbuf"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/internal/cow"
)

// ToRoaring returns a bitmap holding the indices of the On bits of v.
// It fails with ErrOutOfRange if an index does not fit uint32.
func (v *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	f := v.read()
	rb := roaring.New()

	n := f.Len()
	if last := f.Last(0, n, true); last >= 0 {
		if _, err := conv.IntToUint32(last); err != nil {
			return nil, fmt.Errorf("%w: index %d does not fit uint32", ErrOutOfRange, last)
		}
	}

	for i := f.First(0, n, true); i >= 0; i = f.First(i+1, n, true) {
		rb.Add(uint32(i)) //nolint:gosec // bounded by the check above
	}
	rb.RunOptimize()
	return rb, nil
}

// FromRoaring returns a vector of n bits where the indices in rb are On.
// It fails with ErrNegativeLength if n is negative and ErrOutOfRange if rb
// holds an index >= n.
func FromRoaring(rb *roaring.Bitmap, n int) (*BitVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	buf := bitbuf.NewBuffer(n)
	if rb != nil && !rb.IsEmpty() {
		maxIdx, err := conv.Uint32ToInt(rb.Maximum())
		if err != nil || maxIdx >= n {
			return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, rb.Maximum(), n)
		}

		it := rb.Iterator()
		for it.HasNext() {
			buf.Set(int(it.Next()), true)
		}
	}
	return &BitVector{storage: cow.NewPairOwned[*bitbuf.Frozen](buf)}, nil
}
