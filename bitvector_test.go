package bitvec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/testutil"
)

func bitsFromBools(bs []bool) []Bit {
	out := make([]Bit, len(bs))
	for i, b := range bs {
		out[i] = BitFromBool(b)
	}
	return out
}

func boolsOf(v *BitVector) []bool {
	out := make([]bool, v.Len())
	for i := range out {
		out[i] = v.Get(i).Bool()
	}
	return out
}

// requireViolation asserts that fn panics with an error wrapping target.
func requireViolation(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}

func TestFromBytes_ReadsMSBFirst(t *testing.T) {
	v := FromBytes([]byte{0b10110000}, 8)

	require.Equal(t, 8, v.Len())
	assert.Equal(t, On, v.Get(0))
	assert.Equal(t, Off, v.Get(1))
	assert.Equal(t, On, v.Get(2))
	assert.Equal(t, On, v.Get(3))
	for i := 4; i < 8; i++ {
		assert.Equal(t, Off, v.Get(i), "index %d", i)
	}
}

func TestFromBytes_Queries(t *testing.T) {
	v := FromBytes([]byte{0b10110000}, 8)

	assert.Equal(t, 3, v.CountOf(On))
	assert.Equal(t, 5, v.CountOf(Off))

	first, ok := v.FirstIndex(On)
	require.True(t, ok)
	assert.Equal(t, 0, first)

	last, ok := v.LastIndex(On)
	require.True(t, ok)
	assert.Equal(t, 3, last)
}

func TestFromBytes_CopiesInput(t *testing.T) {
	data := []byte{0xFF}
	v := FromBytes(data, 4)
	data[0] = 0

	assert.Equal(t, "1111", v.Bits())
}

func TestFromBytes_Violations(t *testing.T) {
	requireViolation(t, ErrNegativeLength, func() { FromBytes(nil, -1) })
	requireViolation(t, ErrOutOfRange, func() { FromBytes([]byte{0}, 9) })
}

func TestZeroValue(t *testing.T) {
	var v BitVector

	assert.Equal(t, 0, v.Len())
	assert.False(t, v.Contains(On))
	assert.Equal(t, "BitVector(count: 0, bits: )", v.String())

	v.Append(On, Off)
	assert.Equal(t, "10", v.Bits())
}

func TestClone_FlipOnCopyLeavesOriginal(t *testing.T) {
	a := FromBits(On, Off, On)
	b := a.Clone()

	b.FlipBit(0)

	assert.Equal(t, On, a.Get(0))
	assert.Equal(t, Off, b.Get(0))
}

func TestValueSemantics(t *testing.T) {
	ops := []struct {
		name string
		fn   func(v *BitVector)
	}{
		{"Set", func(v *BitVector) { v.Set(3, v.Get(3).Not()) }},
		{"SetLen grow", func(v *BitVector) { v.SetLen(v.Len() + 5) }},
		{"SetLen shrink", func(v *BitVector) { v.SetLen(2) }},
		{"FlipBit", func(v *BitVector) { v.FlipBit(7) }},
		{"FlipBits", func(v *BitVector) { v.FlipBits(Span(2, 11)) }},
		{"FlipAll", func(v *BitVector) { v.FlipAll() }},
		{"SetAll", func(v *BitVector) { v.SetAll(On) }},
		{"SetBits", func(v *BitVector) { v.SetBits(Span(0, 9), Off) }},
		{"ReplaceRange", func(v *BitVector) { v.ReplaceRange(Span(1, 4), []Bit{On, On, On, On, On}) }},
		{"Append", func(v *BitVector) { v.Append(On, On) }},
		{"AppendVector", func(v *BitVector) { v.AppendVector(v) }},
		{"Insert", func(v *BitVector) { v.Insert(0, On) }},
		{"Remove", func(v *BitVector) { v.Remove(5) }},
		{"RemoveRange", func(v *BitVector) { v.RemoveRange(Span(3, 12)) }},
		{"RemoveAll", func(v *BitVector) { v.RemoveAll() }},
		{"Release", func(v *BitVector) { v.Release() }},
	}

	rng := testutil.NewRNG(4711)
	ref := rng.Bools(20)

	sources := map[string]func() *BitVector{
		"owned":  func() *BitVector { return FromBits(bitsFromBools(ref)...) },
		"frozen": func() *BitVector { return FromBytes(testutil.Pack(ref), len(ref)) },
	}

	for srcName, mk := range sources {
		for _, op := range ops {
			t.Run(fmt.Sprintf("%s/%s", srcName, op.name), func(t *testing.T) {
				t.Run("mutate copy", func(t *testing.T) {
					a := mk()
					b := a.Clone()
					op.fn(b)
					assert.Equal(t, ref, boolsOf(a))
				})

				t.Run("mutate original", func(t *testing.T) {
					a := mk()
					b := a.Clone()
					op.fn(a)
					assert.Equal(t, ref, boolsOf(b))
				})
			})
		}
	}
}

func TestCopyElision_UniqueWritesNeverCopy(t *testing.T) {
	rng := testutil.NewRNG(1)
	v := FromBits(bitsFromBools(rng.Bools(64))...)

	for i := 0; i < 500; i++ {
		switch rng.Intn(5) {
		case 0:
			if v.Len() > 0 {
				v.FlipBit(rng.Intn(v.Len()))
			}
		case 1:
			lo, hi := rng.Span(v.Len())
			v.SetBits(Span(lo, hi), BitFromBool(rng.Bool()))
		case 2:
			v.Append(On)
		case 3:
			if v.Len() > 1 {
				v.Remove(rng.Intn(v.Len()))
			}
		default:
			lo, hi := rng.Span(v.Len())
			v.ReplaceRange(Span(lo, hi), bitsFromBools(rng.Bools(rng.Intn(4))))
		}
	}

	assert.Equal(t, 0, v.storage.Copies())
	assert.True(t, v.storage.Unique())
}

func TestCopyElision_FrozenThawsOnce(t *testing.T) {
	v := FromBytes([]byte{0xF0, 0x0F}, 16)
	require.True(t, v.storage.IsFrozen())

	_ = v.Get(3)
	_ = v.CountOf(On)
	assert.Equal(t, 0, v.storage.Copies())

	v.FlipBit(0)
	v.FlipBit(1)
	v.Append(On)

	assert.False(t, v.storage.IsFrozen())
	assert.Equal(t, 1, v.storage.Copies())
}

func TestCopyElision_SharedWriteCopiesOnce(t *testing.T) {
	a := FromBits(On, Off, On, Off)
	b := a.Clone()

	b.FlipBit(0)
	b.FlipBit(1)
	b.FlipBit(2)

	assert.Equal(t, 1, b.storage.Copies())
	assert.Equal(t, 0, a.storage.Copies())

	// b left the shared cell, so a writes in place.
	a.FlipBit(3)
	assert.Equal(t, 0, a.storage.Copies())

	// A clone of b has made no copies of its own.
	c := b.Clone()
	assert.Equal(t, 0, c.storage.Copies())
	c.FlipBit(0)
	assert.Equal(t, 1, c.storage.Copies())
	assert.Equal(t, 1, b.storage.Copies())
}

func TestRelease_RestoresUniqueness(t *testing.T) {
	a := FromBits(On, On)
	b := a.Clone()
	require.False(t, a.storage.Unique())

	b.Release()
	assert.Equal(t, 0, b.Len())

	a.FlipBit(0)
	assert.Equal(t, 0, a.storage.Copies())

	// A released vector is reusable.
	b.Append(Off)
	assert.Equal(t, "0", b.Bits())
}

func TestSetLen(t *testing.T) {
	v := FromBits(On, On, On)

	v.SetLen(10)
	assert.Equal(t, "1110000000", v.Bits())

	v.SetLen(2)
	assert.Equal(t, "11", v.Bits())

	// Bits dropped by a shrink do not reappear on growth.
	v.SetLen(3)
	assert.Equal(t, "110", v.Bits())

	requireViolation(t, ErrNegativeLength, func() { v.SetLen(-1) })
}

func TestGetSet_Violations(t *testing.T) {
	v := FromBits(On, Off)

	requireViolation(t, ErrOutOfRange, func() { v.Get(2) })
	requireViolation(t, ErrOutOfRange, func() { v.Get(-1) })
	requireViolation(t, ErrOutOfRange, func() { v.Set(2, On) })
	requireViolation(t, ErrOutOfRange, func() { v.FlipBit(5) })
	requireViolation(t, ErrInvalidRange, func() { v.FlipBits(Range{Lo: 2, Hi: 1}) })
	requireViolation(t, ErrOutOfRange, func() { v.SetBits(Span(0, 3), On) })
	requireViolation(t, ErrOutOfRange, func() { v.CountOfIn(On, Span(-1, 1)) })
	requireViolation(t, ErrShortBuffer, func() { FromBits(make([]Bit, 9)...).CopyBits(make([]byte, 1)) })

	// The failed set left v untouched.
	assert.Equal(t, "10", v.Bits())
}

func TestFlip_Idempotent(t *testing.T) {
	rng := testutil.NewRNG(7)
	ref := rng.Bools(77)
	v := FromBits(bitsFromBools(ref)...)

	for i := 0; i < 50; i++ {
		j := rng.Intn(len(ref))
		v.FlipBit(j)
		v.FlipBit(j)
		require.Equal(t, ref, boolsOf(v))

		lo, hi := rng.Span(len(ref))
		v.FlipBits(Span(lo, hi))
		v.FlipBits(Span(lo, hi))
		require.Equal(t, ref, boolsOf(v))
	}

	v.FlipAll()
	v.FlipAll()
	assert.Equal(t, ref, boolsOf(v))
}

func TestRangeQueries_AgreeWithLinearScan(t *testing.T) {
	rng := testutil.NewRNG(99)

	for iter := 0; iter < 100; iter++ {
		ref := rng.Sparse(rng.Intn(200), 0.1)
		v := FromBytes(testutil.Pack(ref), len(ref))
		lo, hi := rng.Span(len(ref))

		for _, b := range []Bit{Off, On} {
			count, first, last := 0, -1, -1
			for i := lo; i < hi; i++ {
				if BitFromBool(ref[i]) == b {
					count++
					if first < 0 {
						first = i
					}
					last = i
				}
			}

			r := Span(lo, hi)
			require.Equal(t, count, v.CountOfIn(b, r))
			require.Equal(t, count > 0, v.ContainsIn(b, r))

			gotFirst, ok := v.FirstIndexIn(b, r)
			require.Equal(t, first >= 0, ok)
			if ok {
				require.Equal(t, first, gotFirst)
			}

			gotLast, ok := v.LastIndexIn(b, r)
			require.Equal(t, last >= 0, ok)
			if ok {
				require.Equal(t, last, gotLast)
			}
		}

		total := 0
		for i := 0; i < v.Len(); i++ {
			if v.Get(i) == On {
				total++
			}
		}
		require.Equal(t, total, v.CountOf(On))
		require.Equal(t, v.Len()-total, v.CountOf(Off))
	}
}

func TestIndexSearch_Absent(t *testing.T) {
	v := FromBits(Off, Off, Off)

	_, ok := v.FirstIndex(On)
	assert.False(t, ok)
	_, ok = v.LastIndex(On)
	assert.False(t, ok)
	assert.False(t, v.Contains(On))

	_, ok = v.FirstIndexIn(Off, Span(1, 1))
	assert.False(t, ok)
}

func TestCopyBitsIn(t *testing.T) {
	v := FromBytes([]byte{0b10110110, 0b01000000}, 10)

	dst := []byte{0xFF, 0xFF}
	v.CopyBitsIn(Span(1, 10), dst)
	assert.Equal(t, []byte{0b01101100, 0b10000000}, dst)

	assert.Equal(t, []byte{0b10110110, 0b01000000}, v.Bytes())

	// An empty range writes nothing.
	v.CopyBitsIn(Span(4, 4), nil)
}

func TestEqualAndHash(t *testing.T) {
	a := FromBits(On, Off, On, On, Off, Off, Off, Off, On)
	b := FromBytes([]byte{0b10110000, 0b10000000}, 9)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := a.Clone()
	assert.True(t, a.Equal(c))

	c.FlipBit(8)
	assert.False(t, a.Equal(c))

	// Same bytes, different length.
	d := FromBytes([]byte{0b10110000, 0b10000000}, 10)
	assert.False(t, b.Equal(d))
	assert.NotEqual(t, b.Hash(), d.Hash())
}

func TestEqual_Nil(t *testing.T) {
	var none *BitVector
	v := New()

	assert.False(t, v.Equal(nil))
	assert.False(t, none.Equal(v))
	assert.True(t, none.Equal(nil))
}

func TestString(t *testing.T) {
	v := FromBits(On, Off, On)
	assert.Equal(t, "BitVector(count: 3, bits: 101)", v.String())
	assert.Equal(t, "BitVector(count: 3, bits: 101)", fmt.Sprint(v))
}

func TestIterators(t *testing.T) {
	v := FromBits(On, Off, Off, On)

	var fwd []Bit
	for i, b := range v.All() {
		assert.Equal(t, v.Get(i), b)
		fwd = append(fwd, b)
	}
	assert.Equal(t, []Bit{On, Off, Off, On}, fwd)

	var idx []int
	for i := range v.Backward() {
		idx = append(idx, i)
		if i == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 2}, idx)

	assert.Equal(t, fwd, v.Slice())
}

func TestViolationIsError(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrOutOfRange))
		assert.Contains(t, err.Error(), "bitvec:")
	}()
	New().Get(0)
}
