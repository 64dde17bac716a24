package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/testutil"
)

func TestReplaceRange_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		with []Bit
		want string
	}{
		{"grow by one", Span(1, 3), []Bit{Off, Off, Off}, "100000000"},
		{"shrink by three", Span(2, 6), []Bit{On}, "11100"},
		{"equal size", Span(3, 5), []Bit{On, On}, "11111000"},
		{"delete prefix", Span(0, 2), nil, "100000"},
		{"insert at end", Span(8, 8), []Bit{On}, "111000001"},
		{"replace everything", Span(0, 8), []Bit{Off}, "0"},
		{"noop", Span(4, 4), nil, "11100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromBits(On, On, On, Off, Off, Off, Off, Off)
			v.ReplaceRange(tt.r, tt.with)
			assert.Equal(t, tt.want, v.Bits())
			assert.Equal(t, len(tt.want), v.Len())
		})
	}
}

func TestReplaceRange_ShrinkShiftsTailLeft(t *testing.T) {
	v := FromBits(On, On, On, Off, Off, Off, Off, Off)
	v.ReplaceRange(Span(2, 6), []Bit{On})

	require.Equal(t, 5, v.Len())
	assert.Equal(t, On, v.Get(2))
	// Former indices 6 and 7 now sit at 3 and 4.
	assert.Equal(t, Off, v.Get(3))
	assert.Equal(t, Off, v.Get(4))
}

func TestReplaceRange_MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for iter := 0; iter < 500; iter++ {
		ref := rng.Bools(rng.Intn(70))
		lo, hi := rng.Span(len(ref))
		repl := rng.Bools(rng.Intn(20))

		want := testutil.Splice(ref, lo, hi, repl)

		for _, frozen := range []bool{false, true} {
			var v *BitVector
			if frozen {
				v = FromBytes(testutil.Pack(ref), len(ref))
			} else {
				v = FromBits(bitsFromBools(ref)...)
			}

			v.ReplaceRange(Span(lo, hi), bitsFromBools(repl))
			require.Equal(t, want, boolsOf(v), "ref=%v range=[%d,%d) repl=%v", ref, lo, hi, repl)

			// Padding stays clear, so a rebuilt vector compares equal.
			require.True(t, v.Equal(FromBits(bitsFromBools(want)...)))
		}
	}
}

func TestReplaceRange_Violations(t *testing.T) {
	v := FromBits(On, Off)

	requireViolation(t, ErrOutOfRange, func() { v.ReplaceRange(Span(1, 3), nil) })
	requireViolation(t, ErrInvalidRange, func() { v.ReplaceRange(Range{Lo: 2, Hi: 0}, nil) })
	requireViolation(t, ErrOutOfRange, func() { v.Insert(3, On) })
	requireViolation(t, ErrOutOfRange, func() { v.Remove(2) })
}

func TestAppendInsertRemove(t *testing.T) {
	v := New()

	v.Append(On, Off)
	v.Insert(1, On, On)
	assert.Equal(t, "1110", v.Bits())

	assert.Equal(t, On, v.Remove(0))
	assert.Equal(t, "110", v.Bits())

	v.AppendVector(FromBytes([]byte{0x80}, 2))
	assert.Equal(t, "11010", v.Bits())

	v.AppendVector(v)
	assert.Equal(t, "1101011010", v.Bits())

	v.RemoveRange(Span(2, 8))
	assert.Equal(t, "1110", v.Bits())

	v.RemoveAll()
	assert.Equal(t, 0, v.Len())
}

func TestReplaceRange_SharedStorage(t *testing.T) {
	a := FromBits(On, Off, On, Off)
	b := a.Clone()

	b.ReplaceRange(Span(0, 4), []Bit{Off})

	assert.Equal(t, "1010", a.Bits())
	assert.Equal(t, "0", b.Bits())
	assert.Equal(t, 1, b.storage.Copies())
}
