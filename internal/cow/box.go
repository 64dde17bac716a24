package cow

import (
	"fmt"
	"sync/atomic"
)

type cell[M any] struct {
	refs  atomic.Int64
	value M
}

func newCell[M any](v M) *cell[M] {
	c := &cell[M]{value: v}
	c.refs.Store(1) // Initial ref
	return c
}

// Box is a copy-on-write handle on a mutable payload.
//
// The zero Box holds nothing; use NewBox.
type Box[M Cloner[M]] struct {
	c      *cell[M]
	copies int
}

// NewBox wraps v in a fresh, uniquely referenced cell.
func NewBox[M Cloner[M]](v M) Box[M] {
	return Box[M]{c: newCell(v)}
}

// Read returns the payload without copying. The caller must not mutate it.
func (b *Box[M]) Read() M {
	return b.c.value
}

// Write returns a payload owned exclusively by this handle, copying it
// first if the cell is shared.
func (b *Box[M]) Write() M {
	if b.c.refs.Load() > 1 {
		next := newCell(b.c.value.Clone())
		b.c.refs.Add(-1)
		b.c = next
		b.copies++
	}
	return b.c.value
}

// Share returns a second handle on the same cell. The new handle has made
// no copies yet.
func (b *Box[M]) Share() Box[M] {
	b.c.refs.Add(1)
	return Box[M]{c: b.c}
}

// Release drops this handle's reference. It is safe to call more than once.
func (b *Box[M]) Release() {
	if b.c == nil {
		return
	}
	b.c.refs.Add(-1)
	b.c = nil
}

// Unique reports whether this handle is the only reference to its cell.
func (b *Box[M]) Unique() bool {
	return b.c.refs.Load() == 1
}

// Refs returns the current reference count of the cell.
func (b *Box[M]) Refs() int64 {
	if b.c == nil {
		return 0
	}
	return b.c.refs.Load()
}

// Copies returns how many times Write had to copy through this handle.
func (b *Box[M]) Copies() int {
	return b.copies
}

// IsZero reports whether b holds no cell.
func (b *Box[M]) IsZero() bool {
	return b.c == nil
}

func (b *Box[M]) String() string {
	if b.c == nil {
		return "<released>"
	}
	return fmt.Sprint(b.c.value)
}
