package cow

import "fmt"

// state is either *frozen or *thawed.
type state[I any] interface {
	immutable() I
}

type frozen[I any] struct {
	snapshot I
}

func (s *frozen[I]) immutable() I {
	return s.snapshot
}

type thawed[I any, M Mutable[I, M]] struct {
	box Box[M]
}

func (s *thawed[I, M]) immutable() I {
	return s.box.Read().Immutable()
}

// Pair is copy-on-write storage over an immutable/mutable pair.
//
// A Pair is frozen (an immutable snapshot, no box) or thawed (a Box holding
// the mutable form). It only moves from frozen to thawed.
type Pair[I Thawer[M], M Mutable[I, M]] struct {
	state state[I]
	thaws int
}

// NewPair returns a frozen Pair over snapshot. Nothing is copied.
func NewPair[I Thawer[M], M Mutable[I, M]](snapshot I) Pair[I, M] {
	return Pair[I, M]{state: &frozen[I]{snapshot: snapshot}}
}

// NewPairOwned returns a thawed Pair that takes ownership of m without
// copying. m must not be reachable from anywhere else.
func NewPairOwned[I Thawer[M], M Mutable[I, M]](m M) Pair[I, M] {
	return Pair[I, M]{state: &thawed[I, M]{box: NewBox(m)}}
}

// NewPairCopy returns a thawed Pair holding a private copy of m.
func NewPairCopy[I Thawer[M], M Mutable[I, M]](m M) Pair[I, M] {
	return NewPairOwned[I](m.Clone())
}

// Read returns the immutable form without copying.
func (p *Pair[I, M]) Read() I {
	if p.state == nil {
		var zero I
		return zero
	}
	return p.state.immutable()
}

// Write returns a mutable form owned exclusively by p.
//
// A frozen Pair is thawed first: the snapshot is copied once into a new
// Box, which is unique and needs no further copy.
func (p *Pair[I, M]) Write() M {
	switch s := p.state.(type) {
	case *thawed[I, M]:
		return s.box.Write()
	case *frozen[I]:
		t := &thawed[I, M]{box: NewBox(s.snapshot.MutableCopy())}
		p.state = t
		p.thaws++
		return t.box.Read()
	default:
		panic("cow: write to an empty pair")
	}
}

// Share returns a second Pair over the same storage. The two diverge on
// their next Write.
func (p *Pair[I, M]) Share() Pair[I, M] {
	if t, ok := p.state.(*thawed[I, M]); ok {
		return Pair[I, M]{state: &thawed[I, M]{box: t.box.Share()}}
	}
	return Pair[I, M]{state: p.state}
}

// Release drops p's reference to its storage and leaves p empty.
func (p *Pair[I, M]) Release() {
	if t, ok := p.state.(*thawed[I, M]); ok {
		t.box.Release()
	}
	p.state = nil
}

// IsZero reports whether p holds no storage.
func (p *Pair[I, M]) IsZero() bool {
	return p.state == nil
}

// IsFrozen reports whether p still holds its immutable snapshot.
func (p *Pair[I, M]) IsFrozen() bool {
	_, ok := p.state.(*frozen[I])
	return ok
}

// Unique reports whether a Write would proceed without copying.
func (p *Pair[I, M]) Unique() bool {
	t, ok := p.state.(*thawed[I, M])
	return ok && t.box.Unique()
}

// Copies returns the number of payload copies made through p: the thaw,
// if any, plus every copy-on-write of the box.
func (p *Pair[I, M]) Copies() int {
	n := p.thaws
	if t, ok := p.state.(*thawed[I, M]); ok {
		n += t.box.Copies()
	}
	return n
}

func (p *Pair[I, M]) String() string {
	return fmt.Sprint(p.Read())
}
