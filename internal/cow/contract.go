package cow

// Cloner is a mutable payload that can produce an independent copy.
type Cloner[M any] interface {
	Clone() M
}

// Thawer is an immutable payload that can produce a private mutable copy.
type Thawer[M any] interface {
	MutableCopy() M
}

// Mutable is the mutable half of an immutable/mutable pair. Immutable must
// not copy; the returned view stays valid until the next mutation.
type Mutable[I, M any] interface {
	Cloner[M]
	Immutable() I
}
