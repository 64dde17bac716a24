package bitvec

import (
	"cmp"
	"fmt"
)

// Bit is a single binary value.
type Bit uint8

const (
	// Off is the zero bit.
	Off Bit = 0
	// On is the one bit.
	On Bit = 1
)

// Integer is the set of integer types a Bit can be decoded from.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// BitFromBool returns On for true and Off for false.
func BitFromBool(b bool) Bit {
	if b {
		return On
	}
	return Off
}

// BitFromInt decodes 0 and 1. Any other value yields ok == false.
func BitFromInt[T Integer](v T) (bit Bit, ok bool) {
	switch v {
	case 0:
		return Off, true
	case 1:
		return On, true
	default:
		return Off, false
	}
}

// MustBit decodes 0 and 1 and panics on any other value.
func MustBit[T Integer](v T) Bit {
	b, ok := BitFromInt(v)
	if !ok {
		violation(ErrInvalidBit, "%v", v)
	}
	return b
}

// Flip toggles b in place.
func (b *Bit) Flip() {
	*b ^= 1
}

// IsOn reports whether b is On.
func (b Bit) IsOn() bool {
	return b == On
}

// IsOff reports whether b is Off.
func (b Bit) IsOff() bool {
	return b == Off
}

// Bool returns b as a boolean.
func (b Bit) Bool() bool {
	return b == On
}

// Int returns 0 or 1.
func (b Bit) Int() int {
	return int(b)
}

// Not returns the complement of b.
func (b Bit) Not() Bit {
	return b ^ 1
}

// And returns b AND o.
func (b Bit) And(o Bit) Bit {
	return b & o
}

// Or returns b OR o.
func (b Bit) Or(o Bit) Bit {
	return b | o
}

// Xor returns b XOR o.
func (b Bit) Xor(o Bit) Bit {
	return b ^ o
}

// Compare returns -1, 0 or +1. Off orders before On.
func (b Bit) Compare(o Bit) int {
	return cmp.Compare(b, o)
}

func (b Bit) String() string {
	if b == On {
		return "1"
	}
	return "0"
}

// MarshalText implements encoding.TextMarshaler.
func (b Bit) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "0" and "1".
func (b *Bit) UnmarshalText(text []byte) error {
	switch string(text) {
	case "0":
		*b = Off
	case "1":
		*b = On
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBit, text)
	}
	return nil
}
