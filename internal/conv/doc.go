// Package conv provides checked integer conversions.
//
// Bit counts and positions travel through fixed-width fields (uint32 roaring
// positions, uint32/uint64 frame headers) and come back from untrusted
// bytes. Every narrowing or sign-changing conversion on those paths goes
// through this package so an out-of-range value surfaces as an error
// wrapping ErrOverflow instead of silently wrapping around.
package conv
