// Package cow implements copy-on-write ownership for reference payloads.
//
// # Contracts
//
// A payload participates through small capability interfaces:
//
//   - Cloner: a mutable form that can produce an independent copy of itself.
//   - Thawer: an immutable form that can produce a private mutable copy.
//   - Mutable: a mutable form that is a Cloner and can also lend an
//     immutable view of itself without copying.
//
// # Box
//
// Box holds one mutable payload behind a reference-counted cell. Share is
// the explicit copy point: it hands out a second handle on the same cell.
// Read never copies. Write copies the payload into a fresh cell if and only
// if the cell is referenced more than once at the moment of the call.
//
// # Pair
//
// Pair starts from either form. In the frozen state it holds an immutable
// snapshot that is shared freely; the first Write thaws it into a Box
// (exactly one copy). From then on writes follow the Box rules.
//
// # Concurrency
//
// Reference counts are atomic, so handles on the same cell may live on
// different goroutines. A single handle must not be used by two goroutines
// at once, and a payload returned by Read must not be mutated.
package cow
