// Package cell is a bidirectional codec between compact ASCII cell
// references and fixed-size board coordinates of one to three axes, each
// axis indexed 0..255.
//
// What
//
//   - Ref — an opaque, comparable coordinate value: 1–3 axes, each 0..255.
//   - Parse / ParseBytes — decode a full reference string into a Ref.
//   - Validate / IsValid — the same traversal without producing a value.
//   - Format / Ref.String / Ref.AppendText — encode a Ref back to bytes.
//   - MustParse — panic-on-error parsing for literals in package variables.
//
// Grammar
//
// References carry no separators; adjacent axes use disjoint character
// classes, cyclically assigned by position, and that alone makes segment
// boundaries recoverable:
//
//	coordinate := axis1 [ axis2 [ axis3 ] ]
//	axis1      := 'a'..'z'{1,2}            bijective base-26, values 0..255
//	axis2      := nonzero_digit digit*     decimal spelling of value+1, 1..3 digits
//	axis3      := 'A'..'Z'{1,2}            bijective base-26, values 0..255
//
// "c" is axis 0 = 2; "c8" adds axis 1 = 7; "c8B" adds axis 2 = 1. The
// longest producible reference is "iv256IV" (255,255,255), 7 bytes, and any
// input over 7 bytes is rejected outright. Encoding is canonical: every Ref
// has exactly one spelling and every valid string round-trips byte-for-byte.
//
// Errors
//
// All failures are expected, recoverable conditions reported through seven
// sentinels, checked in a fixed priority order (see types.go) so every bad
// input maps to exactly one error. Match with errors.Is; collapse to a bool
// with IsValid.
//
// Concurrency
//
//	Every operation is a pure function over its inputs: no shared state, no
//	I/O, no mutation outside the return value. Calls are safe from any
//	number of goroutines with no synchronization.
//
// Complexity
//
//   - Time:   O(len(input)), bounded by 7 bytes — effectively constant
//   - Memory: O(1); Parse, Validate, and AppendText stay allocation-free
//     (AppendText given spare capacity)
package cell
