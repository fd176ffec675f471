// Package charclass classifies single ASCII bytes into the three character
// classes of the cell-reference grammar and assigns a class to each axis
// position.
//
// What
//
//   - Of(b) maps one byte to Lower ('a'..'z'), Digit ('0'..'9'),
//     Upper ('A'..'Z'), or None (everything else, including control bytes,
//     whitespace, punctuation, and all non-ASCII bytes).
//   - ForAxis(axis) maps a zero-based axis index to the class its segment
//     must use: axes 0,3,6,… are Lower, 1,4,7,… are Digit, 2,5,8,… are Upper.
//
// Why
//
//	Cell references carry no separators between axis segments; segment
//	boundaries are recoverable only because adjacent axes use disjoint
//	character classes and the assignment is strictly cyclic. Both the parser
//	and the formatter in package cell key every decision off these two
//	functions, so the grammar lives in exactly one place.
//
// Determinism
//
//	Both functions are pure: no state, no allocation, no dependence on
//	locale or runtime values. ForAxis depends only on axis mod 3.
//
// Complexity
//
//   - Time:   O(1) per call
//   - Memory: O(1), zero allocations
package charclass
