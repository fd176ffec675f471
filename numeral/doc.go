// Package numeral implements the three numeral systems behind cell-reference
// segments: bijective base-26 in lowercase, bijective base-26 in uppercase,
// and 1-indexed decimal.
//
// What
//
//	Each system is a bijection between an index value 0..255 and a non-empty
//	ASCII string of a single character class:
//
//	  - AppendLower / ParseLower — 'a'..'z', digits a=1..z=26, no digit for
//	    zero: a=0, z=25, aa=26, iv=255 (two letters at most for 0..255).
//	  - AppendUpper / ParseUpper — the same system over 'A'..'Z'.
//	  - AppendDecimal / ParseDecimal — the value is displayed as value+1 in
//	    ordinary base-10 with no leading zero: "1"=0, "256"=255.
//
//	Encoders are append-style: they write into a caller-supplied slice and
//	never allocate when capacity suffices. Decoders are total over arbitrary
//	byte slices and report ErrEmptySegment, ErrBadDigit, ErrLeadingZero, or
//	ErrValueRange.
//
// Why
//
//	Bijective numerals have no leading-zero degeneracy, so every value has
//	exactly one spelling and round-trips byte-for-byte. Range is enforced on
//	the decoded value, not on segment length: "iw" is a legal two-letter
//	string but decodes to 256 and is rejected with ErrValueRange.
//
// Complexity
//
//   - Time:   O(len(segment)); at most 2 letters or 3 digits for 0..255
//   - Memory: O(1), zero allocations on the encode path
package numeral
