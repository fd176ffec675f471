// Package numeral: sentinel errors and segment-width constants.
package numeral

import "errors"

// Maximum segment widths for the representable range 0..255.
const (
	// MaxLetterLen is the widest bijective base-26 segment for 0..255 ("iv").
	MaxLetterLen = 2
	// MaxDecimalLen is the widest 1-indexed decimal segment for 0..255 ("256").
	MaxDecimalLen = 3
)

// Sentinel errors for segment decoding. Decoders return these unwrapped;
// callers match them with errors.Is.
var (
	// ErrEmptySegment is returned when a decoder receives zero bytes.
	ErrEmptySegment = errors.New("numeral: empty segment")

	// ErrBadDigit is returned when a byte falls outside the system's alphabet.
	ErrBadDigit = errors.New("numeral: byte outside numeral alphabet")

	// ErrLeadingZero is returned by ParseDecimal when the segment starts with
	// '0'. Checked before any range logic: a display value cannot be zero in
	// a 1-indexed system, so this is its own condition, not a range failure.
	ErrLeadingZero = errors.New("numeral: decimal segment starts with zero")

	// ErrValueRange is returned when a well-formed segment decodes to a value
	// above 255. Range is checked on the decoded value, never via length.
	ErrValueRange = errors.New("numeral: decoded value exceeds 255")
)
