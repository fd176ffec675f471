// Package cell: the Ref coordinate type, size constants, and the sentinel
// error set. All codec functions return these sentinels unwrapped; tests and
// callers match them via errors.Is.
package cell

import "errors"

// Structural limits of the reference grammar.
const (
	// MaxAxes is the maximum number of coordinate axes.
	MaxAxes = 3
	// MinEncodedLen is the shortest reference ("a" — a single axis at 0).
	MinEncodedLen = 1
	// MaxEncodedLen is the longest reference ("iv256IV" — 255,255,255):
	// 2 lowercase + 3 digit + 2 uppercase bytes.
	MaxEncodedLen = 7
)

// Sentinel errors, listed in the priority order the scanner checks them:
// whole-input conditions first (empty, too long, bad first byte), then
// per-segment conditions in traversal order (axis overflow, wrong class,
// leading zero, decoded range). Exactly one applies to any bad input.
var (
	// ErrEmptyInput is returned for a zero-length input.
	ErrEmptyInput = errors.New("cell: empty input")

	// ErrInputTooLong is returned when the input exceeds MaxEncodedLen bytes,
	// before any byte is inspected.
	ErrInputTooLong = errors.New("cell: input exceeds 7 bytes")

	// ErrInvalidStart is returned when the first byte is not lowercase —
	// every reference opens with its first-axis letter segment.
	ErrInvalidStart = errors.New("cell: reference must start with a lowercase letter")

	// ErrTooManyDimensions is returned when bytes remain after three complete
	// axis segments. Reported without classifying the trailing byte.
	ErrTooManyDimensions = errors.New("cell: more than 3 axis segments")

	// ErrUnexpectedChar is returned when a byte has no class or does not
	// match the class the current axis position demands.
	ErrUnexpectedChar = errors.New("cell: byte does not match the class expected at its position")

	// ErrLeadingZero is returned when a digit segment opens with '0'.
	// Detected before the segment is consumed; distinct from range failure.
	ErrLeadingZero = errors.New("cell: digit segment starts with zero")

	// ErrIndexOutOfRange is returned when a well-formed segment decodes to a
	// value above 255 (e.g. "iw" or "257"). Range is enforced on the decoded
	// value, not on segment length.
	ErrIndexOutOfRange = errors.New("cell: axis index exceeds 255")

	// ErrAxisCount is returned by New, Format, and the marshaling surface
	// when a Ref holds no axes (the zero value) or was asked to hold more
	// than MaxAxes. A caller error, never produced by parsing.
	ErrAxisCount = errors.New("cell: axis count must be between 1 and 3")
)

// Ref is a board coordinate: 1–3 axes, each a zero-based index 0..255.
// The zero value holds no axes and cannot be formatted; obtain a Ref from
// New, Parse, or MustParse. Refs are comparable with ==: unpopulated slots
// are always zero, so equal coordinates compare equal.
type Ref struct {
	axes [MaxAxes]uint8
	n    uint8
}

// New builds a Ref from 1–3 axis values in axis order.
// Returns ErrAxisCount for zero values or more than MaxAxes.
// Values cannot be out of range by construction (uint8).
func New(values ...uint8) (Ref, error) {
	if len(values) == 0 || len(values) > MaxAxes {
		return Ref{}, ErrAxisCount
	}
	var r Ref
	r.n = uint8(len(values))
	copy(r.axes[:], values)

	return r, nil
}

// Axes reports how many axes the Ref holds (0 only for the zero value).
func (r Ref) Axes() int {
	return int(r.n)
}

// At returns the value stored at the given zero-based axis.
// Panics if axis is outside [0, Axes()): indexing past the populated axes is
// a programmer error, same policy as slice indexing.
func (r Ref) At(axis int) uint8 {
	if axis < 0 || axis >= int(r.n) {
		panic("cell: axis out of range")
	}

	return r.axes[axis]
}
