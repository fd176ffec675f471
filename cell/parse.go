package cell

import (
	"fmt"

	"github.com/katalvlaran/cellref/charclass"
	"github.com/katalvlaran/cellref/numeral"
)

// scan is the single traversal behind Parse and Validate: it segments the
// input by character class, decodes each segment, and writes the result into
// out. Checks run in the documented priority order, so every bad input hits
// exactly one sentinel. Validation and parsing accept and reject exactly the
// same strings because there is no second code path.
// Complexity: O(len(in)), len(in) ≤ MaxEncodedLen; zero allocations.
func scan(in []byte, out *Ref) error {
	switch {
	case len(in) == 0:
		return ErrEmptyInput
	case len(in) > MaxEncodedLen:
		return ErrInputTooLong
	}
	if charclass.Of(in[0]) != charclass.Lower {
		return ErrInvalidStart
	}

	axis, cur := 0, 0
	for cur < len(in) {
		// A fourth segment is over-dimensioned no matter what its bytes are.
		if axis == MaxAxes {
			return ErrTooManyDimensions
		}
		want := charclass.ForAxis(axis)
		if charclass.Of(in[cur]) != want {
			return ErrUnexpectedChar
		}
		if want == charclass.Digit && in[cur] == '0' {
			return ErrLeadingZero
		}

		// Consume the maximal run of the expected class: the axis segment.
		end := cur + 1
		for end < len(in) && charclass.Of(in[end]) == want {
			end++
		}

		var (
			v   uint8
			err error
		)
		switch want {
		case charclass.Lower:
			v, err = numeral.ParseLower(in[cur:end])
		case charclass.Digit:
			v, err = numeral.ParseDecimal(in[cur:end])
		default:
			v, err = numeral.ParseUpper(in[cur:end])
		}
		if err != nil {
			// The run is non-empty, class-pure, and zero-checked, so the
			// decoder can only fail on the decoded value's range.
			return ErrIndexOutOfRange
		}

		out.axes[axis] = v
		axis++
		cur = end
	}
	out.n = uint8(axis)

	return nil
}

// ParseBytes decodes a complete reference from b into a Ref.
// On failure the Ref is the zero value and the error is one of the seven
// parse sentinels (see types.go for the priority order).
func ParseBytes(b []byte) (Ref, error) {
	var r Ref
	if err := scan(b, &r); err != nil {
		return Ref{}, err
	}

	return r, nil
}

// Parse decodes a complete reference string into a Ref.
func Parse(s string) (Ref, error) {
	return ParseBytes([]byte(s))
}

// MustParse is Parse for literals: it panics on any parse error. Intended
// for package-level variables, where a malformed literal should fail at
// program start rather than surface as a runtime error path.
func MustParse(s string) Ref {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("cell: MustParse(%q): %v", s, err))
	}

	return r
}

// Validate checks s against the reference grammar without producing a Ref.
// It runs the exact traversal Parse runs and returns the same error for the
// same input, or nil.
func Validate(s string) error {
	var sink Ref

	return scan([]byte(s), &sink)
}

// IsValid reports whether s is a well-formed reference, discarding the
// error detail.
func IsValid(s string) bool {
	return Validate(s) == nil
}
