package cell

import (
	"github.com/katalvlaran/cellref/charclass"
	"github.com/katalvlaran/cellref/numeral"
)

// AppendText appends the canonical encoding of r to dst and returns the
// extended slice. Segments are emitted in axis order with no separators;
// output length is MinEncodedLen..MaxEncodedLen and uniquely determined by
// r. Returns ErrAxisCount for the zero Ref; a Ref built by New, Parse, or
// MustParse always encodes.
// Complexity: O(Axes()); zero allocations when dst has spare capacity.
func (r Ref) AppendText(dst []byte) ([]byte, error) {
	if r.n == 0 || r.n > MaxAxes {
		return dst, ErrAxisCount
	}
	for axis := 0; axis < int(r.n); axis++ {
		switch charclass.ForAxis(axis) {
		case charclass.Lower:
			dst = numeral.AppendLower(dst, r.axes[axis])
		case charclass.Digit:
			dst = numeral.AppendDecimal(dst, r.axes[axis])
		default:
			dst = numeral.AppendUpper(dst, r.axes[axis])
		}
	}

	return dst, nil
}

// String implements fmt.Stringer. The zero Ref renders as "" since Stringer
// has no error channel; use Format or AppendText to observe ErrAxisCount.
func (r Ref) String() string {
	var buf [MaxEncodedLen]byte
	out, err := r.AppendText(buf[:0])
	if err != nil {
		return ""
	}

	return string(out)
}

// Format encodes r into a fresh string. The explicit-error counterpart of
// Ref.String for callers that may hold a zero Ref.
func Format(r Ref) (string, error) {
	var buf [MaxEncodedLen]byte
	out, err := r.AppendText(buf[:0])
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// MarshalText implements encoding.TextMarshaler, so Refs embed directly in
// JSON, YAML, or any text-based host serialization.
func (r Ref) MarshalText() ([]byte, error) {
	return r.AppendText(make([]byte, 0, MaxEncodedLen))
}

// UnmarshalText implements encoding.TextUnmarshaler; it is ParseBytes with
// in-place assignment. On error the receiver is left unchanged.
func (r *Ref) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}
