package charclass

// Class identifies one of the three ASCII character classes of the
// cell-reference grammar, or None for any byte outside all three.
type Class uint8

const (
	// None marks a byte that belongs to no class (invalid anywhere in a reference).
	None Class = iota
	// Lower is 'a'..'z': bijective base-26 segments.
	Lower
	// Digit is '0'..'9': 1-indexed decimal segments.
	Digit
	// Upper is 'A'..'Z': bijective base-26 segments.
	Upper
)

// String returns a short human-readable class name for diagnostics.
func (c Class) String() string {
	switch c {
	case Lower:
		return "lowercase"
	case Digit:
		return "digit"
	case Upper:
		return "uppercase"
	default:
		return "none"
	}
}

// Of classifies a single byte. Bytes outside the three ASCII ranges -
// including whitespace, control bytes, and every byte ≥ 0x80 - map to None.
// Complexity: O(1).
func Of(b byte) Class {
	switch {
	case b >= 'a' && b <= 'z':
		return Lower
	case b >= '0' && b <= '9':
		return Digit
	case b >= 'A' && b <= 'Z':
		return Upper
	default:
		return None
	}
}

// ForAxis returns the class a segment at the given zero-based axis position
// must use. The assignment is cyclic with period 3 (Lower, Digit, Upper,
// repeat) and never depends on runtime values. axis must be ≥ 0.
// Complexity: O(1).
func ForAxis(axis int) Class {
	switch axis % 3 {
	case 0:
		return Lower
	case 1:
		return Digit
	default:
		return Upper
	}
}
