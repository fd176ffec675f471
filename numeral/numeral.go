package numeral

import "strconv"

const (
	alphaRadix = 26
	// maxDisplay is the largest legal pre-offset magnitude: value+1 for 255
	// in decimal, and the raw digit sum for "iv" in bijective base-26.
	maxDisplay = 256
)

// appendAlpha encodes v in bijective base-26 over the alphabet starting at
// base ('a' or 'A'). The loop operates on v+1: each step emits (n-1) mod 26
// as the next least-significant digit and continues with (n-1) div 26.
// Digits land tail-first in a fixed buffer, so dst receives them in order.
// Complexity: O(1) — at most MaxLetterLen iterations for a uint8.
func appendAlpha(dst []byte, v uint8, base byte) []byte {
	var buf [MaxLetterLen]byte
	i := MaxLetterLen
	for n := int(v) + 1; n > 0; n = (n - 1) / alphaRadix {
		i--
		buf[i] = base + byte((n-1)%alphaRadix)
	}

	return append(dst, buf[i:]...)
}

// parseAlpha decodes a bijective base-26 segment over the alphabet starting
// at base. The digit sum is accumulated most-significant-first and checked
// against maxDisplay on every step, so arbitrarily long segments cannot
// overflow. The decoded value is the digit sum minus 1.
func parseAlpha(seg []byte, base byte) (uint8, error) {
	if len(seg) == 0 {
		return 0, ErrEmptySegment
	}
	n := 0
	for _, c := range seg {
		if c < base || c >= base+alphaRadix {
			return 0, ErrBadDigit
		}
		n = n*alphaRadix + int(c-base) + 1
		if n > maxDisplay {
			return 0, ErrValueRange
		}
	}

	return uint8(n - 1), nil
}

// AppendLower appends the lowercase bijective base-26 encoding of v to dst
// and returns the extended slice. One letter for 0..25, two for 26..255.
// Never allocates when dst has spare capacity.
func AppendLower(dst []byte, v uint8) []byte {
	return appendAlpha(dst, v, 'a')
}

// ParseLower decodes a lowercase bijective base-26 segment ("a"=0 .. "iv"=255).
// Returns ErrEmptySegment, ErrBadDigit, or ErrValueRange ("iw" and beyond).
func ParseLower(seg []byte) (uint8, error) {
	return parseAlpha(seg, 'a')
}

// AppendUpper appends the uppercase bijective base-26 encoding of v to dst.
// Identical to AppendLower over the alphabet 'A'..'Z'.
func AppendUpper(dst []byte, v uint8) []byte {
	return appendAlpha(dst, v, 'A')
}

// ParseUpper decodes an uppercase bijective base-26 segment ("A"=0 .. "IV"=255).
func ParseUpper(seg []byte) (uint8, error) {
	return parseAlpha(seg, 'A')
}

// AppendDecimal appends the 1-indexed decimal encoding of v to dst: the
// ordinary base-10 spelling of v+1 ("1"=0 .. "256"=255).
func AppendDecimal(dst []byte, v uint8) []byte {
	return strconv.AppendUint(dst, uint64(v)+1, 10)
}

// ParseDecimal decodes a 1-indexed decimal segment. A leading '0' is its own
// condition (ErrLeadingZero), reported before any range logic; a display
// value above 256 yields ErrValueRange. The decoded value is display-1.
func ParseDecimal(seg []byte) (uint8, error) {
	if len(seg) == 0 {
		return 0, ErrEmptySegment
	}
	if seg[0] == '0' {
		return 0, ErrLeadingZero
	}
	n := 0
	for _, c := range seg {
		if c < '0' || c > '9' {
			return 0, ErrBadDigit
		}
		n = n*10 + int(c-'0')
		if n > maxDisplay {
			return 0, ErrValueRange
		}
	}

	return uint8(n - 1), nil
}
