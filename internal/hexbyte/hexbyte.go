// Package hexbyte decodes and encodes the two-digit hexadecimal byte groups
// used by hex color notation.
package hexbyte

// Expand doubles every digit of a 3- or 4-digit shorthand string
// ("abc" -> "aabbcc"). Other lengths are returned unchanged.
func Expand(s string) string {
	if len(s) != 3 && len(s) != 4 {
		return s
	}
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		out = append(out, s[i], s[i])
	}
	return string(out)
}

// Parse decodes an expanded hex string into bytes, two digits per byte.
// It reports false if the length is odd or any digit is not hexadecimal.
func Parse(s string) ([]uint8, bool) {
	if len(s)%2 != 0 {
		return nil, false
	}
	out := make([]uint8, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok1 := nibble(s[i])
		lo, ok2 := nibble(s[i+1])
		if !ok1 || !ok2 {
			return nil, false
		}
		out = append(out, hi<<4|lo)
	}
	return out, true
}

// nibble is a helper for hex parsing
func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

const digits = "0123456789abcdef"

// Format renders v as two lowercase hex digits. Values outside [0, 255]
// are clamped.
func Format(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}
