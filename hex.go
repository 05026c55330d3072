package colorfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/colorfmt/internal/hexbyte"
	"github.com/gogpu/colorfmt/internal/hsl"
)

// hexColor is a decoded hex string.
type hexColor struct {
	r, g, b  uint8
	alpha    float64
	hasAlpha bool
}

// decodeHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'. Shorthand digits are doubled. An embedded alpha byte becomes
// byte/255.
func decodeHex(s string) (hexColor, error) {
	hex := strings.TrimPrefix(normalize(s), "#")

	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return hexColor{}, invalid(s, "hex color must have 3, 4, 6 or 8 digits, got %d", len(hex))
	}

	b, ok := hexbyte.Parse(hexbyte.Expand(hex))
	if !ok {
		return hexColor{}, invalid(s, "non-hexadecimal digit")
	}

	c := hexColor{r: b[0], g: b[1], b: b[2]}
	if len(b) == 4 {
		c.alpha = float64(b[3]) / 255
		c.hasAlpha = true
	}
	return c, nil
}

// HexToRGBA converts a hex color to "rgb(r, g, b)" or "rgba(r, g, b, a)".
//
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each optionally
// prefixed with '#'. [WithAlpha] overrides an embedded alpha. Without either
// the result is the three-channel rgb form. Any other length returns an
// error wrapping [ErrInvalidFormat].
func HexToRGBA(hex string, opts ...Option) (string, error) {
	c, err := decodeHex(hex)
	if err != nil {
		return "", err
	}
	a, hasAlpha := buildOptions(opts).pick(c.alpha, c.hasAlpha)
	return formatRGB(float64(c.r), float64(c.g), float64(c.b), a, hasAlpha), nil
}

// HexToHSLA converts a hex color to "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)".
// Hue is in [0, 360); hue, saturation and lightness are rounded to integers.
// Alpha precedence is the same as [HexToRGBA].
func HexToHSLA(hex string, opts ...Option) (string, error) {
	c, err := decodeHex(hex)
	if err != nil {
		return "", err
	}
	h, s, l := hsl.FromRGB(float64(c.r)/255, float64(c.g)/255, float64(c.b)/255)
	a, hasAlpha := buildOptions(opts).pick(c.alpha, c.hasAlpha)
	return formatHSL(h, s, l, a, hasAlpha), nil
}

// num formats v in its shortest round-trip decimal form.
func num(v float64) string {
	if v == 0 {
		// Drop the sign of negative zero.
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRGB(r, g, b, a float64, hasAlpha bool) string {
	if hasAlpha {
		return fmt.Sprintf("rgba(%s, %s, %s, %s)", num(r), num(g), num(b), num(a))
	}
	return fmt.Sprintf("rgb(%s, %s, %s)", num(r), num(g), num(b))
}

// formatHSL rounds h (degrees) and s, l (fractions) to integer degrees and
// percentages.
func formatHSL(h, s, l, a float64, hasAlpha bool) string {
	H := num(hsl.Round(h))
	S := num(hsl.Round(s * 100))
	L := num(hsl.Round(l * 100))
	if hasAlpha {
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", H, S, L, num(a))
	}
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", H, S, L)
}

// alphaByte converts alpha in [0, 1] to a two-digit hex byte.
func alphaByte(a float64) string {
	return hexbyte.Format(int(hsl.Round(a * 255)))
}
