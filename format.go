package colorfmt

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/colorfmt/internal/hsl"
)

// Format identifies a color notation.
type Format uint8

const (
	// FormatHex is "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
	FormatHex Format = iota

	// FormatRGB is "rgb(r, g, b)" or "rgba(r, g, b, a)".
	FormatRGB

	// FormatHSL is "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)".
	FormatHSL
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as printed by [Format.String]. The
// "rgba" and "hsla" spellings are accepted too.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex":
		return FormatHex, nil
	case "rgb", "rgba":
		return FormatRGB, nil
	case "hsl", "hsla":
		return FormatHSL, nil
	}
	return 0, fmt.Errorf("colorfmt: unknown format %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(b []byte) error {
	v, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Detect reports the notation of s. Color keywords report [FormatHex],
// since [Convert] resolves them to hex first.
func Detect(s string) (Format, error) {
	f, _, err := resolve(s)
	return f, err
}

// resolve detects the notation and returns the string the conversions
// should consume, with keywords replaced by their hex form.
func resolve(s string) (Format, string, error) {
	n := normalize(s)
	switch {
	case strings.HasPrefix(n, "#"):
		return FormatHex, s, nil
	case strings.HasPrefix(n, "rgb(") || strings.HasPrefix(n, "rgba("):
		return FormatRGB, s, nil
	case strings.HasPrefix(n, "hsl(") || strings.HasPrefix(n, "hsla("):
		return FormatHSL, s, nil
	case isNamed(n):
		hex, err := NamedToHex(n)
		return FormatHex, hex, err
	case isBareHex(n):
		return FormatHex, s, nil
	}
	return 0, "", invalid(s, "unrecognized color notation")
}

func isBareHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// Convert converts a color in any supported notation, or a color keyword,
// to the target format.
//
// Hex and RGB targets pivot through hex: RGB sources go through
// [RGBAToHex], HSL sources through [HSLAToHex] (degree hues), and the result
// is a hex re-encode or [HexToRGBA]. HSL targets are canonical: the hue is a
// whole degree in [0, 360) and saturation and lightness are whole
// percentages in [0, 100]. HSL sources reach that form without leaving HSL,
// so their alpha (including 0) survives. [WithAlpha] applies to the final
// step.
//
// For every target the output is a fixed point:
// Convert(Convert(s, to, opts...), to, opts...) equals Convert(s, to, opts...).
func Convert(s string, to Format, opts ...Option) (string, error) {
	out, err := convert(s, to, opts)
	if err != nil {
		Logger().Debug("rejected color", slog.String("input", s), slog.String("to", to.String()), slog.Any("error", err))
		return "", err
	}
	return out, nil
}

func convert(s string, to Format, opts []Option) (string, error) {
	from, src, err := resolve(s)
	if err != nil {
		return "", err
	}
	if to == FormatHSL {
		return toHSL(from, src, opts)
	}

	var hex string
	switch from {
	case FormatHex:
		// Validates and canonicalizes shorthand and case.
		rgba, err := HexToRGBA(src)
		if err != nil {
			return "", err
		}
		hex, err = RGBAToHex(rgba)
		if err != nil {
			return "", err
		}
	case FormatRGB:
		hex, err = RGBAToHex(src)
	case FormatHSL:
		hex, err = HSLAToHex(src)
	}
	if err != nil {
		return "", err
	}

	switch to {
	case FormatHex:
		rgba, err := HexToRGBA(hex, opts...)
		if err != nil {
			return "", err
		}
		return RGBAToHex(rgba)
	case FormatRGB:
		return HexToRGBA(hex, opts...)
	}
	return "", fmt.Errorf("colorfmt: unknown target format %d", to)
}

// toHSL produces canonical HSL. HSL sources are rounded and wrapped in
// place; a round trip through hex would move them by the rounding drift of
// integer HSL.
func toHSL(from Format, src string, opts []Option) (string, error) {
	var (
		h, s, l  float64
		alpha    float64
		hasAlpha bool
	)
	switch from {
	case FormatHSL:
		c, err := parseFunctional(src)
		if err != nil {
			return "", err
		}
		h, s, l = c.v[0], c.v[1]/100, c.v[2]/100
		alpha, hasAlpha = c.alpha, c.hasAlpha
	case FormatRGB:
		hex, err := RGBAToHex(src)
		if err != nil {
			return "", err
		}
		return toHSL(FormatHex, hex, opts)
	default:
		c, err := decodeHex(src)
		if err != nil {
			return "", err
		}
		h, s, l = hsl.FromRGB(float64(c.r)/255, float64(c.g)/255, float64(c.b)/255)
		alpha, hasAlpha = c.alpha, c.hasAlpha
	}
	h, s, l = hsl.Canonical(h, s, l)
	a, ok := buildOptions(opts).pick(alpha, hasAlpha)
	return formatHSL(h, s, l, a, ok), nil
}
