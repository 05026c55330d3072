package colorfmt

import (
	"github.com/gogpu/colorfmt/internal/hexbyte"
	"github.com/gogpu/colorfmt/internal/hsl"
)

// RGBAToHex converts "rgb(r, g, b)" or "rgba(r, g, b, a)" to "#rrggbb" or
// "#rrggbbaa".
//
// Channels are rounded and clamped to 0..255. The alpha byte is
// round(a*255), where a comes from [WithAlpha] or else the fourth value of
// the input. Fewer than three numbers returns an error wrapping
// [ErrInvalidFormat].
func RGBAToHex(rgba string, opts ...Option) (string, error) {
	c, err := parseFunctional(rgba)
	if err != nil {
		return "", err
	}
	out := "#" + byteHex(c.v[0]) + byteHex(c.v[1]) + byteHex(c.v[2])
	if a, ok := buildOptions(opts).pick(c.alpha, c.hasAlpha); ok {
		out += alphaByte(a)
	}
	return out, nil
}

// RGBAToHSLA converts "rgb(r, g, b)" or "rgba(r, g, b, a)" to
// "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)".
//
// When red is the largest channel the hue is not wrapped into [0, 360), so
// "rgb(255, 128, 0)" yields "hsl(-30, 100%, 50%)". Existing callers depend
// on this output; use [HexToHSLA] for a normalized hue.
func RGBAToHSLA(rgba string, opts ...Option) (string, error) {
	c, err := parseFunctional(rgba)
	if err != nil {
		return "", err
	}
	h, s, l := hsl.FromRGBUnwrapped(c.v[0]/255, c.v[1]/255, c.v[2]/255)
	a, hasAlpha := buildOptions(opts).pick(c.alpha, c.hasAlpha)
	return formatHSL(h, s, l, a, hasAlpha), nil
}

func byteHex(v float64) string {
	return hexbyte.Format(int(hsl.Round(v)))
}
