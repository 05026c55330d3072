package colorfmt

import (
	"image/color"

	"github.com/gogpu/colorfmt/internal/hexbyte"
	"github.com/gogpu/colorfmt/internal/hsl"
)

// HexFromColor formats a standard color.Color as "#rrggbb", or "#rrggbbaa"
// when it is not fully opaque.
func HexFromColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	out := "#" + hexbyte.Format(int(n.R)) + hexbyte.Format(int(n.G)) + hexbyte.Format(int(n.B))
	if n.A != 0xff {
		out += hexbyte.Format(int(n.A))
	}
	return out
}

// ParseColor parses any notation accepted by [Convert] into a
// non-premultiplied color.NRGBA. A missing alpha is opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex, err := Convert(s, FormatHex)
	if err != nil {
		return color.NRGBA{}, err
	}
	c, err := decodeHex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	a := uint8(0xff)
	if c.hasAlpha {
		a = uint8(hsl.Round(c.alpha * 255))
	}
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: a}, nil
}
