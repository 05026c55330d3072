package colorfmt

import "github.com/gogpu/colorfmt/internal/hsl"

// HSLAToRGBA converts "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)" to
// "rgb(r, g, b)" or "rgba(r, g, b, a)".
//
// The hue is divided by 100, not 360, before the hue2rgb step, and a
// saturation of 0 short-circuits to the fractional lightness l/100 for all
// three channels (e.g. "rgb(0.5, 0.5, 0.5)"). Both match the output
// existing callers were built against. Use [HSLAToHex] for degree hues.
//
// Alpha comes from [WithAlpha], else the fourth value of the input.
func HSLAToRGBA(hsla string, opts ...Option) (string, error) {
	c, err := parseFunctional(hsla)
	if err != nil {
		return "", err
	}
	h := c.v[0] / 100
	s := c.v[1] / 100
	l := c.v[2] / 100
	a, hasAlpha := buildOptions(opts).pick(c.alpha, c.hasAlpha)

	if s == 0 {
		return formatRGB(l, l, l, a, hasAlpha), nil
	}

	p, q := hsl.PQ(s, l)
	r := hsl.Round(hsl.HueToRGB(p, q, h+1.0/3) * 255)
	g := hsl.Round(hsl.HueToRGB(p, q, h) * 255)
	b := hsl.Round(hsl.HueToRGB(p, q, h-1.0/3) * 255)
	return formatRGB(r, g, b, a, hasAlpha), nil
}

// HSLAToHex converts "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)" to "#rrggbb"
// or "#rrggbbaa". The hue is in degrees.
//
// An alpha of exactly 0 is treated as absent and yields the 6-digit form.
func HSLAToHex(hsla string) (string, error) {
	c, err := parseFunctional(hsla)
	if err != nil {
		return "", err
	}
	r, g, b := hsl.FromHSL(c.v[0], c.v[1]/100, c.v[2]/100)
	out := "#" + byteHex(r*255) + byteHex(g*255) + byteHex(b*255)
	if c.hasAlpha && c.alpha != 0 {
		out += alphaByte(c.alpha)
	}
	return out, nil
}
