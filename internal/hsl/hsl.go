// Package hsl implements the arithmetic behind the HSL notations: RGB to HSL,
// the hue2rgb form of HSL to RGB, and the chroma-sector form of HSL to RGB.
//
// All channel values are normalized float64 values in [0, 1] unless noted.
// Hues are returned in degrees and are not rounded; callers round with [Round].
//
// References:
//   - CSS Color Module Level 4, section 7: https://www.w3.org/TR/css-color-4/#the-hsl-notation
package hsl

import "math"

// Round rounds half up, toward positive infinity: Round(-2.5) == -2.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// FromRGB converts normalized RGB to hue in degrees [0, 360), saturation and
// lightness in [0, 1].
func FromRGB(r, g, b float64) (h, s, l float64) {
	maxC := math.Max(math.Max(r, g), b)
	minC := math.Min(math.Min(r, g), b)
	d := maxC - minC
	l = (maxC + minC) / 2
	if d == 0 {
		// Achromatic.
		return 0, 0, l
	}
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	return h * 60, s, l
}

// FromRGBUnwrapped is FromRGB with the red sector left unwrapped: when red is
// the largest channel the hue is -((g-b)/d mod 6) sextants, so it can be
// negative. The result is in degrees.
func FromRGBUnwrapped(r, g, b float64) (h, s, l float64) {
	maxC := math.Max(math.Max(r, g), b)
	minC := math.Min(math.Min(r, g), b)
	d := maxC - minC
	l = (maxC + minC) / 2
	if d == 0 {
		return 0, 0, l
	}
	switch maxC {
	case r:
		h = -math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	s = d / (1 - math.Abs(2*l-1))
	return h * 60, s, l
}

// Canonical rounds h to a whole degree wrapped into [0, 360) and s, l to
// whole percentages clamped to [0, 1]. It is the identity on its own output.
func Canonical(h, s, l float64) (float64, float64, float64) {
	h = math.Mod(Round(h), 360)
	if h < 0 {
		h += 360
	}
	return h, clampUnit(Round(s*100) / 100), clampUnit(Round(l*100) / 100)
}

func clampUnit(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// HueToRGB returns one channel for hue offset t given the p and q terms of
// the HSL to RGB conversion. t is wrapped into [0, 1] once only.
func HueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// PQ returns the p and q terms used with HueToRGB for saturation s and
// lightness l, both in [0, 1].
func PQ(s, l float64) (p, q float64) {
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	return 2*l - q, q
}

// FromHSL converts h in degrees and s, l in [0, 1] to normalized RGB using
// chroma and six 60 degree sectors. Hues below 0 fall into the second sector
// and hues of 360 or more into the last one; h is not wrapped.
func FromHSL(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	switch {
	case h >= 0 && h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
