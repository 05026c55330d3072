package colorfmt

// Option configures a single conversion call.
//
// Example:
//
//	// Alpha taken from the input, if any
//	s, err := colorfmt.HexToRGBA("#ff000080")
//
//	// Explicit alpha overrides the embedded one
//	s, err := colorfmt.HexToRGBA("#ff000080", colorfmt.WithAlpha(0.25))
type Option func(*options)

// options holds the optional arguments of a conversion.
type options struct {
	alpha    float64
	hasAlpha bool
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithAlpha sets an explicit alpha in [0, 1]. It takes precedence over any
// alpha embedded in a hex string or parsed from a functional notation, and
// a value of 0 still counts as set.
func WithAlpha(a float64) Option {
	return func(o *options) {
		o.alpha = a
		o.hasAlpha = true
	}
}

// pick resolves alpha precedence: explicit option, then the input's own
// alpha, then none.
func (o options) pick(fromInput float64, inputHas bool) (float64, bool) {
	if o.hasAlpha {
		return o.alpha, true
	}
	return fromInput, inputHas
}
