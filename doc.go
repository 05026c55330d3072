// Package colorfmt converts colors between their textual notations.
//
// # Overview
//
// colorfmt is a small Pure Go library for turning one color string into
// another: hexadecimal ("#rgb", "#rgba", "#rrggbb", "#rrggbbaa"), RGB
// functional notation ("rgb(...)", "rgba(...)") and HSL functional notation
// ("hsl(...)", "hsla(...)"). Every function is pure and safe for concurrent
// use.
//
// # Quick Start
//
//	import "github.com/gogpu/colorfmt"
//
//	s, _ := colorfmt.HexToRGBA("#3498db")              // "rgb(52, 152, 219)"
//	s, _ = colorfmt.RGBAToHex("rgba(0, 0, 0, 0.5)")    // "#00000080"
//	s, _ = colorfmt.HexToHSLA("#f00", colorfmt.WithAlpha(0.5)) // "hsla(0, 100%, 50%, 0.5)"
//
//	// Any notation, or a CSS keyword, to a target format
//	s, _ = colorfmt.Convert("cornflowerblue", colorfmt.FormatHSL)
//
// # Alpha
//
// Conversions that accept options take [WithAlpha]. An explicit alpha wins
// over one embedded in a hex string or parsed from a functional notation.
// Without either, the alpha-less form ("rgb", "hsl", 6-digit hex) is
// produced.
//
// # Compatibility
//
// The six direct conversions follow the observable quirks of an existing
// tool, such as the unwrapped hue of [RGBAToHSLA], the hue scale of
// [HSLAToRGBA] and the dropped zero alpha of [HSLAToHex]. They differ where
// its output was unusable: an alpha of 0 counts as present, achromatic
// [HSLAToRGBA] results name the function after the alpha, and fractional or
// out-of-range channels are rounded and clamped. [Convert] avoids the quirks
// and its output is a fixed point.
//
// # Errors
//
// Malformed input returns an error wrapping [ErrInvalidFormat]; use
// errors.Is to test for it.
//
// # Logging
//
// The library is silent by default. See [SetLogger].
package colorfmt

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
