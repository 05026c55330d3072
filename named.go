package colorfmt

import (
	"sort"

	"golang.org/x/image/colornames"
)

// NamedToHex returns the "#rrggbb" form of a CSS/SVG color keyword such as
// "cornflowerblue" or "AliceBlue". Unknown names return an error wrapping
// [ErrInvalidFormat].
func NamedToHex(name string) (string, error) {
	c, ok := colornames.Map[normalize(name)]
	if !ok {
		return "", invalid(name, "unknown color name")
	}
	return HexFromColor(c), nil
}

// isNamed reports whether s (already normalized) is a color keyword.
func isNamed(s string) bool {
	_, ok := colornames.Map[s]
	return ok
}

// Names returns the known color keywords in sorted order.
func Names() []string {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
