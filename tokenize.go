package colorfmt

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var (
	funcPrefix = regexp.MustCompile(`^(?:rgba?|hsla?)\(`)
	separators = regexp.MustCompile(`[\s,/]+`)
	// leadingNumber matches the part of a token a lenient float parse
	// would consume: "50%" -> "50", "120deg" -> "120", ".5" -> ".5".
	leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:e[+-]?\d+)?`)
)

// normalize folds full-width characters to their ASCII forms, trims
// surrounding space and lowercases.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(width.Fold.String(s)))
}

// Tokenize extracts the numeric channel values of a functional notation
// such as "rgba(255, 0, 0, 0.5)" or "hsl(120 50% 25% / 0.3)".
//
// The function name and parentheses are stripped, the rest is split on runs
// of whitespace, commas and slashes, and each token contributes the number
// at its start. Tokens without a leading number are dropped.
func Tokenize(s string) []float64 {
	s = normalize(s)
	if s == "" {
		return nil
	}
	s = funcPrefix.ReplaceAllString(s, "")
	s = strings.TrimSuffix(s, ")")

	var nums []float64
	for _, tok := range separators.Split(s, -1) {
		m := leadingNumber.FindString(tok)
		if m == "" {
			continue
		}
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	return nums
}

// channels holds up to four parsed values of a functional notation.
type channels struct {
	v        [3]float64
	alpha    float64
	hasAlpha bool
}

// parseFunctional tokenizes s and requires at least three numbers.
// A fourth number is the alpha; anything after it is ignored.
func parseFunctional(s string) (channels, error) {
	nums := Tokenize(s)
	if len(nums) < 3 {
		return channels{}, invalid(s, "want at least 3 numeric values, got %d", len(nums))
	}
	c := channels{v: [3]float64{nums[0], nums[1], nums[2]}}
	if len(nums) > 3 {
		c.alpha = nums[3]
		c.hasAlpha = true
	}
	return c, nil
}
