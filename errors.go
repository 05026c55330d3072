package colorfmt

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when an input string is not a color in the
// notation the conversion expects.
var ErrInvalidFormat = errors.New("colorfmt: invalid format")

// FormatError describes a rejected input. It unwraps to [ErrInvalidFormat].
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("colorfmt: invalid format %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

func invalid(input, format string, args ...any) error {
	return &FormatError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
