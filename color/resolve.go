package color

import (
	"errors"
	"fmt"

	"github.com/mazznoer/csscolorparser"
)

// ErrUnresolvable indicates a colour has no fixed sRGB value
var ErrUnresolvable = errors.New("color cannot be resolved to sRGB")

// UnresolvableError reports which colour could not be resolved and why
type UnresolvableError struct {
	Color  string
	Reason string
}

func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("cannot resolve color %q: %s", e.Color, e.Reason)
}

func (e *UnresolvableError) Unwrap() error {
	return ErrUnresolvable
}

// NewUnresolvableError creates a new unresolvable color error
func NewUnresolvableError(color, reason string) error {
	return &UnresolvableError{
		Color:  color,
		Reason: reason,
	}
}

// Resolve computes the sRGB value of a colour by feeding its rendered CSS
// text to csscolorparser. Context-dependent colours (currentcolor, system
// colours, color-mix) cannot be resolved, nor can color() functions.
func Resolve(c Color) (csscolorparser.Color, error) {
	if c == nil {
		return csscolorparser.Color{}, NewUnresolvableError("", "color is nil")
	}

	switch v := c.(type) {
	case System:
		return csscolorparser.Color{}, NewUnresolvableError(v.String(), "system colors depend on the user agent")
	case Mix:
		return csscolorparser.Color{}, NewUnresolvableError(v.String(), "color-mix is not supported")
	case Func:
		return csscolorparser.Color{}, NewUnresolvableError(v.String(), "color() in the "+string(v.Space)+" space is not supported")
	case Named:
		if v == CurrentColor {
			return csscolorparser.Color{}, NewUnresolvableError(v.String(), "currentcolor depends on the element")
		}
	}

	css := c.String()
	parsed, err := csscolorparser.Parse(css)
	if err != nil {
		return csscolorparser.Color{}, NewUnresolvableError(css, err.Error())
	}
	return parsed, nil
}

// Equivalent reports whether two colours resolve to the same sRGB value,
// compared at 8-bit precision including alpha.
func Equivalent(a, b Color) bool {
	ca, err := Resolve(a)
	if err != nil {
		return false
	}
	cb, err := Resolve(b)
	if err != nil {
		return false
	}
	return ca.HexString() == cb.HexString()
}
