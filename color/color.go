// Package color models the CSS <color> grammar as a closed set of variants,
// one per colour syntax, each rendering its exact function-call text.
package color

import (
	"bennypowers.dev/cssvalues/value"
)

// Color is any CSS colour value. The set of implementations is closed.
type Color interface {
	String() string
	isColor()
}

// AlphaThreshold is the value at or above which an alpha channel is
// considered opaque when converting from other colour models.
const AlphaThreshold = 0.999

// Alpha is an optional alpha channel for the space-separated colour
// functions. The zero value means "no alpha given".
type Alpha struct {
	Value float64
	Valid bool
}

// WithAlpha returns a present alpha channel
func WithAlpha(a float64) Alpha {
	return Alpha{Value: a, Valid: true}
}

// suffix renders " / <alpha>" or nothing
func (a Alpha) suffix() string {
	if !a.Valid {
		return ""
	}
	return " / " + num(a.Value)
}

// RGB is the legacy rgb(R, G, B) function with byte channels
type RGB struct {
	R, G, B int
}

func (c RGB) String() string {
	return "rgb(" + itoa(c.R) + ", " + itoa(c.G) + ", " + itoa(c.B) + ")"
}

// RGBA is the legacy rgba(R, G, B, A) function
type RGBA struct {
	R, G, B int
	A       float64
}

func (c RGBA) String() string {
	return "rgba(" + itoa(c.R) + ", " + itoa(c.G) + ", " + itoa(c.B) + ", " + num(c.A) + ")"
}

// HSL is hsl(<hue>, S%, L%)
type HSL struct {
	H    value.Angle
	S, L float64
}

func (c HSL) String() string {
	return "hsl(" + c.H.String() + ", " + pct(c.S) + ", " + pct(c.L) + ")"
}

// HSLA is hsla(<hue>, S%, L%, A)
type HSLA struct {
	H       value.Angle
	S, L, A float64
}

func (c HSLA) String() string {
	return "hsla(" + c.H.String() + ", " + pct(c.S) + ", " + pct(c.L) + ", " + num(c.A) + ")"
}

// HWB is hwb(<hue> W% B%[ / A])
type HWB struct {
	H     value.Angle
	W, B  float64
	Alpha Alpha
}

func (c HWB) String() string {
	return "hwb(" + c.H.String() + " " + pct(c.W) + " " + pct(c.B) + c.Alpha.suffix() + ")"
}

func (RGB) isColor()  {}
func (RGBA) isColor() {}
func (HSL) isColor()  {}
func (HSLA) isColor() {}
func (HWB) isColor()  {}

func num(v float64) string { return value.NewNumber(v).String() }
func pct(v float64) string { return value.Percent(v).String() }
func itoa(v int) string    { return value.Int(v).String() }
