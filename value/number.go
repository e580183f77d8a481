// Package value provides the primitive CSS value types shared by every
// property: numbers, percentages, lengths, angles, strings and URLs.
//
// All types are immutable values. Construction never fails and rendering
// never fails; out-of-range inputs pass through unchanged.
package value

import (
	"math"
	"strconv"
)

// Renderer is implemented by anything that renders to CSS text.
type Renderer interface {
	String() string
}

// Number is a CSS <number>
type Number struct {
	Value float64
}

// NewNumber creates a Number from a float
func NewNumber(v float64) Number {
	return Number{Value: v}
}

// Int creates a Number from an integer
func Int(v int) Number {
	return Number{Value: float64(v)}
}

// Add, Sub and Mul apply the arithmetic operator to both values
func (n Number) Add(o Number) Number { return Number{n.Value + o.Value} }
func (n Number) Sub(o Number) Number { return Number{n.Value - o.Value} }
func (n Number) Mul(o Number) Number { return Number{n.Value * o.Value} }

// Div divides n by o. Division by zero follows IEEE 754.
func (n Number) Div(o Number) Number { return Number{n.Value / o.Value} }

// Neg, Abs, Round, Floor and Ceil mirror their math package counterparts
func (n Number) Neg() Number   { return Number{-n.Value} }
func (n Number) Abs() Number   { return Number{math.Abs(n.Value)} }
func (n Number) Round() Number { return Number{math.Round(n.Value)} }
func (n Number) Floor() Number { return Number{math.Floor(n.Value)} }
func (n Number) Ceil() Number  { return Number{math.Ceil(n.Value)} }

// Equal reports whether both numbers hold the same value
func (n Number) Equal(o Number) bool { return n.Value == o.Value }

// Less reports whether n orders before o
func (n Number) Less(o Number) bool { return n.Value < o.Value }

// Percent reinterprets the number as a percentage with the same magnitude
func (n Number) Percent() Percentage { return Percentage{Value: n.Value} }

// String renders the number in minimal form: integral values drop the
// decimal point, everything else keeps its shortest exact decimal digits.
func (n Number) String() string {
	return formatNumber(n.Value)
}

// formatNumber is the minimal-form rule every unit-bearing type reuses.
// Inf and NaN keep Go's formatting ("+Inf", "-Inf", "NaN").
func formatNumber(v float64) string {
	if v == 0 {
		// covers negative zero
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
