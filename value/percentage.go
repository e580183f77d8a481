package value

import "math"

// Percentage is a CSS <percentage>. Value 50 renders as "50%".
// No clamping is performed; negative and >100 values pass through.
type Percentage struct {
	Value float64
}

// Percent creates a Percentage
func Percent(v float64) Percentage {
	return Percentage{Value: v}
}

// Add, Sub, Mul and Div combine the magnitudes; the result stays a percentage
func (p Percentage) Add(o Percentage) Percentage { return Percentage{p.Value + o.Value} }
func (p Percentage) Sub(o Percentage) Percentage { return Percentage{p.Value - o.Value} }
func (p Percentage) Mul(o Percentage) Percentage { return Percentage{p.Value * o.Value} }
func (p Percentage) Div(o Percentage) Percentage { return Percentage{p.Value / o.Value} }

// Neg, Abs, Round, Floor and Ceil mirror their math package counterparts
func (p Percentage) Neg() Percentage   { return Percentage{-p.Value} }
func (p Percentage) Abs() Percentage   { return Percentage{math.Abs(p.Value)} }
func (p Percentage) Round() Percentage { return Percentage{math.Round(p.Value)} }
func (p Percentage) Floor() Percentage { return Percentage{math.Floor(p.Value)} }
func (p Percentage) Ceil() Percentage  { return Percentage{math.Ceil(p.Value)} }

// Equal and Less compare magnitudes
func (p Percentage) Equal(o Percentage) bool { return p.Value == o.Value }
func (p Percentage) Less(o Percentage) bool  { return p.Value < o.Value }

// Number drops the percent sign, keeping the magnitude
func (p Percentage) Number() Number { return Number{Value: p.Value} }

// String renders the magnitude followed by %
func (p Percentage) String() string {
	return formatNumber(p.Value) + "%"
}
