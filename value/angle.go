package value

import "math"

// AngleUnit is a CSS <angle> unit
type AngleUnit int

const (
	UnitDeg AngleUnit = iota
	UnitRad
	UnitGrad
	UnitTurn
)

func (u AngleUnit) String() string {
	switch u {
	case UnitDeg:
		return "deg"
	case UnitRad:
		return "rad"
	case UnitGrad:
		return "grad"
	case UnitTurn:
		return "turn"
	}
	return ""
}

// Angle is a CSS <angle>. Values are never normalized: 360deg stays 360deg.
type Angle struct {
	Unit  AngleUnit
	Value float64
}

func Deg(v float64) Angle  { return Angle{Unit: UnitDeg, Value: v} }
func Rad(v float64) Angle  { return Angle{Unit: UnitRad, Value: v} }
func Grad(v float64) Angle { return Angle{Unit: UnitGrad, Value: v} }
func Turn(v float64) Angle { return Angle{Unit: UnitTurn, Value: v} }

// Degrees converts the angle to degrees
func (a Angle) Degrees() float64 {
	switch a.Unit {
	case UnitRad:
		return a.Value * 180 / math.Pi
	case UnitGrad:
		return a.Value * 0.9
	case UnitTurn:
		return a.Value * 360
	}
	return a.Value
}

// Add sums two angles. Mixed units are combined in degrees.
func (a Angle) Add(o Angle) Angle {
	if a.Unit == o.Unit {
		return Angle{Unit: a.Unit, Value: a.Value + o.Value}
	}
	return Deg(a.Degrees() + o.Degrees())
}

func (a Angle) Sub(o Angle) Angle {
	if a.Unit == o.Unit {
		return Angle{Unit: a.Unit, Value: a.Value - o.Value}
	}
	return Deg(a.Degrees() - o.Degrees())
}

func (a Angle) String() string {
	return formatNumber(a.Value) + a.Unit.String()
}
