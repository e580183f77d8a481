package color

import (
	"bennypowers.dev/cssvalues/internal/collections"
	"bennypowers.dev/cssvalues/value"
)

// Space names a colour space usable for interpolation and in color()
type Space string

const (
	SRGB       Space = "srgb"
	SRGBLinear Space = "srgb-linear"
	DisplayP3  Space = "display-p3"
	A98RGB     Space = "a98-rgb"
	ProPhoto   Space = "prophoto-rgb"
	Rec2020    Space = "rec2020"
	SpaceLab   Space = "lab"
	SpaceOKLab Space = "oklab"
	XYZ        Space = "xyz"
	XYZD50     Space = "xyz-d50"
	XYZD65     Space = "xyz-d65"

	SpaceHSL   Space = "hsl"
	SpaceHWB   Space = "hwb"
	SpaceLCH   Space = "lch"
	SpaceOKLCH Space = "oklch"
)

var polarSpaces = collections.NewSet(SpaceHSL, SpaceHWB, SpaceLCH, SpaceOKLCH)

// IsPolar reports whether the space has a hue axis
func (s Space) IsPolar() bool {
	return polarSpaces.Has(s)
}

// HueMethod is the hue interpolation method for polar spaces
type HueMethod string

const (
	Shorter    HueMethod = "shorter"
	Longer     HueMethod = "longer"
	Increasing HueMethod = "increasing"
	Decreasing HueMethod = "decreasing"
)

// Interpolation is the "in <space> [<hue-method> hue]" descriptor of color-mix().
// Hue is ignored for rectangular spaces.
type Interpolation struct {
	Space Space
	Hue   HueMethod
}

// In creates a rectangular (or default-hue polar) interpolation descriptor
func In(s Space) Interpolation {
	return Interpolation{Space: s}
}

// InPolar creates a polar interpolation descriptor with a hue method
func InPolar(s Space, hue HueMethod) Interpolation {
	return Interpolation{Space: s, Hue: hue}
}

func (i Interpolation) String() string {
	out := "in " + string(i.Space)
	if i.Space.IsPolar() && i.Hue != "" {
		out += " " + string(i.Hue) + " hue"
	}
	return out
}

// Stop is one colour operand of color-mix(), optionally weighted
type Stop struct {
	Color      Color
	Percentage value.Percentage
	Weighted   bool
}

// StopOf is an unweighted stop
func StopOf(c Color) Stop {
	return Stop{Color: c}
}

// StopAt is a stop weighted by pct percent
func StopAt(c Color, pct float64) Stop {
	return Stop{Color: c, Percentage: value.Percent(pct), Weighted: true}
}

func (s Stop) String() string {
	if s.Color == nil {
		return ""
	}
	if !s.Weighted {
		return s.Color.String()
	}
	return s.Color.String() + " " + s.Percentage.String()
}

// Mix is color-mix(in <space>, <c1>[ p1%], <c2>[ p2%])
type Mix struct {
	In            Interpolation
	First, Second Stop
}

// NewMix creates a color-mix() value
func NewMix(in Interpolation, first, second Stop) Mix {
	return Mix{In: in, First: first, Second: second}
}

func (m Mix) String() string {
	return "color-mix(" + m.In.String() + ", " + m.First.String() + ", " + m.Second.String() + ")"
}

func (Mix) isColor() {}
