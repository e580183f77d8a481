package color

import (
	"strings"

	"bennypowers.dev/cssvalues/value"
)

// Lab is lab(L% A B[ / alpha]). Components are not range-checked.
type Lab struct {
	L, A, B float64
	Alpha   Alpha
}

func (c Lab) String() string {
	return "lab(" + pct(c.L) + " " + num(c.A) + " " + num(c.B) + c.Alpha.suffix() + ")"
}

// LCH is lch(L% C <hue>[ / alpha])
type LCH struct {
	L, C  float64
	H     value.Angle
	Alpha Alpha
}

func (c LCH) String() string {
	return "lch(" + pct(c.L) + " " + num(c.C) + " " + c.H.String() + c.Alpha.suffix() + ")"
}

// OKLab is oklab(L A B[ / alpha]) with L as a 0-1 number
type OKLab struct {
	L, A, B float64
	Alpha   Alpha
}

func (c OKLab) String() string {
	return "oklab(" + num(c.L) + " " + num(c.A) + " " + num(c.B) + c.Alpha.suffix() + ")"
}

// OKLCH is oklch(L C <hue>[ / alpha]) with L as a 0-1 number
type OKLCH struct {
	L, C  float64
	H     value.Angle
	Alpha Alpha
}

func (c OKLCH) String() string {
	return "oklch(" + num(c.L) + " " + num(c.C) + " " + c.H.String() + c.Alpha.suffix() + ")"
}

// Func is the color() function for predefined spaces such as display-p3
type Func struct {
	Space      Space
	C1, C2, C3 float64
	Alpha      Alpha
}

func (c Func) String() string {
	parts := []string{string(c.Space), num(c.C1), num(c.C2), num(c.C3)}
	return "color(" + strings.Join(parts, " ") + c.Alpha.suffix() + ")"
}

func (Lab) isColor()   {}
func (LCH) isColor()   {}
func (OKLab) isColor() {}
func (OKLCH) isColor() {}
func (Func) isColor()  {}
