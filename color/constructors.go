package color

import "bennypowers.dev/cssvalues/value"

// Hex is shorthand for NewHex
func Hex(s string) HexColor { return NewHex(s) }

// NewRGB creates rgb(r, g, b) from 0-255 channels
func NewRGB(r, g, b int) RGB { return RGB{R: r, G: g, B: b} }

// NewRGBA creates rgba(r, g, b, a)
func NewRGBA(r, g, b int, a float64) RGBA { return RGBA{R: r, G: g, B: b, A: a} }

// NewHSL creates hsl(h, s%, l%)
func NewHSL(h value.Angle, s, l float64) HSL { return HSL{H: h, S: s, L: l} }

// NewHSLA creates hsla(h, s%, l%, a)
func NewHSLA(h value.Angle, s, l, a float64) HSLA { return HSLA{H: h, S: s, L: l, A: a} }

// NewHWB creates hwb(h w% b%)
func NewHWB(h value.Angle, w, b float64) HWB { return HWB{H: h, W: w, B: b} }

// NewLab creates lab(l% a b)
func NewLab(l, a, b float64) Lab { return Lab{L: l, A: a, B: b} }

// NewLCH creates lch(l% c h)
func NewLCH(l, c float64, h value.Angle) LCH { return LCH{L: l, C: c, H: h} }

// NewOKLab creates oklab(l a b) with l in 0-1
func NewOKLab(l, a, b float64) OKLab { return OKLab{L: l, A: a, B: b} }

// NewOKLCH creates oklch(l c h) with l in 0-1
func NewOKLCH(l, c float64, h value.Angle) OKLCH { return OKLCH{L: l, C: c, H: h} }

// NewFunc creates a color() value in a predefined space
func NewFunc(space Space, c1, c2, c3 float64) Func {
	return Func{Space: space, C1: c1, C2: c2, C3: c3}
}

// WithAlpha returns a copy carrying an alpha channel
func (c HWB) WithAlpha(a float64) HWB {
	c.Alpha = WithAlpha(a)
	return c
}

func (c Lab) WithAlpha(a float64) Lab {
	c.Alpha = WithAlpha(a)
	return c
}

func (c LCH) WithAlpha(a float64) LCH {
	c.Alpha = WithAlpha(a)
	return c
}

func (c OKLab) WithAlpha(a float64) OKLab {
	c.Alpha = WithAlpha(a)
	return c
}

func (c OKLCH) WithAlpha(a float64) OKLCH {
	c.Alpha = WithAlpha(a)
	return c
}

func (c Func) WithAlpha(a float64) Func {
	c.Alpha = WithAlpha(a)
	return c
}
