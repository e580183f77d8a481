package property

import (
	"strings"

	"bennypowers.dev/cssvalues/color"
	"bennypowers.dev/cssvalues/internal/collections"
	"bennypowers.dev/cssvalues/value"
)

// Property is a typed value for a named CSS property
type Property interface {
	Name() string
	String() string
}

// BackgroundClip is the background-clip keyword (or a CSS-wide keyword)
type BackgroundClip string

const (
	BorderBox  BackgroundClip = "border-box"
	PaddingBox BackgroundClip = "padding-box"
	ContentBox BackgroundClip = "content-box"
	ClipText   BackgroundClip = "text"
)

// BackgroundClipGlobal wraps a CSS-wide keyword
func BackgroundClipGlobal(g Global) BackgroundClip { return BackgroundClip(g) }

func (BackgroundClip) Name() string     { return "background-clip" }
func (b BackgroundClip) String() string { return string(b) }

// LineWidth is a <line-width>: thin, medium, thick or a length
type LineWidth struct {
	Keyword string
	Length  value.Length
}

var (
	Thin   = LineWidth{Keyword: "thin"}
	Medium = LineWidth{Keyword: "medium"}
	Thick  = LineWidth{Keyword: "thick"}
)

var lineWidthKeywords = collections.NewSet("thin", "medium", "thick")

// LineWidthOf wraps a length
func LineWidthOf(l value.Length) LineWidth { return LineWidth{Length: l} }

// LineWidthGlobal wraps a CSS-wide keyword
func LineWidthGlobal(g Global) LineWidth { return LineWidth{Keyword: string(g)} }

// LineWidthFor looks up thin/medium/thick
func LineWidthFor(s string) (LineWidth, bool) {
	s = strings.ToLower(s)
	if !lineWidthKeywords.Has(s) {
		return LineWidth{}, false
	}
	return LineWidth{Keyword: s}, true
}

func (w LineWidth) String() string {
	if w.Keyword != "" {
		return w.Keyword
	}
	return w.Length.String()
}

// BorderBlockEndWidth is border-block-end-width
type BorderBlockEndWidth struct {
	Width LineWidth
}

func (BorderBlockEndWidth) Name() string     { return "border-block-end-width" }
func (b BorderBlockEndWidth) String() string { return b.Width.String() }

// BorderWidth is the border-width shorthand
type BorderWidth struct {
	Sides  Sides[LineWidth]
	Global Global
}

func (BorderWidth) Name() string { return "border-width" }

func (b BorderWidth) String() string {
	if b.Global != "" {
		return b.Global.String()
	}
	return b.Sides.String()
}

// Size is a sizing property such as width or max-height
type Size struct {
	Property string
	Value    LengthPercentage
}

func Width(v LengthPercentage) Size     { return Size{Property: "width", Value: v} }
func Height(v LengthPercentage) Size    { return Size{Property: "height", Value: v} }
func MinWidth(v LengthPercentage) Size  { return Size{Property: "min-width", Value: v} }
func MaxWidth(v LengthPercentage) Size  { return Size{Property: "max-width", Value: v} }
func MinHeight(v LengthPercentage) Size { return Size{Property: "min-height", Value: v} }
func MaxHeight(v LengthPercentage) Size { return Size{Property: "max-height", Value: v} }

func (s Size) Name() string   { return s.Property }
func (s Size) String() string { return s.Value.String() }

// Box is a four-sided shorthand property: margin, padding or inset
type Box struct {
	Property string
	Sides    Sides[LengthPercentage]
	Global   Global
}

func newBox(name string, vs []LengthPercentage) (Box, bool) {
	if len(vs) == 1 && vs[0].Kind == LPGlobal {
		return Box{Property: name, Global: vs[0].Global}, true
	}
	s, ok := ExpandSides(vs...)
	return Box{Property: name, Sides: s}, ok
}

// Margin builds the margin shorthand from 1-4 values
func Margin(vs ...LengthPercentage) (Box, bool) { return newBox("margin", vs) }

// Padding builds the padding shorthand from 1-4 values
func Padding(vs ...LengthPercentage) (Box, bool) { return newBox("padding", vs) }

// Inset builds the inset shorthand from 1-4 values
func Inset(vs ...LengthPercentage) (Box, bool) { return newBox("inset", vs) }

func (b Box) Name() string { return b.Property }

func (b Box) String() string {
	if b.Global != "" {
		return b.Global.String()
	}
	return b.Sides.String()
}

// BorderRadius is the border-radius shorthand
type BorderRadius struct {
	Corners Corners
	Global  Global
}

func (BorderRadius) Name() string { return "border-radius" }

func (b BorderRadius) String() string {
	if b.Global != "" {
		return b.Global.String()
	}
	return b.Corners.String()
}

// Opacity is a <number>, <percentage> or CSS-wide keyword
type Opacity struct {
	v value.Renderer
}

func OpacityNumber(v float64) Opacity  { return Opacity{v: value.NewNumber(v)} }
func OpacityPercent(v float64) Opacity { return Opacity{v: value.Percent(v)} }
func OpacityGlobal(g Global) Opacity   { return Opacity{v: g} }

func (Opacity) Name() string { return "opacity" }

func (o Opacity) String() string {
	if o.v == nil {
		return "1"
	}
	return o.v.String()
}

// ColorProperty is any property taking a single <color>: color,
// background-color, border-color, outline-color, ...
type ColorProperty struct {
	Property string
	Color    color.Color
	Global   Global
}

// Foreground is the color property
func Foreground(c color.Color) ColorProperty {
	return ColorProperty{Property: "color", Color: c}
}

// Background is the background-color property
func Background(c color.Color) ColorProperty {
	return ColorProperty{Property: "background-color", Color: c}
}

func (c ColorProperty) Name() string {
	if c.Property == "" {
		return "color"
	}
	return c.Property
}

// String falls back to currentcolor, the initial value, when neither a
// colour nor a global keyword is set.
func (c ColorProperty) String() string {
	if c.Global != "" {
		return c.Global.String()
	}
	if c.Color == nil {
		return color.CurrentColor.String()
	}
	return c.Color.String()
}

var genericFamilies = collections.NewSet(
	"serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui",
	"ui-serif", "ui-sans-serif", "ui-monospace", "ui-rounded", "math", "emoji", "fangsong",
)

// Family is one entry of font-family: a generic keyword or a quoted name
type Family struct {
	Generic string
	Name    value.CSSString
}

// FamilyNamed creates a double-quoted family name
func FamilyNamed(name string) Family {
	return Family{Name: value.NewStringQuoted(name, value.DoubleQuote)}
}

// GenericFamily returns a generic family keyword, reporting whether it is known
func GenericFamily(keyword string) (Family, bool) {
	k := strings.ToLower(keyword)
	return Family{Generic: k}, genericFamilies.Has(k)
}

func (f Family) String() string {
	if f.Generic != "" {
		return f.Generic
	}
	return f.Name.String()
}

// FontFamily is a prioritised list of families
type FontFamily struct {
	Families []Family
	Global   Global
}

func (FontFamily) Name() string { return "font-family" }

func (f FontFamily) String() string {
	if f.Global != "" {
		return f.Global.String()
	}
	return JoinComma(f.Families)
}

// Custom is a custom property (--name) with any value
type Custom struct {
	Property string
	Value    value.Renderer
}

// NewCustom creates a custom property, adding the "--" prefix when missing
func NewCustom(name string, v value.Renderer) Custom {
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	return Custom{Property: name, Value: v}
}

func (c Custom) Name() string { return c.Property }

func (c Custom) String() string {
	if c.Value == nil {
		return ""
	}
	return c.Value.String()
}
