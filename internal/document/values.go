package document

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/cssvalues/color"
	"bennypowers.dev/cssvalues/property"
	"bennypowers.dev/cssvalues/value"
)

// Value is one structured value. Exactly one field should be set.
type Value struct {
	Length     *Length  `yaml:"length,omitempty" json:"length,omitempty"`
	Percentage *float64 `yaml:"percentage,omitempty" json:"percentage,omitempty"`
	Number     *float64 `yaml:"number,omitempty" json:"number,omitempty"`
	Keyword    string   `yaml:"keyword,omitempty" json:"keyword,omitempty"`
	String     *string  `yaml:"string,omitempty" json:"string,omitempty"`
	URL        *string  `yaml:"url,omitempty" json:"url,omitempty"`
	Calc       string   `yaml:"calc,omitempty" json:"calc,omitempty"`
	Color      *Color   `yaml:"color,omitempty" json:"color,omitempty"`
}

// Length is {value, unit}
type Length struct {
	Value float64 `yaml:"value" json:"value"`
	Unit  string  `yaml:"unit" json:"unit"`
}

// Color describes a colour in one of its notations
type Color struct {
	Hex        string    `yaml:"hex,omitempty" json:"hex,omitempty"`
	Name       string    `yaml:"name,omitempty" json:"name,omitempty"`
	RGB        []float64 `yaml:"rgb,omitempty" json:"rgb,omitempty"`
	HSL        []float64 `yaml:"hsl,omitempty" json:"hsl,omitempty"`
	HWB        []float64 `yaml:"hwb,omitempty" json:"hwb,omitempty"`
	Lab        []float64 `yaml:"lab,omitempty" json:"lab,omitempty"`
	LCH        []float64 `yaml:"lch,omitempty" json:"lch,omitempty"`
	OKLab      []float64 `yaml:"oklab,omitempty" json:"oklab,omitempty"`
	OKLCH      []float64 `yaml:"oklch,omitempty" json:"oklch,omitempty"`
	Space      string    `yaml:"space,omitempty" json:"space,omitempty"`
	Components []float64 `yaml:"components,omitempty" json:"components,omitempty"`
	Alpha      *float64  `yaml:"alpha,omitempty" json:"alpha,omitempty"`
	Mix        *Mix      `yaml:"mix,omitempty" json:"mix,omitempty"`
}

// Mix is color-mix() over two stops
type Mix struct {
	In    string `yaml:"in" json:"in"`
	Hue   string `yaml:"hue,omitempty" json:"hue,omitempty"`
	Stops []Stop `yaml:"stops" json:"stops"`
}

// Stop is a color-mix() operand with an optional weight
type Stop struct {
	Color      Color    `yaml:"color" json:"color"`
	Percentage *float64 `yaml:"percentage,omitempty" json:"percentage,omitempty"`
}

var errNotLength = errors.New("expected a length, percentage, calc() or sizing keyword")

type text string

func (t text) String() string { return string(t) }

func (v Value) length() (value.Length, error) {
	switch {
	case v.Length != nil:
		u, ok := value.UnitFor(v.Length.Unit)
		if !ok {
			return value.Length{}, fmt.Errorf("unknown unit %q", v.Length.Unit)
		}
		return value.NewLength(v.Length.Value, u), nil
	case v.Calc != "":
		return value.Calc(v.Calc), nil
	case v.Number != nil && *v.Number == 0:
		return value.Zero(), nil
	}
	switch strings.ToLower(v.Keyword) {
	case "auto":
		return value.Auto(), nil
	case "max-content":
		return value.MaxContent(), nil
	case "min-content":
		return value.MinContent(), nil
	case "fit-content":
		return value.FitContent(), nil
	}
	return value.Length{}, errNotLength
}

func (v Value) global() (property.Global, bool) {
	if v.Keyword == "" {
		return "", false
	}
	return property.GlobalFor(v.Keyword)
}

func (v Value) lengthPercentage() (property.LengthPercentage, error) {
	if v.Percentage != nil {
		return property.P(*v.Percentage), nil
	}
	if g, ok := v.global(); ok {
		return property.G(g), nil
	}
	l, err := v.length()
	if err != nil {
		return property.LengthPercentage{}, err
	}
	return property.L(l), nil
}

func (v Value) color() (color.Color, error) {
	if v.Color != nil {
		return v.Color.build()
	}
	if v.Keyword != "" {
		return keywordColor(v.Keyword)
	}
	return nil, errors.New("expected a color")
}

// renderer converts any value kind, for custom properties
func (v Value) renderer() (value.Renderer, error) {
	switch {
	case v.Length != nil, v.Calc != "":
		return v.length()
	case v.Percentage != nil:
		return value.Percent(*v.Percentage), nil
	case v.Number != nil:
		return value.NewNumber(*v.Number), nil
	case v.String != nil:
		return value.NewString(*v.String), nil
	case v.URL != nil:
		return value.NewURL(*v.URL), nil
	case v.Color != nil:
		return v.Color.build()
	case v.Keyword != "":
		return text(v.Keyword), nil
	}
	return nil, errors.New("empty value")
}

func keywordColor(k string) (color.Color, error) {
	switch {
	case color.IsNamed(k):
		return color.Named(strings.ToLower(k)), nil
	case color.IsSystem(k):
		return color.System(k), nil
	}
	return nil, fmt.Errorf("unknown color keyword %q", k)
}

func (c *Color) alpha() color.Alpha {
	if c.Alpha == nil {
		return color.Alpha{}
	}
	return color.WithAlpha(*c.Alpha)
}

func (c *Color) build() (color.Color, error) {
	switch {
	case c.Hex != "":
		h := color.Hex(c.Hex)
		if !h.IsValid() {
			return nil, fmt.Errorf("invalid hex color %q", c.Hex)
		}
		return h, nil
	case c.Name != "":
		return keywordColor(c.Name)
	case c.RGB != nil:
		return c.rgb()
	case c.HSL != nil:
		return c.hsl()
	case c.Mix != nil:
		return c.Mix.build()
	}

	comps, name := c.components()
	if comps == nil {
		return nil, errors.New("color has no notation")
	}
	if len(comps) != 3 {
		return nil, fmt.Errorf("%s needs 3 components, got %d", name, len(comps))
	}
	a := c.alpha()

	switch name {
	case "hwb":
		return color.HWB{H: value.Deg(comps[0]), W: comps[1], B: comps[2], Alpha: a}, nil
	case "lab":
		return color.Lab{L: comps[0], A: comps[1], B: comps[2], Alpha: a}, nil
	case "lch":
		return color.LCH{L: comps[0], C: comps[1], H: value.Deg(comps[2]), Alpha: a}, nil
	case "oklab":
		return color.OKLab{L: comps[0], A: comps[1], B: comps[2], Alpha: a}, nil
	case "oklch":
		return color.OKLCH{L: comps[0], C: comps[1], H: value.Deg(comps[2]), Alpha: a}, nil
	}
	return color.Func{Space: color.Space(name), C1: comps[0], C2: comps[1], C3: comps[2], Alpha: a}, nil
}

func (c *Color) components() ([]float64, string) {
	switch {
	case c.HWB != nil:
		return c.HWB, "hwb"
	case c.Lab != nil:
		return c.Lab, "lab"
	case c.LCH != nil:
		return c.LCH, "lch"
	case c.OKLab != nil:
		return c.OKLab, "oklab"
	case c.OKLCH != nil:
		return c.OKLCH, "oklch"
	case c.Space != "":
		return c.Components, strings.ToLower(c.Space)
	}
	return nil, ""
}

func (c *Color) rgb() (color.Color, error) {
	ch := make([]int, 3)
	switch len(c.RGB) {
	case 3, 4:
		for i := range ch {
			ch[i] = int(math.Round(c.RGB[i]))
		}
	default:
		return nil, fmt.Errorf("rgb needs 3 or 4 components, got %d", len(c.RGB))
	}
	if len(c.RGB) == 4 {
		return color.NewRGBA(ch[0], ch[1], ch[2], c.RGB[3]), nil
	}
	if c.Alpha != nil {
		return color.NewRGBA(ch[0], ch[1], ch[2], *c.Alpha), nil
	}
	return color.NewRGB(ch[0], ch[1], ch[2]), nil
}

func (c *Color) hsl() (color.Color, error) {
	h := c.HSL
	switch {
	case len(h) == 4:
		return color.NewHSLA(value.Deg(h[0]), h[1], h[2], h[3]), nil
	case len(h) == 3 && c.Alpha != nil:
		return color.NewHSLA(value.Deg(h[0]), h[1], h[2], *c.Alpha), nil
	case len(h) == 3:
		return color.NewHSL(value.Deg(h[0]), h[1], h[2]), nil
	}
	return nil, fmt.Errorf("hsl needs 3 or 4 components, got %d", len(h))
}

func (m *Mix) build() (color.Color, error) {
	if len(m.Stops) != 2 {
		return nil, fmt.Errorf("color-mix needs 2 stops, got %d", len(m.Stops))
	}
	in := color.In(color.Space(strings.ToLower(m.In)))
	if m.In == "" {
		in = color.In(color.SRGB)
	}
	if m.Hue != "" {
		in = color.InPolar(in.Space, color.HueMethod(strings.ToLower(m.Hue)))
	}
	var stops [2]color.Stop
	for i, s := range m.Stops {
		c, err := s.Color.build()
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		if s.Percentage != nil {
			stops[i] = color.StopAt(c, *s.Percentage)
		} else {
			stops[i] = color.StopOf(c)
		}
	}
	return color.NewMix(in, stops[0], stops[1]), nil
}
