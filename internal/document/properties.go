package document

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"bennypowers.dev/cssvalues/internal/collections"
	"bennypowers.dev/cssvalues/property"
	"bennypowers.dev/cssvalues/value"
)

type builder func(name string, vals []Value, vertical []Value) (property.Property, error)

var builders = map[string]builder{
	"margin":                 box(property.Margin),
	"padding":                box(property.Padding),
	"inset":                  box(property.Inset),
	"width":                  size(property.Width),
	"height":                 size(property.Height),
	"min-width":              size(property.MinWidth),
	"max-width":              size(property.MaxWidth),
	"min-height":             size(property.MinHeight),
	"max-height":             size(property.MaxHeight),
	"border-radius":          borderRadius,
	"border-width":           borderWidth,
	"border-block-end-width": borderBlockEndWidth,
	"background-clip":        backgroundClip,
	"opacity":                opacity,
	"color":                  colorProperty,
	"background-color":       colorProperty,
	"border-color":           colorProperty,
	"outline-color":          colorProperty,
	"font-family":            fontFamily,
}

// Properties lists the property names documents may declare, besides
// custom properties
func Properties() []string {
	return slices.Sorted(maps.Keys(builders))
}

func build(path string, d Declaration) (property.Property, error) {
	name := strings.ToLower(strings.TrimSpace(d.Property))
	vals := d.all()
	if len(vals) == 0 {
		return nil, NewInvalidValueError(path, name, "no values")
	}

	var (
		p   property.Property
		err error
	)
	if strings.HasPrefix(name, "--") {
		p, err = custom(d.Property, vals)
	} else if b, ok := builders[name]; ok {
		p, err = b(name, vals, d.Vertical)
	} else {
		return nil, NewUnknownPropertyError(path, d.Property)
	}
	if err != nil {
		return nil, NewInvalidValueError(path, name, err.Error())
	}
	return p, nil
}

func one(vals []Value) (Value, error) {
	if len(vals) != 1 {
		return Value{}, fmt.Errorf("expected 1 value, got %d", len(vals))
	}
	return vals[0], nil
}

func lengthPercentages(vals []Value) ([]property.LengthPercentage, error) {
	out := make([]property.LengthPercentage, len(vals))
	for i, v := range vals {
		lp, err := v.lengthPercentage()
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = lp
	}
	return out, nil
}

func box(shorthand func(...property.LengthPercentage) (property.Box, bool)) builder {
	return func(_ string, vals, _ []Value) (property.Property, error) {
		lps, err := lengthPercentages(vals)
		if err != nil {
			return nil, err
		}
		b, ok := shorthand(lps...)
		if !ok {
			return nil, fmt.Errorf("expected 1-4 values, got %d", len(vals))
		}
		return b, nil
	}
}

func size(sizing func(property.LengthPercentage) property.Size) builder {
	return func(_ string, vals, _ []Value) (property.Property, error) {
		v, err := one(vals)
		if err != nil {
			return nil, err
		}
		lp, err := v.lengthPercentage()
		if err != nil {
			return nil, err
		}
		return sizing(lp), nil
	}
}

func borderRadius(_ string, vals, vertical []Value) (property.Property, error) {
	if g, ok := vals[0].global(); ok && len(vals) == 1 && len(vertical) == 0 {
		return property.BorderRadius{Global: g}, nil
	}
	h, err := lengthPercentages(vals)
	if err != nil {
		return nil, err
	}
	var (
		c  property.Corners
		ok bool
	)
	if len(vertical) == 0 {
		c, ok = property.Radius(h...)
	} else {
		v, err := lengthPercentages(vertical)
		if err != nil {
			return nil, err
		}
		c, ok = property.EllipticalRadius(h, v)
	}
	if !ok {
		return nil, errors.New("expected 1-4 radii on each axis")
	}
	return property.BorderRadius{Corners: c}, nil
}

func lineWidth(v Value) (property.LineWidth, error) {
	if g, ok := v.global(); ok {
		return property.LineWidthGlobal(g), nil
	}
	if v.Keyword != "" {
		if w, ok := property.LineWidthFor(v.Keyword); ok {
			return w, nil
		}
		return property.LineWidth{}, fmt.Errorf("unknown line width %q", v.Keyword)
	}
	l, err := v.length()
	if err != nil {
		return property.LineWidth{}, err
	}
	return property.LineWidthOf(l), nil
}

func borderWidth(_ string, vals, _ []Value) (property.Property, error) {
	if g, ok := vals[0].global(); ok && len(vals) == 1 {
		return property.BorderWidth{Global: g}, nil
	}
	widths := make([]property.LineWidth, len(vals))
	for i, v := range vals {
		w, err := lineWidth(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		widths[i] = w
	}
	sides, ok := property.ExpandSides(widths...)
	if !ok {
		return nil, fmt.Errorf("expected 1-4 values, got %d", len(vals))
	}
	return property.BorderWidth{Sides: sides}, nil
}

func borderBlockEndWidth(_ string, vals, _ []Value) (property.Property, error) {
	v, err := one(vals)
	if err != nil {
		return nil, err
	}
	w, err := lineWidth(v)
	if err != nil {
		return nil, err
	}
	return property.BorderBlockEndWidth{Width: w}, nil
}

var clipKeywords = collections.NewSet(
	property.BorderBox, property.PaddingBox, property.ContentBox, property.ClipText,
)

func backgroundClip(_ string, vals, _ []Value) (property.Property, error) {
	v, err := one(vals)
	if err != nil {
		return nil, err
	}
	if g, ok := v.global(); ok {
		return property.BackgroundClipGlobal(g), nil
	}
	clip := property.BackgroundClip(strings.ToLower(v.Keyword))
	if !clipKeywords.Has(clip) {
		return nil, fmt.Errorf("expected one of %v", collections.Sorted(clipKeywords))
	}
	return clip, nil
}

func opacity(_ string, vals, _ []Value) (property.Property, error) {
	v, err := one(vals)
	if err != nil {
		return nil, err
	}
	switch {
	case v.Number != nil:
		return property.OpacityNumber(*v.Number), nil
	case v.Percentage != nil:
		return property.OpacityPercent(*v.Percentage), nil
	}
	if g, ok := v.global(); ok {
		return property.OpacityGlobal(g), nil
	}
	return nil, errors.New("expected a number or percentage")
}

func colorProperty(name string, vals, _ []Value) (property.Property, error) {
	v, err := one(vals)
	if err != nil {
		return nil, err
	}
	if g, ok := v.global(); ok {
		return property.ColorProperty{Property: name, Global: g}, nil
	}
	c, err := v.color()
	if err != nil {
		return nil, err
	}
	return property.ColorProperty{Property: name, Color: c}, nil
}

func fontFamily(_ string, vals, _ []Value) (property.Property, error) {
	if g, ok := vals[0].global(); ok && len(vals) == 1 {
		return property.FontFamily{Global: g}, nil
	}
	ff := property.FontFamily{}
	for i, v := range vals {
		switch {
		case v.String != nil:
			ff.Families = append(ff.Families, property.FamilyNamed(*v.String))
		case v.Keyword != "":
			f, ok := property.GenericFamily(v.Keyword)
			if !ok {
				return nil, fmt.Errorf("value %d: unknown generic family %q", i, v.Keyword)
			}
			ff.Families = append(ff.Families, f)
		default:
			return nil, fmt.Errorf("value %d: expected a family name or generic keyword", i)
		}
	}
	return ff, nil
}

func custom(name string, vals []Value) (property.Property, error) {
	rs := make([]value.Renderer, len(vals))
	for i, v := range vals {
		r, err := v.renderer()
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		rs[i] = r
	}
	if len(rs) == 1 {
		return property.NewCustom(name, rs[0]), nil
	}
	return property.NewCustom(name, text(property.JoinSpace(rs))), nil
}
