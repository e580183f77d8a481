package tokens

import (
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/cssvalues/color"
	"bennypowers.dev/cssvalues/value"
)

// colorFromObject converts a structured DTCG colour
// ({colorSpace, components, alpha, hex}) into a color value.
func colorFromObject(obj map[string]any) (color.Color, error) {
	space, ok := obj["colorSpace"].(string)
	if !ok || space == "" {
		return nil, fmt.Errorf("missing colorSpace")
	}
	raw, ok := obj["components"].([]any)
	if !ok || len(raw) < 3 {
		return nil, fmt.Errorf("expected 3 components")
	}
	c := make([]float64, 3)
	for i := range c {
		f, err := component(raw[i])
		if err != nil {
			return nil, fmt.Errorf("component[%d]: %w", i, err)
		}
		c[i] = f
	}

	alpha := 1.0
	if a, ok := obj["alpha"].(float64); ok {
		alpha = a
	}
	opaque := alpha >= color.AlphaThreshold

	if hex, ok := obj["hex"].(string); ok && hex != "" && opaque {
		return color.Hex(hex), nil
	}

	switch s := color.Space(strings.ToLower(space)); s {
	case color.SRGB:
		r, g, b := channel(c[0]), channel(c[1]), channel(c[2])
		if opaque {
			return color.HexFromRGB(r, g, b), nil
		}
		return color.NewRGBA(r, g, b, alpha), nil
	case color.SpaceHSL:
		if opaque {
			return color.NewHSL(value.Deg(c[0]), c[1], c[2]), nil
		}
		return color.NewHSLA(value.Deg(c[0]), c[1], c[2], alpha), nil
	case color.SpaceHWB:
		hwb := color.NewHWB(value.Deg(c[0]), c[1], c[2])
		if !opaque {
			hwb = hwb.WithAlpha(alpha)
		}
		return hwb, nil
	case color.SpaceLab:
		lab := color.NewLab(c[0], c[1], c[2])
		if !opaque {
			lab = lab.WithAlpha(alpha)
		}
		return lab, nil
	case color.SpaceLCH:
		lch := color.NewLCH(c[0], c[1], value.Deg(c[2]))
		if !opaque {
			lch = lch.WithAlpha(alpha)
		}
		return lch, nil
	case color.SpaceOKLab:
		oklab := color.NewOKLab(c[0], c[1], c[2])
		if !opaque {
			oklab = oklab.WithAlpha(alpha)
		}
		return oklab, nil
	case color.SpaceOKLCH:
		oklch := color.NewOKLCH(c[0], c[1], value.Deg(c[2]))
		if !opaque {
			oklch = oklch.WithAlpha(alpha)
		}
		return oklch, nil
	default:
		fn := color.NewFunc(s, c[0], c[1], c[2])
		if !opaque {
			fn = fn.WithAlpha(alpha)
		}
		return fn, nil
	}
}

// component reads a number or the "none" keyword, which counts as zero
func component(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		if n == "none" {
			return 0, nil
		}
		return 0, fmt.Errorf("invalid keyword %q", n)
	}
	return 0, fmt.Errorf("invalid type %T", v)
}

// channel maps a 0-1 sRGB component to a byte
func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// colorFromString handles draft-schema colour strings
func colorFromString(s string) value.Renderer {
	s = strings.TrimSpace(s)
	if h := color.Hex(s); strings.HasPrefix(s, "#") && h.IsValid() {
		return h
	}
	if color.IsNamed(s) {
		return color.Named(strings.ToLower(s))
	}
	return Raw(s)
}
