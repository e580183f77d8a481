package color_test

import (
	"regexp"
	"testing"

	"bennypowers.dev/cssvalues/color"
	"bennypowers.dev/cssvalues/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexColor(t *testing.T) {
	t.Run("prepends missing hash", func(t *testing.T) {
		assert.Equal(t, "#ff0000", color.NewHex("ff0000").String())
		assert.Equal(t, "#abc", color.NewHex("#abc").String())
	})

	t.Run("rgb clamps and uppercases", func(t *testing.T) {
		tests := []struct {
			r, g, b  int
			expected string
		}{
			{255, 0, 0, "#FF0000"},
			{300, 0, 0, "#FF0000"},
			{0, -50, 0, "#000000"},
			{18, 52, 86, "#123456"},
			{171, 205, 239, "#ABCDEF"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, color.HexFromRGB(tt.r, tt.g, tt.b).String())
		}
	})

	t.Run("rgb always yields six uppercase digits", func(t *testing.T) {
		pattern := regexp.MustCompile(`^#[0-9A-F]{6}$`)
		for _, v := range []int{-1000, -1, 0, 1, 15, 16, 127, 128, 254, 255, 256, 1000} {
			h := color.HexFromRGB(v, 255-v, v*3)
			assert.Regexp(t, pattern, h.String())
			assert.True(t, h.IsValid())
		}
	})

	t.Run("rgba rounds alpha instead of truncating", func(t *testing.T) {
		assert.Equal(t, "#00FF0080", color.HexFromRGBA(0, 255, 0, 0.5).String())
		assert.Equal(t, "#000000FF", color.HexFromRGBA(0, 0, 0, 1).String())
		assert.Equal(t, "#00000000", color.HexFromRGBA(0, 0, 0, 0).String())
	})

	t.Run("rgba clamps alpha", func(t *testing.T) {
		assert.Equal(t, "#FFFFFFFF", color.HexFromRGBA(255, 255, 255, 2).String())
		assert.Equal(t, "#FFFFFF00", color.HexFromRGBA(255, 255, 255, -0.5).String())
	})
}

func TestHexColorIsValid(t *testing.T) {
	valid := []string{"#fff", "#FFFA", "#ff0000", "#FF000080", "#aBcDeF"}
	for _, v := range valid {
		assert.True(t, color.NewHex(v).IsValid(), v)
	}
	assert.True(t, color.NewHex("ff0000").IsValid(), "hash is prepended")

	invalid := []color.HexColor{
		{Value: "ff0000"},
		color.NewHex("#f0"),
		color.NewHex("#f00000000"),
		color.NewHex("#ff00g0"),
		color.NewHex("#fffff"),
		color.NewHex(""),
	}
	for _, h := range invalid {
		assert.False(t, h.IsValid(), h.Value)
	}

	t.Run("invalid values still render", func(t *testing.T) {
		assert.Equal(t, "#f0", color.NewHex("f0").String())
	})
}

func TestColorString(t *testing.T) {
	tests := []struct {
		name     string
		color    color.Color
		expected string
	}{
		{"named", color.RebeccaPurple, "rebeccapurple"},
		{"currentcolor", color.CurrentColor, "currentcolor"},
		{"system", color.Canvas, "Canvas"},
		{"hex", color.Hex("#0af"), "#0af"},
		{"rgb", color.NewRGB(255, 128, 0), "rgb(255, 128, 0)"},
		{"rgba", color.NewRGBA(255, 128, 0, 0.5), "rgba(255, 128, 0, 0.5)"},
		{"hsl", color.NewHSL(value.Deg(120), 100, 50), "hsl(120deg, 100%, 50%)"},
		{"hsl black", color.NewHSL(value.Deg(0), 0, 0), "hsl(0deg, 0%, 0%)"},
		{"hsl no wraparound", color.NewHSL(value.Deg(360), 50, 50), "hsl(360deg, 50%, 50%)"},
		{"hsl turn", color.NewHSL(value.Turn(0.5), 25.5, 10), "hsl(0.5turn, 25.5%, 10%)"},
		{"hsla", color.NewHSLA(value.Rad(1), 20, 30, 0.25), "hsla(1rad, 20%, 30%, 0.25)"},
		{"hwb", color.NewHWB(value.Deg(200), 10, 20), "hwb(200deg 10% 20%)"},
		{"hwb alpha", color.NewHWB(value.Deg(200), 10, 20).WithAlpha(0.5), "hwb(200deg 10% 20% / 0.5)"},
		{"lab", color.NewLab(52.2, 40.1, -59.9), "lab(52.2% 40.1 -59.9)"},
		{"lab out of range passes", color.NewLab(150, 400, -400), "lab(150% 400 -400)"},
		{"lch", color.NewLCH(29.2, 66.8, value.Deg(301)), "lch(29.2% 66.8 301deg)"},
		{"lch alpha", color.NewLCH(50, 30, value.Deg(10)).WithAlpha(0.8), "lch(50% 30 10deg / 0.8)"},
		{"oklab", color.NewOKLab(0.5, -0.1, 0.2), "oklab(0.5 -0.1 0.2)"},
		{"oklch", color.NewOKLCH(0.65, 0.18, value.Deg(240)), "oklch(0.65 0.18 240deg)"},
		{"oklch alpha", color.NewOKLCH(0.8, 0.12, value.Deg(120)).WithAlpha(0.9), "oklch(0.8 0.12 120deg / 0.9)"},
		{"color function", color.NewFunc(color.DisplayP3, 1, 0.5, 0), "color(display-p3 1 0.5 0)"},
		{"color function alpha", color.NewFunc(color.Rec2020, 0, 0, 1).WithAlpha(0.3), "color(rec2020 0 0 1 / 0.3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.color.String())
		})
	}
}

func TestColorMix(t *testing.T) {
	tests := []struct {
		name     string
		mix      color.Mix
		expected string
	}{
		{
			name:     "rectangular unweighted",
			mix:      color.NewMix(color.In(color.SRGB), color.StopOf(color.Red), color.StopOf(color.Blue)),
			expected: "color-mix(in srgb, red, blue)",
		},
		{
			name:     "weighted stops",
			mix:      color.NewMix(color.In(color.SpaceOKLab), color.StopAt(color.Hex("#f00"), 30), color.StopAt(color.White, 70)),
			expected: "color-mix(in oklab, #f00 30%, white 70%)",
		},
		{
			name:     "one weighted stop",
			mix:      color.NewMix(color.In(color.SpaceLab), color.StopAt(color.Black, 12.5), color.StopOf(color.White)),
			expected: "color-mix(in lab, black 12.5%, white)",
		},
		{
			name: "polar with hue method",
			mix: color.NewMix(color.InPolar(color.SpaceOKLCH, color.Longer),
				color.StopOf(color.NewOKLCH(0.7, 0.1, value.Deg(20))), color.StopOf(color.Green)),
			expected: "color-mix(in oklch longer hue, oklch(0.7 0.1 20deg), green)",
		},
		{
			name:     "hue method ignored for rectangular spaces",
			mix:      color.NewMix(color.InPolar(color.SRGB, color.Longer), color.StopOf(color.Red), color.StopOf(color.Blue)),
			expected: "color-mix(in srgb, red, blue)",
		},
		{
			name: "nested mix",
			mix: color.NewMix(color.In(color.SpaceHSL),
				color.StopOf(color.NewMix(color.In(color.SRGB), color.StopOf(color.Red), color.StopOf(color.Blue))),
				color.StopAt(color.White, 50)),
			expected: "color-mix(in hsl, color-mix(in srgb, red, blue), white 50%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mix.String())
		})
	}

	assert.True(t, color.SpaceHWB.IsPolar())
	assert.False(t, color.XYZD65.IsPolar())
}

func TestKeywords(t *testing.T) {
	assert.True(t, color.IsNamed("RebeccaPurple"))
	assert.True(t, color.IsNamed("transparent"))
	assert.False(t, color.IsNamed("notacolor"))
	assert.True(t, color.Named("teal").IsValid())
	assert.False(t, color.Named("tealish").IsValid())

	assert.True(t, color.IsSystem("canvastext"))
	assert.True(t, color.IsSystem("LinkText"))
	assert.False(t, color.IsSystem("red"))

	names := color.NamedColors()
	assert.Len(t, names, 150)
	assert.Equal(t, "aliceblue", names[0])
	assert.Equal(t, "yellowgreen", names[len(names)-1])
}

func TestColorsAreComparableValues(t *testing.T) {
	a := color.NewMix(color.In(color.SRGB), color.StopAt(color.Red, 10), color.StopOf(color.NewHSL(value.Deg(1), 2, 3)))
	b := color.NewMix(color.In(color.SRGB), color.StopAt(color.Red, 10), color.StopOf(color.NewHSL(value.Deg(1), 2, 3)))
	assert.Equal(t, a, b)
	assert.True(t, a == b)
}

func TestResolve(t *testing.T) {
	t.Run("resolvable colors", func(t *testing.T) {
		tests := []struct {
			name    string
			color   color.Color
			r, g, b float64
			a       float64
		}{
			{"named", color.Red, 1, 0, 0, 1},
			{"hex", color.HexFromRGB(0, 255, 0), 0, 1, 0, 1},
			{"hex with alpha", color.HexFromRGBA(0, 0, 255, 0.5), 0, 0, 1, 128.0 / 255},
			{"rgb", color.NewRGB(255, 255, 0), 1, 1, 0, 1},
			{"rgba", color.NewRGBA(0, 0, 0, 0.25), 0, 0, 0, 0.25},
			{"hsl", color.NewHSL(value.Deg(120), 100, 50), 0, 1, 0, 1},
			{"lab white", color.NewLab(100, 0, 0), 1, 1, 1, 1},
			{"lab black", color.NewLab(0, 0, 0), 0, 0, 0, 1},
			{"lch white", color.NewLCH(100, 0, value.Deg(0)), 1, 1, 1, 1},
			{"oklab white", color.NewOKLab(1, 0, 0), 1, 1, 1, 1},
			{"oklch black", color.NewOKLCH(0, 0, value.Deg(0)), 0, 0, 0, 1},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c, err := color.Resolve(tt.color)
				require.NoError(t, err)
				assert.InDelta(t, tt.r, c.R, 0.01)
				assert.InDelta(t, tt.g, c.G, 0.01)
				assert.InDelta(t, tt.b, c.B, 0.01)
				assert.InDelta(t, tt.a, c.A, 0.01)
			})
		}
	})

	t.Run("context dependent colors are unresolvable", func(t *testing.T) {
		for _, c := range []color.Color{
			color.CurrentColor,
			color.Canvas,
			color.NewMix(color.In(color.SRGB), color.StopOf(color.Red), color.StopOf(color.Blue)),
			nil,
		} {
			_, err := color.Resolve(c)
			require.Error(t, err)
			assert.ErrorIs(t, err, color.ErrUnresolvable)
		}
	})

	t.Run("color function is unresolvable", func(t *testing.T) {
		_, err := color.Resolve(color.NewFunc(color.DisplayP3, 1, 0.5, 0))
		require.Error(t, err)
		assert.ErrorIs(t, err, color.ErrUnresolvable)
		var unresolvable *color.UnresolvableError
		require.ErrorAs(t, err, &unresolvable)
		assert.Equal(t, "color(display-p3 1 0.5 0)", unresolvable.Color)
		assert.Contains(t, unresolvable.Reason, "display-p3")
		assert.NotContains(t, unresolvable.Reason, "Invalid color format")
	})

	t.Run("invalid hex is unresolvable", func(t *testing.T) {
		_, err := color.Resolve(color.NewHex("#f0"))
		require.Error(t, err)
		var unresolvable *color.UnresolvableError
		require.ErrorAs(t, err, &unresolvable)
		assert.Equal(t, "#f0", unresolvable.Color)
	})
}

func TestEquivalent(t *testing.T) {
	assert.True(t, color.Equivalent(color.Red, color.Hex("#F00")))
	assert.True(t, color.Equivalent(color.NewRGB(0, 0, 255), color.Blue))
	assert.True(t, color.Equivalent(color.NewHSL(value.Deg(0), 100, 50), color.HexFromRGB(255, 0, 0)))
	assert.False(t, color.Equivalent(color.Red, color.Blue))
	assert.False(t, color.Equivalent(color.CurrentColor, color.CurrentColor))
}
