package value_test

import (
	"math"
	"strings"
	"testing"

	"bennypowers.dev/cssvalues/value"
	"github.com/stretchr/testify/assert"
)

func TestNumberString(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"fractional", 10.5, "10.5"},
		{"integral float", 10.0, "10"},
		{"exact digits", 10.123456, "10.123456"},
		{"negative", -3.25, "-3.25"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"large integral", 1e6, "1000000"},
		{"small fraction", 0.001, "0.001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, value.NewNumber(tt.input).String())
		})
	}
}

func TestNumberIntegralHasNoDecimalPoint(t *testing.T) {
	for _, d := range []float64{-100, -1, 0, 1, 2, 42, 255, 1024} {
		assert.NotContains(t, value.NewNumber(d).String(), ".", "integral %v", d)
	}
}

func TestNumberArithmetic(t *testing.T) {
	a := value.NewNumber(7.5)
	b := value.Int(2)

	assert.Equal(t, "9.5", a.Add(b).String())
	assert.Equal(t, "5.5", a.Sub(b).String())
	assert.Equal(t, "15", a.Mul(b).String())
	assert.Equal(t, "3.75", a.Div(b).String())
	assert.Equal(t, "-7.5", a.Neg().String())
	assert.Equal(t, "7.5", a.Neg().Abs().String())
	assert.Equal(t, "8", a.Round().String())
	assert.Equal(t, "7", a.Floor().String())
	assert.Equal(t, "8", a.Ceil().String())
	assert.Equal(t, "-8", a.Neg().Round().String(), "rounds half away from zero")

	assert.True(t, a.Equal(value.NewNumber(7.5)))
	assert.True(t, b.Less(a))
	assert.False(t, a.Less(b))
}

func TestNumberNonFinite(t *testing.T) {
	t.Run("division by zero propagates infinity", func(t *testing.T) {
		n := value.Int(1).Div(value.Int(0))
		assert.True(t, math.IsInf(n.Value, 1))
		assert.Equal(t, "+Inf", n.String())
		assert.Equal(t, "-Inf", n.Neg().String())
	})

	t.Run("zero over zero is NaN", func(t *testing.T) {
		n := value.Int(0).Div(value.Int(0))
		assert.True(t, math.IsNaN(n.Value))
		assert.Equal(t, "NaN", n.String())
	})
}

func TestPercentage(t *testing.T) {
	t.Run("renders without rounding", func(t *testing.T) {
		assert.Equal(t, "33.333333%", value.Percent(33.333333).String())
		assert.Equal(t, "50%", value.Percent(50).String())
	})

	t.Run("does not clamp", func(t *testing.T) {
		assert.Equal(t, "150%", value.Percent(100).Add(value.Percent(50)).String())
		assert.Equal(t, "-20%", value.Percent(10).Sub(value.Percent(30)).String())
	})

	t.Run("arithmetic helpers", func(t *testing.T) {
		p := value.Percent(12.5)
		assert.Equal(t, "25%", p.Mul(value.Percent(2)).String())
		assert.Equal(t, "6.25%", p.Div(value.Percent(2)).String())
		assert.Equal(t, "13%", p.Round().String())
		assert.Equal(t, "12%", p.Floor().String())
		assert.Equal(t, "13%", p.Ceil().String())
		assert.Equal(t, "12.5%", p.Neg().Abs().String())
		assert.True(t, p.Less(value.Percent(13)))
	})

	t.Run("conversions are explicit", func(t *testing.T) {
		n := value.NewNumber(50)
		p := n.Percent()
		assert.Equal(t, "50", n.String())
		assert.Equal(t, "50%", p.String())
		assert.Equal(t, n, p.Number())
		assert.True(t, strings.HasSuffix(p.String(), "%"))
	})
}
