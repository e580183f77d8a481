package color

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// HexColor is an sRGB colour in hex notation.
//
// Value is kept as given (after prefixing "#"); an invalid value is
// representable and only detectable through IsValid.
type HexColor struct {
	Value string
}

// NewHex creates a HexColor, prepending "#" when missing
func NewHex(s string) HexColor {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return HexColor{Value: s}
}

// HexFromRGB builds #RRGGBB, clamping each channel to [0, 255]
func HexFromRGB(r, g, b int) HexColor {
	return HexColor{Value: fmt.Sprintf("#%02X%02X%02X", clamp(r, 0, 255), clamp(g, 0, 255), clamp(b, 0, 255))}
}

// HexFromRGBA builds #RRGGBBAA. Alpha is clamped to [0, 1] and rounded,
// not truncated, onto [0, 255].
func HexFromRGBA(r, g, b int, a float64) HexColor {
	alpha := int(math.Round(math.Max(0, math.Min(1, a)) * 255))
	return HexColor{Value: HexFromRGB(r, g, b).Value + fmt.Sprintf("%02X", alpha)}
}

// IsValid reports whether the value is "#" followed by 3, 4, 6 or 8 hex digits
func (h HexColor) IsValid() bool {
	return hexPattern.MatchString(h.Value)
}

func (h HexColor) String() string {
	return h.Value
}

func (HexColor) isColor() {}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
