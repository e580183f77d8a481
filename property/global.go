// Package property builds typed CSS property values on top of the value and
// color primitives and renders them as declarations.
package property

import (
	"strings"

	"bennypowers.dev/cssvalues/internal/collections"
	"bennypowers.dev/cssvalues/value"
)

// Global is a CSS-wide keyword accepted by every property
type Global string

const (
	Inherit     Global = "inherit"
	Initial     Global = "initial"
	Unset       Global = "unset"
	Revert      Global = "revert"
	RevertLayer Global = "revert-layer"
)

var globals = collections.NewSet(Inherit, Initial, Unset, Revert, RevertLayer)

// GlobalFor looks up a CSS-wide keyword, ignoring case
func GlobalFor(s string) (Global, bool) {
	g := Global(strings.ToLower(s))
	return g, globals.Has(g)
}

func (g Global) String() string { return string(g) }

// LengthPercentageKind discriminates LengthPercentage
type LengthPercentageKind int

const (
	LPLength LengthPercentageKind = iota
	LPPercentage
	LPGlobal
)

// LengthPercentage is a <length-percentage> (including the length keywords
// and calc()) or a CSS-wide keyword.
type LengthPercentage struct {
	Kind       LengthPercentageKind
	Length     value.Length
	Percentage value.Percentage
	Global     Global
}

// L wraps a length
func L(l value.Length) LengthPercentage {
	return LengthPercentage{Kind: LPLength, Length: l}
}

// P wraps a percentage
func P(pct float64) LengthPercentage {
	return LengthPercentage{Kind: LPPercentage, Percentage: value.Percent(pct)}
}

// G wraps a CSS-wide keyword
func G(g Global) LengthPercentage {
	return LengthPercentage{Kind: LPGlobal, Global: g}
}

func (lp LengthPercentage) String() string {
	switch lp.Kind {
	case LPPercentage:
		return lp.Percentage.String()
	case LPGlobal:
		return lp.Global.String()
	}
	return lp.Length.String()
}
