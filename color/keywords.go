package color

import (
	"strings"

	"bennypowers.dev/cssvalues/internal/collections"
)

// Named is a CSS named colour keyword, including transparent and currentcolor
type Named string

const (
	Transparent   Named = "transparent"
	CurrentColor  Named = "currentcolor"
	Black         Named = "black"
	White         Named = "white"
	Red           Named = "red"
	Green         Named = "green"
	Blue          Named = "blue"
	RebeccaPurple Named = "rebeccapurple"
)

func (n Named) String() string { return string(n) }

// IsValid reports whether n is one of the CSS named colour keywords
func (n Named) IsValid() bool { return IsNamed(string(n)) }

func (Named) isColor() {}

// System is a CSS system colour keyword such as Canvas or LinkText
type System string

const (
	AccentColor      System = "AccentColor"
	AccentColorText  System = "AccentColorText"
	ActiveText       System = "ActiveText"
	ButtonBorder     System = "ButtonBorder"
	ButtonFace       System = "ButtonFace"
	ButtonText       System = "ButtonText"
	Canvas           System = "Canvas"
	CanvasText       System = "CanvasText"
	Field            System = "Field"
	FieldText        System = "FieldText"
	GrayText         System = "GrayText"
	Highlight        System = "Highlight"
	HighlightText    System = "HighlightText"
	LinkText         System = "LinkText"
	Mark             System = "Mark"
	MarkText         System = "MarkText"
	SelectedItem     System = "SelectedItem"
	SelectedItemText System = "SelectedItemText"
	VisitedText      System = "VisitedText"
)

func (s System) String() string { return string(s) }

func (System) isColor() {}

var (
	// namedColors are all CSS named colour keywords, lowercased
	namedColors = collections.NewSet(
		"transparent", "currentcolor",
		"aliceblue", "antiquewhite", "aqua", "aquamarine", "azure",
		"beige", "bisque", "black", "blanchedalmond", "blue",
		"blueviolet", "brown", "burlywood", "cadetblue", "chartreuse",
		"chocolate", "coral", "cornflowerblue", "cornsilk", "crimson",
		"cyan", "darkblue", "darkcyan", "darkgoldenrod", "darkgray",
		"darkgreen", "darkgrey", "darkkhaki", "darkmagenta", "darkolivegreen",
		"darkorange", "darkorchid", "darkred", "darksalmon", "darkseagreen",
		"darkslateblue", "darkslategray", "darkslategrey", "darkturquoise", "darkviolet",
		"deeppink", "deepskyblue", "dimgray", "dimgrey", "dodgerblue",
		"firebrick", "floralwhite", "forestgreen", "fuchsia", "gainsboro",
		"ghostwhite", "gold", "goldenrod", "gray", "green",
		"greenyellow", "grey", "honeydew", "hotpink", "indianred",
		"indigo", "ivory", "khaki", "lavender", "lavenderblush",
		"lawngreen", "lemonchiffon", "lightblue", "lightcoral", "lightcyan",
		"lightgoldenrodyellow", "lightgray", "lightgreen", "lightgrey", "lightpink",
		"lightsalmon", "lightseagreen", "lightskyblue", "lightslategray", "lightslategrey",
		"lightsteelblue", "lightyellow", "lime", "limegreen", "linen",
		"magenta", "maroon", "mediumaquamarine", "mediumblue", "mediumorchid",
		"mediumpurple", "mediumseagreen", "mediumslateblue", "mediumspringgreen", "mediumturquoise",
		"mediumvioletred", "midnightblue", "mintcream", "mistyrose", "moccasin",
		"navajowhite", "navy", "oldlace", "olive", "olivedrab",
		"orange", "orangered", "orchid", "palegoldenrod", "palegreen",
		"paleturquoise", "palevioletred", "papayawhip", "peachpuff", "peru",
		"pink", "plum", "powderblue", "purple", "rebeccapurple",
		"red", "rosybrown", "royalblue", "saddlebrown", "salmon",
		"sandybrown", "seagreen", "seashell", "sienna", "silver",
		"skyblue", "slateblue", "slategray", "slategrey", "snow",
		"springgreen", "steelblue", "tan", "teal", "thistle",
		"tomato", "turquoise", "violet", "wheat", "white",
		"whitesmoke", "yellow", "yellowgreen",
	)

	// systemColors are the CSS system colour keywords, lowercased
	systemColors = func() collections.Set[string] {
		s := collections.NewSet[string]()
		for _, c := range []System{
			AccentColor, AccentColorText, ActiveText, ButtonBorder, ButtonFace,
			ButtonText, Canvas, CanvasText, Field, FieldText, GrayText,
			Highlight, HighlightText, LinkText, Mark, MarkText,
			SelectedItem, SelectedItemText, VisitedText,
		} {
			s.Add(strings.ToLower(string(c)))
		}
		return s
	}()
)

// IsNamed reports whether s is a named colour keyword (case-insensitive)
func IsNamed(s string) bool {
	return namedColors.Has(strings.ToLower(s))
}

// IsSystem reports whether s is a system colour keyword (case-insensitive)
func IsSystem(s string) bool {
	return systemColors.Has(strings.ToLower(s))
}

// NamedColors returns every named colour keyword in alphabetical order
func NamedColors() []string {
	return collections.Sorted(namedColors)
}
