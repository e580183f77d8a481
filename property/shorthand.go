package property

import (
	"fmt"
	"strings"
)

// Sides is a four-sided shorthand value (margin, padding, inset,
// border-width, ...). For border-radius the sides map to corners in the
// order top-left, top-right, bottom-right, bottom-left.
type Sides[T fmt.Stringer] struct {
	Top, Right, Bottom, Left T
}

// All uses the same value for every side
func All[T fmt.Stringer](v T) Sides[T] {
	return Sides[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// ExpandSides applies the 1/2/3/4-value shorthand rule:
//
//	1: all sides
//	2: vertical horizontal
//	3: top horizontal bottom
//	4: top right bottom left
//
// It reports false for any other number of values.
func ExpandSides[T fmt.Stringer](vs ...T) (Sides[T], bool) {
	switch len(vs) {
	case 1:
		return All(vs[0]), true
	case 2:
		return Sides[T]{Top: vs[0], Right: vs[1], Bottom: vs[0], Left: vs[1]}, true
	case 3:
		return Sides[T]{Top: vs[0], Right: vs[1], Bottom: vs[2], Left: vs[1]}, true
	case 4:
		return Sides[T]{Top: vs[0], Right: vs[1], Bottom: vs[2], Left: vs[3]}, true
	}
	return Sides[T]{}, false
}

// Values returns the shortest value list that expands back to s.
// Sides compare by their rendered text.
func (s Sides[T]) Values() []string {
	t, r, b, l := s.Top.String(), s.Right.String(), s.Bottom.String(), s.Left.String()
	switch {
	case t == r && r == b && b == l:
		return []string{t}
	case t == b && r == l:
		return []string{t, r}
	case r == l:
		return []string{t, r, b}
	}
	return []string{t, r, b, l}
}

// String renders the collapsed shorthand
func (s Sides[T]) String() string {
	return strings.Join(s.Values(), " ")
}

// Corners is a border-radius value: horizontal radii, and vertical radii
// which default to the horizontal ones.
type Corners struct {
	Horizontal Sides[LengthPercentage]
	Vertical   Sides[LengthPercentage]
}

// Radius creates circular corners from 1-4 radii
func Radius(vs ...LengthPercentage) (Corners, bool) {
	h, ok := ExpandSides(vs...)
	if !ok {
		return Corners{}, false
	}
	return Corners{Horizontal: h, Vertical: h}, true
}

// EllipticalRadius creates corners from 1-4 horizontal and 1-4 vertical radii
func EllipticalRadius(horizontal, vertical []LengthPercentage) (Corners, bool) {
	h, ok := ExpandSides(horizontal...)
	if !ok {
		return Corners{}, false
	}
	v, ok := ExpandSides(vertical...)
	if !ok {
		return Corners{}, false
	}
	return Corners{Horizontal: h, Vertical: v}, true
}

// String renders "h" or "h / v" when the vertical radii differ
func (c Corners) String() string {
	h := c.Horizontal.String()
	v := c.Vertical.String()
	if h == v {
		return h
	}
	return h + " / " + v
}

// JoinComma renders a comma-separated list
func JoinComma[T fmt.Stringer](items []T) string {
	return join(items, ", ")
}

// JoinSpace renders a space-separated list
func JoinSpace[T fmt.Stringer](items []T) string {
	return join(items, " ")
}

func join[T fmt.Stringer](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, sep)
}
