package value

// LengthKind discriminates the Length union
type LengthKind int

const (
	// KindDimension is a number with a unit, e.g. 10px
	KindDimension LengthKind = iota
	KindAuto
	KindMaxContent
	KindMinContent
	KindFitContent
	// KindCalc holds a raw calc() expression
	KindCalc
)

var lengthKeywords = map[LengthKind]string{
	KindAuto:       "auto",
	KindMaxContent: "max-content",
	KindMinContent: "min-content",
	KindFitContent: "fit-content",
}

// Length is a CSS <length>, one of the length keywords, or a calc() expression.
//
// Unit and Value are meaningful only for KindDimension; Expr only for KindCalc.
type Length struct {
	Kind  LengthKind
	Unit  Unit
	Value float64
	Expr  string
}

// NewLength creates a dimension with the given unit
func NewLength(v float64, u Unit) Length {
	return Length{Kind: KindDimension, Unit: u, Value: v}
}

// Zero is 0px
func Zero() Length { return Px(0) }

// Px through Pc create a dimension in the unit they are named after
func Px(v float64) Length    { return NewLength(v, UnitPx) }
func Em(v float64) Length    { return NewLength(v, UnitEm) }
func Rem(v float64) Length   { return NewLength(v, UnitRem) }
func Ex(v float64) Length    { return NewLength(v, UnitEx) }
func Ch(v float64) Length    { return NewLength(v, UnitCh) }
func Cap(v float64) Length   { return NewLength(v, UnitCap) }
func Ic(v float64) Length    { return NewLength(v, UnitIc) }
func Lh(v float64) Length    { return NewLength(v, UnitLh) }
func Rlh(v float64) Length   { return NewLength(v, UnitRlh) }
func Vw(v float64) Length    { return NewLength(v, UnitVw) }
func Vh(v float64) Length    { return NewLength(v, UnitVh) }
func Vi(v float64) Length    { return NewLength(v, UnitVi) }
func Vb(v float64) Length    { return NewLength(v, UnitVb) }
func Vmin(v float64) Length  { return NewLength(v, UnitVmin) }
func Vmax(v float64) Length  { return NewLength(v, UnitVmax) }
func Svw(v float64) Length   { return NewLength(v, UnitSvw) }
func Svh(v float64) Length   { return NewLength(v, UnitSvh) }
func Lvw(v float64) Length   { return NewLength(v, UnitLvw) }
func Lvh(v float64) Length   { return NewLength(v, UnitLvh) }
func Dvw(v float64) Length   { return NewLength(v, UnitDvw) }
func Dvh(v float64) Length   { return NewLength(v, UnitDvh) }
func Cqw(v float64) Length   { return NewLength(v, UnitCqw) }
func Cqh(v float64) Length   { return NewLength(v, UnitCqh) }
func Cqi(v float64) Length   { return NewLength(v, UnitCqi) }
func Cqb(v float64) Length   { return NewLength(v, UnitCqb) }
func Cqmin(v float64) Length { return NewLength(v, UnitCqmin) }
func Cqmax(v float64) Length { return NewLength(v, UnitCqmax) }
func Cm(v float64) Length    { return NewLength(v, UnitCm) }
func Mm(v float64) Length    { return NewLength(v, UnitMm) }
func Q(v float64) Length     { return NewLength(v, UnitQ) }
func In(v float64) Length    { return NewLength(v, UnitIn) }
func Pt(v float64) Length    { return NewLength(v, UnitPt) }
func Pc(v float64) Length    { return NewLength(v, UnitPc) }

// Auto, MaxContent, MinContent and FitContent are the sizing keywords
func Auto() Length       { return Length{Kind: KindAuto} }
func MaxContent() Length { return Length{Kind: KindMaxContent} }
func MinContent() Length { return Length{Kind: KindMinContent} }
func FitContent() Length { return Length{Kind: KindFitContent} }

// Calc wraps a raw expression; it renders as calc(<expr>)
func Calc(expr string) Length {
	return Length{Kind: KindCalc, Expr: expr}
}

// CalcOf builds a calc() expression "<lhs> <op> <rhs>" from any two renderable operands
func CalcOf(lhs Renderer, op string, rhs Renderer) Length {
	return Calc(lhs.String() + " " + op + " " + rhs.String())
}

// IsKeyword reports whether l is auto, max-content, min-content or fit-content
func (l Length) IsKeyword() bool {
	_, ok := lengthKeywords[l.Kind]
	return ok
}

// sameUnit reports whether both operands are dimensions in the same unit
func (l Length) sameUnit(o Length) bool {
	return l.Kind == KindDimension && o.Kind == KindDimension && l.Unit == o.Unit
}

// Add folds same-unit dimensions and degrades everything else to calc()
func (l Length) Add(o Length) Length {
	if l.sameUnit(o) {
		return NewLength(l.Value+o.Value, l.Unit)
	}
	return CalcOf(l, "+", o)
}

// Sub folds same-unit dimensions and degrades everything else to calc()
func (l Length) Sub(o Length) Length {
	if l.sameUnit(o) {
		return NewLength(l.Value-o.Value, l.Unit)
	}
	return CalcOf(l, "-", o)
}

// Mul multiplies same-unit dimensions in place, otherwise builds calc()
func (l Length) Mul(o Length) Length {
	if l.sameUnit(o) {
		return NewLength(l.Value*o.Value, l.Unit)
	}
	return CalcOf(l, "*", o)
}

// Div divides same-unit dimensions in place, otherwise builds calc()
func (l Length) Div(o Length) Length {
	if l.sameUnit(o) {
		return NewLength(l.Value/o.Value, l.Unit)
	}
	return CalcOf(l, "/", o)
}

// AddPercentage always produces calc(); lengths and percentages never fold
func (l Length) AddPercentage(p Percentage) Length {
	return CalcOf(l, "+", p)
}

// SubPercentage always produces calc(), like AddPercentage
func (l Length) SubPercentage(p Percentage) Length {
	return CalcOf(l, "-", p)
}

// Scale multiplies a dimension by a bare factor, keeping its unit
func (l Length) Scale(factor float64) Length {
	if l.Kind == KindDimension {
		return NewLength(l.Value*factor, l.Unit)
	}
	return CalcOf(l, "*", NewNumber(factor))
}

// DivBy divides a dimension by a bare scalar, keeping its unit
func (l Length) DivBy(divisor float64) Length {
	if l.Kind == KindDimension {
		return NewLength(l.Value/divisor, l.Unit)
	}
	return CalcOf(l, "/", NewNumber(divisor))
}

// Neg negates a dimension; other kinds become calc(<l> * -1)
func (l Length) Neg() Length {
	return l.Scale(-1)
}

// String renders the CSS text of any length kind
func (l Length) String() string {
	switch l.Kind {
	case KindDimension:
		return formatNumber(l.Value) + l.Unit.String()
	case KindCalc:
		return "calc(" + l.Expr + ")"
	}
	return lengthKeywords[l.Kind]
}
