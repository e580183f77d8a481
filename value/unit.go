package value

// Unit is a CSS length unit
type Unit int

const (
	UnitPx Unit = iota
	UnitEm
	UnitRem
	UnitEx
	UnitCh
	UnitCap
	UnitIc
	UnitLh
	UnitRlh
	UnitVw
	UnitVh
	UnitVi
	UnitVb
	UnitVmin
	UnitVmax
	UnitSvw
	UnitSvh
	UnitLvw
	UnitLvh
	UnitDvw
	UnitDvh
	UnitCqw
	UnitCqh
	UnitCqi
	UnitCqb
	UnitCqmin
	UnitCqmax
	UnitCm
	UnitMm
	UnitQ
	UnitIn
	UnitPt
	UnitPc
)

var unitSuffixes = [...]string{
	UnitPx:    "px",
	UnitEm:    "em",
	UnitRem:   "rem",
	UnitEx:    "ex",
	UnitCh:    "ch",
	UnitCap:   "cap",
	UnitIc:    "ic",
	UnitLh:    "lh",
	UnitRlh:   "rlh",
	UnitVw:    "vw",
	UnitVh:    "vh",
	UnitVi:    "vi",
	UnitVb:    "vb",
	UnitVmin:  "vmin",
	UnitVmax:  "vmax",
	UnitSvw:   "svw",
	UnitSvh:   "svh",
	UnitLvw:   "lvw",
	UnitLvh:   "lvh",
	UnitDvw:   "dvw",
	UnitDvh:   "dvh",
	UnitCqw:   "cqw",
	UnitCqh:   "cqh",
	UnitCqi:   "cqi",
	UnitCqb:   "cqb",
	UnitCqmin: "cqmin",
	UnitCqmax: "cqmax",
	UnitCm:    "cm",
	UnitMm:    "mm",
	UnitQ:     "Q",
	UnitIn:    "in",
	UnitPt:    "pt",
	UnitPc:    "pc",
}

var unitsBySuffix = func() map[string]Unit {
	m := make(map[string]Unit, len(unitSuffixes))
	for u, s := range unitSuffixes {
		m[s] = Unit(u)
	}
	// CSS units are ASCII case-insensitive; Q is the only uppercase suffix.
	m["q"] = UnitQ
	return m
}()

// String returns the unit suffix as written in CSS
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitSuffixes) {
		return ""
	}
	return unitSuffixes[u]
}

// UnitFor looks up a unit by its CSS suffix
func UnitFor(suffix string) (Unit, bool) {
	u, ok := unitsBySuffix[suffix]
	return u, ok
}

// IsAbsolute reports whether the unit is a physical (absolute) unit
func (u Unit) IsAbsolute() bool {
	switch u {
	case UnitPx, UnitCm, UnitMm, UnitQ, UnitIn, UnitPt, UnitPc:
		return true
	}
	return false
}
