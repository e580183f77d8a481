package value

import "strings"

// QuoteStyle selects the delimiter used when rendering a CSSString
type QuoteStyle int

const (
	SingleQuote QuoteStyle = iota
	DoubleQuote
)

func (q QuoteStyle) delimiter() byte {
	if q == DoubleQuote {
		return '"'
	}
	return '\''
}

// CSSString is a quoted CSS <string>
type CSSString struct {
	Value string
	Quote QuoteStyle
}

// NewString creates a single-quoted string
func NewString(s string) CSSString {
	return CSSString{Value: s, Quote: SingleQuote}
}

// NewStringQuoted creates a string with the given delimiter
func NewStringQuoted(s string, q QuoteStyle) CSSString {
	return CSSString{Value: s, Quote: q}
}

// String renders the quoted string. Only the delimiter, backslash and
// newline are escaped; a newline becomes the hex escape "\A ".
// All other bytes, including invalid UTF-8, are copied as-is.
func (s CSSString) String() string {
	q := s.Quote.delimiter()

	var b strings.Builder
	b.Grow(len(s.Value) + 4)
	b.WriteByte(q)
	for i := 0; i < len(s.Value); i++ {
		switch c := s.Value[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\A `)
		case q:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// URL is a CSS url() reference
type URL struct {
	Value string
}

// NewURL creates a URL value
func NewURL(s string) URL {
	return URL{Value: s}
}

func (u URL) String() string {
	return "url(" + NewStringQuoted(u.Value, DoubleQuote).String() + ")"
}
