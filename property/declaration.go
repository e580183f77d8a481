package property

import "strings"

// Declaration is a rendered "name: value" pair
type Declaration struct {
	Name      string
	Value     string
	Important bool
}

// Declare renders a property into a declaration
func Declare(p Property) Declaration {
	return Declaration{Name: p.Name(), Value: p.String()}
}

// AsImportant returns a copy flagged !important
func (d Declaration) AsImportant() Declaration {
	d.Important = true
	return d
}

func (d Declaration) String() string {
	if d.Important {
		return d.Name + ": " + d.Value + " !important;"
	}
	return d.Name + ": " + d.Value + ";"
}

// Block is a style rule: a selector and its declarations
type Block struct {
	Selector     string
	Declarations []Declaration
}

// NewBlock creates a rule from typed properties
func NewBlock(selector string, props ...Property) Block {
	b := Block{Selector: selector}
	for _, p := range props {
		b.Add(p)
	}
	return b
}

// Add appends a property's declaration
func (b *Block) Add(p Property) {
	b.Declarations = append(b.Declarations, Declare(p))
}

func (b Block) String() string {
	if len(b.Declarations) == 0 {
		return b.Selector + " {}"
	}
	var sb strings.Builder
	sb.WriteString(b.Selector)
	sb.WriteString(" {\n")
	for _, d := range b.Declarations {
		sb.WriteString("  ")
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// Inline renders the declarations as a style attribute body
func (b Block) Inline() string {
	parts := make([]string, len(b.Declarations))
	for i, d := range b.Declarations {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// Stylesheet renders rules separated by a blank line
func Stylesheet(blocks ...Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n\n")
}
