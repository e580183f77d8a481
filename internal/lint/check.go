package lint

import (
	"errors"
	"html"
	"strings"

	"bennypowers.dev/cssvalues/internal/log"
	"bennypowers.dev/cssvalues/property"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// CheckStylesheet parses src as a stylesheet and reports the first syntax error
func CheckStylesheet(src string) error {
	p := acquireCSS()
	defer releaseCSS(p)

	source := []byte(src)
	tree := p.Parse(source, nil)
	if tree == nil {
		return errors.New("failed to parse CSS")
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	bad := firstError(root)
	if bad == nil {
		return &SyntaxError{Snippet: src}
	}
	pos := bad.StartPosition()
	return &SyntaxError{
		Row:     pos.Row,
		Column:  pos.Column,
		Snippet: string(source[bad.StartByte():bad.EndByte()]),
		Missing: bad.IsMissing(),
	}
}

// firstError finds the earliest ERROR or MISSING node in document order
func firstError(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.IsError() || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := firstError(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// CheckBlock renders and checks a rule
func CheckBlock(b property.Block) error {
	return CheckStylesheet(b.String())
}

// CheckDeclarations checks a style attribute body such as "color: red; margin: 0;"
func CheckDeclarations(body string) error {
	const open = "x{"
	err := CheckStylesheet(open + body + "}")
	var se *SyntaxError
	if errors.As(err, &se) && se.Row == 0 {
		se.Column = saturatingSub(se.Column, uint(len(open)))
	}
	return err
}

// CheckValue checks a single "property: value" pair
func CheckValue(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &SyntaxError{Missing: true, Snippet: name}
	}
	return CheckDeclarations(name + ": " + value + ";")
}

// CheckInlineStyle checks every style="..." attribute in an HTML document.
// Character references in attribute values are decoded before checking.
// Positions in the returned error are relative to the HTML source.
func CheckInlineStyle(doc string) error {
	p := acquireHTML()
	defer releaseHTML(p)

	source := []byte(doc)
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return errors.New("failed to parse HTML")
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	names := p.query.CaptureNames()
	matches := cursor.Matches(p.query, tree.RootNode(), source)
	checked := 0
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			if names[capture.Index] != "value" {
				continue
			}
			node := capture.Node
			body := html.UnescapeString(string(source[node.StartByte():node.EndByte()]))
			checked++
			if err := CheckDeclarations(body); err != nil {
				var se *SyntaxError
				if errors.As(err, &se) {
					start := node.StartPosition()
					if se.Row == 0 {
						se.Column += start.Column
					}
					se.Row += start.Row
				}
				return err
			}
		}
	}
	log.Debug("checked %d style attributes", checked)
	return nil
}

func saturatingSub(a, b uint) uint {
	if a < b {
		return 0
	}
	return a - b
}
