// Package lint checks rendered CSS with tree-sitter.
package lint

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

var (
	cssLang  = sitter.NewLanguage(tree_sitter_css.Language())
	htmlLang = sitter.NewLanguage(tree_sitter_html.Language())
)

const styleAttrQuery = `
	(attribute
		(attribute_name) @name
		(quoted_attribute_value (attribute_value) @value)
		(#eq? @name "style"))
`

var cssPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		if err := p.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
		}
		return p
	},
}

type htmlParser struct {
	parser *sitter.Parser
	query  *sitter.Query
}

var htmlPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		if err := p.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
		}
		q, qerr := sitter.NewQuery(htmlLang, styleAttrQuery)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile style attribute query: %v", qerr))
		}
		return &htmlParser{parser: p, query: q}
	},
}

func acquireCSS() *sitter.Parser {
	p := cssPool.Get().(*sitter.Parser)
	p.Reset()
	return p
}

func releaseCSS(p *sitter.Parser) {
	if p != nil {
		cssPool.Put(p)
	}
}

func acquireHTML() *htmlParser {
	p := htmlPool.Get().(*htmlParser)
	p.parser.Reset()
	return p
}

func releaseHTML(p *htmlParser) {
	if p != nil {
		htmlPool.Put(p)
	}
}
