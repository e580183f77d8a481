// Package tokens exports DTCG design token files as CSS custom properties.
package tokens

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	asimonimParser "bennypowers.dev/asimonim/parser"
	"bennypowers.dev/asimonim/schema"
	"bennypowers.dev/asimonim/token"
	"bennypowers.dev/cssvalues/internal/log"
	"bennypowers.dev/cssvalues/property"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the serialisation of a token file
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the format from a file extension; anything but
// .yaml/.yml is treated as JSON (with comments).
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Options configures Export
type Options struct {
	// Prefix is prepended to every custom property name
	Prefix string
	// Selector defaults to ":root"
	Selector string
	Format   Format
	// SchemaVersion forces a schema; schema.Unknown auto-detects
	SchemaVersion schema.Version
	GroupMarkers  []string
}

// Skipped records a token left out of the export
type Skipped struct {
	Name string
	Type string
	Err  error
}

// Result is the exported rule plus whatever could not be converted
type Result struct {
	Block   property.Block
	Skipped []Skipped
}

// Parse reads a JSON, JSONC or YAML token file
func Parse(data []byte, opts Options) ([]*token.Token, error) {
	var clean []byte
	switch opts.Format {
	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML tokens: %w", err)
		}
		clean = b
	default:
		clean = jsonc.ToJSON(data)
	}

	parser := asimonimParser.NewJSONParser()
	toks, err := parser.Parse(clean, asimonimParser.Options{
		Prefix:        opts.Prefix,
		SchemaVersion: opts.SchemaVersion,
		GroupMarkers:  opts.GroupMarkers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse tokens: %w", err)
	}
	return toks, nil
}

// Export converts every token into a custom property on one rule.
// Tokens that cannot be converted are logged and listed in Result.Skipped.
func Export(data []byte, opts Options) (*Result, error) {
	toks, err := Parse(data, opts)
	if err != nil {
		return nil, err
	}

	selector := opts.Selector
	if selector == "" {
		selector = ":root"
	}

	slices.SortStableFunc(toks, func(a, b *token.Token) int {
		return strings.Compare(a.CSSVariableName(), b.CSSVariableName())
	})

	result := &Result{Block: property.Block{Selector: selector}}
	for _, tok := range toks {
		v, err := Convert(tok)
		if err != nil {
			log.Warn("skipping %s: %v", tok.CSSVariableName(), err)
			result.Skipped = append(result.Skipped, Skipped{Name: tok.Name, Type: tok.Type, Err: err})
			continue
		}
		result.Block.Add(property.NewCustom(tok.CSSVariableName(), v))
	}

	log.Debug("exported %d tokens, skipped %d", len(result.Block.Declarations), len(result.Skipped))
	return result, nil
}
