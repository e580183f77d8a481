// Package document loads declaration documents: YAML or JSONC files that
// describe style rules with structured, typed values.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/cssvalues/internal/log"
	"bennypowers.dev/cssvalues/property"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the serialisation of a declaration document
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	}
	return 0, NewUnsupportedFormatError(path)
}

// Document is a list of style rules
type Document struct {
	Rules []Rule `yaml:"rules" json:"rules"`

	// FilePath is where the document was loaded from, used in error messages
	FilePath string `yaml:"-" json:"-"`
}

// Rule is a selector with its declarations, in order
type Rule struct {
	Selector     string        `yaml:"selector" json:"selector"`
	Declarations []Declaration `yaml:"declarations" json:"declarations"`
}

// Declaration names a property and lists its values.
// Value is shorthand for a single-entry Values.
type Declaration struct {
	Property  string  `yaml:"property" json:"property"`
	Value     *Value  `yaml:"value,omitempty" json:"value,omitempty"`
	Values    []Value `yaml:"values,omitempty" json:"values,omitempty"`
	Vertical  []Value `yaml:"vertical,omitempty" json:"vertical,omitempty"`
	Important bool    `yaml:"important,omitempty" json:"important,omitempty"`
}

func (d Declaration) all() []Value {
	if d.Value == nil {
		return d.Values
	}
	return append([]Value{*d.Value}, d.Values...)
}

// Parse decodes a document
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return &doc, nil
}

// Load reads and decodes a document from disk
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.FilePath = path
	log.Debug("loaded %d rules from %s", len(doc.Rules), path)
	return doc, nil
}

// Blocks builds a typed rule for every rule in the document
func (d *Document) Blocks() ([]property.Block, error) {
	blocks := make([]property.Block, 0, len(d.Rules))
	for i, r := range d.Rules {
		where := d.location(fmt.Sprintf("rules[%d]", i))
		if strings.TrimSpace(r.Selector) == "" {
			return nil, NewInvalidValueError(where, "selector", "selector is empty")
		}
		b := property.Block{Selector: r.Selector}
		for j, decl := range r.Declarations {
			p, err := build(fmt.Sprintf("%s.declarations[%d]", where, j), decl)
			if err != nil {
				return nil, err
			}
			out := property.Declare(p)
			if decl.Important {
				out = out.AsImportant()
			}
			b.Declarations = append(b.Declarations, out)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// Render builds the document and renders it as a stylesheet
func (d *Document) Render() (string, error) {
	blocks, err := d.Blocks()
	if err != nil {
		return "", err
	}
	return property.Stylesheet(blocks...), nil
}

func (d *Document) location(path string) string {
	if d.FilePath == "" {
		return path
	}
	return d.FilePath + ": " + path
}
