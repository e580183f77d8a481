package document_test

import (
	"path/filepath"
	"testing"

	"bennypowers.dev/cssvalues/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "test", "fixtures", "document", name)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		file     string
		expected string
	}{
		{
			"card.yaml",
			".card {\n" +
				"  margin: 0px auto;\n" +
				"  padding: 1rem 5%;\n" +
				"  border-radius: 4px / 8px;\n" +
				"  color: hsl(120deg, 100%, 50%);\n" +
				"  background-color: color-mix(in oklab, red, blue 30%);\n" +
				"  opacity: 0.5 !important;\n" +
				"  font-family: \"Helvetica Neue\", sans-serif;\n" +
				"}\n\n" +
				":root {\n" +
				"  --brand: #663399;\n" +
				"  --gutter: calc(100% - 2rem);\n" +
				"  --label: 'Label';\n" +
				"}",
		},
		{
			"layout.jsonc",
			".sidebar {\n" +
				"  width: calc(100% - 2rem);\n" +
				"  max-width: max-content;\n" +
				"  border-width: thin medium;\n" +
				"  border-block-end-width: 3px;\n" +
				"  background-clip: padding-box;\n" +
				"  outline-color: oklch(0.7 0.15 250deg / 0.5);\n" +
				"  inset: unset;\n" +
				"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			doc, err := document.Load(fixture(tt.file))
			require.NoError(t, err)
			assert.Equal(t, fixture(tt.file), doc.FilePath)

			css, err := doc.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, css)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := document.Load("styles.toml")
		require.ErrorIs(t, err, document.ErrUnsupportedFormat)

		var fe *document.UnsupportedFormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "styles.toml", fe.FilePath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := document.Load(fixture("missing.yaml"))
		assert.Error(t, err)
	})
}

func render(t *testing.T, src string) (string, error) {
	t.Helper()
	doc, err := document.Parse([]byte(src), document.FormatYAML)
	require.NoError(t, err)
	return doc.Render()
}

func TestDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		decl     string
		expected string
	}{
		{"margin global", `{property: margin, value: {keyword: inherit}}`, "margin: inherit;"},
		{"margin four", `{property: margin, values: [{number: 0}, {length: {value: 1, unit: em}}, {percentage: 2}, {keyword: auto}]}`, "margin: 0px 1em 2% auto;"},
		{"height percentage", `{property: height, value: {percentage: 100}}`, "height: 100%;"},
		{"min-width fit-content", `{property: min-width, value: {keyword: fit-content}}`, "min-width: fit-content;"},
		{"border-radius circular", `{property: border-radius, values: [{length: {value: 50, unit: Q}}]}`, "border-radius: 50Q;"},
		{"border-radius global", `{property: border-radius, value: {keyword: revert}}`, "border-radius: revert;"},
		{"border-width global", `{property: border-width, value: {keyword: initial}}`, "border-width: initial;"},
		{"border-width lengths", `{property: border-width, values: [{keyword: thick}, {length: {value: 2, unit: px}}, {keyword: thin}]}`, "border-width: thick 2px thin;"},
		{"opacity percent", `{property: opacity, value: {percentage: 40}}`, "opacity: 40%;"},
		{"opacity global", `{property: opacity, value: {keyword: unset}}`, "opacity: unset;"},
		{"color named keyword", `{property: color, value: {keyword: CurrentColor}}`, "color: currentcolor;"},
		{"color system keyword", `{property: color, value: {keyword: CanvasText}}`, "color: CanvasText;"},
		{"color rgb", `{property: color, value: {color: {rgb: [255, 0, 128]}}}`, "color: rgb(255, 0, 128);"},
		{"color rgba", `{property: color, value: {color: {rgb: [0, 0, 0, 0.25]}}}`, "color: rgba(0, 0, 0, 0.25);"},
		{"color hsla", `{property: color, value: {color: {hsl: [10, 20, 30], alpha: 0.5}}}`, "color: hsla(10deg, 20%, 30%, 0.5);"},
		{"color hwb", `{property: color, value: {color: {hwb: [90, 10, 10]}}}`, "color: hwb(90deg 10% 10%);"},
		{"color lab", `{property: color, value: {color: {lab: [50, 20, -30]}}}`, "color: lab(50% 20 -30);"},
		{"color lch", `{property: color, value: {color: {lch: [60, 40, 30], alpha: 0.9}}}`, "color: lch(60% 40 30deg / 0.9);"},
		{"color oklab", `{property: color, value: {color: {oklab: [0.5, -0.1, 0.1]}}}`, "color: oklab(0.5 -0.1 0.1);"},
		{"color()", `{property: color, value: {color: {space: display-p3, components: [1, 0.5, 0]}}}`, "color: color(display-p3 1 0.5 0);"},
		{"color-mix polar", `{property: border-color, value: {color: {mix: {in: oklch, hue: longer, stops: [{color: {name: red}, percentage: 40}, {color: {hex: "#00f"}}]}}}}`, "border-color: color-mix(in oklch longer hue, red 40%, #00f);"},
		{"background-clip text", `{property: background-clip, value: {keyword: text}}`, "background-clip: text;"},
		{"font-family global", `{property: font-family, value: {keyword: initial}}`, "font-family: initial;"},
		{"custom number list", `{property: --ratio, values: [{number: 16}, {keyword: /}, {number: 9}]}`, "--ratio: 16 / 9;"},
		{"custom url", `{property: --bg, value: {url: "a.png"}}`, "--bg: url(\"a.png\");"},
		{"single dash is not custom", `{property: "-spacing", value: {number: 1}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css, err := render(t, "rules: [{selector: x, declarations: ["+tt.decl+"]}]")
			if tt.expected == "" {
				require.ErrorIs(t, err, document.ErrUnknownProperty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x {\n  "+tt.expected+"\n}", css)
		})
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		decl string
	}{
		{"no values", `{property: width}`},
		{"too many sizes", `{property: width, values: [{percentage: 1}, {percentage: 2}]}`},
		{"too many sides", `{property: padding, values: [{number: 0}, {number: 0}, {number: 0}, {number: 0}, {number: 0}]}`},
		{"unknown unit", `{property: width, value: {length: {value: 1, unit: parsec}}}`},
		{"color as length", `{property: width, value: {color: {name: red}}}`},
		{"unknown color keyword", `{property: color, value: {keyword: reddish}}`},
		{"bad hex", `{property: color, value: {color: {hex: "#12"}}}`},
		{"rgb arity", `{property: color, value: {color: {rgb: [1, 2]}}}`},
		{"lab arity", `{property: color, value: {color: {lab: [1, 2, 3, 4]}}}`},
		{"mix arity", `{property: color, value: {color: {mix: {in: srgb, stops: [{color: {name: red}}]}}}}`},
		{"bad clip", `{property: background-clip, value: {keyword: margin-box}}`},
		{"opacity length", `{property: opacity, value: {length: {value: 1, unit: px}}}`},
		{"unknown generic family", `{property: font-family, values: [{keyword: comic}]}`},
		{"unknown line width", `{property: border-block-end-width, value: {keyword: hairline}}`},
		{"empty custom value", `{property: --x, value: {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := render(t, "rules: [{selector: x, declarations: ["+tt.decl+"]}]")
			require.ErrorIs(t, err, document.ErrInvalidValue)

			var ve *document.InvalidValueError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "rules[0].declarations[0]", ve.Path)
		})
	}

	t.Run("empty selector", func(t *testing.T) {
		_, err := render(t, `rules: [{selector: "", declarations: []}]`)
		assert.ErrorIs(t, err, document.ErrInvalidValue)
	})
}

func TestUnknownProperty(t *testing.T) {
	doc, err := document.Parse([]byte(`{"rules": [{"selector": "a", "declarations": [{"property": "float", "value": {"keyword": "left"}}]}]}`), document.FormatJSON)
	require.NoError(t, err)
	doc.FilePath = "site.json"

	_, err = doc.Blocks()
	require.ErrorIs(t, err, document.ErrUnknownProperty)

	var pe *document.UnknownPropertyError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "site.json: rules[0].declarations[0]", pe.Path)
	assert.Equal(t, "float", pe.Property)
}

func TestProperties(t *testing.T) {
	props := document.Properties()
	assert.Contains(t, props, "border-block-end-width")
	assert.Contains(t, props, "font-family")
	assert.IsIncreasing(t, props)
}

func TestFormatFor(t *testing.T) {
	f, err := document.FormatFor("a.YML")
	require.NoError(t, err)
	assert.Equal(t, document.FormatYAML, f)

	f, err = document.FormatFor("a.jsonc")
	require.NoError(t, err)
	assert.Equal(t, document.FormatJSON, f)
}
