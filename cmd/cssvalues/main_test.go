package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtures = filepath.Join("..", "..", "test", "fixtures", "document")

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunDocuments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-root", fixtures, "-check", "*.jsonc"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.True(t, strings.HasPrefix(stdout.String(), ".sidebar {\n  width: calc(100% - 2rem);\n"))
	assert.True(t, strings.HasSuffix(stdout.String(), "  inset: unset;\n}\n"))
}

func TestRunTokens(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brand/colors.tokens.json", `{
		"color": { "primary": { "$value": "#FF0000", "$type": "color" } }
	}`)
	writeFile(t, dir, "brand/notes.txt", "ignored")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-root", dir, "-tokens", "-prefix", "ds", "-schema", "draft", "**/*.tokens.json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, ":root {\n  --ds-color-primary: #FF0000;\n}\n", stdout.String())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "rules: [{selector: a, declarations: [{property: float, value: {keyword: left}}]}]")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no patterns", nil, 2},
		{"unknown flag", []string{"-nope", "*.yaml"}, 2},
		{"bad log level", []string{"-log-level", "loud", "*.yaml"}, 2},
		{"no matches", []string{"-root", dir, "*.css"}, 1},
		{"invalid pattern", []string{"-root", dir, "[a"}, 1},
		{"unknown property", []string{"-root", dir, "*.yaml"}, 1},
		{"bad schema", []string{"-root", dir, "-tokens", "-schema", "v9", "*.yaml"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, run(tt.args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-version"}, &stdout, &stderr))
	assert.True(t, strings.HasPrefix(stdout.String(), "cssvalues "))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "")
	writeFile(t, dir, "a.yaml", "")
	writeFile(t, dir, "nested/deep/c.yml", "")
	writeFile(t, dir, "nested/d.json", "")

	files, err := collect(dir, []string{"**/*.{yaml,yml}"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "nested", "deep", "c.yml"),
	}, files)
}
