// Command cssvalues renders declaration documents or design token files as CSS.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/asimonim/schema"
	"bennypowers.dev/cssvalues/internal/document"
	"bennypowers.dev/cssvalues/internal/lint"
	"bennypowers.dev/cssvalues/internal/log"
	"bennypowers.dev/cssvalues/internal/tokens"
	"bennypowers.dev/cssvalues/internal/version"
	"bennypowers.dev/cssvalues/property"
	"github.com/bmatcuk/doublestar/v4"
)

type options struct {
	root     string
	tokens   bool
	prefix   string
	selector string
	schema   string
	check    bool
	logLevel string
	version  bool
	patterns []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	if opts.version {
		fmt.Fprintln(stdout, "cssvalues", version.String())
		return 0
	}

	log.SetOutput(stderr)
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log.SetLevel(level)

	files, err := collect(opts.root, opts.patterns)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if len(files) == 0 {
		log.Error("no files match %s under %s", strings.Join(opts.patterns, ", "), opts.root)
		return 1
	}

	var blocks []property.Block
	for _, file := range files {
		bs, err := render(file, opts)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		blocks = append(blocks, bs...)
	}

	if opts.check {
		for _, b := range blocks {
			if err := lint.CheckBlock(b); err != nil {
				log.Error("%s: %v", b.Selector, err)
				return 1
			}
		}
	}

	fmt.Fprintln(stdout, property.Stylesheet(blocks...))
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fset := flag.NewFlagSet("cssvalues", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintln(stderr, "usage: cssvalues [flags] <glob>...")
		fset.PrintDefaults()
	}
	fset.StringVar(&opts.root, "root", ".", "directory the glob patterns are matched under")
	fset.BoolVar(&opts.tokens, "tokens", false, "treat inputs as DTCG token files and export custom properties")
	fset.StringVar(&opts.prefix, "prefix", "", "custom property prefix for exported tokens")
	fset.StringVar(&opts.selector, "selector", ":root", "selector for exported tokens")
	fset.StringVar(&opts.schema, "schema", "", "token schema version: draft or v2025_10 (default: detect)")
	fset.BoolVar(&opts.check, "check", false, "verify the rendered CSS parses cleanly")
	fset.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	fset.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	opts.patterns = fset.Args()
	if len(opts.patterns) == 0 && !opts.version {
		fset.Usage()
		return nil, fmt.Errorf("no input patterns")
	}
	return opts, nil
}

// collect walks root and returns the files matching any pattern, sorted
func collect(root string, patterns []string) ([]string, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, rel); ok {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	slices.Sort(files)
	return files, nil
}

func render(file string, opts *options) ([]property.Block, error) {
	if !opts.tokens {
		doc, err := document.Load(file)
		if err != nil {
			return nil, err
		}
		return doc.Blocks()
	}

	sv := schema.Unknown
	if opts.schema != "" {
		v, err := schema.FromString(opts.schema)
		if err != nil {
			return nil, err
		}
		sv = v
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	result, err := tokens.Export(data, tokens.Options{
		Prefix:        opts.prefix,
		Selector:      opts.selector,
		Format:        tokens.FormatFor(file),
		SchemaVersion: sv,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if len(result.Skipped) > 0 {
		log.Info("%s: skipped %d tokens", file, len(result.Skipped))
	}
	return []property.Block{result.Block}, nil
}
