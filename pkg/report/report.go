// Package report renders analysis results for humans and tools.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/lerenn/dependency-analyzer/pkg/analyzer"
	"github.com/lerenn/dependency-analyzer/pkg/artifact"
	"gopkg.in/yaml.v3"
)

// Format selects the rendering of a result.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatYAML}
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Document is the serialized form of a result. Artifacts are sorted.
type Document struct {
	UsedDeclared     []string            `yaml:"used_declared"`
	UsedUndeclared   []string            `yaml:"used_undeclared"`
	UnusedDeclared   []string            `yaml:"unused_declared"`
	DuplicateClasses map[string][]string `yaml:"duplicate_classes"`
}

// NewDocument converts a result into its serialized form.
func NewDocument(result *analyzer.Result) Document {
	doc := Document{
		UsedDeclared:     artifactStrings(result.UsedDeclared),
		UsedUndeclared:   artifactStrings(result.UsedUndeclared),
		UnusedDeclared:   artifactStrings(result.UnusedDeclared),
		DuplicateClasses: make(map[string][]string, len(result.DuplicateClasses)),
	}
	for class, set := range result.DuplicateClasses {
		doc.DuplicateClasses[class] = artifactStrings(set)
	}
	return doc
}

// Render writes the result to w in the given format.
func Render(w io.Writer, result *analyzer.Result, format Format) error {
	if result == nil {
		result = analyzer.NewResult(nil, nil, nil, nil)
	}

	switch format {
	case FormatText:
		return renderText(w, result)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(result)); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, result *analyzer.Result) error {
	ew := &errWriter{w: w}

	sections := []struct {
		title string
		set   *artifact.Set
	}{
		{title: "Used declared dependencies", set: result.UsedDeclared},
		{title: "Used undeclared dependencies", set: result.UsedUndeclared},
		{title: "Unused declared dependencies", set: result.UnusedDeclared},
	}
	for _, section := range sections {
		printList(ew, section.title, artifactStrings(section.set))
	}

	names := result.DuplicateClassNames()
	if len(names) == 0 {
		ew.printf("Duplicate classes: none\n")
		return ew.err
	}
	ew.printf("Duplicate classes (%d):\n", len(names))
	for _, name := range names {
		ew.printf("  %s\n", name)
		for _, a := range artifactStrings(result.DuplicateClasses[name]) {
			ew.printf("    - %s\n", a)
		}
	}
	return ew.err
}

func printList(ew *errWriter, title string, items []string) {
	if len(items) == 0 {
		ew.printf("%s: none\n", title)
		return
	}
	ew.printf("%s (%d):\n", title, len(items))
	for _, item := range items {
		ew.printf("  - %s\n", item)
	}
}

func artifactStrings(set *artifact.Set) []string {
	sorted := set.Sorted()
	out := make([]string, 0, len(sorted))
	for _, a := range sorted {
		out = append(out, a.String())
	}
	return out
}

// errWriter keeps the first write error and ignores later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
