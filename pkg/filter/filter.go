// Package filter selects the class entries that take part in an analysis.
package filter

import (
	"strings"

	"github.com/lerenn/dependency-analyzer/pkg/classfile"
	ignore "github.com/sabhiram/go-gitignore"
)

// Filter matches slash separated entry paths, relative to an archive root or an output
// directory, against gitignore style patterns. A nil Filter ignores nothing.
type Filter struct {
	matcher *ignore.GitIgnore
}

// New compiles the given patterns. Blank lines and # comments are allowed.
func New(patterns []string) *Filter {
	if len(patterns) == 0 {
		return nil
	}
	return &Filter{matcher: ignore.CompileIgnoreLines(patterns...)}
}

// Ignored reports whether the entry matches the patterns.
func (f *Filter) Ignored(entry string) bool {
	if f == nil || f.matcher == nil {
		return false
	}
	return f.matcher.MatchesPath(entry)
}

// IsClassEntry reports whether the entry is a compiled class that is not ignored.
func (f *Filter) IsClassEntry(entry string) bool {
	return strings.HasSuffix(entry, classfile.Suffix) && !f.Ignored(entry)
}
