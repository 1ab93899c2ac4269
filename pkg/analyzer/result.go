package analyzer

import (
	"github.com/lerenn/dependency-analyzer/pkg/artifact"
)

// Result classifies the declared and used artifacts of a build unit.
type Result struct {
	// UsedDeclared holds declared artifacts owning at least one used class.
	UsedDeclared *artifact.Set
	// UsedUndeclared holds used artifacts whose conflict id is not declared.
	UsedUndeclared *artifact.Set
	// UnusedDeclared holds declared artifacts whose conflict id is not used.
	UnusedDeclared *artifact.Set
	// DuplicateClasses holds classes defined by several resolved artifacts.
	DuplicateClasses DuplicateClasses
}

// NewResult creates a Result. Nil arguments are replaced by empty values.
func NewResult(usedDeclared, usedUndeclared, unusedDeclared *artifact.Set, duplicates DuplicateClasses) *Result {
	if duplicates == nil {
		duplicates = make(DuplicateClasses)
	}
	return &Result{
		UsedDeclared:     orEmpty(usedDeclared),
		UsedUndeclared:   orEmpty(usedUndeclared),
		UnusedDeclared:   orEmpty(unusedDeclared),
		DuplicateClasses: duplicates,
	}
}

// Equal reports whether both results hold the same artifacts and duplicates, ignoring order.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.UsedDeclared.Equal(other.UsedDeclared) &&
		r.UsedUndeclared.Equal(other.UsedUndeclared) &&
		r.UnusedDeclared.Equal(other.UnusedDeclared) &&
		r.DuplicateClasses.Equal(other.DuplicateClasses)
}

// HasWarnings reports whether some used artifact is undeclared or some declared artifact
// is unused.
func (r *Result) HasWarnings() bool {
	return r.UsedUndeclared.Len() > 0 || r.UnusedDeclared.Len() > 0
}

// DuplicateClassNames returns the duplicated class names in lexical order.
func (r *Result) DuplicateClassNames() []string {
	return r.DuplicateClasses.Names()
}

func orEmpty(s *artifact.Set) *artifact.Set {
	if s == nil {
		return artifact.NewSet()
	}
	return s
}
