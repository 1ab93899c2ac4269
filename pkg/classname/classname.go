// Package classname provides the canonical class name form and class name sets.
package classname

import (
	"sort"
	"strings"
)

// FromInternal converts an internal JVM name (java/lang/String) to its dotted form.
func FromInternal(internal string) string {
	return strings.ReplaceAll(internal, "/", ".")
}

// ToInternal converts a dotted class name back to its internal JVM form.
func ToInternal(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// HasAnyPrefix reports whether name starts with one of the given prefixes.
func HasAnyPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Set is a set of dotted class names.
type Set map[string]struct{}

// NewSet creates a set holding the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a name. Empty names are ignored.
func (s Set) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Remove deletes a name from the set.
func (s Set) Remove(name string) {
	delete(s, name)
}

// Has reports whether the set contains name.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// AddAll inserts every name of other.
func (s Set) AddAll(other Set) {
	for name := range other {
		s[name] = struct{}{}
	}
}

// Len returns the number of names.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names in lexical order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both sets hold exactly the same names.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}
	return true
}
