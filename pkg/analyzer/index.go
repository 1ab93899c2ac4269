package analyzer

import (
	"sort"

	"github.com/lerenn/dependency-analyzer/pkg/artifact"
	"github.com/lerenn/dependency-analyzer/pkg/classname"
)

// IndexEntry is the set of classes defined by one artifact.
type IndexEntry struct {
	Artifact artifact.Artifact
	Classes  classname.Set
}

// Index maps artifacts to the classes they define, in resolution order.
type Index struct {
	entries []IndexEntry
	// owners holds, per class, the position of the first entry defining it.
	owners map[string]int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{owners: make(map[string]int)}
}

// Add appends the classes defined by a. Earlier entries keep ownership of shared classes.
func (x *Index) Add(a artifact.Artifact, classes classname.Set) {
	pos := len(x.entries)
	x.entries = append(x.entries, IndexEntry{Artifact: a, Classes: classes})
	for class := range classes {
		if _, found := x.owners[class]; !found {
			x.owners[class] = pos
		}
	}
}

// Entries returns the entries in insertion order.
func (x *Index) Entries() []IndexEntry {
	return append([]IndexEntry(nil), x.entries...)
}

// Len returns the number of indexed artifacts.
func (x *Index) Len() int {
	return len(x.entries)
}

// Owner returns the first artifact, in insertion order, that defines class.
// When several artifacts define the same class the earliest one wins. This is a
// deterministic tie-break, not a statement about which artifact the class is loaded from.
func (x *Index) Owner(class string) (artifact.Artifact, bool) {
	pos, found := x.owners[class]
	if !found {
		return artifact.Artifact{}, false
	}
	return x.entries[pos].Artifact, true
}

// UsedArtifacts returns the owners of the given classes, in index order. Classes without
// owner, such as platform classes or the build unit's own classes, are ignored.
func (x *Index) UsedArtifacts(classes classname.Set) *artifact.Set {
	used := make([]bool, len(x.entries))
	for class := range classes {
		if pos, found := x.owners[class]; found {
			used[pos] = true
		}
	}

	result := artifact.NewSet()
	for pos, entry := range x.entries {
		if used[pos] {
			result.Add(entry.Artifact)
		}
	}
	return result
}

// DuplicateClasses maps a class name to the artifacts defining it. Only classes defined by at
// least two artifacts are present.
type DuplicateClasses map[string]*artifact.Set

// DuplicateClasses returns the classes defined by more than one artifact, ignoring classes
// starting with one of the excluded prefixes.
func (x *Index) DuplicateClasses(excludedPrefixes []string) DuplicateClasses {
	definers := make(map[string]*artifact.Set)
	for _, entry := range x.entries {
		for class := range entry.Classes {
			if classname.HasAnyPrefix(class, excludedPrefixes) {
				continue
			}
			set, found := definers[class]
			if !found {
				set = artifact.NewSet()
				definers[class] = set
			}
			set.Add(entry.Artifact)
		}
	}

	duplicates := make(DuplicateClasses)
	for class, set := range definers {
		if set.Len() > 1 {
			duplicates[class] = set
		}
	}
	return duplicates
}

// Names returns the duplicated class names in lexical order.
func (d DuplicateClasses) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both maps hold the same classes defined by the same artifacts.
func (d DuplicateClasses) Equal(other DuplicateClasses) bool {
	if len(d) != len(other) {
		return false
	}
	for class, set := range d {
		if !set.Equal(other[class]) {
			return false
		}
	}
	return true
}
