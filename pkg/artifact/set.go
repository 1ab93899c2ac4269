package artifact

import "sort"

// Set is an insertion ordered set of artifacts keyed by their full identity.
// A nil *Set behaves as an empty set for every read operation.
type Set struct {
	items []Artifact
	index map[string]int
}

// NewSet creates a set holding the given artifacts in order.
func NewSet(artifacts ...Artifact) *Set {
	s := &Set{index: make(map[string]int, len(artifacts))}
	for _, a := range artifacts {
		s.Add(a)
	}
	return s
}

// Add inserts a if no artifact with the same identity is present. It reports whether a was added.
func (s *Set) Add(a Artifact) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, found := s.index[a.ID()]; found {
		return false
	}
	s.index[a.ID()] = len(s.items)
	s.items = append(s.items, a)
	return true
}

// Contains reports whether an artifact with the same identity is present.
func (s *Set) Contains(a Artifact) bool {
	if s == nil {
		return false
	}
	_, found := s.index[a.ID()]
	return found
}

// Len returns the number of artifacts.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Artifacts returns a copy of the artifacts in insertion order.
func (s *Set) Artifacts() []Artifact {
	if s == nil {
		return nil
	}
	out := make([]Artifact, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns the artifacts ordered by their string form.
func (s *Set) Sorted() []Artifact {
	out := s.Artifacts()
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Intersect returns the members of s that are also in other, compared by full identity.
func (s *Set) Intersect(other *Set) *Set {
	result := NewSet()
	for _, a := range s.Artifacts() {
		if other.Contains(a) {
			result.Add(a)
		}
	}
	return result
}

// WithoutConflicts returns the members of s whose conflict id matches no member of other.
// Version differences do not keep an artifact in the result.
func (s *Set) WithoutConflicts(other *Set) *Set {
	remove := other.ConflictIDs()
	result := NewSet()
	for _, a := range s.Artifacts() {
		if _, found := remove[a.ConflictID()]; !found {
			result.Add(a)
		}
	}
	return result
}

// ConflictIDs returns the set of conflict ids of the members.
func (s *Set) ConflictIDs() map[string]struct{} {
	ids := make(map[string]struct{}, s.Len())
	for _, a := range s.Artifacts() {
		ids[a.ConflictID()] = struct{}{}
	}
	return ids
}

// Equal reports whether both sets hold the same identities, regardless of order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, a := range s.Artifacts() {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}
