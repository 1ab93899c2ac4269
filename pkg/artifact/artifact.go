package artifact

import (
	"fmt"
	"strings"
)

// DefaultType is the packaging type assumed when a coordinate omits it.
const DefaultType = "jar"

// Artifact identifies one resolved dependency.
type Artifact struct {
	GroupID    string `yaml:"group_id"`
	ArtifactID string `yaml:"artifact_id"`
	Version    string `yaml:"version"`
	Type       string `yaml:"type"`
	Classifier string `yaml:"classifier,omitempty"`
	// Scope is informational only (compile, test, provided, ...).
	Scope string `yaml:"scope,omitempty"`
	// File is the resolved binary location. Empty means unresolved.
	File string `yaml:"file,omitempty"`
}

// ConflictID returns the version independent key group:artifact:type[:classifier].
func (a Artifact) ConflictID() string {
	id := a.GroupID + ":" + a.ArtifactID + ":" + a.Type
	if a.Classifier != "" {
		id += ":" + a.Classifier
	}
	return id
}

// ID returns the full identity of the artifact. Scope and file do not take part in it.
func (a Artifact) ID() string {
	return a.ConflictID() + ":" + a.Version
}

// HasFile reports whether the artifact has a resolved binary location.
func (a Artifact) HasFile() bool {
	return a.File != ""
}

// String renders group:artifact:type[:classifier]:version[:scope].
func (a Artifact) String() string {
	if a.Scope == "" {
		return a.ID()
	}
	return a.ID() + ":" + a.Scope
}

// Parse builds an artifact from a coordinate string. Accepted forms are
// g:a:v, g:a:type:v, g:a:type:v:scope and g:a:type:classifier:v:scope.
func Parse(coordinate, file string) (Artifact, error) {
	parts := strings.Split(strings.TrimSpace(coordinate), ":")
	for _, p := range parts {
		if p == "" {
			return Artifact{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, coordinate)
		}
	}

	a := Artifact{Type: DefaultType, File: file}
	switch len(parts) {
	case 3:
		a.GroupID, a.ArtifactID, a.Version = parts[0], parts[1], parts[2]
	case 4:
		a.GroupID, a.ArtifactID, a.Type, a.Version = parts[0], parts[1], parts[2], parts[3]
	case 5:
		a.GroupID, a.ArtifactID, a.Type, a.Version, a.Scope = parts[0], parts[1], parts[2], parts[3], parts[4]
	case 6:
		a.GroupID, a.ArtifactID, a.Type, a.Classifier = parts[0], parts[1], parts[2], parts[3]
		a.Version, a.Scope = parts[4], parts[5]
	default:
		return Artifact{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, coordinate)
	}

	return a, nil
}

// MustParse is like Parse but panics on error. It is meant for tests and static tables.
func MustParse(coordinate string) Artifact {
	a, err := Parse(coordinate, "")
	if err != nil {
		panic(err)
	}
	return a
}
