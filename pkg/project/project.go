// Package project supplies the inputs of an analysis: the resolved and declared artifacts of
// a build unit and the locations of its compiled output.
package project

import (
	"github.com/lerenn/dependency-analyzer/pkg/artifact"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=project.go -destination=mocks/project.gen.go -package=mocks

// Project describes an already resolved build unit.
type Project interface {
	// Name returns the build unit name.
	Name() string

	// ResolvedArtifacts returns the effective dependency set, in resolution order.
	ResolvedArtifacts() (*artifact.Set, error)

	// DeclaredArtifacts returns the dependencies listed by the build unit itself.
	DeclaredArtifacts() (*artifact.Set, error)

	// OutputLocations returns the directories or class files holding the compiled output.
	OutputLocations() ([]string, error)
}

type staticProject struct {
	name     string
	resolved *artifact.Set
	declared *artifact.Set
	outputs  []string
}

// New creates a Project from already known inputs. Nil sets are replaced by empty ones.
func New(name string, resolved, declared *artifact.Set, outputs []string) Project {
	if resolved == nil {
		resolved = artifact.NewSet()
	}
	if declared == nil {
		declared = artifact.NewSet()
	}
	return &staticProject{
		name:     name,
		resolved: resolved,
		declared: declared,
		outputs:  append([]string(nil), outputs...),
	}
}

func (p *staticProject) Name() string {
	return p.name
}

func (p *staticProject) ResolvedArtifacts() (*artifact.Set, error) {
	return p.resolved, nil
}

func (p *staticProject) DeclaredArtifacts() (*artifact.Set, error) {
	return p.declared, nil
}

func (p *staticProject) OutputLocations() ([]string, error) {
	return append([]string(nil), p.outputs...), nil
}
