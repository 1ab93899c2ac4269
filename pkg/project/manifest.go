package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/dependency-analyzer/pkg/artifact"
	"github.com/lerenn/dependency-analyzer/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description of a resolved build unit.
type Manifest struct {
	Name string `yaml:"name"`
	// OutputLocations lists compiled output directories or class files. Glob patterns are
	// expanded.
	OutputLocations []string     `yaml:"output_locations"`
	Dependencies    []Dependency `yaml:"dependencies"`
}

// Dependency is one resolved artifact of a manifest.
type Dependency struct {
	// Coordinate is g:a:v, g:a:type:v, g:a:type:v:scope or g:a:type:classifier:v:scope.
	Coordinate string `yaml:"coordinate"`
	// File is the resolved archive. Empty for unresolved artifacts.
	File string `yaml:"file,omitempty"`
	// Declared marks dependencies listed by the build unit itself.
	Declared bool `yaml:"declared,omitempty"`
}

// LoadManifest reads a manifest file. Relative paths resolve against the manifest directory.
func LoadManifest(fs fs.FS, path string) (Project, error) {
	exists, err := fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestRead, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestRead, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	return manifest.resolve(fs, filepath.Dir(path))
}

func (m Manifest) resolve(fs fs.FS, baseDir string) (Project, error) {
	resolved, declared := artifact.NewSet(), artifact.NewSet()
	for i, dep := range m.Dependencies {
		file, err := resolvePath(fs, baseDir, dep.File)
		if err != nil {
			return nil, fmt.Errorf("%w: dependency %d: %w", ErrInvalidManifest, i, err)
		}

		a, err := artifact.Parse(dep.Coordinate, file)
		if err != nil {
			return nil, fmt.Errorf("%w: dependency %d: %w", ErrInvalidManifest, i, err)
		}
		if !resolved.Add(a) {
			return nil, fmt.Errorf("%w: duplicate dependency %s", ErrInvalidManifest, a.ID())
		}
		if dep.Declared {
			declared.Add(a)
		}
	}

	var outputs []string
	for _, location := range m.OutputLocations {
		path, err := resolvePath(fs, baseDir, location)
		if err != nil {
			return nil, fmt.Errorf("%w: output location %q: %w", ErrInvalidManifest, location, err)
		}
		if !strings.ContainsAny(path, "*?[") {
			outputs = append(outputs, path)
			continue
		}

		matches, err := fs.Glob(path)
		if err != nil {
			return nil, fmt.Errorf("%w: output location %q: %w", ErrInvalidManifest, location, err)
		}
		outputs = append(outputs, matches...)
	}

	return New(m.Name, resolved, declared, outputs), nil
}

func resolvePath(fs fs.FS, baseDir, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := fs.ExpandPath(path)
	if err != nil {
		return "", err
	}
	return fs.ResolvePath(baseDir, expanded)
}
