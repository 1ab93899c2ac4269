//go:build integration

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/dependency-analyzer/pkg/artifact"
	"github.com/lerenn/dependency-analyzer/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "depan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	for _, module := range []string{"core", "api"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, module, "target", "classes"), 0755))
	}

	path := writeManifest(t, dir, `
name: my-module
output_locations:
  - target/classes
  - target/test-classes
  - "*/target/classes"
dependencies:
  - coordinate: g:a1:jar:1.0:compile
    file: libs/a1-1.0.jar
    declared: true
  - coordinate: g:a2:jar:2.0:test
    file: /opt/m2/a2-2.0.jar
  - coordinate: g:a3:pom:3.0:import
    declared: true
`)

	p, err := LoadManifest(fs.NewFS(), path)
	require.NoError(t, err)
	assert.Equal(t, "my-module", p.Name())

	resolved, err := p.ResolvedArtifacts()
	require.NoError(t, err)
	artifacts := resolved.Artifacts()
	require.Len(t, artifacts, 3)
	assert.Equal(t, "g:a1:jar:1.0:compile", artifacts[0].String())
	assert.Equal(t, filepath.Join(dir, "libs", "a1-1.0.jar"), artifacts[0].File)
	assert.Equal(t, "/opt/m2/a2-2.0.jar", artifacts[1].File)
	assert.False(t, artifacts[2].HasFile())

	declared, err := p.DeclaredArtifacts()
	require.NoError(t, err)
	assert.True(t, declared.Equal(artifact.NewSet(
		artifact.MustParse("g:a1:jar:1.0:compile"),
		artifact.MustParse("g:a3:pom:3.0:import"),
	)))

	outputs, err := p.OutputLocations()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "target", "classes"),
		filepath.Join(dir, "target", "test-classes"),
		filepath.Join(dir, "api", "target", "classes"),
		filepath.Join(dir, "core", "target", "classes"),
	}, outputs)
}

func TestLoadManifest_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "Invalid YAML",
			content:     "dependencies: [",
			expectedErr: ErrInvalidManifest,
		},
		{
			name:        "Invalid coordinate",
			content:     "dependencies:\n  - coordinate: g:a1\n",
			expectedErr: artifact.ErrInvalidCoordinate,
		},
		{
			name:        "Duplicate dependency",
			content:     "dependencies:\n  - coordinate: g:a1:1.0\n  - coordinate: g:a1:jar:1.0:test\n",
			expectedErr: ErrInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)

			_, err := LoadManifest(fs.NewFS(), path)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestLoadManifest_NotFound(t *testing.T) {
	_, err := LoadManifest(fs.NewFS(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrManifestNotFound)
}
