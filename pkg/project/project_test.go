//go:build unit

package project

import (
	"testing"

	"github.com/lerenn/dependency-analyzer/pkg/artifact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalizesNilSets(t *testing.T) {
	p := New("empty", nil, nil, nil)

	resolved, err := p.ResolvedArtifacts()
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, 0, resolved.Len())

	declared, err := p.DeclaredArtifacts()
	require.NoError(t, err)
	require.NotNil(t, declared)
	assert.Equal(t, 0, declared.Len())

	outputs, err := p.OutputLocations()
	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestNew_CopiesOutputs(t *testing.T) {
	outputs := []string{"target/classes"}
	p := New("app", artifact.NewSet(artifact.MustParse("g:a:1.0")), nil, outputs)
	outputs[0] = "changed"

	got, err := p.OutputLocations()
	require.NoError(t, err)
	assert.Equal(t, []string{"target/classes"}, got)
	assert.Equal(t, "app", p.Name())
}
