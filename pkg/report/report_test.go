//go:build unit

package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lerenn/dependency-analyzer/pkg/analyzer"
	"github.com/lerenn/dependency-analyzer/pkg/artifact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *analyzer.Result {
	a1 := artifact.MustParse("g:a1:jar:1.0:compile")
	a2 := artifact.MustParse("g:a2:jar:2.0:test")
	a3 := artifact.MustParse("g:a3:jar:3.0:compile")
	b := artifact.MustParse("org:b:jar:1.0:compile")

	return analyzer.NewResult(
		artifact.NewSet(b, a1),
		artifact.NewSet(a2),
		nil,
		analyzer.DuplicateClasses{
			"com.dup.Shared": artifact.NewSet(a3, a1),
		},
	)
}

func TestRender_Text(t *testing.T) {
	tests := []struct {
		name     string
		result   *analyzer.Result
		expected string
	}{
		{
			name:   "Full result",
			result: sampleResult(),
			expected: "Used declared dependencies (2):\n" +
				"  - g:a1:jar:1.0:compile\n" +
				"  - org:b:jar:1.0:compile\n" +
				"Used undeclared dependencies (1):\n" +
				"  - g:a2:jar:2.0:test\n" +
				"Unused declared dependencies: none\n" +
				"Duplicate classes (1):\n" +
				"  com.dup.Shared\n" +
				"    - g:a1:jar:1.0:compile\n" +
				"    - g:a3:jar:3.0:compile\n",
		},
		{
			name:   "Nil result",
			result: nil,
			expected: "Used declared dependencies: none\n" +
				"Used undeclared dependencies: none\n" +
				"Unused declared dependencies: none\n" +
				"Duplicate classes: none\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.result, FormatText))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), FormatYAML))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, Document{
		UsedDeclared:   []string{"g:a1:jar:1.0:compile", "org:b:jar:1.0:compile"},
		UsedUndeclared: []string{"g:a2:jar:2.0:test"},
		UnusedDeclared: []string{},
		DuplicateClasses: map[string][]string{
			"com.dup.Shared": {"g:a1:jar:1.0:compile", "g:a3:jar:3.0:compile"},
		},
	}, doc)
	assert.Contains(t, buf.String(), "unused_declared: []\n")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleResult(), Format("json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errWrite
}

func TestRender_WriteError(t *testing.T) {
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			assert.ErrorIs(t, Render(failingWriter{}, sampleResult(), format), errWrite)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		err      error
	}{
		{name: "Text", input: "text", expected: FormatText},
		{name: "YAML", input: "yaml", expected: FormatYAML},
		{name: "Unknown", input: "xml", err: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}
