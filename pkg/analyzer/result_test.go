//go:build unit

package analyzer

import (
	"testing"

	"github.com/lerenn/dependency-analyzer/pkg/artifact"
	"github.com/stretchr/testify/assert"
)

func TestNewResult_NilNormalized(t *testing.T) {
	result := NewResult(nil, nil, nil, nil)

	assert.NotNil(t, result.UsedDeclared)
	assert.NotNil(t, result.UsedUndeclared)
	assert.NotNil(t, result.UnusedDeclared)
	assert.NotNil(t, result.DuplicateClasses)
	assert.False(t, result.HasWarnings())
	assert.Empty(t, result.DuplicateClassNames())
}

func TestResult_Equal(t *testing.T) {
	a1 := artifact.MustParse("g:a1:1.0")
	a2 := artifact.MustParse("g:a2:1.0")
	base := NewResult(artifact.NewSet(a1, a2), nil, nil, DuplicateClasses{
		"com.dup.S": artifact.NewSet(a1, a2),
	})

	tests := []struct {
		name     string
		other    *Result
		expected bool
	}{
		{
			name: "Same content, other order",
			other: NewResult(artifact.NewSet(a2, a1), artifact.NewSet(), nil, DuplicateClasses{
				"com.dup.S": artifact.NewSet(a2, a1),
			}),
			expected: true,
		},
		{
			name: "Different used declared",
			other: NewResult(artifact.NewSet(a1), nil, nil, DuplicateClasses{
				"com.dup.S": artifact.NewSet(a1, a2),
			}),
			expected: false,
		},
		{
			name:     "Different duplicates",
			other:    NewResult(artifact.NewSet(a1, a2), nil, nil, nil),
			expected: false,
		},
		{
			name: "Artifact moved between sets",
			other: NewResult(artifact.NewSet(a1), artifact.NewSet(a2), nil, DuplicateClasses{
				"com.dup.S": artifact.NewSet(a1, a2),
			}),
			expected: false,
		},
		{name: "Nil", other: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Equal(tt.other))
		})
	}

	var none *Result
	assert.True(t, none.Equal(nil))
}

func TestResult_HasWarnings(t *testing.T) {
	a1 := artifact.MustParse("g:a1:1.0")

	tests := []struct {
		name     string
		result   *Result
		expected bool
	}{
		{name: "Only used declared", result: NewResult(artifact.NewSet(a1), nil, nil, nil), expected: false},
		{name: "Used undeclared", result: NewResult(nil, artifact.NewSet(a1), nil, nil), expected: true},
		{name: "Unused declared", result: NewResult(nil, nil, artifact.NewSet(a1), nil), expected: true},
		{
			name:     "Duplicates only",
			result:   NewResult(nil, nil, nil, DuplicateClasses{"com.x.A": artifact.NewSet(a1)}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.HasWarnings())
		})
	}
}

func TestResult_DuplicateClassNames(t *testing.T) {
	a1 := artifact.MustParse("g:a1:1.0")
	a2 := artifact.MustParse("g:a2:1.0")
	result := NewResult(nil, nil, nil, DuplicateClasses{
		"org.b.B": artifact.NewSet(a1, a2),
		"com.a.A": artifact.NewSet(a1, a2),
	})

	assert.Equal(t, []string{"com.a.A", "org.b.B"}, result.DuplicateClassNames())
}
