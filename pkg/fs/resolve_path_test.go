//go:build integration

package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFS_ResolvePath(t *testing.T) {
	fs := NewFS()
	base := t.TempDir()

	tests := []struct {
		name        string
		baseDir     string
		path        string
		expected    string
		expectError bool
	}{
		{
			name:     "Relative path",
			baseDir:  base,
			path:     "libs/a-1.0.jar",
			expected: filepath.Join(base, "libs", "a-1.0.jar"),
		},
		{
			name:     "Parent components",
			baseDir:  filepath.Join(base, "module"),
			path:     "../target/classes",
			expected: filepath.Join(base, "target", "classes"),
		},
		{
			name:     "Absolute path is kept",
			baseDir:  base,
			path:     "/opt/libs/../m2/a.jar",
			expected: "/opt/m2/a.jar",
		},
		{
			name:        "Empty base",
			baseDir:     "",
			path:        "a.jar",
			expectError: true,
		},
		{
			name:        "Empty path",
			baseDir:     base,
			path:        "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := fs.ResolvePath(tt.baseDir, tt.path)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrPathResolution)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, resolved)
		})
	}
}
