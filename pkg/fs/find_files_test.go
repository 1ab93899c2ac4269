//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_FindFiles(t *testing.T) {
	fs := NewFS()

	root := t.TempDir()
	files := []string{
		"com/x/Foo.class",
		"com/x/Foo$Inner.class",
		"com/x/y/Bar.class",
		"META-INF/MANIFEST.MF",
		"application.properties",
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	tests := []struct {
		name     string
		match    func(rel string) bool
		expected []string
	}{
		{
			name:  "Class files only",
			match: func(rel string) bool { return strings.HasSuffix(rel, ".class") },
			expected: []string{
				"com/x/Foo$Inner.class",
				"com/x/Foo.class",
				"com/x/y/Bar.class",
			},
		},
		{
			name:     "Relative slash paths",
			match:    func(rel string) bool { return strings.HasPrefix(rel, "com/x/y/") },
			expected: []string{"com/x/y/Bar.class"},
		},
		{
			name:     "Nil match accepts everything",
			match:    nil,
			expected: []string{"META-INF/MANIFEST.MF", "application.properties", "com/x/Foo$Inner.class", "com/x/Foo.class", "com/x/y/Bar.class"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := fs.FindFiles(root, tt.match)
			require.NoError(t, err)

			expected := make([]string, 0, len(tt.expected))
			for _, rel := range tt.expected {
				expected = append(expected, filepath.Join(root, filepath.FromSlash(rel)))
			}
			assert.Equal(t, expected, found)
		})
	}
}

func TestFS_FindFiles_MissingRoot(t *testing.T) {
	fs := NewFS()

	_, err := fs.FindFiles(filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, ErrWalk)
	assert.True(t, fs.IsNotExist(err))
}

func TestFS_FindFiles_Symlinks(t *testing.T) {
	fs := NewFS()

	dir := t.TempDir()
	realDir := filepath.Join(dir, "realDir")
	require.NoError(t, os.MkdirAll(filepath.Join(realDir, "com", "x"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(realDir, "com", "x", "Foo.class"), []byte("x"), 0644))

	shared := filepath.Join(dir, "Shared.class")
	require.NoError(t, os.WriteFile(shared, []byte("x"), 0644))
	require.NoError(t, os.Symlink(shared, filepath.Join(realDir, "com", "x", "Shared.class")))

	// Dangling links are not regular files
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.class"), filepath.Join(realDir, "Gone.class")))

	linkedRoot := filepath.Join(dir, "linked")
	require.NoError(t, os.Symlink(realDir, linkedRoot))

	tests := []struct {
		name string
		root string
	}{
		{name: "Real root", root: realDir},
		{name: "Symlinked root", root: linkedRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := fs.FindFiles(tt.root, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{
				filepath.Join(tt.root, "com", "x", "Foo.class"),
				filepath.Join(tt.root, "com", "x", "Shared.class"),
			}, found)
		})
	}
}
