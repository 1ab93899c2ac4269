package fs

import (
	"fmt"
	"path/filepath"
)

// ResolvePath resolves a path relative to a base directory. Absolute paths are only cleaned.
func (f *realFS) ResolvePath(baseDir, relativePath string) (string, error) {
	if baseDir == "" {
		return "", fmt.Errorf("%w: base path cannot be empty", ErrPathResolution)
	}
	if relativePath == "" {
		return "", fmt.Errorf("%w: relative path cannot be empty", ErrPathResolution)
	}

	if filepath.IsAbs(relativePath) {
		return filepath.Clean(relativePath), nil
	}

	absPath, err := filepath.Abs(filepath.Join(baseDir, relativePath))
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, relativePath, err)
	}

	return absPath, nil
}
