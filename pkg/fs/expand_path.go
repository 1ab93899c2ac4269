package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetHomeDir returns the user's home directory path.
func (f *realFS) GetHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ExpandPath expands a leading ~ to the user's home directory.
func (f *realFS) ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: failed to determine home directory: %w", ErrPathResolution, err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
