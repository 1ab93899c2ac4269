package fs

import (
	"errors"
	"os"
)

// Stat returns the file info of the given path.
func (f *realFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists checks if a file or directory exists at the given path.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := f.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case f.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// IsDir checks if the path is a directory.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := f.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsNotExist checks if an error, possibly wrapped, indicates a missing file or directory.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
