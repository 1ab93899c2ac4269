package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// FindFiles walks root recursively and returns the regular files accepted by match, in
// lexical order. A symlinked root is followed, as are symlinks to regular files; symlinked
// directories below root are not descended into. Returned paths are under root as given.
func (f *realFS) FindFiles(root string, match func(rel string) bool) ([]string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWalk, root, err)
	}

	var files []string
	err = filepath.WalkDir(resolved, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !isRegularFile(path, d) {
			return nil
		}

		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		if match == nil || match(filepath.ToSlash(rel)) {
			files = append(files, filepath.Join(root, rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWalk, root, err)
	}
	return files, nil
}

func isRegularFile(path string, d iofs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
