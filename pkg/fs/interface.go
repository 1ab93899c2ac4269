package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations used to locate and read compiled
// classes, archives, manifests and configuration files.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// Stat returns the file info of the given path.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Glob finds files matching the pattern.
	Glob(pattern string) ([]string, error)

	// FindFiles walks root recursively and returns the regular files for which match
	// returns true. match receives the slash separated path relative to root.
	FindFiles(root string, match func(rel string) bool) ([]string, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)

	// ResolvePath resolves a path relative to a base directory.
	ResolvePath(baseDir, relativePath string) (string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
