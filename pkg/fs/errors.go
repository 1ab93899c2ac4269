// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// Path resolution errors.
	ErrPathResolution = errors.New("path resolution failed")

	// Directory traversal errors.
	ErrWalk = errors.New("directory walk failed")
)
