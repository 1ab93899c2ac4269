package archive

import "errors"

// Error definitions for archive package.
var (
	// ErrArchiveRead is returned when an artifact archive cannot be opened or listed.
	ErrArchiveRead = errors.New("failed to read archive")
)
