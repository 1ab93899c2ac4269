package report

import "errors"

// Error definitions for report package.
var (
	// ErrUnknownFormat is returned for a format Render does not support.
	ErrUnknownFormat = errors.New("unknown report format")
)
