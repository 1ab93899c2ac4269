package output

import "errors"

// Error definitions for output package.
var (
	// ErrOutputRead is returned when an output location cannot be enumerated.
	ErrOutputRead = errors.New("failed to read output location")
)
