package analyzer

import "errors"

// Error definitions for analyzer package.
var (
	// ErrAnalysis is returned when the inputs of an analysis cannot be obtained.
	ErrAnalysis = errors.New("dependency analysis failed")
)
