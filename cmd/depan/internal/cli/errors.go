package cli

import "errors"

// Error definitions for cli package.
var (
	// ErrFailedToLoadConfig is returned when the configuration cannot be loaded.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
	// ErrDependencyWarnings is returned by analyze with --fail-on-warning when a used
	// artifact is undeclared or a declared artifact is unused.
	ErrDependencyWarnings = errors.New("dependency warnings found")
)
