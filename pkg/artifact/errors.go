// Package artifact provides dependency artifact identities and artifact sets.
package artifact

import "errors"

// Error definitions for artifact package.
var (
	// ErrInvalidCoordinate is returned when a coordinate string cannot be parsed.
	ErrInvalidCoordinate = errors.New("invalid artifact coordinate")
)
