package project

import "errors"

// Error definitions for project package.
var (
	ErrManifestNotFound = errors.New("manifest not found")
	ErrManifestRead     = errors.New("failed to read manifest")
	ErrInvalidManifest  = errors.New("invalid manifest")
)
