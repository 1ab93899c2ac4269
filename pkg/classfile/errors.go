// Package classfile extracts symbolic class references from compiled JVM class files.
package classfile

import "errors"

// Error definitions for classfile package.
var (
	// ErrMalformedInput is returned when the class file header cannot be read.
	ErrMalformedInput = errors.New("malformed class file")
	// ErrNoClassName is returned when the class file does not name itself.
	ErrNoClassName = errors.New("class name not found")

	errTruncated = errors.New("unexpected end of data")
)
