// Package base provides common functionality for analyzer components.
package base

import (
	"github.com/lerenn/dependency-analyzer/pkg/fs"
	"github.com/lerenn/dependency-analyzer/pkg/logger"
)

// Base provides common functionality for analyzer components.
type Base struct {
	FS      fs.FS
	Logger  logger.Logger
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	FS      fs.FS
	Logger  logger.Logger
	Verbose bool
}

// NewBase creates a new Base instance. A nil logger is replaced by a noop logger.
func NewBase(params NewBaseParams) *Base {
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	return &Base{
		FS:      params.FS,
		Logger:  params.Logger,
		verbose: params.Verbose,
	}
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(msg, args...)
	}
}
