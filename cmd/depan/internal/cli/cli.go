// Package cli provides common configuration and utility functions for the depan CLI.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/dependency-analyzer/pkg/config"
	"github.com/lerenn/dependency-analyzer/pkg/dependencies"
	"github.com/lerenn/dependency-analyzer/pkg/filter"
	"github.com/lerenn/dependency-analyzer/pkg/fs"
	"github.com/lerenn/dependency-analyzer/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path, ~/.depan/config.yaml unless overridden.
func GetConfigPath(filesystem fs.FS) string {
	if ConfigPath != "" {
		return ConfigPath
	}
	homeDir, err := filesystem.GetHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".depan", "config.yaml")
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager(filesystem fs.FS) config.Manager {
	return config.NewManager(filesystem, GetConfigPath(filesystem))
}

// NewLogger returns the logger matching the verbosity flags.
func NewLogger() logger.Logger {
	if Quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}

// NewDependencies wires the analysis components from the configuration.
func NewDependencies() (*dependencies.Dependencies, error) {
	filesystem := fs.NewFS()
	configManager := NewConfigManager(filesystem)

	cfg, err := configManager.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	return dependencies.New().
		WithFS(filesystem).
		WithConfig(configManager).
		WithLogger(NewLogger()).
		WithComponents(dependencies.ComponentParams{
			Filter:    filter.New(cfg.IgnoreEntries),
			CacheSize: cfg.CacheSize,
			Verbose:   Verbose,
		}), nil
}
