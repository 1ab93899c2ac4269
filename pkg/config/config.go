// Package config provides configuration management functionality for the dependency analyzer.
package config

import (
	"errors"
	"fmt"

	"github.com/lerenn/dependency-analyzer/configs"
	"github.com/lerenn/dependency-analyzer/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=config.go -destination=mocks/config.gen.go -package=mocks

// Config represents the application configuration.
type Config struct {
	// ExcludePrefixes lists class name prefixes ignored for duplicate detection.
	ExcludePrefixes []string `yaml:"exclude_prefixes"`
	// ArchiveSuffixes selects which resolved artifact files are indexed.
	ArchiveSuffixes []string `yaml:"archive_suffixes"`
	// IgnoreEntries holds gitignore style patterns of class entries to skip.
	IgnoreEntries []string `yaml:"ignore_entries"`
	Workers       int      `yaml:"workers"`
	CacheSize     int      `yaml:"cache_size"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheSize, c.CacheSize)
	}
	if len(c.ArchiveSuffixes) == 0 {
		return ErrArchiveSuffixesEmpty
	}
	for _, prefix := range c.ExcludePrefixes {
		if prefix == "" {
			return ErrEmptyExcludePrefix
		}
	}
	return nil
}

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration file. Keys it omits keep their default value.
	GetConfig() (Config, error)
	// GetConfigWithFallback behaves like GetConfig but returns the default configuration
	// when no configuration file exists.
	GetConfigWithFallback() (Config, error)
	GetConfigPath() string
	SetConfigPath(configPath string)
	DefaultConfig() Config
}

type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fs fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fs,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	if c.configPath == "" {
		return Config{}, fmt.Errorf("%w: no path set", ErrConfigNotFound)
	}

	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to default if the file is missing.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotFound) {
		return c.DefaultConfig(), nil
	}
	return config, err
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// SetConfigPath updates the embedded config path.
func (c *realManager) SetConfigPath(configPath string) {
	c.configPath = configPath
}

// DefaultConfig returns the configuration embedded in the binary.
func (c *realManager) DefaultConfig() Config {
	return Default()
}

// Default returns the configuration embedded in the binary.
func Default() Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		panic(fmt.Sprintf("embedded default configuration: %v", err))
	}
	return config
}
