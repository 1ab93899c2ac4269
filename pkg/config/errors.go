package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileRead  = errors.New("failed to read config file")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInvalidWorkers       = errors.New("workers must be at least 1")
	ErrInvalidCacheSize     = errors.New("cache_size cannot be negative")
	ErrArchiveSuffixesEmpty = errors.New("archive_suffixes cannot be empty")
	ErrEmptyExcludePrefix   = errors.New("exclude_prefixes cannot contain an empty prefix")
)
