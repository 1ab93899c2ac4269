// Package dependencies provides a centralized dependency container for the analyzer.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/dependency-analyzer/pkg/archive"
	"github.com/lerenn/dependency-analyzer/pkg/classfile"
	"github.com/lerenn/dependency-analyzer/pkg/config"
	"github.com/lerenn/dependency-analyzer/pkg/filter"
	"github.com/lerenn/dependency-analyzer/pkg/fs"
	"github.com/lerenn/dependency-analyzer/pkg/logger"
	"github.com/lerenn/dependency-analyzer/pkg/output"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrClassReaderMissing = errors.New("class reader dependency is required but not set")
	ErrIndexerMissing     = errors.New("indexer dependency is required but not set")
	ErrExtractorMissing   = errors.New("extractor dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	Config      config.Manager
	Logger      logger.Logger
	ClassReader classfile.Reader
	Indexer     archive.Indexer
	Extractor   output.Extractor
}

// New creates a new Dependencies instance with defaults for the stateless dependencies.
// Config, Indexer and Extractor depend on configuration and are set via WithConfig and
// WithComponents, or their own With* methods.
func New() *Dependencies {
	return &Dependencies{
		FS:          fs.NewFS(),
		Logger:      logger.NewNoopLogger(),
		ClassReader: classfile.NewReader(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithClassReader sets the class file reader and returns the instance for chaining.
func (d *Dependencies) WithClassReader(reader classfile.Reader) *Dependencies {
	d.ClassReader = reader
	return d
}

// WithIndexer sets the archive indexer and returns the instance for chaining.
func (d *Dependencies) WithIndexer(indexer archive.Indexer) *Dependencies {
	d.Indexer = indexer
	return d
}

// WithExtractor sets the output extractor and returns the instance for chaining.
func (d *Dependencies) WithExtractor(extractor output.Extractor) *Dependencies {
	d.Extractor = extractor
	return d
}

// ComponentParams configures the components built by WithComponents.
type ComponentParams struct {
	// Filter skips matching class entries in archives and output directories.
	Filter *filter.Filter
	// CacheSize bounds the archive indexes kept by the indexer. 0 disables caching.
	CacheSize int
	Verbose   bool
}

// WithComponents builds the indexer and the extractor on top of the FS, Logger and
// ClassReader already set, and returns the instance for chaining. Set those first.
func (d *Dependencies) WithComponents(params ComponentParams) *Dependencies {
	d.Indexer = archive.NewIndexer(archive.NewIndexerParams{
		FS:        d.FS,
		Logger:    d.Logger,
		Reader:    d.ClassReader,
		Filter:    params.Filter,
		CacheSize: params.CacheSize,
		Verbose:   params.Verbose,
	})
	d.Extractor = output.NewExtractor(output.NewExtractorParams{
		FS:      d.FS,
		Logger:  d.Logger,
		Reader:  d.ClassReader,
		Filter:  params.Filter,
		Verbose: params.Verbose,
	})
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.ClassReader, ErrClassReaderMissing},
		{d.Indexer, ErrIndexerMissing},
		{d.Extractor, ErrExtractorMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
