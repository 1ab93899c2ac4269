// Package output collects the classes referenced by a build unit's compiled output.
package output

import (
	"fmt"
	"strings"

	"github.com/lerenn/dependency-analyzer/internal/base"
	"github.com/lerenn/dependency-analyzer/pkg/classfile"
	"github.com/lerenn/dependency-analyzer/pkg/classname"
	"github.com/lerenn/dependency-analyzer/pkg/filter"
	"github.com/lerenn/dependency-analyzer/pkg/fs"
	"github.com/lerenn/dependency-analyzer/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=output.go -destination=mocks/output.gen.go -package=mocks

// Extractor collects referenced classes from compiled output locations.
type Extractor interface {
	// ExtractUsedClasses returns the union of the classes referenced by every class file
	// found under the given locations. Missing locations contribute nothing.
	ExtractUsedClasses(locations []string) (classname.Set, error)
}

// NewExtractorParams contains parameters for creating a new Extractor.
type NewExtractorParams struct {
	FS     fs.FS
	Logger logger.Logger
	Reader classfile.Reader
	// Filter skips matching class files, relative to their output directory.
	Filter  *filter.Filter
	Verbose bool
}

type realExtractor struct {
	*base.Base
	reader classfile.Reader
	filter *filter.Filter
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(params NewExtractorParams) Extractor {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if params.Reader == nil {
		params.Reader = classfile.NewReader()
	}

	return &realExtractor{
		Base: base.NewBase(base.NewBaseParams{
			FS:      params.FS,
			Logger:  params.Logger,
			Verbose: params.Verbose,
		}),
		reader: params.Reader,
		filter: params.Filter,
	}
}

// ExtractUsedClasses returns the classes referenced by the compiled output.
func (e *realExtractor) ExtractUsedClasses(locations []string) (classname.Set, error) {
	used := classname.NewSet()
	for _, location := range locations {
		if err := e.extractLocation(location, used); err != nil {
			return nil, err
		}
	}
	return used, nil
}

func (e *realExtractor) extractLocation(location string, used classname.Set) error {
	exists, err := e.FS.Exists(location)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputRead, location, err)
	}
	if !exists {
		e.VerbosePrint("Output location %s does not exist, skipping", location)
		return nil
	}

	isDir, err := e.FS.IsDir(location)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputRead, location, err)
	}
	if !isDir {
		if strings.HasSuffix(location, classfile.Suffix) {
			e.extractFile(location, used)
		}
		return nil
	}

	files, err := e.FS.FindFiles(location, e.filter.IsClassEntry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputRead, err)
	}
	e.VerbosePrint("Found %d class files in %s", len(files), location)

	for _, file := range files {
		e.extractFile(file, used)
	}
	return nil
}

// extractFile adds the references of one class file. Unreadable or malformed files are
// skipped.
func (e *realExtractor) extractFile(path string, used classname.Set) {
	data, err := e.FS.ReadFile(path)
	if err != nil {
		e.VerbosePrint("Skipping %s: %v", path, err)
		return
	}

	cf, err := e.reader.Parse(data)
	if err != nil {
		e.VerbosePrint("Skipping %s: %v", path, err)
		return
	}
	if cf.Anomaly != nil {
		e.VerbosePrint("Partially parsed %s: %v", path, cf.Anomaly)
	}
	used.AddAll(cf.References)
}
