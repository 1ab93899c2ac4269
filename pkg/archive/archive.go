// Package archive lists the classes defined by artifact archives.
package archive

import (
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/zip"
	"github.com/lerenn/dependency-analyzer/internal/base"
	"github.com/lerenn/dependency-analyzer/pkg/classfile"
	"github.com/lerenn/dependency-analyzer/pkg/classname"
	"github.com/lerenn/dependency-analyzer/pkg/filter"
	"github.com/lerenn/dependency-analyzer/pkg/fs"
	"github.com/lerenn/dependency-analyzer/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=archive.go -destination=mocks/archive.gen.go -package=mocks

// Indexer lists the classes defined by an artifact archive.
type Indexer interface {
	// IndexArtifact returns the names of the classes defined by the archive at path.
	// Entries that cannot be read or parsed are skipped.
	IndexArtifact(path string) (classname.Set, error)
}

// NewIndexerParams contains parameters for creating a new Indexer.
type NewIndexerParams struct {
	FS     fs.FS
	Logger logger.Logger
	Reader classfile.Reader
	// Filter skips matching entries. Nil keeps every class entry.
	Filter *filter.Filter
	// CacheSize bounds the number of archive indexes kept in memory. 0 disables caching.
	// The cache lives as long as the Indexer: it serves callers that keep one Indexer, or one
	// Analyzer, across several analyses. A single analysis never indexes the same path twice.
	CacheSize int
	Verbose   bool
}

type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

type realIndexer struct {
	*base.Base
	reader classfile.Reader
	filter *filter.Filter
	cache  *lru.Cache[cacheKey, classname.Set]
}

// NewIndexer creates a new Indexer instance.
func NewIndexer(params NewIndexerParams) Indexer {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if params.Reader == nil {
		params.Reader = classfile.NewReader()
	}

	i := &realIndexer{
		Base: base.NewBase(base.NewBaseParams{
			FS:      params.FS,
			Logger:  params.Logger,
			Verbose: params.Verbose,
		}),
		reader: params.Reader,
		filter: params.Filter,
	}
	if params.CacheSize > 0 {
		// Only fails on a non positive size
		i.cache, _ = lru.New[cacheKey, classname.Set](params.CacheSize)
	}
	return i
}

// IndexArtifact returns the names of the classes defined by the archive at path.
func (i *realIndexer) IndexArtifact(path string) (classname.Set, error) {
	info, err := i.FS.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArchiveRead, path, err)
	}
	key := cacheKey{path: path, size: info.Size(), modTime: info.ModTime().UnixNano()}

	if i.cache != nil {
		if classes, found := i.cache.Get(key); found {
			i.VerbosePrint("Using cached index of %s", path)
			return copySet(classes), nil
		}
	}

	classes, err := i.index(path)
	if err != nil {
		return nil, err
	}

	if i.cache != nil {
		i.cache.Add(key, copySet(classes))
	}
	return classes, nil
}

func (i *realIndexer) index(path string) (classname.Set, error) {
	i.VerbosePrint("Indexing %s", path)

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArchiveRead, path, err)
	}
	defer r.Close()

	classes := classname.NewSet()
	for _, entry := range r.File {
		if entry.FileInfo().IsDir() || !i.filter.IsClassEntry(entry.Name) {
			continue
		}

		cf, err := i.readEntry(entry)
		if err != nil {
			i.VerbosePrint("Skipping %s in %s: %v", entry.Name, path, err)
			continue
		}
		if cf.IsModule() {
			continue
		}
		classes.Add(cf.Name)
	}
	return classes, nil
}

func (i *realIndexer) readEntry(entry *zip.File) (*classfile.ClassFile, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return i.reader.ReadDeclaration(data)
}

func copySet(s classname.Set) classname.Set {
	c := classname.NewSet()
	c.AddAll(s)
	return c
}
