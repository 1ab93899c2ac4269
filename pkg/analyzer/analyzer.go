// Package analyzer classifies the dependencies of a build unit into used declared, used
// undeclared and unused declared artifacts, and reports classes defined by several artifacts.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/lerenn/dependency-analyzer/internal/base"
	"github.com/lerenn/dependency-analyzer/pkg/artifact"
	"github.com/lerenn/dependency-analyzer/pkg/classname"
	"github.com/lerenn/dependency-analyzer/pkg/config"
	"github.com/lerenn/dependency-analyzer/pkg/dependencies"
	"github.com/lerenn/dependency-analyzer/pkg/project"
	"golang.org/x/sync/errgroup"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=analyzer.go -destination=mocks/analyzer.gen.go -package=mocks

// Analyzer classifies the artifacts of a build unit.
type Analyzer interface {
	// Analyze classifies the given artifacts against the classes referenced by the output.
	Analyze(params AnalyzeParams) (*Result, error)

	// AnalyzeProject collects the inputs from the project and analyzes them.
	AnalyzeProject(p project.Project, excludedClassPrefixes []string) (*Result, error)
}

// AnalyzeParams contains the inputs of an analysis.
type AnalyzeParams struct {
	// ResolvedArtifacts is the effective dependency set, in resolution order.
	ResolvedArtifacts *artifact.Set
	// DeclaredArtifacts is the set of dependencies listed by the build unit itself.
	DeclaredArtifacts *artifact.Set
	// OutputLocations holds the directories or class files of the compiled output.
	OutputLocations []string
	// ExcludedClassPrefixes removes classes from the duplicate report. Configured
	// prefixes are added to these.
	ExcludedClassPrefixes []string
}

// NewAnalyzerParams contains parameters for creating a new Analyzer instance.
type NewAnalyzerParams struct {
	Dependencies *dependencies.Dependencies
	// Workers overrides the configured number of archives indexed in parallel when positive.
	Workers int
	Verbose bool
}

type realAnalyzer struct {
	*base.Base
	deps    *dependencies.Dependencies
	workers int
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(params NewAnalyzerParams) (Analyzer, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realAnalyzer{
		Base: base.NewBase(base.NewBaseParams{
			FS:      deps.FS,
			Logger:  deps.Logger,
			Verbose: params.Verbose,
		}),
		deps:    deps,
		workers: params.Workers,
	}, nil
}

// AnalyzeProject collects the inputs from the project and analyzes them.
func (a *realAnalyzer) AnalyzeProject(p project.Project, excludedClassPrefixes []string) (*Result, error) {
	resolved, err := p.ResolvedArtifacts()
	if err != nil {
		return nil, fmt.Errorf("%w: resolved artifacts of %s: %w", ErrAnalysis, p.Name(), err)
	}

	declared, err := p.DeclaredArtifacts()
	if err != nil {
		return nil, fmt.Errorf("%w: declared artifacts of %s: %w", ErrAnalysis, p.Name(), err)
	}

	locations, err := p.OutputLocations()
	if err != nil {
		return nil, fmt.Errorf("%w: output locations of %s: %w", ErrAnalysis, p.Name(), err)
	}

	a.VerbosePrint("Analyzing %s", p.Name())
	return a.Analyze(AnalyzeParams{
		ResolvedArtifacts:     resolved,
		DeclaredArtifacts:     declared,
		OutputLocations:       locations,
		ExcludedClassPrefixes: excludedClassPrefixes,
	})
}

// Analyze classifies the given artifacts against the classes referenced by the output.
func (a *realAnalyzer) Analyze(params AnalyzeParams) (*Result, error) {
	cfg, err := a.deps.Config.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	resolved := orEmpty(params.ResolvedArtifacts)
	declared := orEmpty(params.DeclaredArtifacts)
	excludes := append(append([]string(nil), params.ExcludedClassPrefixes...), cfg.ExcludePrefixes...)

	index := a.buildIndex(resolved, cfg)
	duplicates := index.DuplicateClasses(excludes)

	usedClasses, err := a.deps.Extractor.ExtractUsedClasses(params.OutputLocations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}
	used := index.UsedArtifacts(usedClasses)

	a.VerbosePrint("Found %d used artifacts among %d indexed", used.Len(), index.Len())

	return NewResult(
		declared.Intersect(used),
		used.WithoutConflicts(declared),
		declared.WithoutConflicts(used),
		duplicates,
	), nil
}

// buildIndex indexes the archives of the resolved artifacts in parallel. Each worker writes
// its own slot and the slots are merged in resolution order once every worker is done.
func (a *realAnalyzer) buildIndex(resolved *artifact.Set, cfg config.Config) *Index {
	artifacts := resolved.Artifacts()
	slots := make([]classname.Set, len(artifacts))

	workers := a.workers
	if workers <= 0 {
		workers = cfg.Workers
	}

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for pos, art := range artifacts {
		if !isArchive(art, cfg.ArchiveSuffixes) {
			a.VerbosePrint("Skipping %s: no archive", art)
			continue
		}
		g.Go(func() error {
			classes, err := a.deps.Indexer.IndexArtifact(art.File)
			if err != nil {
				a.Logger.Logf("Skipping %s: %v", art, err)
				return nil
			}
			slots[pos] = classes
			return nil
		})
	}
	// Workers never fail, archive errors only drop the artifact
	_ = g.Wait()

	index := NewIndex()
	for pos, art := range artifacts {
		if slots[pos] != nil {
			index.Add(art, slots[pos])
		}
	}
	return index
}

func isArchive(a artifact.Artifact, suffixes []string) bool {
	if !a.HasFile() {
		return false
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(a.File, suffix) {
			return true
		}
	}
	return false
}
