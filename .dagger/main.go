// CI functions for the dependency analyzer
//
// Lint, test and cross-compile the depan binary in containers. Functions are called
// through the dagger CLI, for example:
//
//	dagger call unit-tests --source-dir=. stdout
//	dagger call binaries --source-dir=. export --path=dist

package main

import (
	"context"
	"runtime"

	"dependency-analyzer/dagger/internal/dagger"

	"golang.org/x/sync/errgroup"
)

const containerPath = "/go/src/github.com/lerenn/dependency-analyzer"

type DependencyAnalyzer struct{}

// Lint runs golangci-lint on the main repo (./...) only.
func (ci *DependencyAnalyzer) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *DependencyAnalyzer) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c",
			"go test -tags=unit ./...",
		})
}

// IntegrationTests returns a container that runs the integration tests. They build jars
// and class files in temporary directories, so no extra tooling is needed.
func (ci *DependencyAnalyzer) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c",
			"go test -tags=integration ./...",
		})
}

// Check runs the linter and both test suites concurrently.
func (ci *DependencyAnalyzer) Check(ctx context.Context, sourceDir *dagger.Directory) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range []*dagger.Container{
		ci.Lint(sourceDir),
		ci.UnitTests(sourceDir),
		ci.IntegrationTests(sourceDir),
	} {
		g.Go(func() error {
			_, err := c.Sync(ctx)
			return err
		})
	}
	return g.Wait()
}

// Binaries cross-compiles depan for every supported platform and returns the directory
// holding the binaries.
func (ci *DependencyAnalyzer) Binaries(sourceDir *dagger.Directory) *dagger.Directory {
	c := dag.Container().From("golang:" + goVersion() + "-alpine").
		WithEnvVariable("CGO_ENABLED", "0")
	c = ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir)

	out := dag.Directory()
	for _, p := range Platforms {
		build := c.
			WithEnvVariable("GOOS", p.OS).
			WithEnvVariable("GOARCH", p.Arch).
			WithEnvVariable("GOARM", p.ARM).
			WithExec([]string{"go", "build", "-trimpath", "-o", "/out/" + p.BinaryName(), "./cmd/depan"})
		out = out.WithFile(p.BinaryName(), build.File("/out/"+p.BinaryName()))
	}
	return out
}

// Platforms returns the names of the platforms Binaries builds for.
func (ci *DependencyAnalyzer) Platforms() []string {
	return PlatformNames()
}

func (ci *DependencyAnalyzer) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func goVersion() string {
	return runtime.Version()[2:]
}
