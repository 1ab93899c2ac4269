package main

import (
	"fmt"

	"github.com/lerenn/dependency-analyzer/cmd/depan/internal/cli"
	"github.com/lerenn/dependency-analyzer/pkg/analyzer"
	"github.com/lerenn/dependency-analyzer/pkg/project"
	"github.com/lerenn/dependency-analyzer/pkg/report"
	"github.com/spf13/cobra"
)

var (
	excludes      []string
	outputFormat  string
	failOnWarning bool
	workers       int
)

func createAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze <manifest.yaml>",
		Short: "Analyze the dependencies of a build unit",
		Long:  getAnalyzeCommandLongDescription(),
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}

	analyzeCmd.Flags().StringArrayVarP(&excludes, "exclude", "e", nil,
		"Class name prefix ignored when reporting duplicate classes (repeatable)")
	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", string(report.FormatText),
		"Output format: text or yaml")
	analyzeCmd.Flags().BoolVar(&failOnWarning, "fail-on-warning", false,
		"Fail when a used dependency is undeclared or a declared dependency is unused")
	analyzeCmd.Flags().IntVarP(&workers, "workers", "w", 0,
		"Number of archives indexed in parallel (overrides the configuration)")

	return analyzeCmd
}

// getAnalyzeCommandLongDescription returns the long description for the analyze command.
func getAnalyzeCommandLongDescription() string {
	return `Analyze a build unit described by a manifest file.

The manifest lists the compiled output locations and the resolved dependencies:

  name: my-module
  output_locations: [target/classes]
  dependencies:
    - coordinate: com.example:lib:jar:1.0:compile
      file: libs/lib-1.0.jar
      declared: true

The report lists:
- Used declared dependencies
- Used undeclared dependencies
- Unused declared dependencies
- Classes defined by several dependencies

Examples:
  # Analyze a module
  depan analyze manifest.yaml

  # Ignore generated classes in the duplicate report and fail on warnings
  depan analyze manifest.yaml --exclude org.apache.thrift. --fail-on-warning

  # Machine readable output
  depan analyze manifest.yaml -o yaml`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	if workers < 0 {
		return fmt.Errorf("invalid --workers %d: must not be negative", workers)
	}

	deps, err := cli.NewDependencies()
	if err != nil {
		return err
	}

	p, err := project.LoadManifest(deps.FS, args[0])
	if err != nil {
		return err
	}

	depAnalyzer, err := analyzer.NewAnalyzer(analyzer.NewAnalyzerParams{
		Dependencies: deps,
		Workers:      workers,
		Verbose:      cli.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	result, err := depAnalyzer.AnalyzeProject(p, excludes)
	if err != nil {
		return err
	}

	if !cli.Quiet {
		if err := report.Render(cmd.OutOrStdout(), result, format); err != nil {
			return err
		}
	}

	if failOnWarning && result.HasWarnings() {
		return fmt.Errorf("%w: %d used undeclared, %d unused declared",
			cli.ErrDependencyWarnings, result.UsedUndeclared.Len(), result.UnusedDeclared.Len())
	}
	return nil
}
