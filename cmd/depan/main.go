// Package main provides the command-line interface for the dependency analyzer.
package main

import (
	"log"

	"github.com/lerenn/dependency-analyzer/cmd/depan/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "depan",
		Short: "Dependency Analyzer - find used, undeclared and unused JVM dependencies",
		Long: `Analyze the compiled classes of a build unit against its resolved dependency ` +
			`archives to find undeclared, unused and duplicated dependencies.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(createAnalyzeCmd(), createClassesCmd(), createDefinesCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
