package main

import (
	"fmt"

	"github.com/lerenn/dependency-analyzer/cmd/depan/internal/cli"
	"github.com/spf13/cobra"
)

func createClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes <file.class|dir>...",
		Short: "List the classes referenced by compiled classes",
		Long: `List, sorted, the classes referenced by class files and directories of class files.

Examples:
  # Classes referenced by a module's output
  depan classes target/classes

  # Classes referenced by a single class
  depan classes target/classes/com/example/App.class`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClasses,
	}
}

func runClasses(cmd *cobra.Command, args []string) error {
	deps, err := cli.NewDependencies()
	if err != nil {
		return err
	}

	classes, err := deps.Extractor.ExtractUsedClasses(args)
	if err != nil {
		return err
	}

	if cli.Quiet {
		return nil
	}
	for _, class := range classes.Sorted() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), class); err != nil {
			return err
		}
	}
	return nil
}
