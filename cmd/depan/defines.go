package main

import (
	"fmt"

	"github.com/lerenn/dependency-analyzer/cmd/depan/internal/cli"
	"github.com/spf13/cobra"
)

func createDefinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defines <archive.jar>",
		Short: "List the classes defined by an archive",
		Long: `List, sorted, the classes defined by a dependency archive.

Examples:
  depan defines ~/.m2/repository/com/google/guava/guava/33.0.0-jre/guava-33.0.0-jre.jar`,
		Args: cobra.ExactArgs(1),
		RunE: runDefines,
	}
}

func runDefines(cmd *cobra.Command, args []string) error {
	deps, err := cli.NewDependencies()
	if err != nil {
		return err
	}

	path, err := deps.FS.ExpandPath(args[0])
	if err != nil {
		return err
	}

	classes, err := deps.Indexer.IndexArtifact(path)
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
