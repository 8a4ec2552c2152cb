package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dumpGroups bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpGroups, "groups", false, "Group children under each parent")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <tree.json>",
		Short: "Print every node of a tree file",
		Long: `The dump command prints a tree file as a flat "value {parent}" listing
in storage order, or, with --groups, one line per parent listing the
values of its immediate children.

Example:
  treectl dump tree.json
  treectl dump tree.json --groups
  treectl dump tree.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	printVerbose("Loading tree: %s\n", path)

	tr, err := loadTree(path)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(snapshot(tr))
	}

	if dumpGroups {
		return tr.PrintGroups(os.Stdout)
	}

	if err := tr.PrintFlat(os.Stdout); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
