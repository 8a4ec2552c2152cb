package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/flat"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <tree.json>",
		Short: "Show structural statistics for a tree file",
		Long: `The stats command reports node and leaf counts, the maximum depth, and
the widest fan-out of a tree file.

Example:
  treectl stats tree.json
  treectl stats tree.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

// treeStats summarizes the shape of a tree.
type treeStats struct {
	Nodes       int `json:"nodes"`
	Leaves      int `json:"leaves"`
	MaxDepth    int `json:"max_depth"`
	WidestNode  int `json:"widest_node"`
	WidestCount int `json:"widest_count"`
}

func runStats(path string) error {
	printVerbose("Loading tree: %s\n", path)

	tr, err := loadTree(path)
	if err != nil {
		return err
	}

	st := computeStats(tr)
	if jsonOut {
		return printJSON(st)
	}

	printInfo("Nodes:      %d\n", st.Nodes)
	printInfo("Leaves:     %d\n", st.Leaves)
	printInfo("Max depth:  %d\n", st.MaxDepth)
	printInfo("Widest:     node %d (%q) with %d children\n",
		st.WidestNode, tr.Value(st.WidestNode), st.WidestCount)
	return nil
}

func computeStats(tr *flat.Tree[string]) treeStats {
	st := treeStats{Nodes: tr.Len()}

	for i := 0; i < tr.Len(); i++ {
		if n := tr.ChildCount(i); n > st.WidestCount {
			st.WidestNode, st.WidestCount = i, n
		} else if n == 0 {
			st.Leaves++
		}

		depth := 0
		for j := i; j != 0; j = tr.Parent(j) {
			depth++
		}
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
	}
	return st
}
