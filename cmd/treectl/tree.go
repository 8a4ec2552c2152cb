package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/joshuapare/treekit/flat"
)

func init() {
	rootCmd.AddCommand(newTreeCmd())
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <tree.json>",
		Short: "Display tree structure",
		Long: `The tree command displays a hierarchical view of a tree file.

Example:
  treectl tree tree.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args[0])
		},
	}
}

func runTree(path string) error {
	printVerbose("Loading tree: %s\n", path)

	tr, err := loadTree(path)
	if err != nil {
		return err
	}

	root := treeprint.NewWithRoot(tr.Value(0))
	addBranches(tr, root, 0)
	fmt.Print(root.String())
	return nil
}

// addBranches attaches the children of node idx to branch, recursing into
// each child. Child order is the tree's storage-order scan.
func addBranches(tr *flat.Tree[string], branch treeprint.Tree, idx int) {
	kids, ok := tr.AppendChildren(nil, idx)
	if !ok {
		return
	}
	for _, k := range kids {
		if tr.IsLeaf(k) {
			branch.AddNode(tr.Value(k))
			continue
		}
		addBranches(tr, branch.AddBranch(tr.Value(k)), k)
	}
}
