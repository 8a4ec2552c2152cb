package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/treekit/flat"
)

// treeFile is the on-disk JSON form of a flat tree: the two parallel
// sequences, exactly as FromSlices consumes them.
type treeFile struct {
	Values  []string `json:"values"`
	Parents []int    `json:"parents"`
}

// loadTree reads a tree file and builds the flat tree from it.
func loadTree(path string) (*flat.Tree[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}

	var tf treeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse tree file %s: %w", path, err)
	}

	tr, err := flat.FromSlices(tf.Values, tf.Parents)
	if err != nil {
		return nil, fmt.Errorf("build tree from %s: %w", path, err)
	}
	return tr, nil
}

// snapshot converts a tree back into its file form through the public API.
func snapshot(tr *flat.Tree[string]) treeFile {
	tf := treeFile{
		Values:  make([]string, tr.Len()),
		Parents: make([]int, tr.Len()),
	}
	for i := 0; i < tr.Len(); i++ {
		tf.Values[i] = tr.Value(i)
		tf.Parents[i] = tr.Parent(i)
	}
	return tf
}
