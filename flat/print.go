package flat

import (
	"fmt"
	"io"
	"slices"
)

// PrintFlat writes every node as a comma-separated list of "value {parent}"
// pairs in storage order:
//
//	root {0}, child1 {0}, child2 {0}, grand0 {1}
//
// The output carries no trailing newline.
func (t *Tree[T]) PrintFlat(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%v {%d}", t.values[0], t.parents[0]); err != nil {
		return err
	}
	for i := 1; i < len(t.values); i++ {
		if _, err := fmt.Fprintf(w, ", %v {%d}", t.values[i], t.parents[i]); err != nil {
			return err
		}
	}
	return nil
}

// PrintGroups writes one line per node that is referenced as a parent, in
// ascending index order, listing the values of its immediate children:
//
//	root: child1,child2
//	child1: grand0,grand1,grand2
//
// For a trivial tree the root line is printed with an empty child list.
func (t *Tree[T]) PrintGroups(w io.Writer) error {
	parents := slices.Clone(t.parents)
	slices.Sort(parents)
	parents = slices.Compact(parents)

	var kids []int
	for _, p := range parents {
		if _, err := fmt.Fprintf(w, "%v: ", t.values[p]); err != nil {
			return err
		}
		var ok bool
		kids, ok = t.AppendChildren(kids[:0], p)
		if ok {
			if _, err := fmt.Fprintf(w, "%v", t.values[kids[0]]); err != nil {
				return err
			}
			for _, k := range kids[1:] {
				if _, err := fmt.Fprintf(w, ",%v", t.values[k]); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
