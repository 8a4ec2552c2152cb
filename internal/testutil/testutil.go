// Package testutil provides shared helpers for exercising flat trees in
// tests: randomized tree construction and structural invariant assertions.
package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/flat"
)

// CheckInvariants asserts the structural invariants that must hold after
// every public operation: at least a root, a self-referential root parent,
// every parent index in range, and every parent chain terminating at the
// root without cycling.
func CheckInvariants[T any](t *testing.T, tr *flat.Tree[T]) {
	t.Helper()

	n := tr.Len()
	require.GreaterOrEqual(t, n, 1, "tree lost its root")
	require.Equal(t, 0, tr.Parent(0), "root parent must be 0")

	for i := 1; i < n; i++ {
		p := tr.Parent(i)
		require.GreaterOrEqual(t, p, 0, "node %d has negative parent", i)
		require.Less(t, p, n, "node %d points past the tree", i)

		steps := 0
		for j := i; j != 0; j = tr.Parent(j) {
			steps++
			require.LessOrEqual(t, steps, n, "parent chain from node %d does not reach the root", i)
		}
	}

	// Iteration and Len must agree.
	count := 0
	for it := tr.Values(); ; {
		if _, ok := it.Next(); !ok {
			break
		}
		count++
	}
	require.Equal(t, n, count, "iterator yield count disagrees with Len")
}

// RandomTree builds a tree of n int-valued nodes (value == insertion
// order) with uniformly random parents. Every parent is an earlier index,
// so the result is a valid tree by construction.
func RandomTree(t *testing.T, rng *rand.Rand, n int) *flat.Tree[int] {
	t.Helper()
	require.GreaterOrEqual(t, n, 1)

	tr := flat.New(0)
	tr.Grow(n - 1)
	for i := 1; i < n; i++ {
		parent := rng.IntN(tr.Len())
		require.True(t, tr.Insert(parent, i), "insert under parent %d failed", parent)
	}
	require.Equal(t, n, tr.Len())
	return tr
}
