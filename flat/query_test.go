package flat_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/flat"
	"github.com/joshuapare/treekit/internal/testutil"
)

func TestChildCount(t *testing.T) {
	tr := sampleTree(t)

	require.Equal(t, 2, tr.ChildCount(0))
	require.Equal(t, 3, tr.ChildCount(1))
	require.Equal(t, 2, tr.ChildCount(2))
	require.Equal(t, 0, tr.ChildCount(3))
	require.Equal(t, 0, tr.ChildCount(99), "unknown index simply counts zero")
}

func TestIsLeaf(t *testing.T) {
	tr := sampleTree(t)

	require.False(t, tr.IsLeaf(0))
	require.False(t, tr.IsLeaf(1))
	require.True(t, tr.IsLeaf(3))
	require.True(t, tr.IsLeaf(7))
}

func TestParent(t *testing.T) {
	tr := sampleTree(t)

	require.Equal(t, 0, tr.Parent(0), "root reports itself")
	require.Equal(t, 0, tr.Parent(1))
	require.Equal(t, 1, tr.Parent(5))
	require.Equal(t, 2, tr.Parent(7))
}

func TestHasChildren(t *testing.T) {
	tr := sampleTree(t)

	require.True(t, tr.HasChildren(0))
	require.True(t, tr.HasChildren(1))
	require.True(t, tr.HasChildren(2))
	require.False(t, tr.HasChildren(3), "leaves are referenced by nobody")
	require.False(t, tr.HasChildren(42))
}

func TestAppendChildren(t *testing.T) {
	tr := sampleTree(t)

	kids, ok := tr.AppendChildren(nil, 1)
	require.True(t, ok)
	require.Equal(t, []int{3, 4, 5}, kids)

	// Root children are queryable like any other node's.
	kids, ok = tr.AppendChildren(nil, 0)
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, kids)

	// Appends to the tail of dst without touching what is already there.
	kids, ok = tr.AppendChildren([]int{-1}, 2)
	require.True(t, ok)
	require.Equal(t, []int{-1, 6, 7}, kids)

	// No children: dst comes back unchanged.
	kids, ok = tr.AppendChildren([]int{-1}, 3)
	require.False(t, ok)
	require.Equal(t, []int{-1}, kids)

	_, ok = tr.AppendChildren(nil, 99)
	require.False(t, ok)
	_, ok = tr.AppendChildren(nil, -1)
	require.False(t, ok)
}

func TestAppendDescendants(t *testing.T) {
	tr := sampleTree(t)

	// From the root: every non-root index in storage order.
	all, ok := tr.AppendDescendants(nil, 0)
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, all)

	// From an inner node: its immediate children, then the children of
	// each listed node in turn.
	sub, ok := tr.AppendDescendants(nil, 1)
	require.True(t, ok)
	require.Equal(t, []int{3, 4, 5}, sub)

	_, ok = tr.AppendDescendants(nil, 7)
	require.False(t, ok)
}

func TestAppendDescendants_DiscoveryOrder(t *testing.T) {
	// root -> a -> b -> c chain plus a second child d of a: descendants of
	// a are discovered children-first, each node expanded as it is reached.
	tr := flat.New("root")
	require.True(t, tr.Insert(0, "a"))  // 1
	require.True(t, tr.Insert(1, "b"))  // 2
	require.True(t, tr.Insert(2, "c"))  // 3
	require.True(t, tr.Insert(1, "d"))  // 4

	got, ok := tr.AppendDescendants(nil, 1)
	require.True(t, ok)
	require.Equal(t, []int{2, 4, 3}, got, "children of a first, then b expands to c")
}

func TestQueries_SequentialParallelAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	for _, size := range []int{64, 5000} { // below and above the default threshold
		tr := testutil.RandomTree(t, rng, size)

		probes := []int{0, 1, size / 2, size - 1, size + 10}
		type answer struct {
			count int
			has   bool
		}
		seq := make([]answer, len(probes))

		tr.SetParallelThreshold(1 << 30) // force the sequential path
		for i, p := range probes {
			seq[i] = answer{tr.ChildCount(p), tr.HasChildren(p)}
		}

		tr.SetParallelThreshold(2) // force the parallel path
		for i, p := range probes {
			require.Equal(t, seq[i].count, tr.ChildCount(p),
				"size %d: parallel ChildCount(%d) disagrees", size, p)
			require.Equal(t, seq[i].has, tr.HasChildren(p),
				"size %d: parallel HasChildren(%d) disagrees", size, p)
		}
	}
}

func BenchmarkChildCount(b *testing.B) {
	tr := flat.New(0)
	for i := 1; i < 200_000; i++ {
		tr.Insert(i/4, i)
	}

	b.Run("sequential", func(b *testing.B) {
		tr.SetParallelThreshold(1 << 30)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tr.ChildCount(1)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		tr.SetParallelThreshold(1)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tr.ChildCount(1)
		}
	})
}
