package flat

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// HasChildren reports whether any node names i as its parent, i.e. whether
// node i has at least one child. The root's conventional self-reference at
// index 0 is never counted as a child edge.
//
// Above the parallel threshold the scan is split across goroutines; the
// result is a pure OR-reduction, so ordering does not matter.
func (t *Tree[T]) HasChildren(i int) bool {
	if len(t.parents) < t.parThreshold {
		return t.hasChildrenSeq(i)
	}
	return t.hasChildrenPar(i)
}

func (t *Tree[T]) hasChildrenSeq(i int) bool {
	for k := 1; k < len(t.parents); k++ {
		if t.parents[k] == i {
			return true
		}
	}
	return false
}

func (t *Tree[T]) hasChildrenPar(i int) bool {
	var found atomic.Bool
	g := new(errgroup.Group)
	for lo, hi := range chunks(1, len(t.parents), runtime.GOMAXPROCS(0)) {
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				if t.parents[k] == i {
					found.Store(true)
					return nil
				}
				if k%1024 == 0 && found.Load() {
					return nil // another chunk already found a child
				}
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is the join point
	return found.Load()
}

// ChildCount returns the number of immediate children of the given node.
// Same sequential/parallel split as HasChildren; the parallel path is a
// count-reduction and always yields the same result as the sequential one.
func (t *Tree[T]) ChildCount(parent int) int {
	if len(t.parents) < t.parThreshold {
		return t.childCountSeq(parent)
	}
	return t.childCountPar(parent)
}

func (t *Tree[T]) childCountSeq(parent int) int {
	n := 0
	for k := 1; k < len(t.parents); k++ {
		if t.parents[k] == parent {
			n++
		}
	}
	return n
}

func (t *Tree[T]) childCountPar(parent int) int {
	var total atomic.Int64
	g := new(errgroup.Group)
	for lo, hi := range chunks(1, len(t.parents), runtime.GOMAXPROCS(0)) {
		g.Go(func() error {
			n := int64(0)
			for k := lo; k < hi; k++ {
				if t.parents[k] == parent {
					n++
				}
			}
			total.Add(n)
			return nil
		})
	}
	_ = g.Wait()
	return int(total.Load())
}

// IsLeaf reports whether node i has no children. Panics if i is out of
// range.
func (t *Tree[T]) IsLeaf(i int) bool {
	t.checkIndex(i)
	return t.ChildCount(i) == 0
}

// Parent returns the parent index of node i. The root reports itself.
// Panics if i is out of range.
func (t *Tree[T]) Parent(i int) int {
	t.checkIndex(i)
	if i == 0 {
		return 0
	}
	return t.parents[i]
}

// AppendChildren appends the indices of the immediate children of parent to
// dst, in ascending storage order, and reports whether any were found. On
// failure (parent out of range, invalid tree, or no children) dst is
// returned unchanged.
//
// Storage order is not insertion order once nodes have been removed:
// removal compaction relocates nodes.
func (t *Tree[T]) AppendChildren(dst []int, parent int) ([]int, bool) {
	if !t.valid() || parent < 0 || parent >= len(t.parents) {
		return dst, false
	}
	found := false
	for k := 1; k < len(t.parents); k++ {
		if t.parents[k] == parent {
			dst = append(dst, k)
			found = true
		}
	}
	return dst, found
}

// AppendDescendants appends the indices of every descendant of parent to
// dst and reports whether any were found.
//
// For the root the result is simply every non-root index in storage order.
// For any other node the output is in first-discovered order: the node's
// children first, then the children of each listed index as it is reached,
// appending to the same list. Nodes of equal depth are not grouped, so the
// order is breadth-leaning but not level order.
func (t *Tree[T]) AppendDescendants(dst []int, parent int) ([]int, bool) {
	if !t.valid() || parent < 0 || parent >= len(t.parents) {
		return dst, false
	}
	if parent == 0 {
		for k := 1; k < len(t.parents); k++ {
			dst = append(dst, k)
		}
		return dst, len(t.parents) > 1
	}

	start := len(dst)
	dst, ok := t.AppendChildren(dst, parent)
	if !ok {
		return dst, false
	}
	// dst grows while we walk it; each discovered node contributes its own
	// children to the tail of the same list.
	for i := start; i < len(dst); i++ {
		dst, _ = t.AppendChildren(dst, dst[i])
	}
	return dst, true
}

// chunks yields [lo, hi) ranges that partition [start, end) into at most n
// pieces of near-equal size. Used to split scans across goroutines.
func chunks(start, end, n int) func(yield func(int, int) bool) {
	return func(yield func(int, int) bool) {
		total := end - start
		if total <= 0 || n < 1 {
			return
		}
		size := (total + n - 1) / n
		for lo := start; lo < end; lo += size {
			hi := min(lo+size, end)
			if !yield(lo, hi) {
				return
			}
		}
	}
}
