package flat

import (
	"fmt"
	"slices"
)

// DefaultParallelThreshold is the node count at which scans switch from a
// single goroutine to a fork-join split. See SetParallelThreshold.
const DefaultParallelThreshold = 2000

// Tree is a flat tree of T values. The zero value is not usable; construct
// with New or FromSlices.
type Tree[T any] struct {
	values  []T   // node payloads, root at index 0
	parents []int // parents[i] is the parent index of node i; parents[0] == 0

	// parThreshold is the node count at which scans go parallel.
	parThreshold int
}

// New creates a tree holding only the given root value.
func New[T any](root T) *Tree[T] {
	return &Tree[T]{
		values:       []T{root},
		parents:      []int{0},
		parThreshold: DefaultParallelThreshold,
	}
}

// FromSlices creates a tree from pre-built value and parent slices. The
// slices are adopted, not copied; the caller must not use them afterwards.
//
// Both slices must have the same nonzero length and parents[0] must be 0.
// FromSlices does not walk the parent edges: acyclicity and in-range parent
// indices are the caller's responsibility, exactly as they are for Resize.
func FromSlices[T any](values []T, parents []int) (*Tree[T], error) {
	if len(values) != len(parents) {
		return nil, fmt.Errorf("%w (%d values, %d parents)", ErrLengthMismatch, len(values), len(parents))
	}
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	if parents[0] != 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrBadRoot, parents[0])
	}
	return &Tree[T]{
		values:       values,
		parents:      parents,
		parThreshold: DefaultParallelThreshold,
	}, nil
}

// Len returns the number of nodes in the tree, root included.
func (t *Tree[T]) Len() int { return len(t.values) }

// IsTrivial reports whether only the root exists.
func (t *Tree[T]) IsTrivial() bool { return len(t.values) == 1 }

// Grow reserves capacity for n more nodes, so that up to n Inserts can
// proceed without reallocating either backing slice.
func (t *Tree[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	t.values = slices.Grow(t.values, n)
	t.parents = slices.Grow(t.parents, n)
}

// Clip removes unused capacity from both backing slices.
func (t *Tree[T]) Clip() {
	t.values = slices.Clip(t.values)
	t.parents = slices.Clip(t.parents)
}

// Clear resets the tree to a single node, keeping the current root value.
func (t *Tree[T]) Clear() {
	var zero T
	for i := 1; i < len(t.values); i++ {
		t.values[i] = zero // release references held by removed payloads
	}
	t.values = t.values[:1]
	t.parents = t.parents[:1]
	t.parents[0] = 0
}

// Resize extends or truncates the tree to exactly n nodes. New slots get
// the zero value and parent index 0. Resize is a low-level escape hatch:
// after extending, the caller owns restoring a meaningful parent structure.
// A tree always keeps its root, so n below 1 is clamped to 1.
func (t *Tree[T]) Resize(n int) {
	if n < 1 {
		n = 1
	}
	switch {
	case n < len(t.values):
		var zero T
		for i := n; i < len(t.values); i++ {
			t.values[i] = zero
		}
		t.values = t.values[:n]
		t.parents = t.parents[:n]
	case n > len(t.values):
		t.values = append(t.values, make([]T, n-len(t.values))...)
		t.parents = append(t.parents, make([]int, n-len(t.parents))...)
	}
	t.parents[0] = 0
}

// SetParallelThreshold sets the node count at which HasChildren, ChildCount
// and Parallel traversal split their work across goroutines. Values below 1
// restore DefaultParallelThreshold. The policy stays deterministic: for a
// fixed threshold and tree size, the sequential/parallel choice is fixed.
func (t *Tree[T]) SetParallelThreshold(n int) {
	if n < 1 {
		n = DefaultParallelThreshold
	}
	t.parThreshold = n
}

// Value returns the payload of node i. Panics if i is out of range: an
// invalid index is a contract violation, not a runtime condition.
func (t *Tree[T]) Value(i int) T {
	t.checkIndex(i)
	return t.values[i]
}

// SetValue overwrites the payload of node i in place. SetValue cannot
// insert; i must address an existing node. Panics if i is out of range.
func (t *Tree[T]) SetValue(i int, v T) {
	t.checkIndex(i)
	t.values[i] = v
}

// valid reports whether the structural invariants hold: parallel slices of
// equal length, at least a root, and the root self-referencing index 0.
func (t *Tree[T]) valid() bool {
	return len(t.values) == len(t.parents) &&
		len(t.parents) >= 1 &&
		t.parents[0] == 0
}

func (t *Tree[T]) checkIndex(i int) {
	if i < 0 || i >= len(t.values) {
		panic(fmt.Sprintf("flat: node index %d out of range [0,%d)", i, len(t.values)))
	}
}
