package flat

import "sort"

// Insert appends a new node with the given value under parent and reports
// success. The new node's index is Len()-1 after the call. Insert fails,
// leaving the tree untouched, when parent is out of range or the tree
// structure is invalid.
func (t *Tree[T]) Insert(parent int, value T) bool {
	if !t.valid() || parent < 0 || parent >= len(t.parents) {
		return false
	}
	t.values = append(t.values, value)
	t.parents = append(t.parents, parent)
	return true
}

// InsertMany appends every given value as a sibling under parent, in input
// order, and reports success. Same preconditions as Insert; on failure
// nothing is inserted.
func (t *Tree[T]) InsertMany(parent int, values ...T) bool {
	if !t.valid() || parent < 0 || parent >= len(t.parents) {
		return false
	}
	t.values = append(t.values, values...)
	for range values {
		t.parents = append(t.parents, parent)
	}
	return true
}

// Remove deletes node target together with its entire subtree and reports
// success. The root cannot be removed; Remove(0) always fails. A leaf is
// removable on its own.
//
// Each slot is freed with swap-with-last-and-pop, so a successful Remove
// reassigns the index of whichever node was stored last at each step. Any
// index a caller recorded before the call must be considered invalid
// afterwards.
func (t *Tree[T]) Remove(target int) bool {
	if !t.valid() || target <= 0 || target >= len(t.parents) {
		return false
	}

	doomed, _ := t.AppendDescendants(nil, target)
	doomed = append(doomed, target)

	// Remove from the highest index down. Every pending index is then
	// smaller than the slot being freed, so the swap that backfills it can
	// never relocate a node that is still waiting to be removed.
	sort.Sort(sort.Reverse(sort.IntSlice(doomed)))
	for _, i := range doomed {
		t.removeOne(i)
	}
	return true
}

// removeOne frees a single slot by moving the last node into it and
// shrinking both slices. Parent references to the relocated node are
// rewritten so that every surviving edge still reaches the root.
func (t *Tree[T]) removeOne(i int) {
	last := len(t.values) - 1
	if i != last {
		t.values[i] = t.values[last]
		t.parents[i] = t.parents[last]
		for k := 1; k < last; k++ {
			if t.parents[k] == last {
				t.parents[k] = i
			}
		}
	}
	var zero T
	t.values[last] = zero // release the vacated payload
	t.values = t.values[:last]
	t.parents = t.parents[:last]
}
