package flat

// Iter walks node values in storage order: root first, then nodes in their
// historical insertion / removal-compaction order. This is storage order,
// not any tree order such as pre-order.
//
// An Iter is lazy and finite. To restart, construct a new one. The tree
// must not be mutated while an Iter is in use.
type Iter[T any] struct {
	tree *Tree[T]
	pos  int
	step int
}

// Values returns a forward iterator over all node values.
func (t *Tree[T]) Values() *Iter[T] {
	return &Iter[T]{tree: t, pos: 0, step: 1}
}

// Backward returns a reverse iterator over all node values, starting at
// the last storage slot and ending at the root.
func (t *Tree[T]) Backward() *Iter[T] {
	return &Iter[T]{tree: t, pos: t.Len() - 1, step: -1}
}

// Next returns the next value. The second result is false once the
// iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.pos < 0 || it.pos >= it.tree.Len() {
		var zero T
		return zero, false
	}
	v := it.tree.values[it.pos]
	it.pos += it.step
	return v, true
}
