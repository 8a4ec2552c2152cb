package flat

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Mode selects how Traverse applies the visit function.
type Mode int

const (
	// Sequential applies the visit function one node at a time, in the
	// discovery order described at AppendDescendants.
	Sequential Mode = iota

	// Parallel applies the visit function from multiple goroutines in
	// unspecified order and interleaving. The call still blocks until
	// every application has finished (fork-join).
	Parallel
)

// String returns the mode name, mostly for test output.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Traverse applies visit to the value of every descendant of start,
// excluding start itself. If start has no descendants or is out of range,
// Traverse is a no-op.
//
// Under Sequential, applications happen one at a time in discovery order.
// Under Parallel, the descendant set is partitioned across goroutines once
// it reaches the parallel threshold (below it, Parallel degrades to the
// sequential path; the choice is deterministic for a given size). Each
// value is visited exactly once and never by two goroutines at the same
// time, but visit must not touch shared mutable state beyond the *T it is
// handed.
//
// The tree must not be mutated while Traverse runs.
func (t *Tree[T]) Traverse(start int, mode Mode, visit func(*T)) {
	idx, ok := t.AppendDescendants(nil, start)
	if !ok {
		return
	}

	if mode != Parallel || len(idx) < t.parThreshold {
		for _, i := range idx {
			visit(&t.values[i])
		}
		return
	}

	g := new(errgroup.Group)
	for lo, hi := range chunks(0, len(idx), runtime.GOMAXPROCS(0)) {
		g.Go(func() error {
			for _, i := range idx[lo:hi] {
				visit(&t.values[i])
			}
			return nil
		})
	}
	_ = g.Wait() // join; workers never return an error
}
