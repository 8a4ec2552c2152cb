// Package flat implements a generic flat tree: a tree whose nodes live in
// one contiguous, densely packed slice instead of individually allocated,
// pointer-linked nodes.
//
// # Overview
//
// A Tree holds two parallel slices of equal length: the node values and,
// for each node, the index of its parent within the same slice. There are
// no per-node child lists and no sibling pointers; every structural query
// is index arithmetic over the parent slice. The layout trades pointer
// chasing for linear scans, which makes bulk iteration cache friendly and
// lets large scans be split across goroutines.
//
// Index 0 is always the root. The root's own parent index is 0 by
// convention; that self-reference is a placeholder, never an edge. A tree
// always has at least the root node.
//
// An example tree and its storage:
//
//	        root(0)
//	       /       \
//	  child1(1)   child2(2)
//	   /  |  \      /  \
//	  3   4   5    6    7
//
//	values:  [root child1 child2 g0 g1 g2 g3 g4]
//	parents: [0    0      0      1  1  1  2  2]
//
// # Key Types
//
//   - Tree: the flat tree itself, generic over the node value type
//   - Iter: a forward or backward iterator over node values in storage order
//   - Mode: execution mode for Traverse (Sequential or Parallel)
//
// # Node Indices Are Ephemeral
//
// Remove compacts the slices with swap-with-last-and-pop, so a successful
// Remove may reassign the index of whatever node was stored last. Treat
// indices as handles that are valid only until the next mutation; never
// hold an index across a Remove.
//
// # Parallel Scans
//
// HasChildren, ChildCount and Traverse in Parallel mode split their scan
// across goroutines once the tree reaches a size threshold (2000 nodes by
// default, see SetParallelThreshold). Parallel execution is fork-join: the
// calling goroutine blocks until all workers are done, and no goroutine
// outlives the call. Parallel scans make no ordering promise, only that
// every qualifying index is visited exactly once.
//
// # Thread Safety
//
// A Tree provides no internal locking. Multiple goroutines may read from
// the same Tree concurrently, but mutation (Insert, Remove, Clear, Resize,
// SetValue) must not overlap with any other operation, including iteration
// and traversal. Synchronize externally or keep a single writer.
package flat
