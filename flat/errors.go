package flat

import "errors"

// Construction errors returned by FromSlices.
var (
	// ErrLengthMismatch reports value and parent slices of unequal length.
	ErrLengthMismatch = errors.New("flat: value and parent slices differ in length")

	// ErrEmpty reports construction input with no root node at all.
	ErrEmpty = errors.New("flat: a tree needs at least a root node")

	// ErrBadRoot reports a root whose parent index is not 0.
	ErrBadRoot = errors.New("flat: root node must have parent index 0")
)
