package graph

import "errors"

var (
	// ErrNilConflict is returned when a graph is constructed without a
	// conflict predicate.
	ErrNilConflict = errors.New("graph: nil conflict predicate")

	// ErrVertexNotFound is returned when a lookup references a vertex that
	// is not part of the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrIndexOutOfRange is returned when an index lookup falls outside
	// [0, Size).
	ErrIndexOutOfRange = errors.New("graph: index out of range")
)
