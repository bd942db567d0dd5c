package graph

import "fmt"

// Graph is an immutable conflict graph over a set of comparable vertices.
//
// Vertices are indexed densely in [0, n) following the order they were given
// to New, with duplicates collapsed onto their first occurrence. The zero
// value is not usable; construct with New or NewIntersection.
type Graph[T comparable] struct {
	vertices      []T
	indices       map[T]int
	adjacency     [][]bool
	neighborCount []int
}

// New builds a Graph from vertices and a conflict predicate.
//
// The predicate decides whether two distinct vertices share an edge; it is
// evaluated once per ordered pair during construction. Duplicate vertices are
// collapsed, keeping the first occurrence's position.
func New[T comparable](vertices []T, conflict func(a, b T) bool) (*Graph[T], error) {
	if conflict == nil {
		return nil, ErrNilConflict
	}

	unique := make([]T, 0, len(vertices))
	indices := make(map[T]int, len(vertices))
	for _, v := range vertices {
		if _, ok := indices[v]; ok {
			continue
		}
		indices[v] = len(unique)
		unique = append(unique, v)
	}

	n := len(unique)
	adjacency := make([][]bool, n)
	cells := make([]bool, n*n)
	for i := range adjacency {
		adjacency[i] = cells[i*n : (i+1)*n]
	}
	counts := make([]int, n)
	FillAdjacencyWithCounts(unique, conflict, adjacency, counts)

	return &Graph[T]{
		vertices:      unique,
		indices:       indices,
		adjacency:     adjacency,
		neighborCount: counts,
	}, nil
}

// Size returns the number of vertices in the graph.
func (g *Graph[T]) Size() int {
	return len(g.vertices)
}

// Vertices returns the graph's vertices in index order. The returned slice
// must not be modified.
func (g *Graph[T]) Vertices() []T {
	return g.vertices
}

// Contains reports whether v is a vertex of the graph.
func (g *Graph[T]) Contains(v T) bool {
	_, ok := g.indices[v]
	return ok
}

// IndexOf returns the dense index of v.
//
// The error wraps ErrVertexNotFound when v is not part of the graph.
func (g *Graph[T]) IndexOf(v T) (int, error) {
	index, ok := g.indices[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	return index, nil
}

// At returns the vertex at the given dense index.
//
// The error wraps ErrIndexOutOfRange when index is outside [0, Size).
func (g *Graph[T]) At(index int) (T, error) {
	if index < 0 || index >= len(g.vertices) {
		var zero T
		return zero, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(g.vertices))
	}
	return g.vertices[index], nil
}

// NeighborCount returns the number of vertices adjacent to v. Loops are
// suppressed, so an isolated vertex reports 0.
func (g *Graph[T]) NeighborCount(v T) (int, error) {
	index, err := g.IndexOf(v)
	if err != nil {
		return 0, err
	}
	return g.neighborCount[index], nil
}

// IsNeighbor reports whether a and b share an edge. It is always false when
// a == b, regardless of the conflict predicate.
func (g *Graph[T]) IsNeighbor(a, b T) (bool, error) {
	if a == b {
		return false, nil
	}
	ai, err := g.IndexOf(a)
	if err != nil {
		return false, err
	}
	bi, err := g.IndexOf(b)
	if err != nil {
		return false, err
	}
	return g.adjacency[ai][bi], nil
}

// Neighbors returns the vertices adjacent to v in ascending index order.
// The slice is freshly derived from the adjacency matrix on every call.
func (g *Graph[T]) Neighbors(v T) ([]T, error) {
	index, err := g.IndexOf(v)
	if err != nil {
		return nil, err
	}
	neighbors := make([]T, 0, g.neighborCount[index])
	for j, adjacent := range g.adjacency[index] {
		if adjacent {
			neighbors = append(neighbors, g.vertices[j])
		}
	}
	return neighbors, nil
}
