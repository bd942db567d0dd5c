package graph

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Components returns a lazy sequence of the graph's connected components.
//
// Each component is discovered by a depth-first search started from the
// lowest-indexed vertex not yet visited, so the sequence order is
// deterministic for a given graph. Every vertex appears in exactly one
// component, and component members are emitted in DFS discovery order.
//
// The sequence is finite and single-pass: ranging over it again restarts the
// traversal from scratch.
func (g *Graph[T]) Components() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(g.vertices)
		visited := roaring.New()
		stack := make([]int, 0, n)
		for start := 0; start < n; start++ {
			if visited.Contains(uint32(start)) {
				continue
			}
			var component []T
			stack = append(stack[:0], start)
			for len(stack) > 0 {
				current := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if visited.Contains(uint32(current)) {
					continue
				}
				visited.Add(uint32(current))
				component = append(component, g.vertices[current])
				for j, adjacent := range g.adjacency[current] {
					if adjacent && !visited.Contains(uint32(j)) {
						stack = append(stack, j)
					}
				}
			}
			if !yield(component) {
				return
			}
		}
	}
}

// ComponentCount counts the connected components of the graph.
func (g *Graph[T]) ComponentCount() int {
	count := 0
	for range g.Components() {
		count++
	}
	return count
}
