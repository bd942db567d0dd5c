package mwis

import (
	"errors"

	"github.com/hupe1980/gearsetup/graph"
)

// ErrInvalidArgument is returned when Find is called without a conflict
// predicate or weight function.
var ErrInvalidArgument = errors.New("mwis: invalid argument")

// Find returns the maximum-weight independent set of the given vertices.
//
// conflict decides whether two vertices exclude each other and is assumed
// symmetric and irreflexive. weight may return negative values; vertices that
// only lower the total are left out.
//
// Fewer than two vertices are returned unchanged: a set of size 0 or 1 is
// trivially independent and optimal. Otherwise the conflict graph is
// decomposed into connected components and each component is solved
// independently: a singleton is always included, a pair keeps the first
// vertex compared when weights tie, and larger components go through the
// exact recursive search. The per-component optima are unioned into the
// result.
//
// Ties between equally weighted selections resolve deterministically for a
// fixed vertex order, favoring the first-discovered maximum.
func Find[T comparable](vertices []T, conflict func(a, b T) bool, weight func(T) float64) ([]T, error) {
	if conflict == nil || weight == nil {
		return nil, ErrInvalidArgument
	}
	if len(vertices) < 2 {
		out := make([]T, len(vertices))
		copy(out, vertices)
		return out, nil
	}

	g, err := graph.New(vertices, conflict)
	if err != nil {
		return nil, err
	}

	var result []T
	for component := range g.Components() {
		switch len(component) {
		case 1:
			// Isolated vertex, always independent.
			result = append(result, component[0])
		case 2:
			first, second := component[0], component[1]
			if weight(first) >= weight(second) {
				result = append(result, first)
			} else {
				result = append(result, second)
			}
		default:
			result = append(result, findExact(component, conflict, weight)...)
		}
	}
	return result, nil
}

// TotalWeight sums weight over the given vertices. Handy for comparing
// selections in callers and tests.
func TotalWeight[T any](vertices []T, weight func(T) float64) float64 {
	total := 0.0
	for _, v := range vertices {
		total += weight(v)
	}
	return total
}
