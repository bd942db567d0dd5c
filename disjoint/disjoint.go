// Package disjoint selects a family of sets with a single-row heuristic.
//
// Unlike package mwis this strategy is not exact: it scores every candidate
// by its own weight plus the weights of all candidates disjoint from it, then
// returns the best-scoring candidate together with its disjoint partners.
// Partners are guaranteed disjoint from the winner but not from each other,
// so the answer coincides with the optimal pairwise-disjoint family only when
// that family is fully captured by the best row's neighborhood; conflict
// structures with three or more mutually interacting sets break it. It runs
// in O(n²) instead of exponential time, which is the trade the caller opts
// into by choosing this package; nothing here ever falls back to the exact
// solver or vice versa.
package disjoint

import (
	"errors"
	"math"

	"github.com/hupe1980/gearsetup/graph"
)

// ErrInvalidArgument is returned when Find is called without an items
// extractor or weight function.
var ErrInvalidArgument = errors.New("disjoint: invalid argument")

// Find returns the subset of candidates chosen by the single-row heuristic.
//
// items maps a candidate to the elements it occupies; two candidates conflict
// when their element sets intersect. Candidate sets of size 0 or 1 are
// returned unchanged. Otherwise every candidate is treated as a matrix row:
// the row score is the candidate's own weight plus the weight of every other
// candidate disjoint from it, and the first strictly-best row wins. The
// result is the winning candidate followed by its disjoint partners in input
// order.
func Find[S any, E comparable](candidates []S, items func(S) []E, weight func(S) float64) ([]S, error) {
	if items == nil || weight == nil {
		return nil, ErrInvalidArgument
	}
	n := len(candidates)
	if n < 2 {
		out := make([]S, n)
		copy(out, candidates)
		return out, nil
	}

	elements := make([][]E, n)
	for i, c := range candidates {
		elements[i] = items(c)
	}

	bestRow := -1
	bestWeight := -math.MaxFloat64
	intersections := make([][]bool, n)
	for row := 0; row < n; row++ {
		intersections[row] = make([]bool, n)
		// The row owner is always part of its own family.
		score := weight(candidates[row])
		for col := 0; col < n; col++ {
			// The diagonal counts as intersecting so the owner is not
			// double-counted (a non-empty set intersects itself).
			intersects := row == col || graph.Intersects(elements[row], elements[col])
			intersections[row][col] = intersects
			if !intersects {
				score += weight(candidates[col])
			}
		}
		if score > bestWeight {
			bestRow = row
			bestWeight = score
		}
	}

	result := []S{candidates[bestRow]}
	for col := 0; col < n; col++ {
		if !intersections[bestRow][col] {
			result = append(result, candidates[col])
		}
	}
	return result, nil
}
