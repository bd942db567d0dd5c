package graph

// Intersects reports whether a and b share at least one element.
//
// The smaller slice is loaded into a set, so the check runs in
// O(len(a)+len(b)) regardless of element order.
func Intersects[E comparable](a, b []E) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	seen := make(map[E]struct{}, len(a))
	for _, e := range a {
		seen[e] = struct{}{}
	}
	for _, e := range b {
		if _, ok := seen[e]; ok {
			return true
		}
	}
	return false
}

// NewIntersection builds an intersection graph: two vertices conflict iff
// the collections derived from them by items share at least one element.
//
// This is the conflict shape used for slot-occupancy graphs, where items
// yields the slots a candidate occupies. items must not be nil.
func NewIntersection[T, E comparable](vertices []T, items func(T) []E) (*Graph[T], error) {
	if items == nil {
		return nil, ErrNilConflict
	}
	return New(vertices, func(a, b T) bool {
		return Intersects(items(a), items(b))
	})
}
