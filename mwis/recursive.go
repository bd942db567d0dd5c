package mwis

// FindExact runs the exact search over one set of vertices without component
// decomposition. It exists for callers that have already decomposed their
// problem (Find uses it per component); prefer Find otherwise.
//
// The search walks the binary inclusion/exclusion tree over vertices in slice
// order. The include branch is only taken when the candidate conflicts with
// none of the currently selected vertices; the exclude branch is always
// explored. At each leaf the selection weight is kept when strictly greater
// than the best seen, so the first-discovered maximum wins ties and an
// all-negative input yields an empty selection rather than a harmful one.
// Worst case O(2^n).
func FindExact[T comparable](vertices []T, conflict func(a, b T) bool, weight func(T) float64) ([]T, error) {
	if conflict == nil || weight == nil {
		return nil, ErrInvalidArgument
	}
	if len(vertices) < 2 {
		out := make([]T, len(vertices))
		copy(out, vertices)
		return out, nil
	}
	return findExact(vertices, conflict, weight), nil
}

// search owns all mutable state for one exact solve. Buffers are written by
// exactly one goroutine with push/pop discipline, so no synchronization is
// needed.
type search[T comparable] struct {
	vertices []T
	conflict func(a, b T) bool
	weight   func(T) float64

	selected   []int
	best       []int
	bestLen    int
	bestWeight float64
}

func findExact[T comparable](vertices []T, conflict func(a, b T) bool, weight func(T) float64) []T {
	n := len(vertices)
	s := &search[T]{
		vertices: vertices,
		conflict: conflict,
		weight:   weight,
		selected: make([]int, n),
		best:     make([]int, n),
	}
	s.walk(0, 0)

	out := make([]T, s.bestLen)
	for i := 0; i < s.bestLen; i++ {
		out[i] = vertices[s.best[i]]
	}
	return out
}

// walk explores the inclusion/exclusion subtree rooted at depth, with the
// first selectedCount entries of s.selected holding the current selection.
func (s *search[T]) walk(selectedCount, depth int) {
	if depth < len(s.vertices) {
		current := s.vertices[depth]
		independent := true
		// Conflicts are checked only against selected vertices; excluded
		// vertices never constrain the branch.
		for i := 0; i < selectedCount; i++ {
			if s.conflict(current, s.vertices[s.selected[i]]) {
				independent = false
				break
			}
		}
		if independent {
			s.selected[selectedCount] = depth
			s.walk(selectedCount+1, depth+1)
		}
		s.walk(selectedCount, depth+1)
		return
	}

	total := 0.0
	for i := 0; i < selectedCount; i++ {
		total += s.weight(s.vertices[s.selected[i]])
	}
	if total > s.bestWeight {
		copy(s.best[:selectedCount], s.selected[:selectedCount])
		s.bestWeight = total
		s.bestLen = selectedCount
	}
}
