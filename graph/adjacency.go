package graph

// FillAdjacency fills buf with the adjacency matrix of values under the
// conflict predicate. Cell (i, j) is set to true iff i != j and
// conflict(values[i], values[j]) holds, so the diagonal is always false.
//
// buf must hold at least len(values) rows of at least len(values) cells each;
// undersized buffers panic with an index error. The predicate is evaluated
// O(n²) times and its result is stored as-is (no symmetrization).
func FillAdjacency[T any](values []T, conflict func(a, b T) bool, buf [][]bool) {
	n := len(values)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			buf[i][j] = i != j && conflict(values[i], values[j])
		}
	}
}

// FillAdjacencyWithCounts behaves like FillAdjacency while also accumulating
// counts[i] = number of true cells in row i (the neighbor count of vertex i).
//
// counts must hold at least len(values) entries.
func FillAdjacencyWithCounts[T any](values []T, conflict func(a, b T) bool, buf [][]bool, counts []int) {
	n := len(values)
	for i := 0; i < n; i++ {
		count := 0
		for j := 0; j < n; j++ {
			adjacent := i != j && conflict(values[i], values[j])
			buf[i][j] = adjacent
			if adjacent {
				count++
			}
		}
		counts[i] = count
	}
}
