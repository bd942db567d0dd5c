package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newBuffers(n int) ([][]bool, []int) {
	buf := make([][]bool, n)
	for i := range buf {
		buf[i] = make([]bool, n)
	}
	return buf, make([]int, n)
}

func TestFillAdjacency_DiagonalAlwaysFalse(t *testing.T) {
	values := []int{1, 2, 3}
	buf, _ := newBuffers(len(values))

	FillAdjacency(values, func(a, b int) bool { return true }, buf)

	for i := range values {
		for j := range values {
			require.Equal(t, i != j, buf[i][j])
		}
	}
}

func TestFillAdjacencyWithCounts(t *testing.T) {
	values := []int{1, 2, 3, 4}
	conflict := adjacent([2]int{1, 2}, [2]int{1, 3})
	buf, counts := newBuffers(len(values))

	FillAdjacencyWithCounts(values, conflict, buf, counts)

	require.Equal(t, []int{2, 1, 1, 0}, counts)
	require.True(t, buf[0][1])
	require.True(t, buf[1][0])
	require.True(t, buf[0][2])
	require.False(t, buf[0][3])
	require.False(t, buf[1][2])
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{name: "shared element", a: []string{"x", "y"}, b: []string{"z", "y"}, want: true},
		{name: "disjoint", a: []string{"x"}, b: []string{"z"}, want: false},
		{name: "empty left", a: nil, b: []string{"x"}, want: false},
		{name: "empty right", a: []string{"x"}, b: nil, want: false},
		{name: "both empty", a: nil, b: nil, want: false},
		{name: "larger right", a: []string{"q"}, b: []string{"a", "b", "c", "q"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Intersects(tt.a, tt.b))
		})
	}
}

func TestNewIntersection(t *testing.T) {
	type item struct {
		name  string
		slots string
	}
	a := item{name: "a", slots: "xy"}
	b := item{name: "b", slots: "yz"}
	c := item{name: "c", slots: "q"}

	g, err := NewIntersection([]item{a, b, c}, func(it item) []byte { return []byte(it.slots) })
	require.NoError(t, err)

	ab, err := g.IsNeighbor(a, b)
	require.NoError(t, err)
	require.True(t, ab)

	ac, err := g.IsNeighbor(a, c)
	require.NoError(t, err)
	require.False(t, ac)

	require.Equal(t, 2, g.ComponentCount())
}

func TestNewIntersection_NilItems(t *testing.T) {
	_, err := NewIntersection[int, int]([]int{1}, nil)
	require.ErrorIs(t, err, ErrNilConflict)
}
