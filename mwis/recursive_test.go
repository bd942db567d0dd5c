package mwis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindExact_AllNegativeYieldsEmpty(t *testing.T) {
	w := func(v int) float64 { return -float64(v) }
	selected, err := FindExact([]int{1, 2, 3}, func(a, b int) bool { return false }, w)
	require.NoError(t, err)
	require.Empty(t, selected)
}

func TestFindExact_TriangleKeepsHeaviest(t *testing.T) {
	weights := map[string]float64{"a": 1, "b": 3, "c": 2}
	w := func(v string) float64 { return weights[v] }
	clique := func(a, b string) bool { return true }

	selected, err := FindExact([]string{"a", "b", "c"}, clique, w)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, selected)
}

func TestFindExact_TieKeepsFirstDiscovered(t *testing.T) {
	// Path a-b-c with equal weights: {a,c} (weight 2) beats any single vertex,
	// and the include-first traversal discovers it before {b}.
	w := func(v string) float64 { return 1 }
	conflict := func(a, b string) bool {
		return (a == "a" && b == "b") || (a == "b" && b == "a") ||
			(a == "b" && b == "c") || (a == "c" && b == "b")
	}

	selected, err := FindExact([]string{"a", "b", "c"}, conflict, w)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, selected)
}

func TestFindExact_ChecksConflictsAgainstSelectionOnly(t *testing.T) {
	// b conflicts with a; c conflicts with b only. Excluding a must not stop
	// {b} from pairing with anything later: the optimum {a, c} requires the
	// branch where b is excluded because of a, yet c is still considered.
	weights := map[string]float64{"a": 5, "b": 4, "c": 3}
	w := func(v string) float64 { return weights[v] }
	conflict := func(x, y string) bool {
		p := x + y
		return p == "ab" || p == "ba" || p == "bc" || p == "cb"
	}

	selected, err := FindExact([]string{"a", "b", "c"}, conflict, w)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "c"}, selected)
	require.Equal(t, 8.0, TotalWeight(selected, w))
}

func TestFindExact_SmallInputsPassthrough(t *testing.T) {
	w := func(v int) float64 { return 1 }
	c := func(a, b int) bool { return true }

	none, err := FindExact([]int{}, c, w)
	require.NoError(t, err)
	require.Empty(t, none)

	one, err := FindExact([]int{9}, c, w)
	require.NoError(t, err)
	require.Equal(t, []int{9}, one)
}

func TestFindExact_InvalidArgument(t *testing.T) {
	_, err := FindExact([]int{1, 2}, nil, func(int) float64 { return 0 })
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FindExact([]int{1, 2}, func(a, b int) bool { return false }, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
