package detect_test

import (
	"testing"

	"github.com/arborel/presolve-lp/detect"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/sparse"
	"github.com/stretchr/testify/require"
)

func stateFromDense(t *testing.T, rowsData [][]float64, b []float64, senses []lpstate.Sense) *lpstate.State {
	t.Helper()
	a, err := sparse.NewFromDense(rowsData)
	require.NoError(t, err)
	n := a.Cols()
	c := make([]float64, n)
	lb := make([]float64, n)
	ub := make([]float64, n)
	names := make([]string, n)
	for j := range names {
		ub[j] = 1e30
		names[j] = "x"
	}
	s, err := lpstate.NewState(a, b, c, 0, lb, ub, lpstate.Minimize, senses, names)
	require.NoError(t, err)
	return s
}

func TestNegativeCounterparts_DetectsExactNegation(t *testing.T) {
	t.Parallel()
	s := stateFromDense(t,
		[][]float64{
			{2, 1, 0},
			{-2, -1, 0},
			{0, 1, 1},
		},
		[]float64{4, -4, 5},
		[]lpstate.Sense{lpstate.LE, lpstate.LE, lpstate.LE},
	)

	hasPair, mate := detect.NegativeCounterparts(s)
	require.Equal(t, []bool{true, true, false}, hasPair)
	require.Equal(t, 1, mate[0])
	require.Equal(t, 0, mate[1])
}

func TestNegativeCounterparts_NativeEqualityIsSelfPaired(t *testing.T) {
	t.Parallel()
	s := stateFromDense(t,
		[][]float64{{1, 1}},
		[]float64{3},
		[]lpstate.Sense{lpstate.EQ},
	)
	hasPair, mate := detect.NegativeCounterparts(s)
	require.True(t, hasPair[0])
	require.Equal(t, 0, mate[0])
}

func TestFirstRowWithNNZ(t *testing.T) {
	t.Parallel()
	s := stateFromDense(t,
		[][]float64{
			{1, 0},
			{1, 1},
		},
		[]float64{1, 2},
		[]lpstate.Sense{lpstate.LE, lpstate.LE},
	)
	hasPair := []bool{false, false}
	row, ok := detect.FirstRowWithNNZ(s, hasPair, 1, false)
	require.True(t, ok)
	require.Equal(t, 0, row)
}

func TestFirstColumnWithNNZ(t *testing.T) {
	t.Parallel()
	s := stateFromDense(t,
		[][]float64{
			{1, 0},
			{2, 3},
		},
		[]float64{1, 2},
		[]lpstate.Sense{lpstate.LE, lpstate.LE},
	)
	col, ok := detect.FirstColumnWithNNZ(s, 1)
	require.True(t, ok)
	require.Equal(t, 1, col)
}
