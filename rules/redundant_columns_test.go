package rules_test

import (
	"testing"

	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/rules"
	"github.com/stretchr/testify/require"
)

// spec.md §4.10: an equality row with b=0 and uniform-sign coefficients
// forces every participating (nonnegative) variable to zero.
func TestEliminateRedundantColumns_DropsRowMateAndColumns(t *testing.T) {
	t.Parallel()
	s := buildState(t,
		[][]float64{{1, 1, 0}, {-1, -1, 0}, {0, 0, 1}},
		[]float64{0, 0, 4},
		[]float64{1, 1, 1},
		zeros(3), unboundedUB(3),
		[]lpstate.Sense{lpstate.LE, lpstate.LE, lpstate.LE},
		[]string{"x0", "x1", "x2"},
	)

	entry, warnings := rules.EliminateRedundantColumns(s)
	require.Empty(t, warnings)
	require.NotNil(t, entry)
	require.Equal(t, []int{0, 1}, entry.DeletedRowsIndices)
	require.Equal(t, []int{0, 1}, entry.DeletedVariablesIndices)

	require.Equal(t, 1, s.Rows())
	require.Equal(t, 1, s.Cols())
	require.Equal(t, []string{"x2"}, s.VarNames)
}

func TestEliminateRedundantColumns_NoOpWithMixedSigns(t *testing.T) {
	t.Parallel()
	s := buildState(t,
		[][]float64{{1, -1}, {-1, 1}},
		[]float64{0, 0},
		[]float64{1, 1},
		zeros(2), unboundedUB(2),
		[]lpstate.Sense{lpstate.LE, lpstate.LE},
		[]string{"x0", "x1"},
	)

	entry, warnings := rules.EliminateRedundantColumns(s)
	require.Nil(t, entry)
	require.Empty(t, warnings)
	require.Equal(t, 2, s.Rows())
}
