package rules_test

import (
	"testing"

	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/rules"
	"github.com/arborel/presolve-lp/warn"
	"github.com/stretchr/testify/require"
)

func TestEliminateImpliedBounds_VacuousTrustedAndInfeasible(t *testing.T) {
	t.Parallel()
	const infinity = 1e30
	const tol = 1e-6

	s := buildState(t,
		[][]float64{
			{0, 0}, // vacuous: b >= infinity
			{1, 0}, // INF[i] > b[i]+tol, trusted redundant
			{0, 1}, // SUP[i] < b[i]+tol, infeasible
		},
		[]float64{2e30, 5, 5},
		[]float64{0, 0, 0},
		[]float64{10, 0}, // lb
		[]float64{infinity, 0}, // ub: column 1 pinned at 0
		[]lpstate.Sense{lpstate.LE, lpstate.LE, lpstate.LE},
		[]string{"x0", "x1"},
	)

	entry, warnings := rules.EliminateImpliedBounds(s, infinity, tol, true)
	require.NotNil(t, entry)
	require.Equal(t, []int{0, 1}, entry.DeletedRowsIndices)
	require.Len(t, warnings, 1)
	require.Equal(t, warn.Infeasibility, warnings[0].Kind)
	require.Equal(t, 1, s.Rows())
}

func TestEliminateImpliedBounds_UntrustedRedundancyWarnsInsteadOfDeleting(t *testing.T) {
	t.Parallel()
	const infinity = 1e30
	const tol = 1e-6

	s := buildState(t,
		[][]float64{{1, 0}},
		[]float64{5},
		[]float64{0, 0},
		[]float64{10, 0},
		[]float64{infinity, infinity},
		[]lpstate.Sense{lpstate.LE},
		[]string{"x0", "x1"},
	)

	entry, warnings := rules.EliminateImpliedBounds(s, infinity, tol, false)
	require.Nil(t, entry)
	require.Len(t, warnings, 1)
	require.Equal(t, warn.Infeasibility, warnings[0].Kind)
	require.Equal(t, 1, s.Rows())
}
