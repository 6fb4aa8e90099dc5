package rules_test

import (
	"testing"

	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/rules"
	"github.com/arborel/presolve-lp/warn"
	"github.com/stretchr/testify/require"
)

// Scenario 3: spec.md §8 — zero column, c >= 0: deleted and fixed at 0.
func TestEliminateZeroColumns_NonNegativeCost(t *testing.T) {
	t.Parallel()
	s := buildState(t,
		[][]float64{{0, 1}, {0, 1}},
		[]float64{1, 1},
		[]float64{5, 2},
		zeros(2), unboundedUB(2),
		[]lpstate.Sense{lpstate.LE, lpstate.LE},
		[]string{"x0", "x1"},
	)

	entry, warnings := rules.EliminateZeroColumns(s)
	require.NotNil(t, entry)
	require.Equal(t, []int{0}, entry.DeletedColumns)
	require.Equal(t, map[string]float64{"x0": 0}, entry.Solution)
	require.Empty(t, warnings)
	require.Equal(t, 1, s.Cols())
}

// Scenario 4: spec.md §8 — zero column, c < 0: unboundedness warning, no
// deletion.
func TestEliminateZeroColumns_NegativeCost(t *testing.T) {
	t.Parallel()
	s := buildState(t,
		[][]float64{{0, 1}, {0, 1}},
		[]float64{1, 1},
		[]float64{-1, 2},
		zeros(2), unboundedUB(2),
		[]lpstate.Sense{lpstate.LE, lpstate.LE},
		[]string{"x0", "x1"},
	)

	entry, warnings := rules.EliminateZeroColumns(s)
	require.Nil(t, entry)
	require.Len(t, warnings, 1)
	require.Equal(t, warn.Unboundedness, warnings[0].Kind)
	require.Equal(t, 2, s.Cols())
}
