package rules_test

import (
	"testing"

	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/rules"
	"github.com/stretchr/testify/require"
)

// Scenario 6: spec.md §8 — k-ton (k=2). Rows 0,1 encode x0+2x1=4; pivot
// is the last nonzero of row 0 (column 1). After elimination, row 2
// becomes -0.5*x0 + x2 = 3 and the mate row is gone.
func TestEliminateKtonEqualities_PivotsOnLastNonzero(t *testing.T) {
	t.Parallel()
	s := buildState(t,
		[][]float64{{1, 2, 0}, {-1, -2, 0}, {0, 1, 1}},
		[]float64{4, -4, 5},
		[]float64{0, 0, 0},
		zeros(3), unboundedUB(3),
		[]lpstate.Sense{lpstate.LE, lpstate.LE, lpstate.LE},
		[]string{"x0", "x1", "x2"},
	)

	entry, warnings := rules.EliminateKtonEqualities(s, 2)
	require.Empty(t, warnings)
	require.NotNil(t, entry)
	require.Contains(t, entry.Solutions, "x1")

	require.Equal(t, 2, s.Rows())
	require.Equal(t, 2, s.Cols())
	require.Equal(t, []string{"x0", "x2"}, s.VarNames)

	require.InDelta(t, -0.5, s.A.At(0, 0), 1e-9)
	require.InDelta(t, 0, s.A.At(0, 1), 1e-9)
	require.InDelta(t, -2, s.B[0], 1e-9)

	require.InDelta(t, -0.5, s.A.At(1, 0), 1e-9)
	require.InDelta(t, 1, s.A.At(1, 1), 1e-9)
	require.InDelta(t, 3, s.B[1], 1e-9)
}
