package rules_test

import (
	"testing"

	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/rules"
	"github.com/stretchr/testify/require"
)

// spec.md §8 Laws: sparsification with threshold 0 is a no-op.
func TestReduceSmallCoefficients_ThresholdZeroIsNoOp(t *testing.T) {
	t.Parallel()
	s := buildState(t,
		[][]float64{{1, 0.001}, {0.0005, 1}},
		[]float64{1, 2},
		[]float64{1, 1},
		zeros(2), unboundedUB(2),
		[]lpstate.Sense{lpstate.LE, lpstate.LE},
		[]string{"x0", "x1"},
	)
	before := s.A.Clone()

	rules.ReduceSmallCoefficients(s, 0)

	require.Equal(t, before.DenseRow(0), s.A.DenseRow(0))
	require.Equal(t, before.DenseRow(1), s.A.DenseRow(1))
}

func TestReduceSmallCoefficients_ZeroesBelowThreshold(t *testing.T) {
	t.Parallel()
	s := buildState(t,
		[][]float64{{1, 0.001}},
		[]float64{1},
		[]float64{1, 1},
		zeros(2), unboundedUB(2),
		[]lpstate.Sense{lpstate.LE},
		[]string{"x0", "x1"},
	)

	rules.ReduceSmallCoefficients(s, 0.5)

	require.Equal(t, 1.0, s.A.At(0, 0))
	require.Equal(t, 0.0, s.A.At(0, 1))
}
