package rules_test

import (
	"testing"

	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/sparse"
	"github.com/stretchr/testify/require"
)

// buildState constructs a *lpstate.State from a dense literal and the
// per-row senses; cost/bounds/names are supplied explicitly so each test
// can exercise sign-dependent branches precisely.
func buildState(t *testing.T, dense [][]float64, b, c, lb, ub []float64, senses []lpstate.Sense, names []string) *lpstate.State {
	t.Helper()
	a, err := sparse.NewFromDense(dense)
	require.NoError(t, err)
	s, err := lpstate.NewState(a, b, c, 0, lb, ub, lpstate.Minimize, senses, names)
	require.NoError(t, err)
	return s
}

func unboundedUB(n int) []float64 {
	ub := make([]float64, n)
	for i := range ub {
		ub[i] = 1e30
	}
	return ub
}

func zeros(n int) []float64 {
	return make([]float64, n)
}
