package activity

import (
	"math"

	"github.com/arborel/presolve-lp/lpstate"
)

// RowActivity is the per-row analysis spec.md §4.2 defines.
type RowActivity struct {
	Support []int   // column indices where A[i,j] != 0, ascending
	Inf     float64 // infimum of A[i,:]·x over x in [lb, ub]
	Sup     float64 // supremum of A[i,:]·x over x in [lb, ub]
}

// Compute returns the RowActivity for every row of state.A.
//
// infinity is the magnitude past which a bound is treated as unbounded
// (spec.md §4.2: "implementers must treat |bound| >= infinity as
// unbounded and yield +-infinity accordingly"), regardless of whether the
// bound is literally math.Inf or a large finite sentinel such as 1e30.
func Compute(state *lpstate.State, infinity float64) []RowActivity {
	rows := state.Rows()
	out := make([]RowActivity, rows)

	for i := 0; i < rows; i++ {
		entries := state.A.RowEntries(i)
		support := make([]int, len(entries))
		var inf, sup float64

		for k, e := range entries {
			support[k] = e.Index
			lb := extend(state.LB[e.Index], infinity)
			ub := extend(state.UB[e.Index], infinity)

			if e.Value > 0 {
				inf += e.Value * lb
				sup += e.Value * ub
			} else {
				inf += e.Value * ub
				sup += e.Value * lb
			}
		}

		out[i] = RowActivity{Support: support, Inf: inf, Sup: sup}
	}
	return out
}

// extend maps a bound whose magnitude has reached the configured infinity
// threshold onto an actual IEEE infinity, so the accumulation above
// propagates +-Inf the same way the spec's "usual IEEE/extended rules"
// require, whether the bound already was math.Inf or merely a big-M
// sentinel from an external model.
func extend(bound, infinity float64) float64 {
	if bound >= infinity {
		return math.Inf(1)
	}
	if bound <= -infinity {
		return math.Inf(-1)
	}
	return bound
}
