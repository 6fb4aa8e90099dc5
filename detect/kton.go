package detect

import "github.com/arborel/presolve-lp/lpstate"

// FirstRowWithNNZ returns the lowest-indexed row whose nonzero count
// equals nnz and whose negative-counterpart membership matches wantPair,
// or ok=false if none qualifies. The singleton-equality (spec.md §4.6)
// and k-ton-equality (§4.7) rules call it with wantPair=true on every
// pass; it recomputes the nonzero count per row on each call.
func FirstRowWithNNZ(state *lpstate.State, hasPair []bool, nnz int, wantPair bool) (row int, ok bool) {
	counts := state.A.CountNonzerosPerRow()
	for i, c := range counts {
		if c == nnz && hasPair[i] == wantPair {
			return i, true
		}
	}
	return 0, false
}

// FirstColumnWithNNZ returns the lowest-indexed column whose nonzero
// count equals nnz, or ok=false if none qualifies (spec.md §4.9, dual
// singleton inequality elimination).
func FirstColumnWithNNZ(state *lpstate.State, nnz int) (col int, ok bool) {
	counts := state.A.CountNonzerosPerCol()
	for j, c := range counts {
		if c == nnz {
			return j, true
		}
	}
	return 0, false
}
