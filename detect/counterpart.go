package detect

import (
	"fmt"
	"sort"

	"github.com/arborel/presolve-lp/lpstate"
)

// NegativeCounterparts returns, for every row i, whether some row j != i
// satisfies A[j,:] == -A[i,:] and b[j] == -b[i] (spec.md §4.3), and one
// such j in Mate[i] when HasPair[i] is true.
//
// A row already carrying a native EQ sense (spec.md §9's "may equivalently
// carry a native = sense") is treated as automatically paired with itself:
// rules that only need "is this row an equality" (e.g. redundant-column
// elimination) see HasPair[i]=true, Mate[i]=i, without requiring a literal
// mate row to exist in A.
func NegativeCounterparts(state *lpstate.State) (hasPair []bool, mate []int) {
	rows := state.Rows()
	hasPair = make([]bool, rows)
	mate = make([]int, rows)
	for i := range mate {
		mate[i] = -1
	}

	signatures := make(map[string]int, rows)
	keys := make([]string, rows)
	for i := 0; i < rows; i++ {
		keys[i] = rowSignature(state, i, 1)
		signatures[keys[i]] = i
	}

	for i := 0; i < rows; i++ {
		if state.ConsSenses[i] == lpstate.EQ {
			hasPair[i] = true
			mate[i] = i
			continue
		}
		negKey := rowSignature(state, i, -1)
		if j, ok := signatures[negKey]; ok && j != i {
			hasPair[i] = true
			mate[i] = j
		}
	}
	return hasPair, mate
}

// rowSignature builds a canonical, order-independent string key for
// sign*A[i,:] concatenated with sign*b[i], used to find exact negations
// without an O(rows^2 * nnz) pairwise scan.
func rowSignature(state *lpstate.State, row int, sign float64) string {
	entries := state.A.RowEntries(row)
	cols := make([]int, len(entries))
	for k, e := range entries {
		cols[k] = e.Index
	}
	sort.Ints(cols)

	key := fmt.Sprintf("b=%v", canonicalZero(sign*state.B[row]))
	for _, c := range cols {
		key += fmt.Sprintf("|%d:%v", c, canonicalZero(sign*state.A.At(row, c)))
	}
	return key
}

// canonicalZero collapses negative zero to positive zero before
// formatting: sign*0 is -0 under IEEE 754, and "%v" renders that as the
// string "-0", which would make a zero RHS or coefficient fail to match
// its forward-signed counterpart in the signature map.
func canonicalZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
