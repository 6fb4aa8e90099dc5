package rules

import (
	"github.com/arborel/presolve-lp/detect"
	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/sparse"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateRedundantColumns implements spec.md §4.10: a row qualifies
// when b[i]==0, it has a negative-counterpart mate (it encodes an
// equality), and every one of its nonzero coefficients shares a sign.
// Combined with nonnegative variable bounds, such a row forces every
// participating variable to zero, so the row (and its mate) and every
// column it touches are deleted.
func EliminateRedundantColumns(state *lpstate.State) (*journal.DeletedRowsColsEntry, warn.Warnings) {
	hasPair, mate := detect.NegativeCounterparts(state)

	var rowsToDelete, colsToDelete []int
	for i := 0; i < state.Rows(); i++ {
		if state.B[i] != 0 || !hasPair[i] {
			continue
		}
		entries := state.A.RowEntries(i)
		if len(entries) == 0 || !uniformSign(entries) {
			continue
		}
		rowsToDelete = append(rowsToDelete, i, mate[i])
		for _, e := range entries {
			colsToDelete = append(colsToDelete, e.Index)
		}
	}

	if len(rowsToDelete) == 0 && len(colsToDelete) == 0 {
		return nil, nil
	}

	rowsToDelete = dedupSortAsc(rowsToDelete)
	colsToDelete = dedupSortAsc(colsToDelete)
	origRows := state.OriginalRows(rowsToDelete)
	origCols := state.OriginalCols(colsToDelete)

	state.DeleteRows(rowsToDelete)
	state.DeleteCols(colsToDelete)

	return &journal.DeletedRowsColsEntry{
		DeletedVariablesIndices: dedupSortAsc(origCols),
		DeletedRowsIndices:      dedupSortAsc(origRows),
	}, nil
}

// uniformSign reports whether every entry's value is >=0 or every
// entry's value is <=0 (entries is guaranteed non-empty by the caller).
func uniformSign(entries []sparse.Entry) bool {
	allNonNeg, allNonPos := true, true
	for _, e := range entries {
		if e.Value < 0 {
			allNonNeg = false
		}
		if e.Value > 0 {
			allNonPos = false
		}
	}
	return allNonNeg || allNonPos
}
