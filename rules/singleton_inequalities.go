package rules

import (
	"github.com/arborel/presolve-lp/detect"
	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateSingletonInequalities implements spec.md §4.8: a single pass
// over rows with exactly one nonzero and no negative-counterpart mate
// (true inequalities, not halved equalities). The two sign/RHS
// combinations absent from the table ((A>0,b>0) and (A<0,b<0)) describe
// a real, non-redundant bound and are left untouched — this rule only
// removes bound-driven redundancy, never tightens a bound (spec.md §1
// Non-goals).
//
// Per spec.md §9's documented open question, the (A>0, b=0) branch
// records its row's original index in the journal for consistency with
// the other drop-row branches, diverging from the source's asymmetric
// omission.
func EliminateSingletonInequalities(state *lpstate.State) (*journal.DeletedRowsColsEntry, warn.Warnings) {
	var rowsToDelete, colsToDelete []int
	var warnings warn.Warnings

	counts := state.A.CountNonzerosPerRow()
	hasPair, _ := detect.NegativeCounterparts(state)

	for i := 0; i < state.Rows(); i++ {
		if counts[i] != 1 || hasPair[i] {
			continue
		}
		entries := state.A.RowEntries(i)
		k := entries[0].Index
		aik := entries[0].Value
		bi := state.B[i]

		switch {
		case aik > 0 && bi < 0:
			rowsToDelete = append(rowsToDelete, i)
		case aik < 0 && bi > 0:
			warnings = append(warnings, warn.Warning{
				Kind:     warn.Infeasibility,
				Rule:     LabelSingletonInequalities,
				RowOrCol: i,
				Detail:   "singleton inequality unsatisfiable with a nonnegative variable",
			})
		case aik > 0 && bi == 0:
			rowsToDelete = append(rowsToDelete, i)
		case aik < 0 && bi == 0:
			rowsToDelete = append(rowsToDelete, i)
			colsToDelete = append(colsToDelete, k)
		}
	}

	if len(rowsToDelete) == 0 && len(colsToDelete) == 0 {
		return nil, warnings
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
	}, warnings
}
