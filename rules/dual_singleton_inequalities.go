package rules

import (
	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateDualSingletonInequalities implements spec.md §4.9, the
// column-wise mirror of §4.8: a single pass over columns with exactly
// one nonzero. As in the row-wise rule, the two combinations absent from
// the table ((A>0,c>0) and (A<0,c<0)) describe a real constraint and are
// left alone.
func EliminateDualSingletonInequalities(state *lpstate.State) (*journal.DeletedRowsColsEntry, warn.Warnings) {
	var rowsToDelete, colsToDelete []int
	var warnings warn.Warnings

	counts := state.A.CountNonzerosPerCol()

	for j := 0; j < state.Cols(); j++ {
		if counts[j] != 1 {
			continue
		}
		entries := state.A.ColEntries(j)
		r := entries[0].Index
		arj := entries[0].Value
		cj := state.C[j]

		switch {
		case arj > 0 && cj < 0:
			warnings = append(warnings, warn.Warning{
				Kind:     warn.Infeasibility,
				Rule:     LabelDualSingletonInequalities,
				RowOrCol: j,
				Detail:   "dual singleton inequality unsatisfiable: positive coefficient, negative cost",
			})
		case arj < 0 && cj > 0:
			colsToDelete = append(colsToDelete, j)
		case arj > 0 && cj == 0:
			colsToDelete = append(colsToDelete, j)
			rowsToDelete = append(rowsToDelete, r)
		case arj < 0 && cj == 0:
			colsToDelete = append(colsToDelete, j)
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
