package rules

import (
	"fmt"

	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateZeroRows implements spec.md §4.4: every all-zero row is
// deleted; a positive RHS on such a row additionally raises an
// Infeasibility warning, but the row is deleted regardless (spec.md §8,
// scenario 2: "row still deleted; no exception").
func EliminateZeroRows(state *lpstate.State) (*journal.ZeroRowsEntry, warn.Warnings) {
	var toDelete []int
	var warnings warn.Warnings

	for i := 0; i < state.Rows(); i++ {
		if state.A.RowNNZ(i) != 0 {
			continue
		}
		if state.B[i] > 0 {
			warnings = append(warnings, warn.Warning{
				Kind:     warn.Infeasibility,
				Rule:     LabelZeroRows,
				RowOrCol: i,
				Detail:   fmt.Sprintf("zero row %d has positive RHS %v", i, state.B[i]),
			})
		}
		toDelete = append(toDelete, i)
	}
	if len(toDelete) == 0 {
		return nil, warnings
	}

	origRows := state.OriginalRows(toDelete)
	state.DeleteRows(toDelete)

	return &journal.ZeroRowsEntry{DeletedRowsIndices: dedupSortAsc(origRows)}, warnings
}
