package rules

import (
	"github.com/arborel/presolve-lp/detect"
	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateSingletonEqualities implements spec.md §4.6. It iterates to a
// fixed point: each pass locates the first row with exactly one nonzero
// and a negative-counterpart mate, solves for the pivot variable,
// substitutes it out of b and co, and deletes both rows of the pair plus
// the pivot column. A negative solved value is infeasible and stops the
// rule (spec.md §4.6 step 3) without undoing the passes already applied.
func EliminateSingletonEqualities(state *lpstate.State) (*journal.SingletonEqualitiesEntry, warn.Warnings) {
	perVariable := make(map[string]journal.VarElimination)
	solutions := make(map[string]float64)
	var warnings warn.Warnings
	changed := false

	for {
		hasPair, mate := detect.NegativeCounterparts(state)
		row, ok := detect.FirstRowWithNNZ(state, hasPair, 1, true)
		if !ok {
			break
		}

		entries := state.A.RowEntries(row)
		pivotCol := entries[0].Index
		pivotVal := entries[0].Value
		xk := state.B[row] / pivotVal

		if xk < 0 {
			warnings = append(warnings, warn.Warning{
				Kind:     warn.Infeasibility,
				Rule:     LabelSingletonEqualities,
				RowOrCol: row,
				Detail:   "singleton equality solved to a negative value",
			})
			break
		}

		varName := state.VarNames[pivotCol]

		// b <- b - A[:,pivotCol]*xk for every row, before the column is
		// dropped (spec.md §4.6 step 4).
		for _, e := range state.A.ColEntries(pivotCol) {
			state.B[e.Index] -= e.Value * xk
		}
		state.Co -= state.C[pivotCol] * xk

		mateRow := mate[row]
		rowsToDelete := dedupSortAsc([]int{row, mateRow})
		origRows := state.OriginalRows(rowsToDelete)
		origCol := state.OriginalCols([]int{pivotCol})[0]

		state.DeleteRows(rowsToDelete)
		state.DeleteCols([]int{pivotCol})

		solutions[varName] = xk
		perVariable[varName] = journal.VarElimination{
			DeletedVariableIndex: origCol,
			DeletedRowIndices:    origRows,
		}
		changed = true
	}

	if !changed {
		return nil, warnings
	}
	return &journal.SingletonEqualitiesEntry{PerVariable: perVariable, Solutions: solutions}, warnings
}
