package rules

import (
	"github.com/arborel/presolve-lp/detect"
	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateRedundantRows implements spec.md §4.12: the dependency
// detector flags every row that is a linear combination of other,
// independent rows; each flagged row is deleted unless it carries a
// negative-counterpart mate that survives (is not itself flagged as
// dependent), in which case the row is kept so the equality pair's
// other half is not lost.
func EliminateRedundantRows(state *lpstate.State, tolerance float64) (*journal.DeletedRowsEntry, warn.Warnings) {
	_, hasDependency := detect.LinearDependentRows(state, tolerance)
	hasPair, mate := detect.NegativeCounterparts(state)

	marked := make(map[int]bool)
	for i := 0; i < state.Rows(); i++ {
		if !hasDependency[i] {
			continue
		}
		if hasPair[i] && mate[i] != i && !hasDependency[mate[i]] {
			continue
		}
		marked[i] = true
	}

	if len(marked) == 0 {
		return nil, nil
	}

	toDelete := make([]int, 0, len(marked))
	for i := range marked {
		toDelete = append(toDelete, i)
	}
	toDelete = dedupSortAsc(toDelete)

	origRows := state.OriginalRows(toDelete)
	state.DeleteRows(toDelete)

	return &journal.DeletedRowsEntry{DeletedRowsIndices: dedupSortAsc(origRows)}, nil
}
