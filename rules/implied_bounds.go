package rules

import (
	"github.com/arborel/presolve-lp/activity"
	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateImpliedBounds implements spec.md §4.11 using the row-activity
// analyzer. trustRedundancy gates the documented open-question branch
// (spec.md §9): when true, a row whose INF exceeds its RHS beyond
// tolerance is deleted as redundant given caller intent (the source's
// behavior); when false, the engine instead raises an Infeasibility
// warning and leaves the row in place.
func EliminateImpliedBounds(state *lpstate.State, infinity, tolerance float64, trustRedundancy bool) (*journal.DeletedRowsEntry, warn.Warnings) {
	acts := activity.Compute(state, infinity)

	var toDelete []int
	var warnings warn.Warnings

	for i, act := range acts {
		b := state.B[i]
		switch {
		case b >= infinity:
			toDelete = append(toDelete, i)
		case act.Inf > b+tolerance:
			if trustRedundancy {
				toDelete = append(toDelete, i)
			} else {
				warnings = append(warnings, warn.Warning{
					Kind:     warn.Infeasibility,
					Rule:     LabelImpliedBounds,
					RowOrCol: i,
					Detail:   "row activity infimum exceeds RHS beyond tolerance",
				})
			}
		case act.Sup < b+tolerance:
			warnings = append(warnings, warn.Warning{
				Kind:     warn.Infeasibility,
				Rule:     LabelImpliedBounds,
				RowOrCol: i,
				Detail:   "row activity supremum cannot reach RHS",
			})
		}
	}

	if len(toDelete) == 0 {
		return nil, warnings
	}

	origRows := state.OriginalRows(dedupSortAsc(toDelete))
	state.DeleteRows(toDelete)

	return &journal.DeletedRowsEntry{DeletedRowsIndices: dedupSortAsc(origRows)}, warnings
}
