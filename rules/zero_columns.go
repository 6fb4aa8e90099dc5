package rules

import (
	"fmt"

	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateZeroColumns implements spec.md §4.5: every all-zero column is
// classified by its objective cost. c[j] >= 0 fixes the variable at zero
// and deletes the column; c[j] < 0 raises an Unboundedness warning and
// leaves the column in place (spec.md §8, scenario 4: "no deletion
// required by contract beyond rule semantics").
func EliminateZeroColumns(state *lpstate.State) (*journal.ZeroColumnsEntry, warn.Warnings) {
	var toDelete []int
	solution := make(map[string]float64)
	var warnings warn.Warnings

	counts := state.A.CountNonzerosPerCol()
	for j, n := range counts {
		if n != 0 {
			continue
		}
		if state.C[j] >= 0 {
			solution[state.VarNames[j]] = 0
			toDelete = append(toDelete, j)
		} else {
			warnings = append(warnings, warn.Warning{
				Kind:     warn.Unboundedness,
				Rule:     LabelZeroColumns,
				RowOrCol: j,
				Detail:   fmt.Sprintf("zero column %d (%s) has negative cost %v", j, state.VarNames[j], state.C[j]),
			})
		}
	}
	if len(toDelete) == 0 {
		return nil, warnings
	}

	origCols := state.OriginalCols(toDelete)
	state.DeleteCols(toDelete)

	return &journal.ZeroColumnsEntry{DeletedColumns: dedupSortAsc(origCols), Solution: solution}, warnings
}
