package rules

import (
	"github.com/arborel/presolve-lp/detect"
	"github.com/arborel/presolve-lp/journal"
	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/warn"
)

// EliminateKtonEqualities implements spec.md §4.7. It iterates to a fixed
// point: each pass locates the first row with exactly k nonzeros and a
// negative-counterpart mate, pivots on its last nonzero column, and
// rewrites every other row's RHS and coefficients, the objective, and the
// pivot row itself (scaled then negated into the engine's canonical <=
// form) before deleting the pivot column and the mate row.
func EliminateKtonEqualities(state *lpstate.State, k int) (*journal.KtonEqualitiesEntry, warn.Warnings) {
	perVariable := make(map[string]journal.VarElimination)
	solutions := make(map[string]journal.KtonSolution)
	var warnings warn.Warnings
	changed := false

	for {
		hasPair, mate := detect.NegativeCounterparts(state)
		row, ok := detect.FirstRowWithNNZ(state, hasPair, k, true)
		if !ok {
			break
		}

		entries := state.A.RowEntries(row)
		pivotCol := entries[len(entries)-1].Index
		pivotVal := state.A.At(row, pivotCol)

		// Step 3: scale the pivot row so A[row,pivotCol] == 1.
		state.A = state.A.ScaleRow(row, 1/pivotVal)
		state.B[row] /= pivotVal

		// Step 4: eliminate pivotCol from every other row.
		for r := 0; r < state.Rows(); r++ {
			if r == row {
				continue
			}
			factor := state.A.At(r, pivotCol)
			if factor == 0 {
				continue
			}
			state.B[r] -= factor * state.B[row]
			state.A = state.A.SubtractRowScaled(r, row, factor)
		}

		// Step 5: update the objective using the (now scaled) pivot row.
		cPivot := state.C[pivotCol]
		state.Co += cPivot * state.B[row]
		pivotRowDense := state.A.DenseRow(row)
		for j := range state.C {
			state.C[j] -= cPivot * pivotRowDense[j]
		}

		// Capture the back-substitution formula before pivotCol is
		// dropped: x[pivotCol] = b[row] - sum(lhs[i]*variables[i]).
		varName := state.VarNames[pivotCol]
		origCol := state.OriginalCols([]int{pivotCol})[0]
		var lhs []float64
		var varsUsed []string
		for j, v := range pivotRowDense {
			if j == pivotCol || v == 0 {
				continue
			}
			lhs = append(lhs, v)
			varsUsed = append(varsUsed, state.VarNames[j])
		}
		rhs := state.B[row]

		// Step 6: delete the pivot column.
		state.DeleteCols([]int{pivotCol})

		// Step 7: negate the pivot row into canonical <= form.
		state.A = state.A.NegateRow(row)
		state.B[row] = -state.B[row]

		// Step 8: delete the mate row.
		mateRow := mate[row]
		origRows := state.OriginalRows(dedupSortAsc([]int{mateRow}))
		state.DeleteRows([]int{mateRow})

		solutions[varName] = journal.KtonSolution{LHS: lhs, RHS: rhs, Variables: varsUsed}
		perVariable[varName] = journal.VarElimination{
			DeletedVariableIndex: origCol,
			DeletedRowIndices:    origRows,
		}
		changed = true
	}

	if !changed {
		return nil, warnings
	}
	return &journal.KtonEqualitiesEntry{PerVariable: perVariable, Solutions: solutions}, warnings
}
