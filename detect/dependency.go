package detect

import (
	"math"

	"github.com/arborel/presolve-lp/lpstate"
)

// DefaultDependencyTolerance is the magnitude below which a reduced
// coefficient is treated as exactly zero.
const DefaultDependencyTolerance = 1e-9

// LinearDependentRows implements the detector spec.md §4.3/§4.12 relies on:
// for every row i, Dependents[i] lists the other row indices whose rows
// combine (linearly) to make row i redundant, and HasDependency[i] is set
// whenever that list is non-empty.
//
// Implementation: sequential Gauss elimination of the augmented matrix
// [A|b] against previously established independent rows (no partial
// pivoting — presolve-scale inputs, and the goal is a structural
// dependency map, not a numerically hardened solver). Each row's
// combination vector, expressed in terms of original row indices, is
// carried alongside the elimination; a row that reduces to all-zero is
// exactly the linear combination of the rows recorded in its vector.
func LinearDependentRows(state *lpstate.State, tol float64) (dependents map[int][]int, hasDependency []bool) {
	rows, cols := state.Rows(), state.Cols()
	dependents = make(map[int][]int)
	hasDependency = make([]bool, rows)
	if rows == 0 {
		return dependents, hasDependency
	}

	// augmented[i] = [A[i,0..cols-1], b[i]]
	augmented := make([][]float64, rows)
	combo := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols+1)
		copy(row, state.A.DenseRow(i))
		row[cols] = state.B[i]
		augmented[i] = row

		c := make([]float64, rows)
		c[i] = 1
		combo[i] = c
	}

	var pivots []int // indices (into augmented/combo) of established independent rows
	for i := 0; i < rows; i++ {
		for _, p := range pivots {
			col := pivotColumn(augmented[p], cols, tol)
			if col < 0 {
				continue
			}
			factor := augmented[i][col] / augmented[p][col]
			if factor == 0 {
				continue
			}
			subtractScaled(augmented[i], augmented[p], factor)
			subtractScaled(combo[i], combo[p], factor)
		}

		if isZero(augmented[i], tol) {
			var deps []int
			for k, v := range combo[i] {
				if k != i && math.Abs(v) > tol {
					deps = append(deps, k)
				}
			}
			if len(deps) > 0 {
				dependents[i] = deps
				hasDependency[i] = true
			}
		} else {
			pivots = append(pivots, i)
		}
	}

	return dependents, hasDependency
}

func pivotColumn(row []float64, cols int, tol float64) int {
	for j := 0; j < cols; j++ {
		if math.Abs(row[j]) > tol {
			return j
		}
	}
	return -1
}

func subtractScaled(dst, src []float64, factor float64) {
	for k := range dst {
		dst[k] -= factor * src[k]
	}
}

func isZero(row []float64, tol float64) bool {
	for _, v := range row {
		if math.Abs(v) > tol {
			return false
		}
	}
	return true
}
