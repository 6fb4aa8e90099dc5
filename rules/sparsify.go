package rules

import "github.com/arborel/presolve-lp/lpstate"

// ReduceSmallCoefficients implements spec.md §4.13: it replaces A with a
// row-normalized-then-thresholded copy (sparse.Matrix.
// SparsifyByNormalizedThreshold carries out the three documented steps).
// It never touches b, c, or bounds and never deletes rows or columns, so
// unlike the other nine rules it contributes no change-journal fragment
// (spec.md §6 lists no eliminate_* key for it).
func ReduceSmallCoefficients(state *lpstate.State, threshold float64) {
	state.A = state.A.SparsifyByNormalizedThreshold(threshold)
}
