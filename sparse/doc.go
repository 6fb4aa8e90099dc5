// Package sparse implements a compressed sparse-row matrix kernel for the
// presolve engine's constraint matrix A.
//
// The representation is rebuilt, not mutated in place: every structural
// operation (DeleteRows, DeleteCols, ScaleRow, SubtractRowScaled, ...)
// returns a new *Matrix. Callers that own a shared mutable state (see
// lpstate.State) simply reassign their field to the result, the same way
// the original prototype reassigns self.A to a freshly built csr_matrix
// after every np.delete. Rebuilding keeps the kernel simple and avoids
// aliasing bugs between states that share a row; the cost of a rebuild is
// O(nnz), which is acceptable at presolve scale.
//
// Values are stored only for nonzero entries; no r*c dense buffer is ever
// allocated by the kernel itself (DenseRow/DenseCol materialize a single
// row or column on demand for callers, such as the row-activity analyzer,
// that need dense access).
package sparse
