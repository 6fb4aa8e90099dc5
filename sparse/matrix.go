package sparse

import "sort"

// Entry is a single nonzero, paired with the dimension index it was
// extracted against — the column when returned from RowEntries, the row
// when returned from ColEntries.
type Entry struct {
	Index int
	Value float64
}

// Matrix is an immutable-once-built compressed sparse-row matrix: rowPtr[i]
// .. rowPtr[i+1] indexes the half-open slice of colIdx/vals belonging to
// row i, with colIdx sorted ascending within each row.
type Matrix struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int
	vals       []float64
}

// Rows reports the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols reports the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ reports the number of stored nonzero entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.vals) }

// At returns the value at (row, col), or 0 if absent. Complexity:
// O(log nnz_row) via binary search over the sorted row slice.
func (m *Matrix) At(row, col int) float64 {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0
	}
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	idx := sort.Search(hi-lo, func(k int) bool { return m.colIdx[lo+k] >= col })
	if lo+idx < hi && m.colIdx[lo+idx] == col {
		return m.vals[lo+idx]
	}
	return 0
}

// RowNNZ returns the number of nonzeros in row i. Complexity: O(1).
func (m *Matrix) RowNNZ(row int) int {
	if row < 0 || row >= m.rows {
		return 0
	}
	return m.rowPtr[row+1] - m.rowPtr[row]
}

// RowEntries returns the nonzero (column, value) pairs of row i, ascending
// by column. The returned slice is a fresh copy; mutating it does not
// affect the Matrix.
func (m *Matrix) RowEntries(row int) []Entry {
	if row < 0 || row >= m.rows {
		return nil
	}
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	out := make([]Entry, hi-lo)
	for k := lo; k < hi; k++ {
		out[k-lo] = Entry{Index: m.colIdx[k], Value: m.vals[k]}
	}
	return out
}

// ColEntries returns the nonzero (row, value) pairs of column j, ascending
// by row. Complexity: O(nnz) — columns are not independently indexed.
func (m *Matrix) ColEntries(col int) []Entry {
	if col < 0 || col >= m.cols {
		return nil
	}
	var out []Entry
	for row := 0; row < m.rows; row++ {
		lo, hi := m.rowPtr[row], m.rowPtr[row+1]
		idx := sort.Search(hi-lo, func(k int) bool { return m.colIdx[lo+k] >= col })
		if lo+idx < hi && m.colIdx[lo+idx] == col {
			out = append(out, Entry{Index: row, Value: m.vals[lo+idx]})
		}
	}
	return out
}

// ColNNZ returns the number of nonzeros in column j. Complexity: O(nnz).
func (m *Matrix) ColNNZ(col int) int {
	return len(m.ColEntries(col))
}

// DenseRow materializes row i as a dense []float64 of length Cols().
func (m *Matrix) DenseRow(row int) []float64 {
	out := make([]float64, m.cols)
	for _, e := range m.RowEntries(row) {
		out[e.Index] = e.Value
	}
	return out
}

// DenseCol materializes column j as a dense []float64 of length Rows().
func (m *Matrix) DenseCol(col int) []float64 {
	out := make([]float64, m.rows)
	for _, e := range m.ColEntries(col) {
		out[e.Index] = e.Value
	}
	return out
}

// CountNonzerosPerRow returns RowNNZ(i) for every row, in order.
func (m *Matrix) CountNonzerosPerRow() []int {
	counts := make([]int, m.rows)
	for i := range counts {
		counts[i] = m.RowNNZ(i)
	}
	return counts
}

// CountNonzerosPerCol returns ColNNZ(j) for every column, in order.
// Complexity: O(nnz) total (single pass, not per-column rescans).
func (m *Matrix) CountNonzerosPerCol() []int {
	counts := make([]int, m.cols)
	for _, c := range m.colIdx {
		counts[c]++
	}
	return counts
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: append([]int(nil), m.rowPtr...),
		colIdx: append([]int(nil), m.colIdx...),
		vals:   append([]float64(nil), m.vals...),
	}
}
