package sparse

// DeleteRows returns a new Matrix with the given row indices removed. idx
// need not be sorted or deduplicated; both are handled internally.
// Complexity: O(nnz).
func (m *Matrix) DeleteRows(idx []int) *Matrix {
	drop := toSet(idx)
	b, _ := NewBuilder(m.rows-len(drop), m.cols)
	newRow := 0
	for row := 0; row < m.rows; row++ {
		if drop[row] {
			continue
		}
		for _, e := range m.RowEntries(row) {
			_ = b.Set(newRow, e.Index, e.Value)
		}
		newRow++
	}
	return b.Build()
}

// DeleteCols returns a new Matrix with the given column indices removed.
// Complexity: O(nnz).
func (m *Matrix) DeleteCols(idx []int) *Matrix {
	drop := toSet(idx)
	newCols := m.cols - len(drop)
	remap := make([]int, m.cols)
	next := 0
	for col := 0; col < m.cols; col++ {
		if drop[col] {
			remap[col] = -1
			continue
		}
		remap[col] = next
		next++
	}

	b, _ := NewBuilder(m.rows, newCols)
	for row := 0; row < m.rows; row++ {
		for _, e := range m.RowEntries(row) {
			if nc := remap[e.Index]; nc >= 0 {
				_ = b.Set(row, nc, e.Value)
			}
		}
	}
	return b.Build()
}

func toSet(idx []int) map[int]bool {
	set := make(map[int]bool, len(idx))
	for _, i := range idx {
		set[i] = true
	}
	return set
}
