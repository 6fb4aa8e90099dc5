package sparse

import "sort"

// Builder accumulates (row, col, value) triples and compiles them into a
// Matrix. It is the normal way to construct a Matrix from a dense literal
// or from another Matrix's entries after a structural transform.
type Builder struct {
	rows, cols int
	entries    map[int]map[int]float64
}

// NewBuilder starts a Builder for an r×c matrix. Zero is a valid dimension
// (the engine may reduce an LP down to no rows or no columns); only
// negative dimensions are rejected.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidShape
	}
	return &Builder{rows: rows, cols: cols, entries: make(map[int]map[int]float64, rows)}, nil
}

// Set stores value v at (row, col), overwriting any prior value there. A
// zero value clears the entry rather than storing an explicit zero, so the
// built Matrix never carries stored zeros.
func (b *Builder) Set(row, col int, v float64) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return ErrOutOfRange
	}
	if v == 0 {
		if r, ok := b.entries[row]; ok {
			delete(r, col)
		}
		return nil
	}
	r, ok := b.entries[row]
	if !ok {
		r = make(map[int]float64)
		b.entries[row] = r
	}
	r[col] = v
	return nil
}

// Build compiles the accumulated entries into an immutable Matrix.
func (b *Builder) Build() *Matrix {
	rowPtr := make([]int, b.rows+1)
	nnz := 0
	for _, r := range b.entries {
		nnz += len(r)
	}
	colIdx := make([]int, 0, nnz)
	vals := make([]float64, 0, nnz)

	for row := 0; row < b.rows; row++ {
		rowPtr[row] = len(colIdx)
		r := b.entries[row]
		cols := make([]int, 0, len(r))
		for c := range r {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		for _, c := range cols {
			colIdx = append(colIdx, c)
			vals = append(vals, r[c])
		}
	}
	rowPtr[b.rows] = len(colIdx)

	return &Matrix{rows: b.rows, cols: b.cols, rowPtr: rowPtr, colIdx: colIdx, vals: vals}
}

// NewFromDense builds a Matrix from a row-major dense literal, skipping
// zero entries. Every row must have the same length; that length becomes
// the matrix's column count.
func NewFromDense(dense [][]float64) (*Matrix, error) {
	if len(dense) == 0 || len(dense[0]) == 0 {
		return nil, ErrInvalidShape
	}
	cols := len(dense[0])
	b, err := NewBuilder(len(dense), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range dense {
		if len(row) != cols {
			return nil, ErrRowLengthMismatch
		}
		for j, v := range row {
			if err := b.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return b.Build(), nil
}
