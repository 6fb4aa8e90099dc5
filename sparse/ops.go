package sparse

import "math"

// ScaleRow returns a copy of m with row i multiplied by factor.
func (m *Matrix) ScaleRow(row int, factor float64) *Matrix {
	b, _ := NewBuilder(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for _, e := range m.RowEntries(r) {
			v := e.Value
			if r == row {
				v *= factor
			}
			_ = b.Set(r, e.Index, v)
		}
	}
	return b.Build()
}

// SubtractRowScaled returns a copy of m where row[target] -= factor *
// row[source]. This is the elimination step used by k-ton equality
// substitution (spec §4.7 step 4): eliminate a pivot column from every
// other row using the pivot row.
func (m *Matrix) SubtractRowScaled(target, source int, factor float64) *Matrix {
	if factor == 0 {
		return m.Clone()
	}
	b, _ := NewBuilder(m.rows, m.cols)
	srcDense := m.DenseRow(source)
	for r := 0; r < m.rows; r++ {
		if r != target {
			for _, e := range m.RowEntries(r) {
				_ = b.Set(r, e.Index, e.Value)
			}
			continue
		}
		row := m.DenseRow(target)
		for j := 0; j < m.cols; j++ {
			v := row[j] - factor*srcDense[j]
			_ = b.Set(r, j, v)
		}
	}
	return b.Build()
}

// NegateRow returns a copy of m with row i negated.
func (m *Matrix) NegateRow(row int) *Matrix {
	return m.ScaleRow(row, -1)
}

// RowMaxAbs returns the largest absolute value in row i, or 0 for an
// all-zero (or out-of-range) row.
func (m *Matrix) RowMaxAbs(row int) float64 {
	max := 0.0
	for _, e := range m.RowEntries(row) {
		if a := math.Abs(e.Value); a > max {
			max = a
		}
	}
	return max
}

// Normalized returns a copy of m where every row has been divided by its
// own maximum absolute value (rows that are all-zero, or whose max is
// already 1, are left unchanged). This is the scale shared between
// sparsification (spec §4.13) and any caller wanting a scale-invariant
// view of the same matrix.
func (m *Matrix) Normalized() *Matrix {
	b, _ := NewBuilder(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		scale := m.RowMaxAbs(r)
		for _, e := range m.RowEntries(r) {
			v := e.Value
			if scale != 0 {
				v /= scale
			}
			_ = b.Set(r, e.Index, v)
		}
	}
	return b.Build()
}

// SparsifyByNormalizedThreshold implements spec §4.13 steps 1–3: it
// normalizes a copy of m by row scale, zeros normalized entries whose
// magnitude falls below threshold, and returns m with exactly those
// positions zeroed (the original, un-normalized magnitudes are kept for
// every surviving entry).
func (m *Matrix) SparsifyByNormalizedThreshold(threshold float64) *Matrix {
	norm := m.Normalized()
	b, _ := NewBuilder(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for _, e := range m.RowEntries(r) {
			if math.Abs(norm.At(r, e.Index)) < threshold {
				continue // zeroed: below threshold on the normalized copy
			}
			_ = b.Set(r, e.Index, e.Value)
		}
	}
	return b.Build()
}
