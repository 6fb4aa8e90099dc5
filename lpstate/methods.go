package lpstate

import "sort"

// DeleteRows removes the given CURRENT row indices from every
// row-indexed field (A, B, ConsSenses, OrigRowIndex) in one consistent
// pass. idx need not be sorted or deduplicated. This replaces the
// prototype's repeated "for index in sorted(to_delete, reverse=True): del
// self.b[index]; del self.cons_senses[index]; del
// self.original_row_index[index]" blocks with a single shared helper so
// every rule keeps the parallel vectors in lockstep by construction.
func (s *State) DeleteRows(idx []int) {
	if len(idx) == 0 {
		return
	}
	ordered := dedupSortDesc(idx)

	s.A = s.A.DeleteRows(idx)
	for _, i := range ordered {
		s.B = deleteAt(s.B, i)
		s.ConsSenses = deleteAt(s.ConsSenses, i)
		s.OrigRowIndex = deleteAt(s.OrigRowIndex, i)
	}
}

// DeleteCols removes the given CURRENT column indices from every
// column-indexed field (A, C, LB, UB, VarNames, OrigColIndex).
func (s *State) DeleteCols(idx []int) {
	if len(idx) == 0 {
		return
	}
	ordered := dedupSortDesc(idx)

	s.A = s.A.DeleteCols(idx)
	for _, j := range ordered {
		s.C = deleteAt(s.C, j)
		s.LB = deleteAt(s.LB, j)
		s.UB = deleteAt(s.UB, j)
		s.VarNames = deleteAt(s.VarNames, j)
		s.OrigColIndex = deleteAt(s.OrigColIndex, j)
	}
}

// OriginalRows maps current row indices to their original (pre-reduction)
// indices, preserving input order.
func (s *State) OriginalRows(idx []int) []int {
	out := make([]int, len(idx))
	for k, i := range idx {
		out[k] = s.OrigRowIndex[i]
	}
	return out
}

// OriginalCols maps current column indices to their original indices.
func (s *State) OriginalCols(idx []int) []int {
	out := make([]int, len(idx))
	for k, j := range idx {
		out[k] = s.OrigColIndex[j]
	}
	return out
}

func dedupSortDesc(idx []int) []int {
	seen := make(map[int]bool, len(idx))
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func deleteAt[T any](s []T, i int) []T {
	return append(s[:i:i], s[i+1:]...)
}
