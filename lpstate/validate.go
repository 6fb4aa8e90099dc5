package lpstate

// Validate checks the invariants spec.md §3 requires before and after
// every rule: parallel-vector lengths agree with A's shape, and the
// original-index vectors hold no repeated index. Whether each index lies
// inside the starting range is not checked.
// Mirrors the teacher pack's validators-as-first-stage convention
// (matrix.ValidateNotNil and friends), adapted to check a whole bundled
// state rather than a single argument.
func (s *State) Validate() error {
	if s == nil {
		return ErrNilState
	}
	m, n := s.Rows(), s.Cols()

	if len(s.B) != m || len(s.ConsSenses) != m || len(s.OrigRowIndex) != m {
		return ErrDimensionMismatch
	}
	if len(s.C) != n || len(s.LB) != n || len(s.UB) != n ||
		len(s.VarNames) != n || len(s.OrigColIndex) != n {
		return ErrDimensionMismatch
	}

	if !injective(s.OrigRowIndex) || !injective(s.OrigColIndex) {
		return ErrDimensionMismatch
	}
	return nil
}

func injective(idx []int) bool {
	seen := make(map[int]bool, len(idx))
	for _, i := range idx {
		if seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}
