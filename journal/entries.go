package journal

// VarElimination records the original index of one eliminated variable
// and the original indices of the rows deleted together with it (both
// rows of the equality pair for the singleton-equality rule, the mate row
// for the k-ton-equality rule), as spec.md §6 describes for both rules.
type VarElimination struct {
	DeletedVariableIndex int   `json:"deleted_variable_index"`
	DeletedRowIndices    []int `json:"deleted_row_indices"`
}

// SingletonEqualitiesEntry is the journal fragment eliminate_singleton_equalities
// contributes: one VarElimination and one solved value per eliminated
// variable, keyed by variable name.
type SingletonEqualitiesEntry struct {
	PerVariable map[string]VarElimination `json:"per_variable"`
	Solutions   map[string]float64        `json:"solutions"`
}

// KtonSolution records a k-ton equality's back-substitution formula: the
// eliminated variable equals RHS - sum(LHS[i]*Variables[i]), where
// Variables/LHS list the surviving variables the row still references and
// their coefficients, in row order, taken from the pivot row after it was
// scaled so the pivot coefficient is 1.
type KtonSolution struct {
	LHS       []float64 `json:"lhs"`
	RHS       float64   `json:"rhs"`
	Variables []string  `json:"variables"`
}

// KtonEqualitiesEntry is the journal fragment eliminate_kton_equalities
// contributes, mirroring SingletonEqualitiesEntry but with a full
// back-substitution formula instead of a single scalar per variable.
type KtonEqualitiesEntry struct {
	PerVariable map[string]VarElimination `json:"per_variable"`
	Solutions   map[string]KtonSolution   `json:"solutions"`
}

// DeletedRowsColsEntry is the journal fragment shared by the three rules
// that delete a column and a row together without recording a solved
// value: singleton inequalities, dual singleton inequalities, and
// redundant columns.
type DeletedRowsColsEntry struct {
	DeletedVariablesIndices []int `json:"deleted_variables_indices"`
	DeletedRowsIndices      []int `json:"deleted_rows_indices"`
}

// DeletedRowsEntry is the journal fragment shared by the two rules that
// delete rows only: implied bounds and redundant rows.
type DeletedRowsEntry struct {
	DeletedRowsIndices []int `json:"deleted_rows_indices"`
}

// ZeroColumnsEntry is eliminate_zero_columns' journal fragment: the
// deleted column indices and the fixed value assigned to each (0 when
// c[j] >= 0 — the only branch that deletes a column, per spec.md §4.5).
type ZeroColumnsEntry struct {
	DeletedColumns []int              `json:"deleted_columns"`
	Solution       map[string]float64 `json:"solution"`
}

// ZeroRowsEntry is eliminate_zero_rows' journal fragment.
type ZeroRowsEntry struct {
	DeletedRowsIndices []int `json:"deleted_rows_indices"`
}
