package presolve

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/arborel/presolve-lp/journal"
)

// Journal fragment types are aliases of package journal's types: rules
// construct them directly (to avoid importing presolve, which would
// cycle back through run.go's calls into rules), and the public API here
// re-exports them so callers never need to import journal themselves.
type (
	VarElimination           = journal.VarElimination
	SingletonEqualitiesEntry = journal.SingletonEqualitiesEntry
	KtonSolution             = journal.KtonSolution
	KtonEqualitiesEntry      = journal.KtonEqualitiesEntry
	DeletedRowsColsEntry     = journal.DeletedRowsColsEntry
	DeletedRowsEntry         = journal.DeletedRowsEntry
	ZeroColumnsEntry         = journal.ZeroColumnsEntry
	ZeroRowsEntry            = journal.ZeroRowsEntry
)

// ChangeJournal accumulates one fragment per rule that actually fired
// during a Run. A nil field means that rule either was disabled or fired
// zero times; AsMap omits nil fields so the exported map only ever
// contains keys for rules that changed something, matching the
// prototype's dict-of-dicts that simply never gains a key it has no
// data for.
type ChangeJournal struct {
	ZeroRows                  *ZeroRowsEntry
	ZeroColumns               *ZeroColumnsEntry
	SingletonEqualities       *SingletonEqualitiesEntry
	KtonEqualities            *KtonEqualitiesEntry
	SingletonInequalities     *DeletedRowsColsEntry
	DualSingletonInequalities *DeletedRowsColsEntry
	RedundantColumns          *DeletedRowsColsEntry
	ImpliedBounds             *DeletedRowsEntry
	RedundantRows             *DeletedRowsEntry
}

// AsMap renders the journal using spec.md §6's exact snake_case keys, for
// callers that want to inspect or serialize it without depending on the
// Go struct shapes above.
func (j *ChangeJournal) AsMap() map[string]interface{} {
	out := make(map[string]interface{})
	if j.ZeroRows != nil {
		out["eliminate_zero_rows"] = j.ZeroRows
	}
	if j.ZeroColumns != nil {
		out["eliminate_zero_columns"] = j.ZeroColumns
	}
	if j.SingletonEqualities != nil {
		out["eliminate_singleton_equalities"] = j.SingletonEqualities
	}
	if j.KtonEqualities != nil {
		out["eliminate_kton_equalities"] = j.KtonEqualities
	}
	if j.SingletonInequalities != nil {
		out["eliminate_singleton_inequalities"] = j.SingletonInequalities
	}
	if j.DualSingletonInequalities != nil {
		out["eliminate_dual_singleton_inequalities"] = j.DualSingletonInequalities
	}
	if j.RedundantColumns != nil {
		out["eliminate_redundant_columns"] = j.RedundantColumns
	}
	if j.ImpliedBounds != nil {
		out["eliminate_implied_bounds"] = j.ImpliedBounds
	}
	if j.RedundantRows != nil {
		out["eliminate_redundant_rows"] = j.RedundantRows
	}
	return out
}

// MarshalCBOR serializes the journal via its AsMap form, using
// github.com/fxamacker/cbor/v2 with its default encoding options, which
// do not sort map keys, so the byte order of map entries can differ
// between calls.
func (j *ChangeJournal) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(j.AsMap())
}

// OperationRow is one line of the operation table spec.md §6 requires:
// the label of the step just applied and the resulting matrix shape.
type OperationRow struct {
	Label string
	Rows  int
	Cols  int
	NNZ   int
}

// OperationTable is the ordered sequence of OperationRow entries a Run
// produces, starting with the "Initial" row recorded before any rule
// runs.
type OperationTable []OperationRow

// Append records a new row in the table.
func (t *OperationTable) Append(label string, rows, cols, nnz int) {
	*t = append(*t, OperationRow{Label: label, Rows: rows, Cols: cols, NNZ: nnz})
}

// RunReport is everything Run returns: the run's identity, the resulting
// change journal, the operation table, and any warnings raised along the
// way.
type RunReport struct {
	RunID      uuid.UUID
	Journal    *ChangeJournal
	Operations OperationTable
	Warnings   Warnings
}
