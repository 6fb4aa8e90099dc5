package presolve_test

import (
	"testing"

	presolve "github.com/arborel/presolve-lp"
	"github.com/stretchr/testify/require"
)

func TestChangeJournal_AsMapOmitsUnsetRules(t *testing.T) {
	t.Parallel()
	j := &presolve.ChangeJournal{
		ZeroRows: &presolve.ZeroRowsEntry{DeletedRowsIndices: []int{2, 5}},
	}

	m := j.AsMap()
	require.Contains(t, m, "eliminate_zero_rows")
	require.NotContains(t, m, "eliminate_zero_columns")
	require.NotContains(t, m, "eliminate_singleton_equalities")
	require.Len(t, m, 1)
}

func TestChangeJournal_MarshalCBOREncodesNonEmpty(t *testing.T) {
	t.Parallel()
	j := &presolve.ChangeJournal{
		ZeroColumns: &presolve.ZeroColumnsEntry{
			DeletedColumns: []int{1},
			Solution:       map[string]float64{"x1": 0},
		},
	}

	data, err := j.MarshalCBOR()
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestOperationTable_Append(t *testing.T) {
	t.Parallel()
	var table presolve.OperationTable
	table.Append("Initial", 3, 4, 7)
	table.Append("Eliminate Zero Rows", 2, 4, 6)

	require.Len(t, table, 2)
	require.Equal(t, "Initial", table[0].Label)
	require.Equal(t, 2, table[1].Rows)
	require.Equal(t, 6, table[1].NNZ)
}
