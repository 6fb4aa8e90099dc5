package lpstate

import "github.com/arborel/presolve-lp/sparse"

// Sense is a constraint row's relational operator.
type Sense int

const (
	LE Sense = iota // <=
	GE              // >=
	EQ              // native equality
)

// String renders the conventional mathematical symbol.
func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Objective is the optimization direction. Rules never change it (spec.md
// §8: "No rule changes of_sense").
type Objective int

const (
	Minimize Objective = iota
	Maximize
)

// State is the single mutable record every reduction rule operates on
// (spec.md §3). Field names mirror the spec's matrix-tuple names.
type State struct {
	A *sparse.Matrix

	B  []float64
	C  []float64
	Co float64

	LB []float64
	UB []float64

	OfSense    Objective
	ConsSenses []Sense

	VarNames []string

	// OrigRowIndex/OrigColIndex map a current row/column to its index in
	// the pre-reduction problem (spec.md §3: "injections into the initial
	// [0,m0) and [0,n0)").
	OrigRowIndex []int
	OrigColIndex []int
}

// NewState constructs a State from an external matrix tuple (the LP
// file-reader / matrix-extraction shim is out of scope, per spec.md §1;
// this is the one constructor external callers use to hand the engine a
// problem). OrigRowIndex/OrigColIndex are seeded to range(m)/range(n), the
// same seeding the prototype's load_model_matrices performs.
func NewState(
	a *sparse.Matrix,
	b []float64,
	c []float64,
	co float64,
	lb []float64,
	ub []float64,
	ofSense Objective,
	consSenses []Sense,
	varNames []string,
) (*State, error) {
	if a == nil {
		return nil, ErrNilState
	}
	m, n := a.Rows(), a.Cols()
	if len(b) != m || len(consSenses) != m {
		return nil, ErrDimensionMismatch
	}
	if len(c) != n || len(lb) != n || len(ub) != n || len(varNames) != n {
		return nil, ErrDimensionMismatch
	}

	origRows := make([]int, m)
	for i := range origRows {
		origRows[i] = i
	}
	origCols := make([]int, n)
	for j := range origCols {
		origCols[j] = j
	}

	return &State{
		A:            a,
		B:            append([]float64(nil), b...),
		C:            append([]float64(nil), c...),
		Co:           co,
		LB:           append([]float64(nil), lb...),
		UB:           append([]float64(nil), ub...),
		OfSense:      ofSense,
		ConsSenses:   append([]Sense(nil), consSenses...),
		VarNames:     append([]string(nil), varNames...),
		OrigRowIndex: origRows,
		OrigColIndex: origCols,
	}, nil
}

// Rows reports the current number of constraint rows.
func (s *State) Rows() int { return s.A.Rows() }

// Cols reports the current number of variables/columns.
func (s *State) Cols() int { return s.A.Cols() }

// NNZ reports the current number of nonzeros in A.
func (s *State) NNZ() int { return s.A.NNZ() }

// Clone returns a deep copy, useful for idempotence/no-op assertions
// (spec.md §8: "re-running the orchestrator on its own output is a
// no-op") without mutating the original.
func (s *State) Clone() *State {
	return &State{
		A:            s.A.Clone(),
		B:            append([]float64(nil), s.B...),
		C:            append([]float64(nil), s.C...),
		Co:           s.Co,
		LB:           append([]float64(nil), s.LB...),
		UB:           append([]float64(nil), s.UB...),
		OfSense:      s.OfSense,
		ConsSenses:   append([]Sense(nil), s.ConsSenses...),
		VarNames:     append([]string(nil), s.VarNames...),
		OrigRowIndex: append([]int(nil), s.OrigRowIndex...),
		OrigColIndex: append([]int(nil), s.OrigColIndex...),
	}
}
