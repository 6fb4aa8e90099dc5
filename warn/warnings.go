package warn

import (
	"fmt"

	"go.uber.org/multierr"
)

// Kind classifies a non-fatal condition the engine discovered while
// reducing the problem (spec.md §7). Neither kind aborts the run.
type Kind int

const (
	// Infeasibility marks a structural condition proving the LP has no
	// feasible point (e.g. a zero row with positive RHS).
	Infeasibility Kind = iota
	// Unboundedness marks a structural condition proving the objective is
	// unbounded in the feasible region (e.g. a free column with negative
	// cost).
	Unboundedness
)

// String renders the warning kind for logging and journal export.
func (k Kind) String() string {
	switch k {
	case Infeasibility:
		return "infeasibility"
	case Unboundedness:
		return "unboundedness"
	default:
		return "unknown"
	}
}

// Warning is a single non-fatal finding emitted by a rule. Rule is the
// operation-table label of the rule that raised it (e.g.
// "Eliminate Zero Rows"); RowOrCol is the current-state row or column
// index the finding is about (-1 when the warning isn't about a single
// row/column); Detail is a short human-readable explanation.
type Warning struct {
	Kind     Kind
	Rule     string
	RowOrCol int
	Detail   string
}

// Error implements the error interface so a Warning can be folded into a
// combined error via Warnings.Combined without a separate adapter type.
func (w Warning) Error() string {
	return fmt.Sprintf("%s: %s: %s", w.Rule, w.Kind, w.Detail)
}

// Warnings is the ordered list of Warning values a Run accumulated.
type Warnings []Warning

// Combined folds every Warning into a single error via go.uber.org/multierr,
// or returns nil if there are none — a convenience for callers that want
// a single errors.Is-style check ("did anything go wrong") without
// inspecting the slice themselves. The underlying Warning values remain
// available on the RunReport regardless.
func (ws Warnings) Combined() error {
	var err error
	for _, w := range ws {
		err = multierr.Append(err, w)
	}
	return err
}

// HasKind reports whether any warning of the given kind was recorded.
func (ws Warnings) HasKind(k Kind) bool {
	for _, w := range ws {
		if w.Kind == k {
			return true
		}
	}
	return false
}
