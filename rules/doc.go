// Package rules implements the ten algebraic reduction rules of spec.md
// §4.4-§4.13. Each rule is a function taking the shared *lpstate.State
// (and whatever numeric parameters it needs), mutating it in place, and
// returning a journal fragment (nil if the rule found nothing to do)
// plus any warn.Warning values it raised.
//
// Only the singleton- and k-ton-equality rules are documented as
// internally iterating to a fixed point (spec.md §4.6, §4.7); the
// others scan the state once, act on every qualifying row/column found
// in that one pass, and return. A caller wanting deeper reduction
// across rule interactions reruns the orchestrator (spec.md §9,
// "Fixed-point iteration").
package rules

// Label values match the operation-table labels the orchestrator records
// after each rule runs (spec.md §3, "Operation table").
const (
	LabelSparsify                  = "Reduce Small Coefficients"
	LabelImpliedBounds             = "Eliminate Implied Bounds"
	LabelRedundantRows             = "Eliminate Redundant Rows"
	LabelKtonEqualities            = "Eliminate K-ton Equalities"
	LabelSingletonEqualities       = "Eliminate Singleton Equalities"
	LabelSingletonInequalities     = "Eliminate Singleton Inequalities"
	LabelDualSingletonInequalities = "Eliminate Dual Singleton Inequalities"
	LabelRedundantColumns          = "Eliminate Redundant Columns"
	LabelZeroRows                  = "Eliminate Zero Rows"
	LabelZeroColumns               = "Eliminate Zero Columns"
)
