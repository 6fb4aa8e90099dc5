// Package lpstate bundles the LP matrices and vectors the presolve engine
// mutates (spec.md §3) into a single owned State record, replacing the
// instance-field-as-global-state style of the prototype this engine is
// based on. Every reduction rule in package rules takes a *State, mutates
// it in place through the housekeeping helpers here (DeleteRows/DeleteCols),
// and leaves every invariant in §3 — dimensional consistency, original-index
// injectivity — intact on return.
package lpstate
