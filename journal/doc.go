// Package journal defines the per-rule change-journal fragment types
// (spec.md §6). It is a leaf package so that package rules (which
// produces these fragments) and the root presolve package (which
// aggregates them into a ChangeJournal) can both depend on the same
// types without a cyclic import between rules and presolve.
package journal
