// Package warn defines the non-fatal finding type every rule in package
// rules can raise and the root presolve package collects. It exists as
// its own leaf package so that rules (which implements the ten
// reduction rules) and presolve (which orchestrates them) can both
// depend on the same Warning type without either depending on the
// other.
package warn
