// Package presolve implements the core presolve engine for a linear
// program in standard matrix form: given (A, b, c, co, lb, ub, of_sense,
// cons_senses, variable_names), it repeatedly applies algebraic reduction
// rules that shrink the constraint matrix and variable vector while
// preserving optimality, flags infeasibility/unboundedness as non-fatal
// warnings, and records a reversible change journal sufficient for a
// downstream postsolve step (not implemented here) to reconstruct a
// solution to the original problem.
//
// Run is the entry point. Config selects which of the ten rules (package
// rules) are enabled and in what numeric tolerances they operate; State
// (package lpstate) is the bundled, mutable record every rule shares.
//
// The engine has no file, socket, or environment surface: constructing a
// State from an LP/MPS file, a solver model, or any other external format
// is the caller's job.
package presolve
