// Package activity computes per-row support and activity bounds (spec.md
// §4.2): SUPP (the set of nonzero columns), INF (the row's minimum
// attainable value given variable bounds), and SUP (its maximum). These
// feed the implied-bound redundancy rule (rules.EliminateImpliedBounds)
// and are otherwise read-only analyses over a *lpstate.State — they never
// mutate it.
package activity
