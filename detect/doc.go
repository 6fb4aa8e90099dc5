// Package detect implements the structural pattern detectors spec.md §4.3
// describes: negative-counterpart pairing (the engine's way of recognizing
// an equality encoded as two opposed <= rows), k-ton row location, and
// linear-dependency grouping among rows. These are read-only analyses over
// a *lpstate.State consumed by package rules.
package detect
