package presolve

import "github.com/arborel/presolve-lp/warn"

// Kind, Warning, and Warnings are aliases of package warn's types: rules
// construct warn.Warning values directly (to avoid importing presolve,
// which would cycle back through run.go's calls into rules), and the
// public API here re-exports them under the presolve package so callers
// never need to import warn themselves.
type Kind = warn.Kind

const (
	Infeasibility = warn.Infeasibility
	Unboundedness = warn.Unboundedness
)

type Warning = warn.Warning

type Warnings = warn.Warnings
