package presolve

import "go.uber.org/zap"

// Config is the constructor configuration spec.md §6 describes: one
// boolean per rule (default false — an engine with every rule disabled is
// a deliberate, valid no-op configuration, matching the prototype's
// constructor defaults), plus the shared numeric parameters.
type Config struct {
	EliminateZeroRows                  bool
	EliminateZeroColumns               bool
	EliminateSingletonEqualities       bool
	EliminateKtonEqualities            bool
	EliminateSingletonInequalities     bool
	EliminateDualSingletonInequalities bool
	EliminateRedundantColumns          bool
	EliminateImpliedBounds             bool
	EliminateRedundantRows             bool
	ReduceSmallCoefficients            bool

	// K is the k-ton equality rule's nonzero-count parameter.
	K int

	// FeasibilityTolerance is the slack used by the implied-bound rule.
	FeasibilityTolerance float64

	// Infinity is the magnitude past which a bound is treated as unbounded.
	Infinity float64

	// SparsificationThreshold is the normalized-magnitude cutoff small-
	// coefficient sparsification zeros below.
	SparsificationThreshold float64

	// TrustImpliedBoundRedundancy controls the open-question branch noted
	// in spec.md §9: when true (the default, matching the prototype), a
	// row whose INF exceeds its RHS is deleted as "redundant given caller
	// intent"; when false, the engine instead raises an Infeasibility
	// Warning and leaves the row in place. See SPEC_FULL.md §8.
	TrustImpliedBoundRedundancy bool

	// Logger receives one Debug entry per rule pass and one Warn entry per
	// Warning raised. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultK is the k-ton equality rule's default nonzero-count parameter.
const DefaultK = 5

// DefaultFeasibilityTolerance is spec.md §6's default tolerance.
const DefaultFeasibilityTolerance = 1e-6

// DefaultInfinity is spec.md §6's default "treat as unbounded" magnitude.
const DefaultInfinity = 1e30

// DefaultSparsificationThreshold is spec.md §6's default threshold.
const DefaultSparsificationThreshold = 0.5

// Option configures a Config. Functional options mirror the pack's
// matrix.Option / tsp.Options convention: constructors only ever set a
// field, they never validate (there is nothing to validate for a bool or
// a tolerance — NewConfig's zero-value-safe defaults make every Config
// constructible without error).
type Option func(*Config)

// WithRule enables or disables every one of the ten rules at once — a
// convenience for "run the whole pipeline" callers and property tests.
func WithRule(enabled bool) Option {
	return func(c *Config) {
		c.EliminateZeroRows = enabled
		c.EliminateZeroColumns = enabled
		c.EliminateSingletonEqualities = enabled
		c.EliminateKtonEqualities = enabled
		c.EliminateSingletonInequalities = enabled
		c.EliminateDualSingletonInequalities = enabled
		c.EliminateRedundantColumns = enabled
		c.EliminateImpliedBounds = enabled
		c.EliminateRedundantRows = enabled
		c.ReduceSmallCoefficients = enabled
	}
}

// WithEliminateZeroRows toggles zero-row elimination (spec.md §4.4).
func WithEliminateZeroRows(enabled bool) Option {
	return func(c *Config) { c.EliminateZeroRows = enabled }
}

// WithEliminateZeroColumns toggles zero-column elimination (spec.md §4.5).
func WithEliminateZeroColumns(enabled bool) Option {
	return func(c *Config) { c.EliminateZeroColumns = enabled }
}

// WithEliminateSingletonEqualities toggles spec.md §4.6.
func WithEliminateSingletonEqualities(enabled bool) Option {
	return func(c *Config) { c.EliminateSingletonEqualities = enabled }
}

// WithEliminateKtonEqualities toggles spec.md §4.7.
func WithEliminateKtonEqualities(enabled bool) Option {
	return func(c *Config) { c.EliminateKtonEqualities = enabled }
}

// WithEliminateSingletonInequalities toggles spec.md §4.8.
func WithEliminateSingletonInequalities(enabled bool) Option {
	return func(c *Config) { c.EliminateSingletonInequalities = enabled }
}

// WithEliminateDualSingletonInequalities toggles spec.md §4.9.
func WithEliminateDualSingletonInequalities(enabled bool) Option {
	return func(c *Config) { c.EliminateDualSingletonInequalities = enabled }
}

// WithEliminateRedundantColumns toggles spec.md §4.10.
func WithEliminateRedundantColumns(enabled bool) Option {
	return func(c *Config) { c.EliminateRedundantColumns = enabled }
}

// WithEliminateImpliedBounds toggles spec.md §4.11.
func WithEliminateImpliedBounds(enabled bool) Option {
	return func(c *Config) { c.EliminateImpliedBounds = enabled }
}

// WithEliminateRedundantRows toggles spec.md §4.12.
func WithEliminateRedundantRows(enabled bool) Option {
	return func(c *Config) { c.EliminateRedundantRows = enabled }
}

// WithReduceSmallCoefficients toggles spec.md §4.13.
func WithReduceSmallCoefficients(enabled bool) Option {
	return func(c *Config) { c.ReduceSmallCoefficients = enabled }
}

// WithK sets the k-ton rule's nonzero-count parameter.
func WithK(k int) Option {
	return func(c *Config) { c.K = k }
}

// WithFeasibilityTolerance overrides the implied-bound rule's tolerance.
func WithFeasibilityTolerance(tol float64) Option {
	return func(c *Config) { c.FeasibilityTolerance = tol }
}

// WithInfinity overrides the "treat as unbounded" magnitude.
func WithInfinity(inf float64) Option {
	return func(c *Config) { c.Infinity = inf }
}

// WithSparsificationThreshold overrides the sparsification cutoff.
func WithSparsificationThreshold(threshold float64) Option {
	return func(c *Config) { c.SparsificationThreshold = threshold }
}

// WithTrustImpliedBoundRedundancy overrides the open-question branch
// documented on Config.TrustImpliedBoundRedundancy.
func WithTrustImpliedBoundRedundancy(trust bool) Option {
	return func(c *Config) { c.TrustImpliedBoundRedundancy = trust }
}

// WithLogger overrides the Config's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// NewConfig constructs a Config with every rule disabled and the spec's
// documented defaults, then applies opts in order.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		K:                           DefaultK,
		FeasibilityTolerance:        DefaultFeasibilityTolerance,
		Infinity:                    DefaultInfinity,
		SparsificationThreshold:     DefaultSparsificationThreshold,
		TrustImpliedBoundRedundancy: true,
		Logger:                      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
