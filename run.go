package presolve

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arborel/presolve-lp/lpstate"
	"github.com/arborel/presolve-lp/rules"
)

// Run drives the enabled rules over state in the fixed order spec.md
// §4.1 requires, mutating state in place and returning the resulting
// change journal, operation table, and warnings. state must already
// satisfy lpstate.State.Validate.
//
// The ordering is contractual, not incidental: sparsification runs first
// so coefficients zeroed as noise no longer inflate support counts for
// the structural rules that follow; zero-row/column cleanup runs last to
// absorb residue the earlier rules left behind.
func Run(cfg *Config, state *lpstate.State) (*RunReport, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &RunReport{
		RunID:   uuid.New(),
		Journal: &ChangeJournal{},
	}
	report.Operations.Append("Initial", state.Rows(), state.Cols(), state.NNZ())

	logger.Debug("presolve run starting",
		zap.String("run_id", report.RunID.String()),
		zap.Int("rows", state.Rows()),
		zap.Int("cols", state.Cols()),
	)

	record := func(label string) {
		report.Operations.Append(label, state.Rows(), state.Cols(), state.NNZ())
		logger.Debug("rule applied",
			zap.String("rule", label),
			zap.Int("rows", state.Rows()),
			zap.Int("cols", state.Cols()),
			zap.Int("nnz", state.NNZ()),
		)
	}
	collect := func(ws Warnings) {
		for _, w := range ws {
			logger.Warn("presolve warning",
				zap.String("rule", w.Rule),
				zap.String("kind", w.Kind.String()),
				zap.String("detail", w.Detail),
			)
		}
		report.Warnings = append(report.Warnings, ws...)
	}

	if cfg.ReduceSmallCoefficients {
		rules.ReduceSmallCoefficients(state, cfg.SparsificationThreshold)
		record(rules.LabelSparsify)
	}
	if cfg.EliminateImpliedBounds {
		entry, ws := rules.EliminateImpliedBounds(state, cfg.Infinity, cfg.FeasibilityTolerance, cfg.TrustImpliedBoundRedundancy)
		collect(ws)
		if entry != nil {
			report.Journal.ImpliedBounds = entry
		}
		record(rules.LabelImpliedBounds)
	}
	if cfg.EliminateRedundantRows {
		entry, ws := rules.EliminateRedundantRows(state, detectDependencyTolerance(cfg))
		collect(ws)
		if entry != nil {
			report.Journal.RedundantRows = entry
		}
		record(rules.LabelRedundantRows)
	}
	if cfg.EliminateKtonEqualities {
		entry, ws := rules.EliminateKtonEqualities(state, cfg.K)
		collect(ws)
		if entry != nil {
			report.Journal.KtonEqualities = entry
		}
		record(rules.LabelKtonEqualities)
	}
	if cfg.EliminateSingletonEqualities {
		entry, ws := rules.EliminateSingletonEqualities(state)
		collect(ws)
		if entry != nil {
			report.Journal.SingletonEqualities = entry
		}
		record(rules.LabelSingletonEqualities)
	}
	if cfg.EliminateSingletonInequalities {
		entry, ws := rules.EliminateSingletonInequalities(state)
		collect(ws)
		if entry != nil {
			report.Journal.SingletonInequalities = entry
		}
		record(rules.LabelSingletonInequalities)
	}
	if cfg.EliminateDualSingletonInequalities {
		entry, ws := rules.EliminateDualSingletonInequalities(state)
		collect(ws)
		if entry != nil {
			report.Journal.DualSingletonInequalities = entry
		}
		record(rules.LabelDualSingletonInequalities)
	}
	if cfg.EliminateRedundantColumns {
		entry, ws := rules.EliminateRedundantColumns(state)
		collect(ws)
		if entry != nil {
			report.Journal.RedundantColumns = entry
		}
		record(rules.LabelRedundantColumns)
	}
	if cfg.EliminateZeroRows {
		entry, ws := rules.EliminateZeroRows(state)
		collect(ws)
		if entry != nil {
			report.Journal.ZeroRows = entry
		}
		record(rules.LabelZeroRows)
	}
	if cfg.EliminateZeroColumns {
		entry, ws := rules.EliminateZeroColumns(state)
		collect(ws)
		if entry != nil {
			report.Journal.ZeroColumns = entry
		}
		record(rules.LabelZeroColumns)
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("presolve run finished",
		zap.String("run_id", report.RunID.String()),
		zap.Int("rows", state.Rows()),
		zap.Int("cols", state.Cols()),
		zap.Int("warnings", len(report.Warnings)),
	)

	return report, nil
}

// detectDependencyTolerance lets the redundant-row rule share the
// engine's feasibility tolerance rather than carrying a second
// configuration knob for what is, numerically, the same kind of slack.
func detectDependencyTolerance(cfg *Config) float64 {
	if cfg.FeasibilityTolerance > 0 {
		return cfg.FeasibilityTolerance
	}
	return 1e-6
}
