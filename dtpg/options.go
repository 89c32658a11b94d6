package dtpg

import (
	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/dtpgstats"
	"github.com/dtpgcore/tpg/internal/satsolver"
)

// Option configures an Engine, applied in NewEngine after its defaults.
// Structural scope, fault model, and justification strategy are engine-level
// configuration, not per-call parameters.
type Option func(*Engine)

// WithMode overrides the default FFRMode.
func WithMode(m Mode) Option {
	return func(e *Engine) { e.mode = m }
}

// WithFaultModel overrides the default circuit.StuckAt.
func WithFaultModel(fm circuit.FaultModel) Option {
	return func(e *Engine) { e.faultModel = fm }
}

// WithJustifyStrategy overrides the default SinglePathStrategy.
func WithJustifyStrategy(s JustifyStrategy) Option {
	return func(e *Engine) { e.justifyStrategy = s }
}

// WithSolverFactory overrides the default internal/satsolver-backed solver,
// letting a caller plug in a different cnfsat.Solver implementation.
func WithSolverFactory(f func() cnfsat.Solver) Option {
	return func(e *Engine) { e.newSolver = f }
}

// WithLimits bounds every Solve call's conflict/time budget.
func WithLimits(l cnfsat.Limits) Option {
	return func(e *Engine) { e.limits = l }
}

// WithStats attaches a report every Solve call records its outcome and
// solver statistics into.
func WithStats(r *dtpgstats.Report) Option {
	return func(e *Engine) { e.stats = r }
}

func defaultNewSolver() cnfsat.Solver { return satsolver.New() }
