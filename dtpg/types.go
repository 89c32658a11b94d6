package dtpg

import (
	"time"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/dtpgstats"
	"github.com/dtpgcore/tpg/extract"
	"github.com/dtpgcore/tpg/fault"
)

// Mode selects the structural scope an Engine activates and propagates a
// fault within.
type Mode int

const (
	// FFRMode activates and propagates within the fault's containing
	// fan-out-free region, walking its single-fanout chain up to the FFR
	// root before asserting detection.
	FFRMode Mode = iota
	// MFFCMode groups every fault in a maximal fan-out-free cone behind one
	// shared multi-root control-variable encoding; SolveMFFC is the batch
	// entry point for this mode.
	MFFCMode
	// SingleNodeMode activates at the fault's own site only, with no chain
	// walk (the fault's node stands in as its own FFR root) — the legacy
	// mode justify.Naive exists to serve.
	SingleNodeMode
)

func (m Mode) String() string {
	switch m {
	case MFFCMode:
		return "MFFCMode"
	case SingleNodeMode:
		return "SingleNodeMode"
	default:
		return "FFRMode"
	}
}

// JustifyStrategy selects which back-trace algorithm Solve uses to recover
// a PPI test vector from a satisfying model.
type JustifyStrategy int

const (
	// SinglePathStrategy picks one controlling input per choice point.
	SinglePathStrategy JustifyStrategy = iota
	// AllPathStrategy evaluates every valid input per choice point and keeps
	// whichever recursion yields the fewest PPI assignments.
	AllPathStrategy
	// NaiveStrategy recurses every fanin of every visited node, with no
	// memoization and no controlling-value dispatch.
	NaiveStrategy
)

func (s JustifyStrategy) String() string {
	switch s {
	case AllPathStrategy:
		return "AllPathStrategy"
	case NaiveStrategy:
		return "NaiveStrategy"
	default:
		return "SinglePathStrategy"
	}
}

// Result is one fault's test-generation outcome.
type Result struct {
	FaultID fault.ID
	Outcome dtpgstats.Outcome

	// Vector is the justified PPI assignment. Populated only when Outcome
	// is Detected.
	Vector circuit.TestVector
	// Sufficient is the sensitized-output condition Vector was justified
	// from. Populated only when Outcome is Detected.
	Sufficient extract.Term

	Stats cnfsat.Stats
	Wall  time.Duration
}
