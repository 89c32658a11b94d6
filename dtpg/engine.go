package dtpg

import (
	"fmt"
	"sort"
	"time"

	"github.com/dtpgcore/tpg/activation"
	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
	"github.com/dtpgcore/tpg/dchain"
	"github.com/dtpgcore/tpg/dtpgcfg"
	"github.com/dtpgcore/tpg/dtpgstats"
	"github.com/dtpgcore/tpg/extract"
	"github.com/dtpgcore/tpg/fault"
	"github.com/dtpgcore/tpg/gateenc"
	"github.com/dtpgcore/tpg/justify"
	"github.com/dtpgcore/tpg/structindex"
)

// Engine drives one (Network, FaultSet, Index) triple through the
// cone/gateenc/dchain/activation/cnfsat/extract/justify pipeline,
// one fault (or one MFFC batch) at a time.
type Engine struct {
	net *circuit.Network
	fs  *fault.FaultSet
	idx *structindex.Index
	cfg dtpgcfg.Config

	mode            Mode
	faultModel      circuit.FaultModel
	justifyStrategy JustifyStrategy
	newSolver       func() cnfsat.Solver
	limits          cnfsat.Limits
	stats           *dtpgstats.Report
}

// NewEngine returns an Engine over net/fs/idx, defaulting to FFRMode,
// circuit.StuckAt, SinglePathStrategy, the internal/satsolver-backed
// solver, and cfg's resource limits, then applying opts.
func NewEngine(net *circuit.Network, fs *fault.FaultSet, idx *structindex.Index, cfg dtpgcfg.Config, opts ...Option) *Engine {
	e := &Engine{
		net:             net,
		fs:              fs,
		idx:             idx,
		cfg:             cfg,
		mode:            FFRMode,
		faultModel:      circuit.StuckAt,
		justifyStrategy: SinglePathStrategy,
		newSolver:       defaultNewSolver,
		limits: cnfsat.Limits{
			ConflictLimit: cfg.ConflictLimit,
			TimeLimitNS:   int64(cfg.TimeLimit),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Solve builds a fresh encoding session rooted at id's own fault site,
// activates and propagates it according to e.mode, solves, and on Sat
// justifies a PPI test vector.
func (e *Engine) Solve(id fault.ID) (Result, error) {
	flt := e.fs.Fault(id)
	t0 := time.Now()

	f := cnfsat.NewFormula()
	c := cone.Build(e.net, f, flt.Node, e.faultModel)
	e.encodeSingleFault(f, c, flt)

	ffr := e.activationFFR(flt)
	assumptions := activation.Activate(e.net, c, ffr, flt)

	s := e.mirrorAndLoad(f)
	outcome, model, stats := s.Solve(assumptions, e.limits)
	wall := time.Since(t0)

	res := Result{FaultID: id, Stats: stats, Wall: wall}
	switch outcome {
	case cnfsat.Unsat:
		res.Outcome = dtpgstats.Untestable
	case cnfsat.Unknown:
		res.Outcome = dtpgstats.Aborted
	case cnfsat.Sat:
		res.Outcome = dtpgstats.Detected
		res.Sufficient = extract.Single(e.net, c, model)
		res.Vector = e.justify(c, model, flt, res.Sufficient)
	}

	if e.stats != nil {
		e.stats.Record(res.Outcome, stats, wall)
	}
	e.cfg.Tracef("dtpg: fault %s -> %s (%d conflicts, %s)", flt, res.Outcome, stats.Conflicts, wall)
	return res, nil
}

// SolveMFFC solves every representative fault contained in mffcID's member
// FFRs by building exactly ONE cone, CNF, and solver for the whole MFFC:
// the control-variable construction (activation.
// BuildMFFCControls) makes every FFR root's faulty-side wiring and every
// interior node's plain propagation fault-independent, so the per-fault
// loop below varies only its assumption set — mc.Assumptions(ffr.Root) plus
// that fault's own FFR-activation literals — against the one shared
// solver, never rebuilding the cone — encoding cost is paid once per MFFC
// instead of once per fault.
func (e *Engine) SolveMFFC(mffcID structindex.MFFCID) ([]Result, error) {
	mffc := e.idx.MFFC(mffcID)
	roots := make([]circuit.NodeID, 0, len(mffc.FFRs))
	for _, fid := range mffc.FFRs {
		roots = append(roots, e.idx.FFR(fid).Root)
	}

	f := cnfsat.NewFormula()
	c := cone.BuildMulti(e.net, f, roots, e.faultModel)
	mc := e.encodeSharedMFFC(f, c, mffc, roots)
	s := e.mirrorAndLoad(f)

	var results []Result
	for _, fid := range mffc.FFRs {
		ffr := e.idx.FFR(fid)
		for _, fi := range ffr.Faults {
			results = append(results, e.solveSharedMFFCFault(s, c, mc, ffr, fault.ID(fi), mffcID))
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].FaultID < results[j].FaultID })
	return results, nil
}

// encodeSharedMFFC emits the MFFC-wide base CNF into f: good-circuit CNF
// for every node in c.Order(), then, for every TFO node, either the
// control-gated g'(root) wiring (BuildMFFCControls' roots) or plain
// fault-independent propagation (everyone else), plus the D-chain and the
// generic (no single fault site) detection axiom.
func (e *Engine) encodeSharedMFFC(f *cnfsat.Formula, c *cone.Cone, mffc *structindex.MFFC, roots []circuit.NodeID) *activation.MFFCControls {
	for _, n := range c.Order() {
		gateenc.Encode(f, gateenc.GateFor(e.net.Node(n)), c.GLitMap(n))
	}

	mc := activation.BuildMFFCControls(f, e.net, c, mffc, e.idx.FFRs())
	isRoot := make(map[circuit.NodeID]bool, len(roots))
	for _, r := range roots {
		isRoot[r] = true
	}

	for _, n := range c.Order() {
		if !c.InTFO(n) {
			continue
		}
		gate := gateenc.GateFor(e.net.Node(n))
		if isRoot[n] {
			gateenc.Encode(f, gate, mc.GPrimeLitMap(c, n))
		} else {
			gateenc.Encode(f, gate, c.FLitMap(n))
		}
	}
	for _, n := range c.PrevOrder() {
		gateenc.Encode(f, gateenc.GateFor(e.net.Node(n)), c.HLitMap(n))
	}
	dchain.EmitClauses(f, e.net, c, e.idx)
	dchain.AssertObservability(f, c)
	return mc
}

// solveSharedMFFCFault solves id against the MFFC-wide shared solver s,
// varying only its assumption set against the shared cone c: extraction and justification read directly off c and model,
// exactly as Solve's standalone path does, except the D-frontier back-walk
// must stop at flt's own node rather than c.Root() (an arbitrary
// representative root in a multi-root cone, not this fault's site).
func (e *Engine) solveSharedMFFCFault(s cnfsat.Solver, c *cone.Cone, mc *activation.MFFCControls, ffr *structindex.FFR, id fault.ID, mffcID structindex.MFFCID) Result {
	flt := e.fs.Fault(id)
	t0 := time.Now()

	assumptions := append(mc.Assumptions(ffr.Root), activation.Activate(e.net, c, ffr, flt)...)
	outcome, model, stats := s.Solve(assumptions, e.limits)
	wall := time.Since(t0)

	res := Result{FaultID: id, Stats: stats, Wall: wall}
	switch outcome {
	case cnfsat.Unsat:
		res.Outcome = dtpgstats.Untestable
	case cnfsat.Unknown:
		res.Outcome = dtpgstats.Aborted
	case cnfsat.Sat:
		res.Outcome = dtpgstats.Detected
		res.Sufficient = extract.SingleFrom(e.net, c, model, flt.Node)
		res.Vector = e.justify(c, model, flt, res.Sufficient)
	}

	if e.stats != nil {
		e.stats.Record(res.Outcome, stats, wall)
	}
	e.cfg.Tracef("dtpg: MFFC %d fault %s -> %s (%d conflicts, %s)", mffcID, flt, res.Outcome, stats.Conflicts, wall)
	return res
}

// SolveInMFFC solves id after checking its containing FFR is a member of
// mffcID, returning ErrInvalidScope otherwise.
func (e *Engine) SolveInMFFC(mffcID structindex.MFFCID, id fault.ID) (Result, error) {
	flt := e.fs.Fault(id)
	ffr := e.idx.FFRContaining(flt.Node)
	mffc := e.idx.MFFC(mffcID)

	member := false
	for _, fid := range mffc.FFRs {
		if fid == ffr.ID {
			member = true
			break
		}
	}
	if !member {
		return Result{}, fmt.Errorf("%w: fault %s (FFR %d) is not a member of MFFC %d", ErrInvalidScope, flt, ffr.ID, mffcID)
	}
	return e.Solve(id)
}

// encodeSingleFault emits the good-circuit CNF for every node in c.Order(),
// the faulty-circuit CNF for every TFO node (flt's own site via
// gateenc.EncodeFaulty, everything else via plain gateenc.Encode), the
// PrevTFI good-circuit CNF for delay faults, and the D-chain.
func (e *Engine) encodeSingleFault(f *cnfsat.Formula, c *cone.Cone, flt fault.Fault) {
	for _, n := range c.Order() {
		nd := e.net.Node(n)
		gate := gateenc.GateFor(nd)
		gateenc.Encode(f, gate, c.GLitMap(n))
		if !c.InTFO(n) {
			continue
		}
		if n == flt.Node {
			gateenc.EncodeFaulty(f, gate, c.FLitMap(n), flt)
		} else {
			gateenc.Encode(f, gate, c.FLitMap(n))
		}
	}
	for _, n := range c.PrevOrder() {
		gateenc.Encode(f, gateenc.GateFor(e.net.Node(n)), c.HLitMap(n))
	}
	dchain.Emit(f, e.net, c, e.idx)
}

// Faults returns every fault ID in e.fs's collapsed fault list, in ID order.
// When di is non-nil, any fault dominated (fault.DominanceIndex.Dominates)
// by a fault already present in detected is skipped: collapsing only merges
// equivalent faults, but a dominated fault whose dominator is
// already known Detected need not be solved on its own.
// This is a pure pre-filter; every fault it returns still gets its own
// independent Solve call and verdict.
func (e *Engine) Faults(di *fault.DominanceIndex, detected map[fault.ID]bool) []fault.ID {
	all := e.fs.Faults()
	out := make([]fault.ID, 0, len(all))
	for _, f := range all {
		if di != nil && isDominated(di, f.ID, detected) {
			continue
		}
		out = append(out, f.ID)
	}
	return out
}

// isDominated reports whether any id in detected dominates target.
func isDominated(di *fault.DominanceIndex, target fault.ID, detected map[fault.ID]bool) bool {
	for d := range detected {
		if di.Dominates(d, target) {
			return true
		}
	}
	return false
}

// activationFFR returns the FFR activation.Activate should walk a chain
// toward: the fault's real containing FFR in FFRMode/MFFCMode (full chain
// walk to that FFR's root), or a synthetic single-node FFR in
// SingleNodeMode (zero-length walk, flt.Node stands in as its own root).
func (e *Engine) activationFFR(flt fault.Fault) *structindex.FFR {
	if e.mode == SingleNodeMode {
		return &structindex.FFR{Root: flt.Node}
	}
	return e.idx.FFRContaining(flt.Node)
}

// justify converts a Sat model into a circuit.TestVector: targets are the
// sensitized output's sufficient-condition literals (term) plus flt's own
// node, whose "differs" back-trace recovers the PPI assignment activating
// the fault.
func (e *Engine) justify(c *cone.Cone, model cnfsat.Model, flt fault.Fault, term extract.Term) circuit.TestVector {
	targets := make([]justify.Cell, 0, len(term)+1)
	for _, lit := range term {
		targets = append(targets, justify.Cell{Node: lit.Node, Time: 1})
	}
	targets = append(targets, justify.Cell{Node: flt.Node, Time: 1})
	if e.faultModel == circuit.TransitionDelay {
		targets = append(targets, justify.Cell{Node: faultSignal(e.net, flt), Time: 0})
	}

	var assigns []justify.Assignment
	switch e.justifyStrategy {
	case AllPathStrategy:
		assigns = justify.AllPath(e.net, c, model, targets)
	case NaiveStrategy:
		assigns = justify.Naive(e.net, c, model, targets)
	default:
		assigns = justify.SinglePath(e.net, c, model, targets)
	}

	tv := circuit.NewTestVector()
	for _, a := range assigns {
		tv.Set(a.Node, a.Time, a.Value)
	}
	return tv
}

// faultSignal returns the faulted signal's node: the fault's own node for a
// Stem fault, or the driver of the faulted input pin for a Branch fault —
// the signal whose frame-0 value launches a transition fault.
func faultSignal(net *circuit.Network, flt fault.Fault) circuit.NodeID {
	if flt.Kind() == fault.Stem {
		return flt.Node
	}
	return net.Fanin(flt.Node)[flt.Pin]
}

// mirrorAndLoad allocates f.NumVars() fresh variables on a new solver, then
// loads f's clauses. A Formula and a concrete Solver each keep their own
// NewVar counter, so this mirroring step must run before any clause is
// pushed — the identity var-space mapping cnfsat.LoadFormula's doc comment
// requires.
func (e *Engine) mirrorAndLoad(f *cnfsat.Formula) cnfsat.Solver {
	s := e.newSolver()
	for i := cnfsat.Var(0); i < f.NumVars(); i++ {
		s.NewVar()
	}
	cnfsat.LoadFormula(s, f)
	return s
}
