package justify

import (
	"sort"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
	"github.com/dtpgcore/tpg/gateenc"
)

// Cell names one (node, time-frame) target or justified assignment. Time is
// 1 for the main g/f frame, 0 for the one-frame-earlier h frame (delay
// faults only).
type Cell struct {
	Node circuit.NodeID
	Time int
}

// Assignment is one justified PPI value.
type Assignment struct {
	Node  circuit.NodeID
	Time  int
	Value bool
}

func litValue(model cnfsat.Model, lit cnfsat.Lit) (bool, bool) {
	v, ok := model.Value(lit.Var())
	if !ok {
		return false, false
	}
	if lit.Negative() {
		v = !v
	}
	return v, true
}

func valueAt(c *cone.Cone, model cnfsat.Model, n circuit.NodeID, t int) (bool, bool) {
	var lit cnfsat.Lit
	var ok bool
	if t == 0 {
		lit, ok = c.HLit(n)
	} else {
		lit, ok = c.GLit(n)
	}
	if !ok {
		return false, false
	}
	return litValue(model, lit)
}

func faultyValueAt(c *cone.Cone, model cnfsat.Model, n circuit.NodeID) (bool, bool) {
	lit, ok := c.FLit(n)
	if !ok {
		return false, false
	}
	return litValue(model, lit)
}

func differs(c *cone.Cone, model cnfsat.Model, n circuit.NodeID) bool {
	gLit, ok := c.GLit(n)
	if !ok {
		return false
	}
	fLit, ok := c.FLit(n)
	if !ok || gLit == fLit {
		return false
	}
	gv, ok := litValue(model, gLit)
	if !ok {
		return false
	}
	fv, ok := litValue(model, fLit)
	if !ok {
		return false
	}
	return gv != fv
}

func dataFanin(net *circuit.Network, n circuit.NodeID) []circuit.NodeID {
	fanin := net.Fanin(n)
	out := make([]circuit.NodeID, 0, len(fanin))
	for _, fi := range fanin {
		if !net.Node(fi).IsControlPin() {
			out = append(out, fi)
		}
	}
	return out
}

// andOrAllBranch reports whether val on gate requires recursing into every
// input (And/Nand with output effectively 1; Or/Nor with output effectively
// 0), vs. a single controlling input justifying it.
func andOrAllBranch(gate circuit.GateType, val bool) bool {
	eff := val
	if gate.Inverts() {
		eff = !val
	}
	isAnd := gate == circuit.And || gate == circuit.Nand
	if isAnd {
		return eff
	}
	return !eff
}

// andOrWant returns the controlling value a single input must show to
// justify val when andOrAllBranch is false.
func andOrWant(gate circuit.GateType, val bool) bool {
	eff := val
	if gate.Inverts() {
		eff = !val
	}
	return eff
}

func sortAssignments(a []Assignment) {
	sort.Slice(a, func(i, j int) bool {
		if a[i].Node != a[j].Node {
			return a[i].Node < a[j].Node
		}
		return a[i].Time < a[j].Time
	})
}

// --- SinglePath -------------------------------------------------------

type singlePath struct {
	net     *circuit.Network
	c       *cone.Cone
	model   cnfsat.Model
	visited map[Cell]bool
	out     []Assignment
}

// SinglePath back-traces targets, picking one justifying input at each
// controlling-value choice point.
func SinglePath(net *circuit.Network, c *cone.Cone, model cnfsat.Model, targets []Cell) []Assignment {
	j := &singlePath{net: net, c: c, model: model, visited: make(map[Cell]bool)}
	for _, t := range targets {
		j.visit(t)
	}
	sortAssignments(j.out)
	return j.out
}

func (j *singlePath) visit(cell Cell) {
	if j.visited[cell] {
		return
	}
	j.visited[cell] = true

	n, t := cell.Node, cell.Time
	nd := j.net.Node(n)

	if nd.IsPPI() {
		if t == 1 && nd.Kind == circuit.StorageOutput && j.c.Model() == circuit.TransitionDelay {
			if din, ok := j.net.PairedInput(n); ok {
				j.visit(Cell{Node: din, Time: 0})
			}
			return
		}
		j.record(cell)
		return
	}

	if t == 1 && differs(j.c, j.model, n) {
		for _, fi := range dataFanin(j.net, n) {
			j.visit(Cell{Node: fi, Time: 1})
		}
		return
	}

	val, ok := valueAt(j.c, j.model, n, t)
	if !ok {
		return
	}
	j.dispatch(n, t, gateenc.GateFor(nd), val)
}

func (j *singlePath) record(cell Cell) {
	val, ok := valueAt(j.c, j.model, cell.Node, cell.Time)
	if !ok {
		return
	}
	j.out = append(j.out, Assignment{Node: cell.Node, Time: cell.Time, Value: val})
}

func (j *singlePath) dispatch(n circuit.NodeID, t int, gate circuit.GateType, val bool) {
	fanin := dataFanin(j.net, n)
	switch gate {
	case circuit.Buff, circuit.Not, circuit.Xor, circuit.Xnor:
		for _, fi := range fanin {
			j.visit(Cell{Node: fi, Time: t})
		}
	case circuit.And, circuit.Nand, circuit.Or, circuit.Nor:
		if andOrAllBranch(gate, val) {
			for _, fi := range fanin {
				j.visit(Cell{Node: fi, Time: t})
			}
			return
		}
		want := andOrWant(gate, val)
		if chosen, ok := j.pickControlling(fanin, t, want); ok {
			j.visit(Cell{Node: chosen, Time: t})
		}
	}
}

// pickControlling returns a fanin node valued want at time t, preferring
// one whose faulty-circuit value also equals want, so the same assignment
// justifies both circuits.
func (j *singlePath) pickControlling(fanin []circuit.NodeID, t int, want bool) (circuit.NodeID, bool) {
	var chosen circuit.NodeID
	found := false
	for _, fi := range fanin {
		v, ok := valueAt(j.c, j.model, fi, t)
		if !ok || v != want {
			continue
		}
		if !found {
			chosen, found = fi, true
		}
		if t == 1 {
			if fv, ok2 := faultyValueAt(j.c, j.model, fi); ok2 && fv == want {
				return fi, true
			}
		}
	}
	return chosen, found
}

// --- Naive -------------------------------------------------------------

// Naive back-traces targets by recursing into every fanin of every
// visited node, with no memoization and no controlling-value dispatch —
// the legacy back-tracer behind the engine's single-node mode.
func Naive(net *circuit.Network, c *cone.Cone, model cnfsat.Model, targets []Cell) []Assignment {
	var out []Assignment
	var walk func(cell Cell)
	walk = func(cell Cell) {
		n, t := cell.Node, cell.Time
		nd := net.Node(n)
		if nd.IsPPI() {
			if t == 1 && nd.Kind == circuit.StorageOutput && c.Model() == circuit.TransitionDelay {
				if din, ok := net.PairedInput(n); ok {
					walk(Cell{Node: din, Time: 0})
				}
				return
			}
			if val, ok := valueAt(c, model, n, t); ok {
				out = append(out, Assignment{Node: n, Time: t, Value: val})
			}
			return
		}
		for _, fi := range dataFanin(net, n) {
			walk(Cell{Node: fi, Time: t})
		}
	}
	for _, t := range targets {
		walk(t)
	}
	sortAssignments(out)
	return out
}

// --- AllPath -------------------------------------------------------------

type allPath struct {
	net   *circuit.Network
	c     *cone.Cone
	model cnfsat.Model
	memo  map[Cell][]Assignment
}

// AllPath back-traces targets, at each controlling-value choice point
// evaluating every valid input and keeping whichever recursion yields the
// fewest PPI assignments, memoized per (node, time).
func AllPath(net *circuit.Network, c *cone.Cone, model cnfsat.Model, targets []Cell) []Assignment {
	j := &allPath{net: net, c: c, model: model, memo: make(map[Cell][]Assignment)}
	merged := make(map[Cell]Assignment)
	for _, t := range targets {
		for _, a := range j.resolve(t) {
			merged[Cell{Node: a.Node, Time: a.Time}] = a
		}
	}
	return flatten(merged)
}

func (j *allPath) resolve(cell Cell) []Assignment {
	if r, ok := j.memo[cell]; ok {
		return r
	}

	n, t := cell.Node, cell.Time
	nd := j.net.Node(n)

	var result []Assignment
	switch {
	case nd.IsPPI():
		if t == 1 && nd.Kind == circuit.StorageOutput && j.c.Model() == circuit.TransitionDelay {
			if din, ok := j.net.PairedInput(n); ok {
				result = j.resolve(Cell{Node: din, Time: 0})
			}
		} else if val, ok := valueAt(j.c, j.model, n, t); ok {
			result = []Assignment{{Node: n, Time: t, Value: val}}
		}
	case t == 1 && differs(j.c, j.model, n):
		result = j.resolveAll(dataFanin(j.net, n), t)
	default:
		if val, ok := valueAt(j.c, j.model, n, t); ok {
			result = j.dispatch(n, t, gateenc.GateFor(nd), val)
		}
	}

	j.memo[cell] = result
	return result
}

func (j *allPath) resolveAll(fanin []circuit.NodeID, t int) []Assignment {
	merged := make(map[Cell]Assignment)
	for _, fi := range fanin {
		for _, a := range j.resolve(Cell{Node: fi, Time: t}) {
			merged[Cell{Node: a.Node, Time: a.Time}] = a
		}
	}
	return flatten(merged)
}

func (j *allPath) dispatch(n circuit.NodeID, t int, gate circuit.GateType, val bool) []Assignment {
	fanin := dataFanin(j.net, n)
	switch gate {
	case circuit.Buff, circuit.Not, circuit.Xor, circuit.Xnor:
		return j.resolveAll(fanin, t)
	case circuit.And, circuit.Nand, circuit.Or, circuit.Nor:
		if andOrAllBranch(gate, val) {
			return j.resolveAll(fanin, t)
		}
		want := andOrWant(gate, val)
		var best []Assignment
		for _, fi := range fanin {
			v, ok := valueAt(j.c, j.model, fi, t)
			if !ok || v != want {
				continue
			}
			cand := j.resolve(Cell{Node: fi, Time: t})
			if best == nil || len(cand) < len(best) {
				best = cand
			}
		}
		return best
	default:
		return nil
	}
}

func flatten(m map[Cell]Assignment) []Assignment {
	out := make([]Assignment, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sortAssignments(out)
	return out
}
