package extract

import (
	"sort"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
	"github.com/dtpgcore/tpg/gateenc"
)

// Literal names a node's required value outside the fault cone, where g
// and f agree in the model (so one value captures the node's contribution
// to propagation).
type Literal struct {
	Node  circuit.NodeID
	Value bool
}

// Term is a conjunction of Literals: one sensitized output's sufficient
// condition.
type Term []Literal

// Expr is a disjunction of Terms, one conjunction per sensitized output.
type Expr []Term

type walker struct {
	net    *circuit.Network
	c      *cone.Cone
	model  cnfsat.Model
	origin circuit.NodeID
	memo   map[circuit.NodeID]Term
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

func (w *walker) valueOf(n circuit.NodeID) (bool, bool) {
	lit, ok := w.c.GLit(n)
	if !ok {
		return false, false
	}
	return litValue(w.model, lit)
}

func (w *walker) sensitized(n circuit.NodeID) bool {
	gLit, ok := w.c.GLit(n)
	if !ok {
		return false
	}
	fLit, ok := w.c.FLit(n)
	if !ok || gLit == fLit {
		return false
	}
	gv, ok := litValue(w.model, gLit)
	if !ok {
		return false
	}
	fv, ok := litValue(w.model, fLit)
	if !ok {
		return false
	}
	return gv != fv
}

func (w *walker) dataFanin(n circuit.NodeID) []circuit.NodeID {
	fanin := w.net.Fanin(n)
	out := make([]circuit.NodeID, 0, len(fanin))
	for _, fi := range fanin {
		if !w.net.Node(fi).IsControlPin() {
			out = append(out, fi)
		}
	}
	return out
}

func mergeTerms(terms ...Term) Term {
	seen := make(map[circuit.NodeID]bool)
	var out Term
	for _, t := range terms {
		for _, l := range t {
			if seen[l.Node] {
				continue
			}
			seen[l.Node] = true
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })
	return out
}

func (w *walker) walk(n circuit.NodeID) Term {
	if t, ok := w.memo[n]; ok {
		return t
	}
	w.memo[n] = nil

	if n == w.origin {
		return nil
	}

	var term Term
	if w.sensitized(n) {
		term = w.throughFanin(n, w.dataFanin(n))
	} else {
		term = w.masking(n)
	}
	w.memo[n] = term
	return term
}

// throughFanin walks every fanin of a sensitized node: fanins inside the
// cone recurse (sensitized or masking, walk dispatches either way), fanins
// outside the cone contribute their model value directly.
func (w *walker) throughFanin(n circuit.NodeID, fanin []circuit.NodeID) Term {
	var parts []Term
	for _, fi := range fanin {
		if w.c.InTFO(fi) {
			parts = append(parts, w.walk(fi))
			continue
		}
		if v, ok := w.valueOf(fi); ok {
			parts = append(parts, Term{{Node: fi, Value: v}})
		}
	}
	return mergeTerms(parts...)
}

// masking is reached at a non-sensitized node found as the fanin of a
// sensitized one. Fanins holding the gate's controlling value are why
// propagation was blocked, so they are the ones recursed on; with no
// controlling fanin, every fanin cascades.
func (w *walker) masking(n circuit.NodeID) Term {
	fanin := w.dataFanin(n)
	gate := gateenc.GateFor(w.net.Node(n))
	cv, ok := gate.ControllingValue()
	if ok {
		var blockers []circuit.NodeID
		for _, fi := range fanin {
			v, ok := w.valueOf(fi)
			if ok && v == cv {
				blockers = append(blockers, fi)
			}
		}
		if len(blockers) > 0 {
			return w.throughFanin(n, blockers)
		}
	}
	return w.throughFanin(n, fanin)
}

// Extract returns one Term per sensitized pseudo primary output of c,
// walking the D-frontier back toward c.Root().
func Extract(net *circuit.Network, c *cone.Cone, model cnfsat.Model) Expr {
	return ExtractFrom(net, c, model, c.Root())
}

// ExtractFrom is Extract generalized to stop the back-walk at an explicit
// origin rather than c.Root() — needed by dtpg's MFFC-scope encoding,
// whose shared cone is seeded from several FFR roots at
// once, so c.Root() names only an arbitrary representative, not any one
// fault's own injection site.
func ExtractFrom(net *circuit.Network, c *cone.Cone, model cnfsat.Model, origin circuit.NodeID) Expr {
	w := &walker{net: net, c: c, model: model, origin: origin, memo: make(map[circuit.NodeID]Term)}
	var expr Expr
	for _, ppo := range c.Outputs() {
		if !w.sensitized(ppo) {
			continue
		}
		expr = append(expr, w.walk(ppo))
	}
	return expr
}

// Single returns the first sensitized output's Term, or nil if none is
// sensitized (the fault did not propagate under this model).
func Single(net *circuit.Network, c *cone.Cone, model cnfsat.Model) Term {
	return SingleFrom(net, c, model, c.Root())
}

// SingleFrom is Single generalized to an explicit origin; see ExtractFrom.
func SingleFrom(net *circuit.Network, c *cone.Cone, model cnfsat.Model, origin circuit.NodeID) Term {
	w := &walker{net: net, c: c, model: model, origin: origin, memo: make(map[circuit.NodeID]Term)}
	for _, ppo := range c.Outputs() {
		if w.sensitized(ppo) {
			return w.walk(ppo)
		}
	}
	return nil
}
