package activation

import (
	"fmt"
	"sort"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
	"github.com/dtpgcore/tpg/fault"
	"github.com/dtpgcore/tpg/gateenc"
	"github.com/dtpgcore/tpg/litmap"
	"github.com/dtpgcore/tpg/structindex"
)

// Activate returns the assumption literals that activate flt and propagate
// it to ffr.Root: the faulted pin forced to its non-fault natural value,
// the branch fault's sibling inputs forced non-controlling, and the
// non-controlling side inputs of every gate along the single-fanout chain
// up to the FFR root.
func Activate(net *circuit.Network, c *cone.Cone, ffr *structindex.FFR, flt fault.Fault) []cnfsat.Lit {
	var in, site circuit.NodeID
	if flt.Kind() == fault.Stem {
		in = flt.Node
		site = flt.Node
	} else {
		site = flt.Node
		in = net.Fanin(site)[flt.Pin]
	}

	var lits []cnfsat.Lit
	lits = append(lits, litFor(!flt.Value, mustG(c, in)))
	if c.Model() == circuit.TransitionDelay {
		if h, ok := c.HLit(in); ok {
			lits = append(lits, litFor(flt.Value, h))
		}
	}

	if flt.Kind() == fault.Branch {
		lits = append(lits, sideInputs(net, c, site, flt.Pin)...)
	}

	cur := site
	for cur != ffr.Root {
		fo := net.Fanout(cur)
		if len(fo) != 1 {
			panic(fmt.Sprintf("activation: node %d has %d fanouts inside FFR %d", cur, len(fo), ffr.ID))
		}
		next := fo[0]
		lits = append(lits, sideInputs(net, c, next, net.FaninPin(next, cur))...)
		cur = next
	}
	return lits
}

// sideInputs returns assumption literals forcing gate's fanin, excluding
// skipPin, to its non-controlling value — empty if gate has no controlling
// value (Buff, Not, Xor, Xnor all propagate any discrepancy unconditionally).
func sideInputs(net *circuit.Network, c *cone.Cone, gate circuit.NodeID, skipPin int) []cnfsat.Lit {
	nd := net.Node(gate)
	cv, ok := nd.Gate.ControllingValue()
	if !ok {
		return nil
	}
	nv := !cv
	var lits []cnfsat.Lit
	for i, fi := range net.Fanin(gate) {
		if i == skipPin {
			continue
		}
		lits = append(lits, litFor(nv, mustG(c, fi)))
	}
	return lits
}

// MFFCControls holds the control variables for MFFC-scope encoding, one
// per member FFR root, plus each root's g' variable.
type MFFCControls struct {
	order  []circuit.NodeID
	ctrl   map[circuit.NodeID]cnfsat.Var
	gprime map[circuit.NodeID]cnfsat.Var
}

// BuildMFFCControls allocates ctrl/g' variables for every FFR root in mffc
// and emits f(Rᵢ) ≡ g'(Rᵢ) ⊕ cᵢ for each. Callers
// must route each root's faulty-side gate CNF through GPrimeLitMap instead
// of c.FLitMap directly.
//
// A root with no fanin (a PrimaryInput or StorageOutput, net.Node(r).Gate
// == circuit.Input) is the most-input-side degenerate case:
// nothing upstream of it can differ, so g'(Rᵢ) would be a free variable
// wired to nothing, decoupling f(Rᵢ) from g(Rᵢ) whenever cᵢ is false. Such
// roots are instead wired directly as f(Rᵢ) ≡ g(Rᵢ) ⊕ cᵢ, with no separate
// g' variable at all — f = g holds everywhere upstream, so g itself is the
// correct faulty-side input.
func BuildMFFCControls(f *cnfsat.Formula, net *circuit.Network, c *cone.Cone, mffc *structindex.MFFC, ffrs []structindex.FFR) *MFFCControls {
	roots := make([]circuit.NodeID, 0, len(mffc.FFRs))
	for _, fid := range mffc.FFRs {
		roots = append(roots, ffrs[fid].Root)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	mc := &MFFCControls{
		order:  roots,
		ctrl:   make(map[circuit.NodeID]cnfsat.Var, len(roots)),
		gprime: make(map[circuit.NodeID]cnfsat.Var, len(roots)),
	}
	for _, r := range roots {
		ctrlVar := f.NewVar()
		mc.ctrl[r] = ctrlVar
		ctrlLit := cnfsat.NewLit(ctrlVar, false)
		fLit := mustF(c, r)

		if net.Node(r).Gate == circuit.Input {
			gateenc.XorEquiv3(f, fLit, mustG(c, r), ctrlLit)
			continue
		}

		gpVar := f.NewVar()
		mc.gprime[r] = gpVar
		gateenc.XorEquiv3(f, fLit, cnfsat.NewLit(gpVar, false), ctrlLit)
	}
	return mc
}

// GPrimeLitMap returns the litmap.LitMap a caller must encode root's
// faulty-side gate function into: same fanin literals as c.FLitMap(root),
// but an output of g'(root) instead of f(root).
func (mc *MFFCControls) GPrimeLitMap(c *cone.Cone, root circuit.NodeID) litmap.LitMap {
	base := c.FLitMap(root)
	gp := cnfsat.NewLit(mc.gprime[root], false)
	return litmap.Func{
		InputFn:  base.Input,
		OutputFn: func() cnfsat.Lit { return gp },
		N:        base.Arity(),
	}
}

// Assumptions returns the control-variable assumption set selecting active
// as the single propagating FFR within this MFFC:
// active's control literal is asserted true, every other false.
func (mc *MFFCControls) Assumptions(active circuit.NodeID) []cnfsat.Lit {
	lits := make([]cnfsat.Lit, 0, len(mc.order))
	for _, r := range mc.order {
		lits = append(lits, litFor(r == active, cnfsat.NewLit(mc.ctrl[r], false)))
	}
	return lits
}

func litFor(val bool, l cnfsat.Lit) cnfsat.Lit {
	if val {
		return l
	}
	return l.Negate()
}

func mustG(c *cone.Cone, n circuit.NodeID) cnfsat.Lit {
	l, ok := c.GLit(n)
	if !ok {
		panic(fmt.Sprintf("activation: node %d has no g variable", n))
	}
	return l
}

func mustF(c *cone.Cone, n circuit.NodeID) cnfsat.Lit {
	l, ok := c.FLit(n)
	if !ok {
		panic(fmt.Sprintf("activation: node %d has no f variable", n))
	}
	return l
}
