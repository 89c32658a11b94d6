package dchain

import (
	"fmt"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
	"github.com/dtpgcore/tpg/structindex"
)

// Emit appends the D-chain clauses for every TFO node of c, then the
// detection axiom. It is the single entry point a dtpg.Engine
// calls once per encoding session, after Cone.Build and after the gate CNF
// for the TFO (the two are independent and may be emitted in either order;
// the solver only needs the union of both).
func Emit(f *cnfsat.Formula, net *circuit.Network, c *cone.Cone, idx *structindex.Index) {
	EmitClauses(f, net, c, idx)
	AssertDetection(f, net, c)
}

// EmitClauses appends, for every node n in c's TFO:
//
//   - (¬d(n) ∨ ¬g(n) ∨ ¬f(n)) and (¬d(n) ∨ g(n) ∨ f(n)): d(n) implies g⊕f.
//   - if n is a PPO, additionally the converse two clauses, making it a
//     full equivalence d(n) ↔ g(n)⊕f(n).
//   - if n is not a PPO: (¬d(n) ∨ ⋁ d(fo)) over n's fanout, plus
//     (¬d(n) ∨ d(imm_dom(n))) when the structural index reports a dominator.
func EmitClauses(f *cnfsat.Formula, net *circuit.Network, c *cone.Cone, idx *structindex.Index) {
	for _, n := range c.Order() {
		if !c.InTFO(n) {
			continue
		}
		dn := mustD(c, n)
		gn := mustG(c, n)
		fn := mustF(c, n)

		f.AddClause(dn.Negate(), gn.Negate(), fn.Negate())
		f.AddClause(dn.Negate(), gn, fn)

		nd := net.Node(n)
		if nd.IsPPO() {
			f.AddClause(dn, gn.Negate(), fn)
			f.AddClause(dn, gn, fn.Negate())
			continue
		}

		fanout := net.Fanout(n)
		clause := make([]cnfsat.Lit, 0, len(fanout)+1)
		clause = append(clause, dn.Negate())
		for _, fo := range fanout {
			clause = append(clause, mustD(c, fo))
		}
		f.AddClause(clause...)

		if dom, ok := idx.ImmediateDominator(n); ok {
			if ddom, ok := c.DLit(dom); ok {
				f.AddClause(dn.Negate(), ddom)
			}
		}
	}
}

// AssertDetection appends the top-level detection axiom: at least one
// reachable PPO differs, plus, if root itself is not a PPO, the unit clause
// d(root) forcing the fault to differ at its own injection point.
func AssertDetection(f *cnfsat.Formula, net *circuit.Network, c *cone.Cone) {
	AssertObservability(f, c)

	if !net.Node(c.Root()).IsPPO() {
		f.AddUnit(mustD(c, c.Root()))
	}
}

// AssertObservability appends just the detection axiom's generic half — at
// least one reachable PPO differs — without AssertDetection's extra
// d(root) unit clause. Used by dtpg's MFFC-scope shared encoding, which
// has no single fixed fault site to force: each fault's own
// FFR-activation assumptions are what pin the difference's origin there,
// not an unconditional clause on the cone's (arbitrary, multi-root) Root().
func AssertObservability(f *cnfsat.Formula, c *cone.Cone) {
	outputs := c.Outputs()
	clause := make([]cnfsat.Lit, 0, len(outputs))
	for _, o := range outputs {
		clause = append(clause, mustD(c, o))
	}
	f.AddClause(clause...)
}

func mustD(c *cone.Cone, n circuit.NodeID) cnfsat.Lit {
	l, ok := c.DLit(n)
	if !ok {
		panic(fmt.Sprintf("dchain: node %d has no d variable", n))
	}
	return l
}

func mustG(c *cone.Cone, n circuit.NodeID) cnfsat.Lit {
	l, ok := c.GLit(n)
	if !ok {
		panic(fmt.Sprintf("dchain: node %d has no g variable", n))
	}
	return l
}

func mustF(c *cone.Cone, n circuit.NodeID) cnfsat.Lit {
	l, ok := c.FLit(n)
	if !ok {
		panic(fmt.Sprintf("dchain: node %d has no f variable", n))
	}
	return l
}
