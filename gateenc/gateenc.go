package gateenc

import (
	"fmt"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/fault"
	"github.com/dtpgcore/tpg/litmap"
)

// GateFor returns the gate function node n implements for CNF-encoding
// purposes: its own Gate for Logic nodes, Buff for the PPO-kind pass-through
// nodes (PrimaryOutput, StorageInput) whose Gate field circuit.Node's own
// doc comment marks as not meaningful, and Input (no clauses, a free
// variable) for PPI-kind nodes.
func GateFor(n *circuit.Node) circuit.GateType {
	switch n.Kind {
	case circuit.PrimaryOutput, circuit.StorageInput:
		return circuit.Buff
	default:
		return n.Gate
	}
}

// Encode appends clauses asserting m.Output() ≡ gate(m.Input(0..arity-1))
// to f.
func Encode(f *cnfsat.Formula, gate circuit.GateType, m litmap.LitMap) {
	switch gate {
	case circuit.Const0:
		f.AddUnit(m.Output().Negate())
	case circuit.Const1:
		f.AddUnit(m.Output())
	case circuit.Input:
		// free variable, no clauses
	case circuit.Buff:
		f.AddEquiv(m.Output(), m.Input(0))
	case circuit.Not:
		f.AddXorEquiv(m.Output(), m.Input(0))
	case circuit.And:
		andClauses(f, m.Output(), inputs(m))
	case circuit.Nand:
		andClauses(f, m.Output().Negate(), inputs(m))
	case circuit.Or:
		orClauses(f, m.Output(), inputs(m))
	case circuit.Nor:
		orClauses(f, m.Output().Negate(), inputs(m))
	case circuit.Xor:
		XorEquiv3(f, m.Output(), m.Input(0), m.Input(1))
	case circuit.Xnor:
		XorEquiv3(f, m.Output().Negate(), m.Input(0), m.Input(1))
	default:
		panic(fmt.Sprintf("gateenc: unsupported gate type %v", gate))
	}
}

// EncodeFaulty appends the gate's clauses restricted by a single fault:
//
//   - a Stem fault forces m.Output() to flt.Value directly, ignoring inputs;
//   - a Branch fault clamps m.Input(flt.Pin) to flt.Value via a fresh unit
//     clause, then encodes the gate normally over the substituted map.
func EncodeFaulty(f *cnfsat.Formula, gate circuit.GateType, m litmap.LitMap, flt fault.Fault) {
	if flt.Kind() == fault.Stem {
		f.AddUnit(litFor(flt.Value, m.Output()))
		return
	}
	pin := cnfsat.NewLit(f.NewVar(), false)
	f.AddUnit(litFor(flt.Value, pin))
	Encode(f, gate, litmap.Substitute(m, flt.Pin, pin))
}

func litFor(val bool, l cnfsat.Lit) cnfsat.Lit {
	if val {
		return l
	}
	return l.Negate()
}

func inputs(m litmap.LitMap) []cnfsat.Lit {
	n := m.Arity()
	ins := make([]cnfsat.Lit, n)
	for i := 0; i < n; i++ {
		ins[i] = m.Input(i)
	}
	return ins
}

// andClauses asserts out ↔ ⋀ins: (¬out ∨ ℓᵢ) for each i, plus (out ∨ ⋁¬ℓᵢ).
// Passing out.Negate() yields the Nand encoding.
func andClauses(f *cnfsat.Formula, out cnfsat.Lit, ins []cnfsat.Lit) {
	for _, in := range ins {
		f.AddClause(out.Negate(), in)
	}
	c := make([]cnfsat.Lit, 0, len(ins)+1)
	c = append(c, out)
	for _, in := range ins {
		c = append(c, in.Negate())
	}
	f.AddClause(c...)
}

// orClauses asserts out ↔ ⋁ins: (out ∨ ¬ℓᵢ) for each i, plus (¬out ∨ ⋁ℓᵢ).
// Passing out.Negate() yields the Nor encoding.
func orClauses(f *cnfsat.Formula, out cnfsat.Lit, ins []cnfsat.Lit) {
	for _, in := range ins {
		f.AddClause(out, in.Negate())
	}
	c := make([]cnfsat.Lit, 0, len(ins)+1)
	c = append(c, out.Negate())
	c = append(c, ins...)
	f.AddClause(c...)
}

// XorEquiv3 asserts out ↔ (a ⊕ b), the full 4-clause encoding. Passing
// out.Negate() yields the Xnor encoding (out ↔ (a ↔ b)). Exported so
// activation's MFFC control-variable wiring (f(root) ≡ g'(root) ⊕ ctrl)
// can reuse the same three-variable xor-equivalence shape.
func XorEquiv3(f *cnfsat.Formula, out, a, b cnfsat.Lit) {
	f.AddClause(a.Negate(), b.Negate(), out.Negate())
	f.AddClause(a, b, out.Negate())
	f.AddClause(a, b.Negate(), out)
	f.AddClause(a.Negate(), b, out)
}
