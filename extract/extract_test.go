package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
	"github.com/dtpgcore/tpg/extract"
	"github.com/dtpgcore/tpg/fault"
	"github.com/dtpgcore/tpg/gateenc"
	"github.com/dtpgcore/tpg/internal/satsolver"
)

// buildOrGate returns a, b -> n1=And(a,b), c -> n2=Or(n1,c) -> out.
func buildOrGate(t *testing.T) (*circuit.Network, circuit.NodeID, circuit.NodeID, circuit.NodeID, circuit.NodeID, circuit.NodeID) {
	t.Helper()
	b := circuit.NewBuilder()
	a := b.AddPrimaryInput("a")
	bb := b.AddPrimaryInput("b")
	cc := b.AddPrimaryInput("c")
	n1 := b.AddLogic(circuit.And, []circuit.NodeID{a, bb}, "n1")
	n2 := b.AddLogic(circuit.Or, []circuit.NodeID{n1, cc}, "n2")
	out := b.AddPrimaryOutput(n2, "out")
	net, err := b.Build()
	require.NoError(t, err)
	return net, a, bb, cc, n1, out
}

func mirrorSolver(f *cnfsat.Formula) *satsolver.Solver {
	s := satsolver.New()
	for i := cnfsat.Var(0); i < f.NumVars(); i++ {
		s.NewVar()
	}
	cnfsat.LoadFormula(s, f)
	return s
}

// TestExtractSufficientConditionViaSideInput checks that for an And(a,b)
// stuck-at-0 fault propagating through an Or gate, Extract recovers c=0 as
// the side-input condition and requires nothing from a or b (they are
// fanins of the fault site n1, where the back-walk stops).
func TestExtractSufficientConditionViaSideInput(t *testing.T) {
	net, a, bb, cc, n1, _ := buildOrGate(t)

	f := cnfsat.NewFormula()
	c := cone.Build(net, f, n1, circuit.StuckAt)
	for _, n := range c.Order() {
		nd := net.Node(n)
		gate := gateenc.GateFor(nd)
		gateenc.Encode(f, gate, c.GLitMap(n))
		if !c.InTFO(n) {
			continue
		}
		if n == n1 {
			gateenc.EncodeFaulty(f, gate, c.FLitMap(n), fault.Fault{Node: n1, Pin: -1, Value: false})
		} else {
			gateenc.Encode(f, gate, c.FLitMap(n))
		}
	}

	aLit, _ := c.GLit(a)
	bLit, _ := c.GLit(bb)
	ccLit, _ := c.GLit(cc)
	f.AddUnit(aLit)
	f.AddUnit(bLit)
	f.AddUnit(ccLit.Negate())

	s := mirrorSolver(f)
	outcome, model, _ := s.Solve(nil, cnfsat.Limits{})
	require.Equal(t, cnfsat.Sat, outcome)

	expr := extract.Extract(net, c, model)
	require.Len(t, expr, 1)
	require.Equal(t, extract.Term{{Node: cc, Value: false}}, expr[0])
}

// TestExtractNoSensitizedOutputYieldsEmptyExpr checks that if the faulty
// effect is masked (c=1 blocks Or propagation), Extract reports no
// sensitized outputs.
func TestExtractNoSensitizedOutputYieldsEmptyExpr(t *testing.T) {
	net, a, bb, cc, n1, _ := buildOrGate(t)

	f := cnfsat.NewFormula()
	c := cone.Build(net, f, n1, circuit.StuckAt)
	for _, n := range c.Order() {
		nd := net.Node(n)
		gate := gateenc.GateFor(nd)
		gateenc.Encode(f, gate, c.GLitMap(n))
		if !c.InTFO(n) {
			continue
		}
		if n == n1 {
			gateenc.EncodeFaulty(f, gate, c.FLitMap(n), fault.Fault{Node: n1, Pin: -1, Value: false})
		} else {
			gateenc.Encode(f, gate, c.FLitMap(n))
		}
	}

	aLit, _ := c.GLit(a)
	bLit, _ := c.GLit(bb)
	ccLit, _ := c.GLit(cc)
	f.AddUnit(aLit)
	f.AddUnit(bLit)
	f.AddUnit(ccLit)

	s := mirrorSolver(f)
	outcome, model, _ := s.Solve(nil, cnfsat.Limits{})
	require.Equal(t, cnfsat.Sat, outcome)

	expr := extract.Extract(net, c, model)
	require.Empty(t, expr)
}
