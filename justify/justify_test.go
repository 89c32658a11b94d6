package justify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
	"github.com/dtpgcore/tpg/gateenc"
	"github.com/dtpgcore/tpg/internal/satsolver"
	"github.com/dtpgcore/tpg/justify"
)

// buildMux returns a -> n1=And(a,b), c -> n2=Or(n1,c) -> out: n2 has a
// controlling-value choice (c=1 justifies out=1 without constraining a,b).
func buildMux(t *testing.T) (*circuit.Network, circuit.NodeID, circuit.NodeID, circuit.NodeID, circuit.NodeID) {
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
	return net, a, bb, cc, out
}

func mirrorSolver(f *cnfsat.Formula) *satsolver.Solver {
	s := satsolver.New()
	for i := cnfsat.Var(0); i < f.NumVars(); i++ {
		s.NewVar()
	}
	cnfsat.LoadFormula(s, f)
	return s
}

func evalGate(gate circuit.GateType, in []bool) bool {
	var v bool
	switch gate {
	case circuit.And, circuit.Nand:
		v = true
		for _, x := range in {
			v = v && x
		}
	case circuit.Or, circuit.Nor:
		v = false
		for _, x := range in {
			v = v || x
		}
	case circuit.Xor, circuit.Xnor:
		v = false
		for _, x := range in {
			v = v != x
		}
	case circuit.Buff, circuit.Not:
		v = in[0]
	}
	if gate.Inverts() {
		v = !v
	}
	return v
}

// simulate forward-evaluates net's good circuit given PPI values, in
// topological (declaration) order, and returns out's value.
func simulate(net *circuit.Network, ppi map[circuit.NodeID]bool, out circuit.NodeID) bool {
	vals := make(map[circuit.NodeID]bool, len(ppi))
	for n, v := range ppi {
		vals[n] = v
	}
	var eval func(n circuit.NodeID) bool
	eval = func(n circuit.NodeID) bool {
		if v, ok := vals[n]; ok {
			return v
		}
		nd := net.Node(n)
		gate := gateenc.GateFor(nd)
		if gate == circuit.Buff && nd.Arity() == 1 {
			v := eval(nd.Fanin[0])
			vals[n] = v
			return v
		}
		in := make([]bool, 0, nd.Arity())
		for _, fi := range nd.Fanin {
			in = append(in, eval(fi))
		}
		v := evalGate(gate, in)
		vals[n] = v
		return v
	}
	return eval(out)
}

func buildSolvedCone(t *testing.T, net *circuit.Network, root circuit.NodeID) (*cone.Cone, cnfsat.Model) {
	t.Helper()
	f := cnfsat.NewFormula()
	c := cone.Build(net, f, root, circuit.StuckAt)
	for _, n := range c.Order() {
		gateenc.Encode(f, gateenc.GateFor(net.Node(n)), c.GLitMap(n))
	}
	s := mirrorSolver(f)
	outcome, model, _ := s.Solve(nil, cnfsat.Limits{})
	require.Equal(t, cnfsat.Sat, outcome)
	return c, model
}

func TestSinglePathIdempotence(t *testing.T) {
	net, a, bb, cc, out := buildMux(t)
	c, model := buildSolvedCone(t, net, out)

	outVal, ok := c.GLit(out)
	require.True(t, ok)
	want, ok := model.Value(outVal.Var())
	require.True(t, ok)

	assigns := justify.SinglePath(net, c, model, []justify.Cell{{Node: out, Time: 1}})
	require.NotEmpty(t, assigns)

	ppi := make(map[circuit.NodeID]bool)
	for _, as := range assigns {
		require.Equal(t, 1, as.Time)
		ppi[as.Node] = as.Value
	}
	for _, n := range []circuit.NodeID{a, bb, cc} {
		if _, ok := ppi[n]; !ok {
			lit, _ := c.GLit(n)
			v, _ := model.Value(lit.Var())
			ppi[n] = v
		}
	}
	require.Equal(t, want, simulate(net, ppi, out))
}

func TestAllPathNotLargerThanSinglePath(t *testing.T) {
	net, _, _, _, out := buildMux(t)
	c, model := buildSolvedCone(t, net, out)

	target := []justify.Cell{{Node: out, Time: 1}}
	single := justify.SinglePath(net, c, model, target)
	all := justify.AllPath(net, c, model, target)

	require.LessOrEqual(t, len(all), len(single))
}

func TestNaiveIdempotence(t *testing.T) {
	net, a, bb, cc, out := buildMux(t)
	c, model := buildSolvedCone(t, net, out)

	outVal, ok := c.GLit(out)
	require.True(t, ok)
	want, ok := model.Value(outVal.Var())
	require.True(t, ok)

	assigns := justify.Naive(net, c, model, []justify.Cell{{Node: out, Time: 1}})
	require.NotEmpty(t, assigns)

	ppi := make(map[circuit.NodeID]bool)
	for _, as := range assigns {
		ppi[as.Node] = as.Value
	}
	for _, n := range []circuit.NodeID{a, bb, cc} {
		if _, ok := ppi[n]; !ok {
			lit, _ := c.GLit(n)
			v, _ := model.Value(lit.Var())
			ppi[n] = v
		}
	}
	require.Equal(t, want, simulate(net, ppi, out))
}

func TestSinglePathPrefersControllingInputOverOther(t *testing.T) {
	// With n2 = Or(n1, c), c = true and n1 = false in the model, c is the
	// only input holding Or's controlling value, so SinglePath justifies
	// out=1 via c alone without pulling in a, b. (When n1 and c both hold
	// 1, SinglePath takes the first such input, n1.)
	net, a, bb, cc, out := buildMux(t)
	f := cnfsat.NewFormula()
	c := cone.Build(net, f, out, circuit.StuckAt)
	for _, n := range c.Order() {
		gateenc.Encode(f, gateenc.GateFor(net.Node(n)), c.GLitMap(n))
	}
	ccLit, ok := c.GLit(cc)
	require.True(t, ok)
	f.AddUnit(ccLit)
	n1Lit, ok := c.GLit(net.Fanin(net.Fanin(out)[0])[0])
	require.True(t, ok)
	f.AddUnit(n1Lit.Negate())
	outLit, ok := c.GLit(out)
	require.True(t, ok)
	f.AddUnit(outLit)

	s := mirrorSolver(f)
	outcome, model, _ := s.Solve(nil, cnfsat.Limits{})
	require.Equal(t, cnfsat.Sat, outcome)

	assigns := justify.SinglePath(net, c, model, []justify.Cell{{Node: out, Time: 1}})
	seen := make(map[circuit.NodeID]bool)
	for _, as := range assigns {
		seen[as.Node] = true
	}
	require.True(t, seen[cc])
	require.False(t, seen[a])
	require.False(t, seen[bb])
}
