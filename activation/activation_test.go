package activation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtpgcore/tpg/activation"
	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
	"github.com/dtpgcore/tpg/dchain"
	"github.com/dtpgcore/tpg/fault"
	"github.com/dtpgcore/tpg/gateenc"
	"github.com/dtpgcore/tpg/internal/satsolver"
	"github.com/dtpgcore/tpg/structindex"
)

// buildChain returns a -> n1=And(a,b) -> n2=And(n1,c) -> out, an FFR whose
// root (out) is two gates away from n1.
func buildChain(t *testing.T) (*circuit.Network, circuit.NodeID, circuit.NodeID, circuit.NodeID, circuit.NodeID) {
	t.Helper()
	b := circuit.NewBuilder()
	a := b.AddPrimaryInput("a")
	bb := b.AddPrimaryInput("b")
	cc := b.AddPrimaryInput("c")
	n1 := b.AddLogic(circuit.And, []circuit.NodeID{a, bb}, "n1")
	n2 := b.AddLogic(circuit.And, []circuit.NodeID{n1, cc}, "n2")
	_ = b.AddPrimaryOutput(n2, "out")
	net, err := b.Build()
	require.NoError(t, err)
	return net, a, bb, cc, n1
}

func mirrorSolver(f *cnfsat.Formula) *satsolver.Solver {
	s := satsolver.New()
	for i := cnfsat.Var(0); i < f.NumVars(); i++ {
		s.NewVar()
	}
	cnfsat.LoadFormula(s, f)
	return s
}

// TestActivateForcesPropagatingVector checks that solving the base CNF
// under Activate's assumptions for a stuck-at-0 fault on n1 yields the
// unique vector (a=1,b=1,c=1) the side-input propagation rule requires.
func TestActivateForcesPropagatingVector(t *testing.T) {
	net, a, bb, cc, n1 := buildChain(t)

	fs := fault.Collapse(net)
	idx, err := structindex.Build(net, fs)
	require.NoError(t, err)
	ffr := idx.FFRContaining(n1)

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
	dchain.Emit(f, net, c, idx)

	assumptions := activation.Activate(net, c, ffr, fault.Fault{Node: n1, Pin: -1, Value: false})

	s := mirrorSolver(f)
	outcome, model, _ := s.Solve(assumptions, cnfsat.Limits{})
	require.Equal(t, cnfsat.Sat, outcome)

	for _, n := range []circuit.NodeID{a, bb, cc} {
		lit, ok := c.GLit(n)
		require.True(t, ok)
		val, ok := model.Value(lit.Var())
		require.True(t, ok)
		require.True(t, val, "node %d must be forced to 1", n)
	}
}
