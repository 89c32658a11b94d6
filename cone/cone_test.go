package cone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/cone"
)

// buildAndGate returns PI a, PI b -> And g1 -> PO out.
func buildAndGate(t *testing.T) (*circuit.Network, circuit.NodeID, circuit.NodeID) {
	t.Helper()
	b := circuit.NewBuilder()
	a := b.AddPrimaryInput("a")
	bb := b.AddPrimaryInput("b")
	g1 := b.AddLogic(circuit.And, []circuit.NodeID{a, bb}, "g1")
	out := b.AddPrimaryOutput(g1, "out")
	net, err := b.Build()
	require.NoError(t, err)
	return net, g1, out
}

func TestConeBuildTFOAndOutputs(t *testing.T) {
	net, g1, out := buildAndGate(t)
	f := cnfsat.NewFormula()
	c := cone.Build(net, f, g1, circuit.StuckAt)

	require.True(t, c.InTFO(g1))
	require.True(t, c.InTFO(out))
	require.Equal(t, []circuit.NodeID{out}, c.Outputs())
}

func TestConeBuildTFIVariables(t *testing.T) {
	net, g1, out := buildAndGate(t)
	f := cnfsat.NewFormula()
	c := cone.Build(net, f, g1, circuit.StuckAt)

	for _, n := range []circuit.NodeID{0, 1, g1, out} {
		_, ok := c.GLit(n)
		require.True(t, ok, "node %d should carry a g var", n)
	}

	// Only TFO nodes (g1, out) carry f/d vars; the PIs don't.
	_, ok := c.DLit(g1)
	require.True(t, ok)
	_, ok = c.DLit(out)
	require.True(t, ok)
	_, ok = c.DLit(0)
	require.False(t, ok)

	fl, ok := c.FLit(0)
	require.True(t, ok)
	gl, _ := c.GLit(0)
	require.Equal(t, gl, fl, "f(n) must alias g(n) outside the TFO")
}

func TestConeGLitMapArity(t *testing.T) {
	net, g1, _ := buildAndGate(t)
	f := cnfsat.NewFormula()
	c := cone.Build(net, f, g1, circuit.StuckAt)

	m := c.GLitMap(g1)
	require.Equal(t, 2, m.Arity())
}
