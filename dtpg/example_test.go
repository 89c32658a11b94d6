package dtpg_test

import (
	"fmt"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/dtpg"
	"github.com/dtpgcore/tpg/dtpgcfg"
	"github.com/dtpgcore/tpg/fault"
	"github.com/dtpgcore/tpg/structindex"
)

// stemFault scans fs for node n's stuck-at-value stem fault.
func stemFault(fs *fault.FaultSet, n circuit.NodeID, value bool) fault.ID {
	for _, f := range fs.Faults() {
		if f.Kind() == fault.Stem && f.Node == n && f.Value == value {
			return f.ID
		}
	}
	panic("no such stem fault")
}

// ExampleEngine_Solve generates a test for the classic detectable fault:
// z = a AND b with z's driver stuck at 0 is only observable when both
// inputs are high.
func ExampleEngine_Solve() {
	b := circuit.NewBuilder()
	a := b.AddPrimaryInput("a")
	bb := b.AddPrimaryInput("b")
	n1 := b.AddLogic(circuit.And, []circuit.NodeID{a, bb}, "n1")
	b.AddPrimaryOutput(n1, "z")
	net, err := b.Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fs := fault.Collapse(net)
	idx, err := structindex.Build(net, fs)
	if err != nil {
		fmt.Println("index:", err)
		return
	}

	e := dtpg.NewEngine(net, fs, idx, dtpgcfg.Default())
	res, err := e.Solve(stemFault(fs, n1, false))
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Println(res.Outcome)
	for _, ppi := range net.PPIs() {
		fmt.Printf("%s=%s\n", net.Node(ppi).Name, res.Vector.Frame1[ppi])
	}
	// Output:
	// Detected
	// a=1
	// b=1
}

// ExampleEngine_Solve_untestable proves a redundant wire has no test:
// z = a OR NOT a is constant 1, so a stuck-at on the shared a signal can
// never be observed.
func ExampleEngine_Solve_untestable() {
	b := circuit.NewBuilder()
	a := b.AddPrimaryInput("a")
	notA := b.AddLogic(circuit.Not, []circuit.NodeID{a}, "notA")
	n1 := b.AddLogic(circuit.Or, []circuit.NodeID{a, notA}, "n1")
	b.AddPrimaryOutput(n1, "z")
	net, err := b.Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fs := fault.Collapse(net)
	idx, err := structindex.Build(net, fs)
	if err != nil {
		fmt.Println("index:", err)
		return
	}

	e := dtpg.NewEngine(net, fs, idx, dtpgcfg.Default())
	res, err := e.Solve(stemFault(fs, a, false))
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Println(res.Outcome)
	// Output:
	// Untestable
}
