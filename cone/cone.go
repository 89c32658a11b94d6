package cone

import (
	"fmt"
	"sort"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/internal/bitset"
	"github.com/dtpgcore/tpg/litmap"
)

// Cone is the variable table and node scope for one fault-encoding session,
// rooted at a single node. Each session allocates its variables and clauses
// in a dedicated formula, discarded when the fault completes.
type Cone struct {
	net   *circuit.Network
	root  circuit.NodeID
	model circuit.FaultModel

	tfo     *bitset.Set      // TFO membership over the network's dense [0, NumNodes) id space
	order   []circuit.NodeID // TFI(TFO) node ids, sorted ascending
	outputs []circuit.NodeID // PPOs reachable from root, sorted ascending

	prevOrder []circuit.NodeID // PrevTFI node ids (delay faults only), sorted ascending

	g map[circuit.NodeID]cnfsat.Var
	f map[circuit.NodeID]cnfsat.Var
	d map[circuit.NodeID]cnfsat.Var
	h map[circuit.NodeID]cnfsat.Var
}

// Build computes the TFO/TFI/(PrevTFI) cone for root under fault model fm,
// allocating its SAT variables in formula.
func Build(net *circuit.Network, formula *cnfsat.Formula, root circuit.NodeID, fm circuit.FaultModel) *Cone {
	return BuildMulti(net, formula, []circuit.NodeID{root}, fm)
}

// BuildMulti generalizes Build to seed TFO from the union of several roots'
// forward fanout closures. Root() reports roots[0] as the
// cone's representative root; callers that need a specific fault's own
// origin node (e.g. extract.SingleFrom) must pass it explicitly rather
// than relying on Root() when a cone was built this way.
func BuildMulti(net *circuit.Network, formula *cnfsat.Formula, roots []circuit.NodeID, fm circuit.FaultModel) *Cone {
	c := &Cone{
		net:   net,
		root:  roots[0],
		model: fm,
		tfo:   bitset.New(net.NumNodes()),
		g:     make(map[circuit.NodeID]cnfsat.Var),
		f:     make(map[circuit.NodeID]cnfsat.Var),
		d:     make(map[circuit.NodeID]cnfsat.Var),
		h:     make(map[circuit.NodeID]cnfsat.Var),
	}
	c.buildTFO(roots)
	c.buildTFI(formula)
	if fm == circuit.TransitionDelay {
		c.buildPrevTFI(formula, roots)
	}
	return c
}

// Root returns this cone's representative root: the node Build was called
// with, or roots[0] for a cone built via BuildMulti.
func (c *Cone) Root() circuit.NodeID { return c.root }

// Model returns the fault model this cone was built under.
func (c *Cone) Model() circuit.FaultModel { return c.model }

// InTFO reports whether n lies in the fault-propagation cone.
func (c *Cone) InTFO(n circuit.NodeID) bool { return c.tfo.Has(int(n)) }

// Outputs returns every PPO reachable from root, sorted ascending by id.
func (c *Cone) Outputs() []circuit.NodeID { return c.outputs }

// Order returns every node carrying a g variable, sorted ascending by id —
// the deterministic emission order for the base (fault-free + faulty) CNF.
func (c *Cone) Order() []circuit.NodeID { return c.order }

// PrevOrder returns every node carrying an h variable (delay faults only),
// sorted ascending by id.
func (c *Cone) PrevOrder() []circuit.NodeID { return c.prevOrder }

func (c *Cone) buildTFO(roots []circuit.NodeID) {
	visited := make(map[circuit.NodeID]bool, len(roots))
	queue := append([]circuit.NodeID(nil), roots...)
	for _, r := range roots {
		visited[r] = true
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		c.tfo.Set(int(n))
		if c.net.Node(n).IsPPO() {
			c.outputs = append(c.outputs, n)
		}
		for _, fo := range c.net.Fanout(n) {
			// Clock/clear/preset pins are never part of the data cone.
			if visited[fo] || c.net.Node(fo).IsControlPin() {
				continue
			}
			visited[fo] = true
			queue = append(queue, fo)
		}
	}
	sortIDs(c.outputs)
}

func (c *Cone) buildTFI(formula *cnfsat.Formula) {
	seeds := make([]circuit.NodeID, 0, c.tfo.Count())
	c.tfo.Each(func(i int) { seeds = append(seeds, circuit.NodeID(i)) })
	sortIDs(seeds)

	visited := make(map[circuit.NodeID]bool, len(seeds))
	queue := append([]circuit.NodeID(nil), seeds...)
	for _, n := range seeds {
		visited[n] = true
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		c.allocG(formula, n)
		if c.tfo.Has(int(n)) {
			c.allocF(formula, n)
			c.allocD(formula, n)
		}
		for _, fi := range c.net.Fanin(n) {
			if c.net.Node(fi).IsControlPin() || visited[fi] {
				continue
			}
			visited[fi] = true
			queue = append(queue, fi)
		}
	}

	c.order = make([]circuit.NodeID, 0, len(visited))
	for n := range visited {
		c.order = append(c.order, n)
	}
	sortIDs(c.order)
}

// buildPrevTFI seeds the queue with every
// root's paired StorageInput and walks fanin at time-frame 0, equating
// g(storage_output) with h(storage_input_paired). Roots that are not
// StorageOutputs (e.g. a combinational fault under the delay model)
// contribute nothing.
func (c *Cone) buildPrevTFI(formula *cnfsat.Formula, roots []circuit.NodeID) {
	visited := make(map[circuit.NodeID]bool)
	var queue []circuit.NodeID

	for _, root := range roots {
		if !c.net.IsStorageOutput(root) {
			continue
		}
		din, ok := c.net.PairedInput(root)
		if !ok || visited[din] {
			continue
		}

		// The root's own frame-0 value is a free PPI of the earlier frame;
		// fault activation asserts it to launch the transition.
		c.allocH(formula, root)
		visited[root] = true

		hDin := c.allocH(formula, din)
		gOut, ok := c.g[root]
		if !ok {
			panic(fmt.Sprintf("cone: root %d missing g var before PrevTFI", root))
		}
		formula.AddEquiv(cnfsat.NewLit(gOut, false), cnfsat.NewLit(hDin, false))

		visited[din] = true
		queue = append(queue, din)
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, fi := range c.net.Fanin(n) {
			if c.net.Node(fi).IsControlPin() || visited[fi] {
				continue
			}
			visited[fi] = true
			c.allocH(formula, fi)
			queue = append(queue, fi)
		}
	}

	c.prevOrder = make([]circuit.NodeID, 0, len(visited))
	for n := range visited {
		c.prevOrder = append(c.prevOrder, n)
	}
	sortIDs(c.prevOrder)
}

func (c *Cone) allocG(formula *cnfsat.Formula, n circuit.NodeID) cnfsat.Var {
	if v, ok := c.g[n]; ok {
		return v
	}
	v := formula.NewVar()
	c.g[n] = v
	return v
}

func (c *Cone) allocF(formula *cnfsat.Formula, n circuit.NodeID) cnfsat.Var {
	if v, ok := c.f[n]; ok {
		return v
	}
	v := formula.NewVar()
	c.f[n] = v
	return v
}

func (c *Cone) allocD(formula *cnfsat.Formula, n circuit.NodeID) cnfsat.Var {
	if v, ok := c.d[n]; ok {
		return v
	}
	v := formula.NewVar()
	c.d[n] = v
	return v
}

func (c *Cone) allocH(formula *cnfsat.Formula, n circuit.NodeID) cnfsat.Var {
	if v, ok := c.h[n]; ok {
		return v
	}
	v := formula.NewVar()
	c.h[n] = v
	return v
}

// GLit returns n's fault-free literal and whether it has one.
func (c *Cone) GLit(n circuit.NodeID) (cnfsat.Lit, bool) {
	v, ok := c.g[n]
	if !ok {
		return 0, false
	}
	return cnfsat.NewLit(v, false), true
}

// FLit returns n's faulty-circuit literal. Outside the fault-propagation
// cone a node carries no f variable of its own, so FLit aliases GLit(n)
// there — the faulty circuit agrees with the good one upstream of the fault.
func (c *Cone) FLit(n circuit.NodeID) (cnfsat.Lit, bool) {
	if v, ok := c.f[n]; ok {
		return cnfsat.NewLit(v, false), true
	}
	return c.GLit(n)
}

// DLit returns n's "differs" literal and whether one was allocated (only
// TFO nodes carry one).
func (c *Cone) DLit(n circuit.NodeID) (cnfsat.Lit, bool) {
	v, ok := c.d[n]
	if !ok {
		return 0, false
	}
	return cnfsat.NewLit(v, false), true
}

// HLit returns n's time-frame-0 literal and whether one was allocated
// (delay faults only).
func (c *Cone) HLit(n circuit.NodeID) (cnfsat.Lit, bool) {
	v, ok := c.h[n]
	if !ok {
		return 0, false
	}
	return cnfsat.NewLit(v, false), true
}

func (c *Cone) mustGLit(n circuit.NodeID) cnfsat.Lit {
	l, ok := c.GLit(n)
	if !ok {
		panic(fmt.Sprintf("cone: node %d has no g variable", n))
	}
	return l
}

func (c *Cone) mustFLit(n circuit.NodeID) cnfsat.Lit {
	l, ok := c.FLit(n)
	if !ok {
		panic(fmt.Sprintf("cone: node %d has no f/g variable", n))
	}
	return l
}

func (c *Cone) mustHLit(n circuit.NodeID) cnfsat.Lit {
	l, ok := c.HLit(n)
	if !ok {
		panic(fmt.Sprintf("cone: node %d has no h variable", n))
	}
	return l
}

// GLitMap builds the good-circuit litmap.LitMap for node n: inputs and
// output are all g literals.
func (c *Cone) GLitMap(n circuit.NodeID) litmap.LitMap {
	fanin := c.net.Fanin(n)
	ins := make([]cnfsat.Lit, len(fanin))
	for i, fi := range fanin {
		ins[i] = c.mustGLit(fi)
	}
	return litmap.Slice{Inputs: ins, Out: c.mustGLit(n)}
}

// FLitMap builds the faulty-circuit litmap.LitMap for node n: inputs and
// output are f literals (aliasing g outside the declared fault cone).
func (c *Cone) FLitMap(n circuit.NodeID) litmap.LitMap {
	fanin := c.net.Fanin(n)
	ins := make([]cnfsat.Lit, len(fanin))
	for i, fi := range fanin {
		ins[i] = c.mustFLit(fi)
	}
	return litmap.Slice{Inputs: ins, Out: c.mustFLit(n)}
}

// HLitMap builds the time-frame-0 litmap.LitMap for node n (delay faults'
// PrevTFI cone): inputs and output are h literals.
func (c *Cone) HLitMap(n circuit.NodeID) litmap.LitMap {
	fanin := c.net.Fanin(n)
	ins := make([]cnfsat.Lit, len(fanin))
	for i, fi := range fanin {
		ins[i] = c.mustHLit(fi)
	}
	return litmap.Slice{Inputs: ins, Out: c.mustHLit(n)}
}

func sortIDs(ids []circuit.NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
