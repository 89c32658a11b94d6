package circuit

import "fmt"

// Builder accumulates nodes and storage elements, then validates and
// freezes them into an immutable Network. A Builder is discarded once
// Build succeeds — nothing it produces is ever mutated again.
//
// Builder is not safe for concurrent use; a single loader goroutine
// populates it before handing the resulting Network to any number of
// concurrent readers.
type Builder struct {
	nodes   []Node
	storage []StorageElement
	byName  map[string]NodeID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]NodeID)}
}

func (b *Builder) add(n Node) NodeID {
	n.ID = NodeID(len(b.nodes))
	b.nodes = append(b.nodes, n)
	if n.Name != "" {
		b.byName[n.Name] = n.ID
	}
	return n.ID
}

// AddPrimaryInput adds a free-variable primary input and returns its id.
func (b *Builder) AddPrimaryInput(name string) NodeID {
	return b.add(Node{Kind: PrimaryInput, Gate: Input, Name: name})
}

// AddPrimaryOutput adds a primary output whose sole fanin is driver.
func (b *Builder) AddPrimaryOutput(driver NodeID, name string) NodeID {
	return b.add(Node{Kind: PrimaryOutput, Fanin: []NodeID{driver}, Name: name})
}

// AddLogic adds a combinational gate of type gate over the ordered fanin
// list, returning its id. Fanin order is preserved verbatim; pin positions
// are meaningful to branch faults.
func (b *Builder) AddLogic(gate GateType, fanin []NodeID, name string) NodeID {
	fc := make([]NodeID, len(fanin))
	copy(fc, fanin)
	return b.add(Node{Kind: Logic, Gate: gate, Fanin: fc, Name: name})
}

// AddXorChain decomposes a wide XOR (or XNOR, via invert) over inputs into a
// chain of binary Xor gates, the only XOR form the encoder accepts. It
// returns the id of the final node, whose Gate is Xnor iff invert is true.
// Panics if len(inputs) < 2.
func (b *Builder) AddXorChain(inputs []NodeID, invert bool, name string) NodeID {
	if len(inputs) < 2 {
		panic("circuit: AddXorChain requires at least two inputs")
	}
	acc := inputs[0]
	for i := 1; i < len(inputs)-1; i++ {
		acc = b.AddLogic(Xor, []NodeID{acc, inputs[i]}, "")
	}
	last := inputs[len(inputs)-1]
	gate := Xor
	if invert {
		gate = Xnor
	}
	return b.add(Node{Kind: Logic, Gate: gate, Fanin: []NodeID{acc, last}, Name: name})
}

// AddStorageElement creates a StorageInput/StorageOutput node pair (the D
// and Q pins of one edge-triggered element) driven by d, plus optional
// clock/clear/preset driver nodes (NoNode if absent), and returns the
// StorageElement. The StorageOutput node is a free PPI in the combinational
// view; the StorageInput node's sole fanin is d.
func (b *Builder) AddStorageElement(d NodeID, clock, clear, preset NodeID, name string) StorageElement {
	in := b.add(Node{Kind: StorageInput, Fanin: []NodeID{d}, Name: name + ".D"})
	out := b.add(Node{Kind: StorageOutput, Gate: Input, Name: name + ".Q"})
	se := StorageElement{Input: in, Output: out, Clock: clock, Clear: clear, Preset: preset}
	b.storage = append(b.storage, se)
	return se
}

// AddControlPin adds a clock/clear/preset driver node (kind must be one of
// StorageClock, StorageClear, StoragePreset).
func (b *Builder) AddControlPin(kind Kind, driver NodeID, name string) NodeID {
	return b.add(Node{Kind: kind, Fanin: []NodeID{driver}, Name: name})
}

// Lookup returns the NodeID previously registered under name, if any.
func (b *Builder) Lookup(name string) (NodeID, bool) {
	id, ok := b.byName[name]
	return id, ok
}

// Build validates the netlist invariants and, on success,
// computes Fanout lists and returns the frozen Network. On failure it
// returns one of the sentinel errors in errors.go wrapped with node
// context; a malformed netlist is fatal, there is no partial Network.
func (b *Builder) Build() (*Network, error) {
	n := len(b.nodes)
	nodes := make([]Node, n)
	copy(nodes, b.nodes)

	// Validate fanin references and arities before computing fanout.
	for i := range nodes {
		nd := &nodes[i]
		for _, f := range nd.Fanin {
			if f < 0 || int(f) >= n {
				return nil, fmt.Errorf("%w: node %d (%s) fanin %d", ErrDanglingFanin, nd.ID, nd.Name, f)
			}
		}
		switch nd.Kind {
		case Logic:
			if len(nd.Fanin) == 0 && !nd.Gate.IsConst() {
				return nil, fmt.Errorf("%w: node %d", ErrEmptyFanin, nd.ID)
			}
			if _, ok := gateArityRules[nd.Gate]; !ok {
				return nil, fmt.Errorf("%w: node %d gate %v", ErrNonPrimitiveGate, nd.ID, nd.Gate)
			}
			if err := validateGateArity(nd.Gate, len(nd.Fanin)); err != nil {
				return nil, fmt.Errorf("%w: node %d (%s): %v", ErrBadArity, nd.ID, nd.Name, err)
			}
		case PrimaryOutput, StorageInput:
			if len(nd.Fanin) != 1 {
				return nil, fmt.Errorf("%w: node %d", ErrEmptyFanin, nd.ID)
			}
		case PrimaryInput, StorageOutput:
			if len(nd.Fanin) != 0 {
				return nil, fmt.Errorf("%w: node %d", ErrUnconnectedPPI, nd.ID)
			}
		}
	}

	// Compute fanout in fanin-declaration order.
	for i := range nodes {
		for _, f := range nodes[i].Fanin {
			nodes[f].Fanout = append(nodes[f].Fanout, nodes[i].ID)
		}
	}

	storage := make([]StorageElement, len(b.storage))
	copy(storage, b.storage)
	for _, se := range storage {
		if se.Clock == NoNode {
			return nil, fmt.Errorf("%w: storage element with output %d", ErrMissingClock, se.Output)
		}
	}

	net := &Network{nodes: nodes, storage: storage}
	net.indexPPIOs()
	return net, nil
}

// validateGateArity: Xor/Xnor are binary only; every
// other primitive accepts any arity >= 1 (Buff/Not additionally require
// exactly 1, Const0/Const1 require 0 fanin but are only ever Logic nodes
// when a loader chooses to model a tied-off net that way).
func validateGateArity(gate GateType, arity int) error {
	rule, ok := gateArityRules[gate]
	if !ok {
		return fmt.Errorf("unknown gate type %v", gate)
	}
	if gate.IsConst() && arity != 0 {
		return fmt.Errorf("arity %d, constant gates take no fanin", arity)
	}
	if rule.min > 0 && arity < rule.min {
		return fmt.Errorf("arity %d below minimum %d", arity, rule.min)
	}
	if rule.max > 0 && arity > rule.max {
		return fmt.Errorf("arity %d above maximum %d", arity, rule.max)
	}
	return nil
}

type arityRule struct{ min, max int }

// gateArityRules: max==0 means unbounded (Const0/Const1 are held to zero
// fanin by the separate IsConst check in validateGateArity).
var gateArityRules = map[GateType]arityRule{
	Const0: {0, 0},
	Const1: {0, 0},
	Buff:   {1, 1},
	Not:    {1, 1},
	And:    {1, 0},
	Nand:   {1, 0},
	Or:     {1, 0},
	Nor:    {1, 0},
	Xor:    {2, 2},
	Xnor:   {2, 2},
}
