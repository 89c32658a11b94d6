package fault

import "github.com/dtpgcore/tpg/circuit"

// FaultSet holds the full collapsed single stuck-at fault list for one
// Network, built once and immutable thereafter.
type FaultSet struct {
	faults []Fault
}

// Faults returns every fault, indexed by ID.
func (fs *FaultSet) Faults() []Fault { return fs.faults }

// Fault returns the fault with the given id.
func (fs *FaultSet) Fault(id ID) Fault { return fs.faults[id] }

// Len returns F, the number of faults in the set (representative and non-
// representative alike).
func (fs *FaultSet) Len() int { return len(fs.faults) }

// Representative returns the equivalence-class root of id.
func (fs *FaultSet) Representative(id ID) Fault { return fs.faults[fs.faults[id].Rep] }

// Collapse enumerates every stuck-at-0/1 fault at every node's stem and at
// every logic/PPO/StorageInput node's input pins, then computes the
// representative equivalence forest: for a node with exactly one fanout
// edge, the corresponding downstream branch faults are collapsed onto the
// node's stem faults, which become their representatives.
func Collapse(net *circuit.Network) *FaultSet {
	n := net.NumNodes()

	var faults []Fault
	stemID := make(map[circuit.NodeID][2]ID, n) // node -> [sa0 id, sa1 id]
	// branchID[node][pin][value]
	branchID := make(map[circuit.NodeID]map[int][2]ID)

	nextID := ID(0)
	for i := 0; i < n; i++ {
		nd := net.Node(circuit.NodeID(i))
		if nd.IsControlPin() {
			continue
		}
		var ids [2]ID
		for v := 0; v < 2; v++ {
			ids[v] = nextID
			faults = append(faults, Fault{ID: nextID, Node: nd.ID, Pin: -1, Value: v == 1, Rep: nextID})
			nextID++
		}
		stemID[nd.ID] = ids

		if len(nd.Fanin) > 0 {
			pins := make(map[int][2]ID, len(nd.Fanin))
			for p := range nd.Fanin {
				var pids [2]ID
				for v := 0; v < 2; v++ {
					pids[v] = nextID
					faults = append(faults, Fault{ID: nextID, Node: nd.ID, Pin: p, Value: v == 1, Rep: nextID})
					nextID++
				}
				pins[p] = pids
			}
			branchID[nd.ID] = pins
		}
	}

	// Collapse: a node u with exactly one fanout edge (to v at pin p) has
	// the branch faults at v/p merged onto its stem faults (Rep = stem).
	for i := 0; i < n; i++ {
		nd := net.Node(circuit.NodeID(i))
		if nd.IsControlPin() || len(nd.Fanout) != 1 {
			continue
		}
		v := nd.Fanout[0]
		p := net.FaninPin(v, nd.ID)
		if p < 0 {
			continue
		}
		pins, ok := branchID[v]
		if !ok {
			continue
		}
		bids, ok := pins[p]
		if !ok {
			continue
		}
		sids := stemID[nd.ID]
		for val := 0; val < 2; val++ {
			faults[bids[val]].Rep = sids[val]
		}
	}

	return &FaultSet{faults: faults}
}

// Equivalent reports whether a and b share a representative.
func (fs *FaultSet) Equivalent(a, b ID) bool {
	return fs.faults[a].Rep == fs.faults[b].Rep
}
