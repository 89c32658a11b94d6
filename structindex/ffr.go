package structindex

import "github.com/dtpgcore/tpg/circuit"

// FFRID indexes an Index's FFRs slice.
type FFRID int

// FFR is a maximal fan-out-free region: every non-root member has exactly
// one fanout, and that fanout is also a member.
type FFR struct {
	ID      FFRID
	Root    circuit.NodeID
	Members []circuit.NodeID // includes Root; sorted ascending by NodeID
	Faults  []int            // representative fault.ID values located within this FFR
}

// computeFFRs partitions every non-control-pin node into FFRs. A node is an
// FFR root iff its fanout count is not exactly one: fanout count 0 covers
// PPOs and dead ends, fanout count >1 covers reconvergence stems. A node
// whose only fanout is a control pin (a clock, clear or preset driver) is
// reached from no root and belongs to no FFR.
func computeFFRs(net *circuit.Network) (ffrs []FFR, rootOf map[circuit.NodeID]circuit.NodeID) {
	n := net.NumNodes()
	rootOf = make(map[circuit.NodeID]circuit.NodeID, n)

	for i := 0; i < n; i++ {
		nd := net.Node(circuit.NodeID(i))
		if nd.IsControlPin() {
			continue
		}
		if len(nd.Fanout) != 1 {
			rootOf[nd.ID] = nd.ID
		}
	}

	members := make(map[circuit.NodeID][]circuit.NodeID, len(rootOf))
	for root := range rootOf {
		members[root] = append(members[root], root)
	}
	for root := range rootOf {
		queue := append([]circuit.NodeID(nil), net.Fanin(root)...)
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			if net.Node(f).IsControlPin() {
				continue
			}
			if _, already := rootOf[f]; already {
				continue
			}
			rootOf[f] = root
			members[root] = append(members[root], f)
			queue = append(queue, net.Fanin(f)...)
		}
	}

	// Deterministic FFR ordering and ids: sort roots by NodeID.
	roots := make([]circuit.NodeID, 0, len(members))
	for r := range members {
		roots = append(roots, r)
	}
	sortNodeIDs(roots)

	ffrs = make([]FFR, len(roots))
	for i, r := range roots {
		ms := members[r]
		sortNodeIDs(ms)
		ffrs[i] = FFR{ID: FFRID(i), Root: r, Members: ms}
	}
	return ffrs, rootOf
}

func sortNodeIDs(ids []circuit.NodeID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
