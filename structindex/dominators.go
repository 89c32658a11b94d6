package structindex

import "github.com/dtpgcore/tpg/circuit"

// virtualExit is a sentinel beyond the dense NodeID space, the common sink
// every PPO's fanout is conceptually attached to. It lets the
// Cooper/Harvey/Kennedy merge converge even when a node's fanout reaches
// two or more primary outputs with no real common dominator: such a node's
// computed idom equals virtualExit, which computeDominators then reports as
// "no dominator" — the dom(n) = ⋂ dom(fo) ∩ fo intersection came up empty.
// Without this virtual sink the merge could walk
// two permanently-diverging dominator chains forever.
const virtualExit circuit.NodeID = -2

// computeDominators returns, for every node with a real dominator, its
// immediate dominator toward the outputs. Nodes absent from the returned
// map have no dominator: every PPO, plus any node whose
// fanout reaches multiple primary outputs with no common ancestor below
// virtualExit.
//
// order must be the fanin-before-fanout topological order (topoOrder). The
// algorithm walks it back-to-front so every node's fanouts are finalized
// before the node itself is processed — one pass suffices on a DAG.
func computeDominators(net *circuit.Network, order []circuit.NodeID) map[circuit.NodeID]circuit.NodeID {
	rpoNum := make(map[circuit.NodeID]int, len(order)+1)
	rpoNum[virtualExit] = -1
	for i, id := range order {
		rpoNum[id] = len(order) - 1 - i
	}

	idom := make(map[circuit.NodeID]circuit.NodeID, len(order)+1)
	idom[virtualExit] = virtualExit

	intersect := func(a, b circuit.NodeID) circuit.NodeID {
		for a != b {
			for rpoNum[a] > rpoNum[b] {
				a = idom[a]
			}
			for rpoNum[b] > rpoNum[a] {
				b = idom[b]
			}
		}
		return a
	}

	fanoutsOf := func(n circuit.NodeID) []circuit.NodeID {
		nd := net.Node(n)
		if nd.IsPPO() {
			return []circuit.NodeID{virtualExit}
		}
		return nd.Fanout
	}

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		var result circuit.NodeID
		haveResult := false
		for _, fo := range fanoutsOf(n) {
			if _, ok := idom[fo]; !ok {
				continue
			}
			if !haveResult {
				result, haveResult = fo, true
				continue
			}
			result = intersect(result, fo)
		}
		if haveResult {
			idom[n] = result
		}
	}

	out := make(map[circuit.NodeID]circuit.NodeID, len(order))
	for _, id := range order {
		if d, ok := idom[id]; ok && d != virtualExit {
			out[id] = d
		}
	}
	return out
}
