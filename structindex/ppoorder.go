package structindex

import "github.com/dtpgcore/tpg/circuit"

// tfiSize returns |TFI(root)|, the number of distinct non-control-pin nodes
// reachable from root by walking fanin, via an explicit queue.
func tfiSize(net *circuit.Network, root circuit.NodeID) int {
	visited := map[circuit.NodeID]bool{root: true}
	queue := []circuit.NodeID{root}
	count := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		count++
		for _, f := range net.Fanin(n) {
			if net.Node(f).IsControlPin() || visited[f] {
				continue
			}
			visited[f] = true
			queue = append(queue, f)
		}
	}
	return count
}

// ppoOrder returns every PPO sorted ascending by TFI cone size (ties broken
// by NodeID), so a driver processing PPOs in this order front-loads the
// cheapest justification work first.
func ppoOrder(net *circuit.Network) []circuit.NodeID {
	ppos := append([]circuit.NodeID(nil), net.PPOs()...)
	sizes := make(map[circuit.NodeID]int, len(ppos))
	for _, p := range ppos {
		sizes[p] = tfiSize(net, p)
	}
	for i := 1; i < len(ppos); i++ {
		for j := i; j > 0; j-- {
			a, b := ppos[j-1], ppos[j]
			if sizes[a] < sizes[b] || (sizes[a] == sizes[b] && a < b) {
				break
			}
			ppos[j-1], ppos[j] = ppos[j], ppos[j-1]
		}
	}
	return ppos
}
