package structindex

import "github.com/dtpgcore/tpg/circuit"

// topoOrder returns every non-control-pin node in topological order
// (fanin before fanout), using an explicit work stack rather than recursion —
// a DAG walk here can reach thousands of levels on deep circuits.
func topoOrder(net *circuit.Network) ([]circuit.NodeID, error) {
	n := net.NumNodes()
	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make([]uint8, n)
	order := make([]circuit.NodeID, 0, n)

	type frame struct {
		id   circuit.NodeID
		next int // index into Fanin already pushed
	}

	for start := 0; start < n; start++ {
		if net.Node(circuit.NodeID(start)).IsControlPin() {
			continue
		}
		if state[start] != white {
			continue
		}
		stack := []frame{{id: circuit.NodeID(start)}}
		state[start] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			fanin := net.Fanin(top.id)
			advanced := false
			for top.next < len(fanin) {
				f := fanin[top.next]
				top.next++
				if net.Node(f).IsControlPin() {
					continue
				}
				switch state[f] {
				case white:
					state[f] = gray
					stack = append(stack, frame{id: f})
					advanced = true
				case gray:
					return nil, ErrCycle
				}
				if advanced {
					break
				}
			}
			if advanced {
				continue
			}
			state[top.id] = black
			order = append(order, top.id)
			stack = stack[:len(stack)-1]
		}
	}
	return order, nil
}
