package fault

import "github.com/dtpgcore/tpg/circuit"

// Kind distinguishes a fault's structural position.
type Kind uint8

const (
	// Stem is a fault at a node's output.
	Stem Kind = iota
	// Branch is a fault at a specific input pin of a logic/PPO/StorageInput node.
	Branch
)

func (k Kind) String() string {
	if k == Stem {
		return "Stem"
	}
	return "Branch"
}

// ID is a dense fault identifier in [0, F).
type ID int

// Fault is a single stuck-at fault.
type Fault struct {
	ID ID
	// Node is the output-bearing node for a Stem fault, or the gate/PPO
	// node that owns the faulted input pin for a Branch fault.
	Node circuit.NodeID
	// Pin is the fanin index within Node.Fanin for a Branch fault, or -1
	// for a Stem fault.
	Pin int
	// Value is the stuck-at value.
	Value bool
	// Rep is this fault's representative fault id. Rep == ID iff this
	// fault is its own equivalence-class root; the relation forms a forest
	// whose roots are themselves.
	Rep ID
}

// IsRepresentative reports whether f is the root of its equivalence class.
func (f Fault) IsRepresentative() bool { return f.Rep == f.ID }

// Kind reports whether f is a Stem or Branch fault.
func (f Fault) Kind() Kind {
	if f.Pin < 0 {
		return Stem
	}
	return Branch
}

// String renders a fault as "<node>[/pin]@sa<0|1>".
func (f Fault) String() string {
	sa := "0"
	if f.Value {
		sa = "1"
	}
	if f.Pin < 0 {
		return nodeLabel(f.Node) + "@sa" + sa
	}
	return nodeLabel(f.Node) + "/" + pinLabel(f.Pin) + "@sa" + sa
}

func nodeLabel(n circuit.NodeID) string {
	return "n" + itoa(int(n))
}

func pinLabel(p int) string { return itoa(p) }

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
