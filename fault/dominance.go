package fault

import "github.com/dtpgcore/tpg/circuit"

// DominanceIndex offers a purely additive dominance query between two
// faults: fault a structurally
// dominates fault b if every path by which b could be observed at a
// primary output necessarily also activates/propagates a. The conservative
// approximation implemented here (sufficient, not exhaustive) holds when a
// and b are stem faults of the same value on nodes u, d where d is the
// unique node on every path from u to the network's outputs — i.e. d is an
// immediate-dominator ancestor of u in the sense structindex's
// Index.ImmediateDominator computes. This package only stores the query surface; the actual
// dominator relation is supplied by the caller (structindex) to avoid an
// import cycle.
type DominanceIndex struct {
	fs     *FaultSet
	idomOf func(n circuit.NodeID) (circuit.NodeID, bool)
}

// NewDominanceIndex builds a DominanceIndex over fs using idomOf to answer
// "what is n's immediate dominator toward the outputs", typically
// structindex.Index.ImmediateDominator.
func NewDominanceIndex(fs *FaultSet, idomOf func(n circuit.NodeID) (circuit.NodeID, bool)) *DominanceIndex {
	return &DominanceIndex{fs: fs, idomOf: idomOf}
}

// Dominates reports whether fault a (stem, value v) structurally dominates
// fault b (stem, same value v) because a's node is an ancestor-by-immediate-
// dominance of b's node. Returns false (conservatively, "cannot prove
// dominance") for any case outside that narrow, sound pattern — this
// query is a pre-filter hint, never a substitute for solving: every fault
// still gets its own independent Detected/Untestable/Aborted verdict.
func (di *DominanceIndex) Dominates(a, b ID) bool {
	fa, fb := di.fs.Fault(a), di.fs.Fault(b)
	if fa.Pin >= 0 || fb.Pin >= 0 || fa.Value != fb.Value {
		return false
	}
	cur := fb.Node
	for {
		d, ok := di.idomOf(cur)
		if !ok {
			return false
		}
		if d == fa.Node {
			return true
		}
		cur = d
	}
}
