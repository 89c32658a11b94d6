// Package fault enumerates and collapses single stuck-at faults over a
// circuit.Network.
//
// What
//
//   - Fault: a Stem (node output) or Branch (a specific input pin of a
//     logic/PPO node) stuck at 0 or 1, identified by a dense ID.
//   - Collapse builds the full fault list once per Network and computes the
//     representative-fault equivalence forest: a single-fanout node's
//     output-stuck fault and the downstream branch-stuck fault it implies
//     share a representative.
//   - DominanceIndex offers an optional, purely additive Dominates query
//     used to prune the fault list before full ATPG: a fault dominated by
//     an already-detected fault need not be solved on its own.
//
// Why
//
//   - Representative-fault soundness (a test detecting a representative
//     detects every fault in its class) requires O(1) access from
//     any fault to its equivalence root; this package assigns every fault
//     a stable dense id and stores the representative id directly on the
//     Fault value, so no pointer-chasing and no back-references.
package fault
