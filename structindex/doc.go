// Package structindex computes the structural facts every DtpgEngine relies
// on but that are expensive enough to want computing once: immediate
// dominators toward the outputs, fan-out-free regions (FFRs), maximal
// fan-out-free cones (MFFCs), and a TFI-size-sorted PPO processing order
// — all facts every engine needs read-only and repeatedly.
//
// What
//
//   - ImmediateDominator(n): the nearest node every path from n to any PPO
//     passes through, computed by the Cooper/Harvey/Kennedy iterative
//     algorithm over a reverse-post-order numbering seeded at the PPOs
//     (the dom(n) = ⋂ dom(fo) ∩ fo fixpoint; a single reverse-topological
//     pass suffices because the per-time-frame circuit graph is acyclic).
//   - FFRs: maximal subgraphs where every non-root node has exactly one
//     fanout, keyed by root.
//   - MFFCs: maximal fan-out-free cones, partitioned into member FFRs, with
//     the invariant "a node is the MFFC root iff its immediate dominator is
//     None".
//
// Why
//
//   - Every encoding session (cone, activation) needs these
//     facts read-only and repeatedly; computing them once over the
//     immutable circuit.Network keeps every downstream encoding call an
//     O(1) lookup instead of a fresh graph walk.
//
// Determinism
//
//	The reverse-topological order used to seed dominator computation breaks
//	ties by NodeID, so Index.Build is a deterministic function of the
//	Network.
package structindex
