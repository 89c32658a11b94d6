// Package cone builds the per-fault encoding scope: the fault-propagation
// cone (TFO), the logic cone needed to justify it (TFI), and, for delay
// faults, the one-time-frame-earlier cone (PrevTFI).
//
// What: Build walks fanout from a root node to find TFO, then walks fanin
// from every TFO node to find TFI, allocating up to four SAT variables per
// node (g, f, d, h) as it goes. For a delay-fault root that is a
// StorageOutput, it additionally walks the paired StorageInput's fanin at
// time-frame 0, allocating h variables and equating g(root) with h of the
// paired StorageInput.
//
// Why: gateenc, dchain, and activation all need the same per-node variable
// bookkeeping; centralizing it here keeps the BFS/queue traversal logic in
// one place instead of scattering it across the three encoders that
// consume the resulting visitation order.
//
// Complexity: O(|TFO| + |TFI|) variable allocations; O(edges touched) queue
// work, all with explicit work queues — never recursion, since a cone walk
// can reach thousands of levels on deep circuits.
//
// Determinism: Order and PrevOrder are always the visited node ids sorted
// ascending, so CNF emission driven by them is a deterministic function of
// NodeID regardless of traversal discovery order.
//
// Errors: GLitMap/FLitMap/HLitMap panic if a fanin lacks the variable the
// invariant guarantees it has — an internal invariant failure,
// never a caller-reachable runtime condition on a Cone built by Build.
package cone
