// Package circuit defines the immutable gate-level graph that every other
// package in this module reads but never mutates after construction.
//
// What
//
//   - Node: a dense-integer-identified gate, primary I/O, or storage-element
//     cut point, with an ordered fanin list and an ordered fanout list;
//     each (u,v) edge appears in v's fanin iff it appears in u's fanout.
//   - GateType: the ten primitive gate functions, plus the
//     virtual Input marker for primary inputs and storage outputs.
//   - StorageElement: an edge-triggered latch pair (input/output) with
//     optional clock/clear/preset control-pin drivers.
//   - Network: the immutable, validated graph built once per netlist by
//     Builder and shared read-only across every downstream package and
//     every concurrent DtpgEngine.
//
// Why
//
//   - Every algorithm downstream (structindex, cone, gateenc, dtpg) needs
//     a single, race-free view of the circuit. A Network is never mutated
//     after Builder.Build succeeds, so concurrent readers need no locking
//     at all.
//
// Determinism
//
//	Node ids are assigned by Builder in AddXxx call order and never reused;
//	fanin/fanout lists preserve insertion order. Every downstream traversal
//	that walks Network.Fanin/Fanout therefore visits nodes in a reproducible
//	sequence.
//
// Complex gates and wide XOR
//
//	The loader must pre-decompose complex Boolean
//	expressions and wide XOR/XNOR into primitive 2-input chains before they
//	reach this package; Builder.Build enforces that contract (ErrBadArity)
//	rather than attempting decomposition itself.
package circuit
