// Package litmap decouples gate encoding from literal storage.
//
// What: LitMap supplies the input and output SAT literals for a single gate
// without committing to how those literals are held — a per-node variable
// table for the common case, or a closure that substitutes one pin for a
// fixed value when encoding a branch fault.
//
// Why: gateenc must emit identical CNF-generation code whether the literals
// come from the real encoding session or a synthetic one with one pin
// clamped. A closure or a small struct behind one narrow interface keeps
// that choice out of the encoder instead of ad hoc
// special-casing inside it.
//
// Complexity: every method is O(1).
//
// Errors: none; out-of-range pin access panics via the underlying slice or
// closure, the same contract as a direct slice index.
//
// Usage:
//
//	m := litmap.Slice{Inputs: []cnfsat.Lit{a, b}, Out: y}
//	gateenc.Encode(f, circuit.And, m)
package litmap
