// Package gateenc emits the CNF clauses for a single gate's input/output
// relation, in both its fault-free and faulty forms.
//
// What: Encode appends clauses asserting output ≡ gate_fn(inputs) for the
// ten primitive gate functions. EncodeFaulty appends the same gate's
// clauses with one stem forced to a constant, or one input pin substituted
// for a constant (a branch fault).
//
// Why: every primitive gate's Tseitin encoding is a fixed, small clause
// shape; keeping it in one package lets cone and activation treat gates
// uniformly through litmap.LitMap rather than switching on gate type
// themselves.
//
// Complexity: O(arity) clauses and literals per call.
//
// Errors: Encode panics on an unrecognized GateType; circuit.Builder already
// rejects non-primitive gate types at Network construction, so this can
// only fire on a malformed litmap.LitMap built by code outside this module.
package gateenc
