// Package activation builds the assumption literals (not learnt clauses)
// that turn a shared base CNF into a per-fault solve: FFR activation
// and, for MFFC-scope encoding, the control-variable wiring
// that lets several faults in one MFFC share one base CNF.
//
// What: Activate walks from a fault's injection point along its FFR's
// single-fanout chain to the FFR root, asserting the non-controlling value
// on every side input it passes so the fault's effect reaches the root.
// BuildMFFCControls allocates one control variable per FFR root in an MFFC
// and rewires each root's faulty-side gate output through it, so a driver
// can select exactly one active FFR per solve via assumptions alone.
//
// Why: this set is encoded as assumptions rather than learnt clauses so it
// can be varied per fault without resetting the solver — repeated Solve
// calls against one Formula, each with its own assumption set.
//
// Complexity: O(chain length to the FFR root) per fault; O(k) variables and
// clauses for a k-FFR MFFC's control wiring.
package activation
