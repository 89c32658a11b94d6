// Package dchain emits the D-chain clauses and detection axiom that let a
// single SAT call decide fault detectability.
//
// What: for every node in a Cone's fault-propagation cone (TFO), Emit
// appends clauses defining d(n) ("differs" indicator) in terms of g(n) and
// f(n), chains it to each fanout's d literal (or, at a PPO, to the full
// equivalence), and adds the dominator-subsumption clause when the
// structural index reports one. AssertDetection appends the top-level
// detection axiom: at least one reachable PPO must differ.
//
// Why: this is the clause shape that turns "does this fault propagate" into
// a pure satisfiability question — the piece that turns gate-by-gate
// equivalence checking into one-call fault detection.
//
// Complexity: O(|TFO| + Σ fanout degree) clauses.
package dchain
