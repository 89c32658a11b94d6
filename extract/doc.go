// Package extract recovers a sufficient condition for fault detection from
// a satisfying Model: a set of side-input values that, together with the
// fault's own activation, guarantee the fault's effect reaches a primary
// output.
//
// What: Extract walks the D-frontier backward from every sensitized pseudo
// primary output (g != f in the model) toward the fault root. At a
// sensitized node it recurses into every fanin inside the cone (sensitized
// fanins recurse further, masking fanins explain why the signal still got
// through) and records every fanin outside the cone as a Literal (its
// model value matters, since g == f there by construction). At a masking
// node — reached only as the fanin of a sensitized node, itself not
// sensitized — it looks for fanins holding the gate's controlling value
// (the reason propagation stopped there) and recurses into those, or
// cascades into every fanin if none qualify.
//
// Why: re-solving to recover the condition would waste the model already
// in hand; Extract walks the model instead, with a node-keyed memo table
// so reconvergent fanout cannot blow the walk up exponentially.
//
// Two shapes: Extract returns the full Expr (one Term per sensitized
// output, a disjunction); Single returns just the first sensitized
// output's Term, for callers that only need one witness.
package extract
