// Package justify back-traces a SAT model's node assignments to a
// PPI-only test vector.
//
// What: given a satisfying Model and a list of target (node, time)
// assignments, a Justifier walks back through fanin — recursing into every
// fanin when a node is sensitized (g differs from f), or dispatching on
// gate type and controlling value otherwise — until it reaches primary
// inputs and storage outputs, recording their model values.
//
// Three strategies share this dispatch:
//
//   - SinglePath picks one justifying input at each "controlling value"
//     choice point, preferring one that also holds the controlling value
//     in the faulty circuit.
//   - AllPath evaluates every valid choice at each such point and keeps
//     whichever produces the fewest total PPI assignments, memoized per
//     (node, time) cell.
//   - Naive ignores controlling values entirely and recurses
//     into every fanin of every visited node; simplest, least sharing,
//     used only by the engine's single-node legacy mode.
//
// Why: the three strategies answer the same contract at
// different size/quality tradeoffs — SinglePath is the fast default,
// AllPath trades time for smaller vectors, and Naive exists only to serve
// the engine's legacy single-node mode.
//
// Invariant: P restricted to PPIs, forward-simulated in the good circuit,
// reproduces every requested (node, time, value) cell. Size is not part
// of the contract for any strategy; AllPath merely tends to produce fewer
// assignments than SinglePath, a benchmark heuristic rather than a
// guarantee.
package justify
