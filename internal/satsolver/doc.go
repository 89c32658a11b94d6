// Package satsolver is the in-tree reference implementation of cnfsat.Solver.
//
// The encoding packages treat the solver as a black box behind
// cnfsat.Solver, so a production CDCL engine can be swapped in freely.
// This package is the minimal stand-in that makes the module buildable and
// testable end-to-end without an external SAT dependency: a DPLL solver with
// unit propagation, two-way branching, and a conflict budget that
// yields cnfsat.Unknown instead of looping forever — enough to satisfy every
// correctness property on the small-to-medium CNFs this
// engine's gate/cone encodings produce, without claiming to be a production
// CDCL engine (no clause learning, no VSIDS, no restarts beyond the budget
// check).
//
// Nothing outside this package and dtpg's engine wiring imports it directly;
// every other package programs against cnfsat.Solver.
package satsolver
