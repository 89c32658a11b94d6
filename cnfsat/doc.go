// Package cnfsat defines the propositional-formula types (Var, Lit, Clause)
// and the Solver contract that every encoding package in this module targets.
//
// What
//
//   - Var is a dense SAT variable id allocated by a Solver.
//   - Lit is a signed literal over a Var (positive = true, negative = negation).
//   - Clause is a disjunction of Lits; a Formula accumulates Clauses plus a
//     running count of allocated Vars.
//   - Solver is the black-box contract a production CDCL solver plugs in
//     behind. This package only describes the contract; internal/satsolver provides
//     one concrete, minimal implementation so the module is runnable without
//     an external SAT dependency.
//
// Why
//
//   - Every upstream package (gateenc, cone, dchain, activation, dtpg)
//     needs a shared literal vocabulary but must stay solver-agnostic —
//     gateenc and friends depend only on this package's types and the
//     Solver interface, never on internal/satsolver directly.
//
// Determinism
//
//	Clause emission order inside a Formula is exactly append order; Formula
//	never reorders or deduplicates, so CNF emission is reproducible given
//	identical encoder call order.
package cnfsat
