package cnfsat

// Solver is the black-box CDCL contract every encoding package targets.
// Implementations own their own variable/clause storage; AddClause and
// NewVar may be called interleaved with Solve (incremental use), though
// this module always builds a full Formula and loads it once per session.
type Solver interface {
	// NewVar allocates a fresh Var.
	NewVar() Var
	// AddClause asserts c must hold in every future Solve call.
	AddClause(c Clause)
	// Solve decides satisfiability of the accumulated clauses conjoined with
	// the given assumption literals (all forced true), subject to limits.
	// On Sat, the returned Model is valid only until the next AddClause or
	// Solve call.
	Solve(assumptions []Lit, limits Limits) (Outcome, Model, Stats)
}

// LoadFormula pushes every clause of f into s unchanged. It allocates no
// variables and applies no offset: Formula and Solver share one dense Var
// space, so callers that build f directly, without going through s.NewVar,
// call s.NewVar() f.NumVars() times before LoadFormula and rely on the
// identity mapping that produces.
func LoadFormula(s Solver, f *Formula) {
	for _, c := range f.Clauses {
		s.AddClause(c)
	}
}
