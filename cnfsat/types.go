package cnfsat

import "fmt"

// Var is a dense, 1-based SAT variable identifier. Var(0) is never valid;
// it is reserved to let the zero value of Lit mean "no literal".
type Var int32

// Lit is a signed literal over a Var. A positive Lit asserts its Var is
// true; a negative Lit asserts its Var is false. Lit(0) is invalid.
type Lit int32

// NewLit builds a Lit over v with the given polarity (neg=true negates it).
func NewLit(v Var, neg bool) Lit {
	if neg {
		return Lit(-int32(v))
	}
	return Lit(v)
}

// Var returns the underlying variable of l, independent of polarity.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-int32(l))
	}
	return Var(l)
}

// Negative reports whether l asserts its Var is false.
func (l Lit) Negative() bool { return l < 0 }

// Negate returns ¬l.
func (l Lit) Negate() Lit { return -l }

// IsZero reports whether l is the invalid zero literal.
func (l Lit) IsZero() bool { return l == 0 }

func (l Lit) String() string {
	if l.Negative() {
		return fmt.Sprintf("-x%d", int32(l.Var()))
	}
	return fmt.Sprintf("x%d", int32(l.Var()))
}

// Clause is a disjunction of literals.
type Clause []Lit

// Formula accumulates clauses over a growing set of variables. It never
// mutates or reorders a Clause once appended.
type Formula struct {
	nVars   Var
	Clauses []Clause
}

// NewFormula returns an empty Formula.
func NewFormula() *Formula {
	return &Formula{}
}

// NewVar allocates and returns a fresh Var, starting at 1.
func (f *Formula) NewVar() Var {
	f.nVars++
	return f.nVars
}

// NumVars reports how many Vars have been allocated.
func (f *Formula) NumVars() Var { return f.nVars }

// AddClause appends a copy of lits as one clause (no sort, no dedup) to the formula.
func (f *Formula) AddClause(lits ...Lit) {
	c := make(Clause, len(lits))
	copy(c, lits)
	f.Clauses = append(f.Clauses, c)
}

// AddUnit appends the single-literal clause (l).
func (f *Formula) AddUnit(l Lit) { f.AddClause(l) }

// AddEquiv appends the two clauses asserting a ↔ b, i.e. (¬a ∨ b) ∧ (a ∨ ¬b).
func (f *Formula) AddEquiv(a, b Lit) {
	f.AddClause(a.Negate(), b)
	f.AddClause(a, b.Negate())
}

// AddXorEquiv appends clauses asserting a ↔ ¬b (a xor-equivalence / anti-
// equivalence), i.e. (¬a ∨ ¬b) ∧ (a ∨ b).
func (f *Formula) AddXorEquiv(a, b Lit) {
	f.AddClause(a.Negate(), b.Negate())
	f.AddClause(a, b)
}

// Outcome classifies the result of a single Solver.Solve call.
type Outcome int

const (
	// Unknown means the solver exhausted its resource budget without
	// deciding satisfiability.
	Unknown Outcome = iota
	// Sat means a satisfying assignment was found; consult the returned Model.
	Sat
	// Unsat means no assignment under the given assumptions satisfies the
	// formula.
	Unsat
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Model is a satisfying assignment: Value(v) is defined for every Var the
// solver assigned. Unassigned (don't-care) variables return ok=false.
type Model interface {
	Value(v Var) (val bool, ok bool)
}

// Stats reports solver-internal counters for one Solve call, used to build
// the per-outcome-class statistics record.
type Stats struct {
	Conflicts    int
	Decisions    int
	Propagations int
	Restarts     int
}

// Limits bounds a single Solve call. The zero value means unlimited.
type Limits struct {
	ConflictLimit int
	TimeLimitNS   int64
}
