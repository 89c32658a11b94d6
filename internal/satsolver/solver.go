package satsolver

import (
	"time"

	"github.com/dtpgcore/tpg/cnfsat"
)

type assignState int8

const (
	unassigned assignState = iota
	assignedTrue
	assignedFalse
)

// Solver is a DPLL solver over a growable clause database.
type Solver struct {
	clauses [][]cnfsat.Lit
	nVars   int
	assign  []assignState // 1-indexed by Var; index 0 unused
	trail   []cnfsat.Var
	stats   cnfsat.Stats
}

// New returns an empty Solver with no variables or clauses.
func New() *Solver {
	return &Solver{assign: make([]assignState, 1)}
}

// NewVar allocates a fresh Var.
func (s *Solver) NewVar() cnfsat.Var {
	s.nVars++
	s.assign = append(s.assign, unassigned)
	return cnfsat.Var(s.nVars)
}

// AddClause records c. Clauses are not copied defensively by the caller's
// contract (cnfsat.Formula already owns private slices), so Solver copies
// here to guard against later mutation of the caller's slice.
func (s *Solver) AddClause(c cnfsat.Clause) {
	cp := make([]cnfsat.Lit, len(c))
	copy(cp, c)
	s.clauses = append(s.clauses, cp)
}

// litValue reports the truth value of l under the current assignment, and
// whether it is assigned at all.
func (s *Solver) litValue(l cnfsat.Lit) (val bool, ok bool) {
	st := s.assign[l.Var()]
	if st == unassigned {
		return false, false
	}
	v := st == assignedTrue
	if l.Negative() {
		v = !v
	}
	return v, true
}

func (s *Solver) set(v cnfsat.Var, val bool) {
	if val {
		s.assign[v] = assignedTrue
	} else {
		s.assign[v] = assignedFalse
	}
	s.trail = append(s.trail, v)
}

func (s *Solver) unsetFrom(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		s.assign[s.trail[i]] = unassigned
	}
	s.trail = s.trail[:mark]
}

// propagate performs unit propagation to a fixpoint. It returns false if a
// conflict (an empty, all-false clause) is found.
func (s *Solver) propagate() bool {
	changed := true
	for changed {
		changed = false
		for _, cl := range s.clauses {
			unassignedLit := cnfsat.Lit(0)
			nUnassigned := 0
			satisfied := false
			for _, l := range cl {
				val, ok := s.litValue(l)
				if ok && val {
					satisfied = true
					break
				}
				if !ok {
					nUnassigned++
					unassignedLit = l
				}
			}
			if satisfied {
				continue
			}
			if nUnassigned == 0 {
				return false // conflict: every literal false
			}
			if nUnassigned == 1 {
				val, _ := s.litValue(unassignedLit)
				_ = val
				s.set(unassignedLit.Var(), !unassignedLit.Negative())
				changed = true
				s.stats.Propagations++
			}
		}
	}
	return true
}

// firstUnassignedVar returns the lowest-numbered unassigned Var, or 0 if
// every Var is assigned.
func (s *Solver) firstUnassignedVar() cnfsat.Var {
	for v := 1; v <= s.nVars; v++ {
		if s.assign[v] == unassigned {
			return cnfsat.Var(v)
		}
	}
	return 0
}

// search is the recursive DPLL core. deadline<=0 means no time limit.
func (s *Solver) search(limits cnfsat.Limits, deadline time.Time) cnfsat.Outcome {
	if limits.ConflictLimit > 0 && s.stats.Conflicts >= limits.ConflictLimit {
		return cnfsat.Unknown
	}
	if limits.TimeLimitNS > 0 && time.Now().After(deadline) {
		return cnfsat.Unknown
	}

	mark := len(s.trail)
	if !s.propagate() {
		s.stats.Conflicts++
		s.unsetFrom(mark)
		return cnfsat.Unsat
	}

	v := s.firstUnassignedVar()
	if v == 0 {
		return cnfsat.Sat // every variable assigned, no conflict: satisfied
	}

	s.stats.Decisions++
	for _, tryVal := range [2]bool{true, false} {
		branchMark := len(s.trail)
		s.set(v, tryVal)
		outcome := s.search(limits, deadline)
		if outcome != cnfsat.Unsat {
			if outcome == cnfsat.Unknown {
				s.unsetFrom(mark)
				return cnfsat.Unknown
			}
			return outcome
		}
		s.unsetFrom(branchMark)
	}

	s.unsetFrom(mark)
	return cnfsat.Unsat
}

// model is a snapshot of Solver's current assignment at Sat time.
type model struct {
	assign []assignState
}

func (m *model) Value(v cnfsat.Var) (bool, bool) {
	if int(v) >= len(m.assign) {
		return false, false
	}
	st := m.assign[v]
	if st == unassigned {
		return false, false
	}
	return st == assignedTrue, true
}

// Solve decides satisfiability of the accumulated clauses under assumptions.
func (s *Solver) Solve(assumptions []cnfsat.Lit, limits cnfsat.Limits) (cnfsat.Outcome, cnfsat.Model, cnfsat.Stats) {
	s.stats = cnfsat.Stats{}
	s.trail = s.trail[:0]
	for i := range s.assign {
		s.assign[i] = unassigned
	}

	mark := len(s.trail)
	for _, a := range assumptions {
		val, ok := s.litValue(a)
		if ok && !val {
			s.unsetFrom(mark)
			return cnfsat.Unsat, nil, s.stats
		}
		if !ok {
			s.set(a.Var(), !a.Negative())
		}
	}

	var deadline time.Time
	if limits.TimeLimitNS > 0 {
		deadline = time.Now().Add(time.Duration(limits.TimeLimitNS))
	}

	outcome := s.search(limits, deadline)
	if outcome != cnfsat.Sat {
		s.unsetFrom(mark)
		return outcome, nil, s.stats
	}

	snap := make([]assignState, len(s.assign))
	copy(snap, s.assign)
	return cnfsat.Sat, &model{assign: snap}, s.stats
}

var _ cnfsat.Solver = (*Solver)(nil)
