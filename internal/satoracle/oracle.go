package satoracle

// This file adapts the CDCL Solver above to the narrow oracle surface the
// preprocessing pipeline needs: add a clause, propagate units, ask what is
// forced, probe an implication, and solve under a budget. None of this
// exposes the solver's decision-level bookkeeping to callers; every method
// here leaves the solver at the decision level it was called at.

// TheoryIsUnsat reports whether the clause database is unsatisfiable at the
// root level, independently of any assumptions currently pushed.
func (s *Solver) TheoryIsUnsat() bool {
	return s.unsat
}

// UnitPropagate runs unit propagation to a fixpoint at the current decision
// level and reports whether the result is conflict-free. A conflict found at
// decision level 0 permanently marks the solver unsat.
func (s *Solver) UnitPropagate() bool {
	if s.unsat {
		return false
	}
	if conflict := s.Propagate(); conflict != nil {
		if s.decisionLevel() == 0 {
			s.unsat = true
		}
		return false
	}
	return true
}

// ForcedLiterals returns the literals forced onto the trail strictly after
// decision level dl was entered, in propagation order. ForcedLiterals(0)
// returns every literal forced without any assumption at all.
func (s *Solver) ForcedLiterals(dl int) []Literal {
	start := 0
	if dl > 0 {
		start = s.trailLim[dl-1] + 1
	}
	out := make([]Literal, len(s.trail)-start)
	copy(out, s.trail[start:])
	return out
}

// FixedValue returns the root-level (decision-level 0) value of l, or
// Unknown if l is unassigned or only assigned under some assumption.
func (s *Solver) FixedValue(l Literal) LBool {
	if s.level[l.VarID()] > 0 {
		return Unknown
	}
	return s.LitValue(l)
}

// FindImplications assumes l, propagates, replaces the contents of *out with
// every literal thereby forced (l itself excluded), and undoes the assumption before
// returning. It reports false if assuming l leads to a conflict, meaning l
// cannot be true given the current theory.
func (s *Solver) FindImplications(l Literal, out *[]Literal) bool {
	d := s.decisionLevel()
	if !s.assume(l) {
		s.cancelUntil(d)
		return false
	}
	conflict := s.Propagate()
	*out = append((*out)[:0], s.ForcedLiterals(d+1)...)
	s.cancelUntil(d)
	return conflict == nil
}

// SolveWithPropagationBudget runs the CDCL search bounded by an
// approximate propagation budget, converted into the conflict budget that
// Search actually consumes via the solver's propagations-per-conflict
// moving average. It returns Unknown if the budget is exhausted before a
// model or a root-level conflict is found.
func (s *Solver) SolveWithPropagationBudget(budget int64) LBool {
	if s.order == nil {
		s.order = NewVarOrder(s, s.NumVariables())
		s.order.phaseSaving = s.phaseSaving
	}

	conflictBudget := budget
	if ppc := s.propPerConflict.Val(); ppc > 1 {
		conflictBudget = int64(float64(budget) / ppc)
	}
	if conflictBudget < 1 {
		conflictBudget = 1
	}

	numLearnts := s.NumConstraints()/3 + 1
	return s.Search(int(conflictBudget), numLearnts)
}
