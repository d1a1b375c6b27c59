package wcnf

import "testing"

func lit(v int32, neg bool) Lit { return MkLit(v, neg) }

func TestAddHardClauseContradiction(t *testing.T) {
	s := NewStore()
	if err := s.AddHardClause([]Lit{lit(0, false)}); err != nil {
		t.Fatalf("AddHardClause: %v", err)
	}
	if err := s.AddHardClause([]Lit{lit(0, true)}); err != nil {
		t.Fatalf("AddHardClause: %v", err)
	}
	if !s.Unsat {
		t.Errorf("store should be Unsat after (a) and (!a), got Unsat=false")
	}
}

func TestAddHardClauseTautologyDropped(t *testing.T) {
	s := NewStore()
	if err := s.AddHardClause([]Lit{lit(0, false), lit(0, true)}); err != nil {
		t.Fatalf("AddHardClause: %v", err)
	}
	if s.Unsat {
		t.Errorf("a tautology should not make the store Unsat")
	}
	if got := s.Hard.Len(); got != 0 {
		t.Errorf("a tautology should not be stored, got %d hard clauses", got)
	}
}

func TestAddSoftClauseTautologyDropped(t *testing.T) {
	s := NewStore()
	if err := s.AddSoftClause([]Lit{lit(1, false), lit(1, true)}, 5); err != nil {
		t.Fatalf("AddSoftClause: %v", err)
	}
	if got := s.Soft.Len(); got != 0 {
		t.Errorf("a tautological soft should not be stored, got %d soft clauses", got)
	}
	if s.BaseCost != 0 {
		t.Errorf("a tautology can never incur cost, got BaseCost=%v", s.BaseCost)
	}
}

func TestAddSoftClauseNegativeWeightErrors(t *testing.T) {
	s := NewStore()
	if err := s.AddSoftClause([]Lit{lit(0, false)}, -1); err == nil {
		t.Errorf("AddSoftClause with negative weight should error")
	}
}

func TestAddSoftClauseZeroWeightIsNoop(t *testing.T) {
	s := NewStore()
	if err := s.AddSoftClause([]Lit{lit(0, false)}, 0); err != nil {
		t.Fatalf("AddSoftClause: %v", err)
	}
	if got := s.Soft.Len(); got != 0 {
		t.Errorf("a zero-weight soft should be dropped, got %d soft clauses", got)
	}
}

func TestAddSoftClauseNonIntegralClearsIntWeights(t *testing.T) {
	s := NewStore()
	if !s.IntWeights {
		t.Fatalf("a fresh store should start with IntWeights = true")
	}
	if err := s.AddSoftClause([]Lit{lit(0, false)}, 1.5); err != nil {
		t.Fatalf("AddSoftClause: %v", err)
	}
	if s.IntWeights {
		t.Errorf("a non-integral soft weight should clear IntWeights")
	}
}

func TestAddDimacsClauseRoutesByTop(t *testing.T) {
	s := NewStore()
	s.SetDimacsParams(2, 2, 10)

	if err := s.AddDimacsClause([]Lit{lit(0, false)}, 10); err != nil {
		t.Fatalf("AddDimacsClause: %v", err)
	}
	if err := s.AddDimacsClause([]Lit{lit(1, false)}, 3); err != nil {
		t.Fatalf("AddDimacsClause: %v", err)
	}

	if got, want := s.Hard.Len(), 1; got != want {
		t.Errorf("Hard.Len() = %d, want %d (weight >= top routes hard)", got, want)
	}
	if got, want := s.Soft.Len(), 1; got != want {
		t.Errorf("Soft.Len() = %d, want %d (weight < top routes soft)", got, want)
	}
}

func TestOrigAllLitsAreSoft(t *testing.T) {
	s := NewStore()
	_ = s.AddSoftClause([]Lit{lit(0, false)}, 1)
	_ = s.AddSoftClause([]Lit{lit(1, true)}, 1)
	_ = s.AddHardClause([]Lit{lit(0, false), lit(1, true)})

	if !s.OrigAllLitsAreSoft() {
		t.Errorf("OrigAllLitsAreSoft() = false, want true")
	}

	_ = s.AddHardClause([]Lit{lit(2, false)})
	if s.OrigAllLitsAreSoft() {
		t.Errorf("OrigAllLitsAreSoft() = true, want false once var 2 appears without a unit soft")
	}
}

func TestBumpMaxVarTracksOrigSeparately(t *testing.T) {
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(3, false)})
	if s.MaxVar != 3 || s.MaxOrigVar != 3 {
		t.Fatalf("after AddHardClause: MaxVar=%d MaxOrigVar=%d, want both 3", s.MaxVar, s.MaxOrigVar)
	}

	s.addHardClause([]Lit{lit(7, false)})
	if s.MaxVar != 7 {
		t.Errorf("internal addHardClause should still bump MaxVar, got %d want 7", s.MaxVar)
	}
	if s.MaxOrigVar != 3 {
		t.Errorf("internal addHardClause must not bump MaxOrigVar, got %d want 3", s.MaxOrigVar)
	}
}
