package wcnf

import "testing"

func TestSimplifyDedupMergesSoftWeights(t *testing.T) {
	s := NewStore()
	_ = s.AddSoftClause([]Lit{lit(0, false), lit(1, false)}, 2)
	_ = s.AddSoftClause([]Lit{lit(1, false), lit(0, false)}, 3) // same clause, different literal order

	s.simplifyDedup()

	if got, want := s.Soft.Len(), 1; got != want {
		t.Fatalf("Soft.Len() = %d, want %d", got, want)
	}
	if got, want := s.SoftWeight[0], Weight(5); got != want {
		t.Errorf("merged soft weight = %v, want %v", got, want)
	}
	if !s.NoDups {
		t.Errorf("NoDups should be true after simplifyDedup")
	}
}

func TestSimplifyDedupHardSubsumesSoft(t *testing.T) {
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(0, false), lit(1, false)})
	_ = s.AddSoftClause([]Lit{lit(1, false), lit(0, false)}, 7)

	s.simplifyDedup()

	if got, want := s.Hard.Len(), 1; got != want {
		t.Fatalf("Hard.Len() = %d, want %d", got, want)
	}
	if got, want := s.Soft.Len(), 0; got != want {
		t.Errorf("Soft.Len() = %d, want %d (the hard already forces it true, no cost remains)", got, want)
	}
}

func TestSimplifyDedupUnitContradictionEqualWeight(t *testing.T) {
	s := NewStore()
	_ = s.AddSoftClause([]Lit{lit(0, false)}, 4)
	_ = s.AddSoftClause([]Lit{lit(0, true)}, 4)

	s.simplifyDedup()

	if got, want := s.Soft.Len(), 0; got != want {
		t.Fatalf("Soft.Len() = %d, want %d", got, want)
	}
	if got, want := s.BaseCost, Weight(4); got != want {
		t.Errorf("BaseCost = %v, want %v", got, want)
	}
}

func TestSimplifyDedupUnitContradictionUnequalWeight(t *testing.T) {
	s := NewStore()
	_ = s.AddSoftClause([]Lit{lit(0, false)}, 3)
	_ = s.AddSoftClause([]Lit{lit(0, true)}, 7)

	s.simplifyDedup()

	if got, want := s.Soft.Len(), 1; got != want {
		t.Fatalf("Soft.Len() = %d, want %d", got, want)
	}
	if got, want := s.SoftWeight[0], Weight(4); got != want {
		t.Errorf("residual weight = %v, want %v", got, want)
	}
	if got, want := s.Soft.At(0)[0], lit(0, true); got != want {
		t.Errorf("residual literal = %v, want %v (the heavier side survives)", got, want)
	}
	if got, want := s.BaseCost, Weight(3); got != want {
		t.Errorf("BaseCost = %v, want %v", got, want)
	}
}

func TestSimplifyDedupUnitHardVsSoft(t *testing.T) {
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(0, false)})
	_ = s.AddSoftClause([]Lit{lit(0, true)}, 9)

	s.simplifyDedup()

	if got, want := s.Soft.Len(), 0; got != want {
		t.Fatalf("Soft.Len() = %d, want %d", got, want)
	}
	if got, want := s.BaseCost, Weight(9); got != want {
		t.Errorf("BaseCost = %v, want %v (the hard forces the soft's negation)", got, want)
	}
	if got, want := s.Hard.Len(), 1; got != want {
		t.Errorf("Hard.Len() = %d, want %d", got, want)
	}
}

func TestSimplifyDedupUnitHardContradiction(t *testing.T) {
	s := NewStore()
	// Two contradictory hard units collide in the same bucket.
	recs := []clsRec{
		{lits: []Lit{lit(0, false)}, isHard: true},
		{lits: []Lit{lit(0, true)}, isHard: true},
	}
	g := mergeGroupRecs(recs)
	if !g.hardPresent {
		t.Fatalf("mergeGroupRecs should report hardPresent for a mix of hard records")
	}

	s.reduceUnitBucket(recs, func([]Lit) {}, func([]Lit, Weight) {})
	if !s.Unsat {
		t.Errorf("Unsat should be set when both polarities of a unit are hard")
	}
}
