package wcnf

import "testing"

func TestSimplifyHardenTransitionWeight(t *testing.T) {
	// Softs {(p):1, (q):1, (r):10}; a hard rules out p and r together, so
	// forcing all three true is inconsistent, but forcing only r true
	// (weight 10 alone) is not: r is hardened because 1+1 < 10, p and q
	// are not.
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(0, true), lit(2, true)}) // ¬p v ¬r
	_ = s.AddSoftClause([]Lit{lit(0, false)}, 1)
	_ = s.AddSoftClause([]Lit{lit(1, false)}, 1)
	_ = s.AddSoftClause([]Lit{lit(2, false)}, 10)

	s.simplifyHarden(func() Oracle { return newFakeOracle() }, DefaultParams)

	if s.Unsat {
		t.Fatalf("store should remain satisfiable")
	}
	if got, want := s.Soft.Len(), 2; got != want {
		t.Fatalf("Soft.Len() = %d, want %d (r should have moved to hard)", got, want)
	}
	for _, w := range s.SoftWeight {
		if w == 10 {
			t.Errorf("the weight-10 soft should have been hardened, still present with weight %v", w)
		}
	}
	if got, want := s.Hard.Len(), 2; got != want {
		t.Errorf("Hard.Len() = %d, want %d (original hard + hardened r)", got, want)
	}
}

func TestSimplifyHardenNoopWhenFirstTierConflicts(t *testing.T) {
	// p and q are mutually exclusive; forcing both of the equal-weight
	// softs true at the very first (and only) tier is immediately
	// inconsistent, so nothing gets hardened.
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(0, true), lit(1, true)}) // ¬p v ¬q
	_ = s.AddSoftClause([]Lit{lit(0, false)}, 5)
	_ = s.AddSoftClause([]Lit{lit(1, false)}, 5)

	before := s.Soft.Len()
	s.simplifyHarden(func() Oracle { return newFakeOracle() }, DefaultParams)

	if s.Unsat {
		t.Fatalf("simplifyHarden must never make a satisfiable formula unsat")
	}
	if s.Soft.Len() != before {
		t.Errorf("Soft.Len() changed from %d to %d; the only tier conflicts and should not harden", before, s.Soft.Len())
	}
}

func TestSimplifyHardenStopsOnUnsatTier(t *testing.T) {
	// (p) forced hard true, and a soft (!p) at the lightest tier: forcing
	// the weight-2 soft (q) true is consistent on its own, so that tier
	// hardens; layering in the weight-1 soft (!p) on top contradicts the
	// hard unit, so the pass must stop there without hardening it.
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(0, false)})
	_ = s.AddSoftClause([]Lit{lit(0, true)}, 1)
	_ = s.AddSoftClause([]Lit{lit(1, false)}, 2)

	s.simplifyHarden(func() Oracle { return newFakeOracle() }, DefaultParams)

	if s.Unsat {
		t.Fatalf("simplifyHarden must never make a satisfiable formula unsat")
	}
	if got := s.Soft.Len(); got != 1 {
		t.Errorf("Soft.Len() = %d, want 1 (only the weight-1 soft should remain; weight-2 hardens cleanly)", got)
	}
	for _, w := range s.SoftWeight {
		if w != 1 {
			t.Errorf("remaining soft has weight %v, want 1", w)
		}
	}
}
