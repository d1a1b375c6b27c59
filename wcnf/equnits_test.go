package wcnf

import "testing"

func TestSimplifyEqualityAndUnitsCapturesUnit(t *testing.T) {
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(0, false)}) // unit: a
	_ = s.AddHardClause([]Lit{lit(0, true), lit(1, false)})
	_ = s.AddSoftClause([]Lit{lit(1, true)}, 3)

	s.simplifyEqualityAndUnits(func() Oracle { return newFakeOracle() }, DefaultParams)

	if s.Unsat {
		t.Fatalf("store should remain satisfiable")
	}

	foundA := false
	for _, u := range s.HardUnits {
		if u == lit(0, false) {
			foundA = true
		}
	}
	if !foundA {
		t.Errorf("HardUnits = %v, want it to contain the literal for a", s.HardUnits)
	}

	// b is forced true by a -> b together with a; the soft (!b) should
	// have folded into BaseCost.
	if s.BaseCost != 3 {
		t.Errorf("BaseCost = %v, want 3 (the forced-false soft's weight)", s.BaseCost)
	}
}

func TestSimplifyEqualityAndUnitsFindsSCC(t *testing.T) {
	s := NewStore()
	// a <-> b via two binary clauses: (!a v b) and (a v !b).
	_ = s.AddHardClause([]Lit{lit(0, true), lit(1, false)})
	_ = s.AddHardClause([]Lit{lit(0, false), lit(1, true)})
	_ = s.AddHardClause([]Lit{lit(1, false), lit(2, false)})

	p := DefaultParams
	s.simplifyEqualityAndUnits(func() Oracle { return newFakeOracle() }, p)

	if s.Unsat {
		t.Fatalf("store should remain satisfiable")
	}
	if len(s.AllSCC) == 0 {
		t.Errorf("expected at least one SCC to be recorded for the a<->b equivalence")
	}
}

func TestSimplifyEqualityAndUnitsDetectsUnsat(t *testing.T) {
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(0, false)})
	_ = s.AddHardClause([]Lit{lit(0, true)})

	// AddHardClause already marks Unsat for this direct contradiction
	// (both clauses are units); simplifyEqualityAndUnits must be a no-op
	// once Unsat is already set.
	if !s.Unsat {
		t.Fatalf("setup: expected Unsat after (a) and (!a)")
	}
	s.simplifyEqualityAndUnits(func() Oracle { return newFakeOracle() }, DefaultParams)
	if !s.Unsat {
		t.Errorf("Unsat flag should remain set")
	}
}
