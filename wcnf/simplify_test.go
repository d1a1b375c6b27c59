package wcnf

import "testing"

func TestSimplifyEndToEnd(t *testing.T) {
	s := NewStore()
	_ = s.AddHardClause([]Lit{lit(0, false), lit(2, false)}) // a v c
	_ = s.AddSoftClause([]Lit{lit(1, false)}, 1)              // b
	_ = s.AddSoftClause([]Lit{lit(1, false)}, 1)              // b, duplicate: merges to weight 2
	_ = s.AddSoftClause([]Lit{lit(2, false)}, 3)              // c
	s.bumpMaxVar([]Lit{lit(3, false)}, true)                  // var 3 never appears in a clause

	p := DefaultParams
	p.Harden = false
	p.MxFind = MxFindNone
	// With Units on, the pure-literal pass would fix a, b and c true (each
	// appears only positively) and drop every clause before dedup and remap.
	p.Units = false

	if err := s.Simplify(func() Oracle { return newFakeOracle() }, p); err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	if s.Unsat {
		t.Fatalf("store should remain satisfiable")
	}
	if !s.Remapped {
		t.Fatalf("Remapped should be true after Simplify")
	}
	if got, want := s.NOrigVars, int32(4); got != want {
		t.Errorf("NOrigVars = %d, want %d", got, want)
	}
	// Variable 3 never appeared in any clause and must not survive remap.
	if got, want := s.MaxVar, int32(2); got != want {
		t.Errorf("MaxVar = %d, want %d (only a, b, c survive)", got, want)
	}
	if len(s.In2Ex) != 3 {
		t.Fatalf("In2Ex = %v, want 3 surviving variables", s.In2Ex)
	}

	if got, want := s.Soft.Len(), 2; got != want {
		t.Fatalf("Soft.Len() = %d, want %d", got, want)
	}
	var totalWeight Weight
	for _, w := range s.SoftWeight {
		totalWeight += w
	}
	if got, want := totalWeight, Weight(5); got != want {
		t.Errorf("total soft weight = %v, want %v (b merged to 2, c unchanged at 3)", got, want)
	}
	// Both surviving soft clauses are units, and remap flip-normalizes every
	// unit soft to appear negated.
	for i := 0; i < s.Soft.Len(); i++ {
		seq := s.Soft.At(i)
		if len(seq) != 1 || !seq[0].Negated() {
			t.Errorf("Soft.At(%d) = %v, want a single negated literal", i, seq)
		}
	}

	if got, want := s.Hard.Len(), 1; got != want {
		t.Fatalf("Hard.Len() = %d, want %d", got, want)
	}
}
