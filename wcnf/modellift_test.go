package wcnf

import "testing"

func TestRewriteModelToInputAppliesFlipAndUnits(t *testing.T) {
	s := &Store{
		NOrigVars:   3,
		In2Ex:       []int32{0, 2},
		FlippedVars: []bool{true, false, false},
		HardUnits:   []Lit{lit(1, false)},
	}

	// Internal model: var0 (-> orig 0, flipped) = true, var1 (-> orig 2) = false.
	got := s.RewriteModelToInput([]bool{true, false})

	want := []bool{false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RewriteModelToInput(...)[%d] = %v, want %v (got=%v)", i, got[i], want[i], got)
		}
	}
}

func TestRewriteModelToInputPropagatesSCC(t *testing.T) {
	s := &Store{
		NOrigVars: 2,
		In2Ex:     []int32{0},
		AllSCC:    [][]Lit{{lit(0, false), lit(1, true)}}, // rep a, member !b: b takes a's opposite value
	}

	got := s.RewriteModelToInput([]bool{true}) // a = true
	if want := []bool{true, false}; got[0] != want[0] || got[1] != want[1] {
		t.Errorf("RewriteModelToInput(...) = %v, want %v", got, want)
	}
}

func TestCheckModelRequiresOriginalSource(t *testing.T) {
	s := NewStore()
	if _, err := s.CheckModel([]bool{true}, false); err == nil {
		t.Errorf("CheckModel should error without SetOriginalSource")
	}
}

func TestCheckModelScoresFalsifiedSofts(t *testing.T) {
	s := NewStore()
	s.SetOriginalSource(func() (*RawFormula, error) {
		return &RawFormula{
			Hard: [][]Lit{{lit(0, false), lit(1, false)}},
			Soft: []SoftLit{
				{Lits: []Lit{lit(0, true)}, Weight: 2},
				{Lits: []Lit{lit(1, true)}, Weight: 5},
			},
		}, nil
	})
	s.NOrigVars = 2
	s.In2Ex = []int32{0, 1}

	cost, err := s.CheckModel([]bool{true, false}, false)
	if err != nil {
		t.Fatalf("CheckModel: %v", err)
	}
	// a=true, b=false satisfies the hard; (!a) is falsified (cost 2), (!b)
	// is satisfied.
	if got, want := cost, Weight(2); got != want {
		t.Errorf("CheckModel cost = %v, want %v", got, want)
	}
}

func TestCheckModelUnsatModel(t *testing.T) {
	s := NewStore()
	s.SetOriginalSource(func() (*RawFormula, error) {
		return &RawFormula{Hard: [][]Lit{{lit(0, false)}}}, nil
	})
	s.NOrigVars = 1
	s.In2Ex = []int32{0}

	cost, err := s.CheckModel([]bool{false}, false)
	if err != nil {
		t.Fatalf("CheckModel: %v", err)
	}
	if cost != UnsatModel {
		t.Errorf("CheckModel cost = %v, want UnsatModel", cost)
	}
}
