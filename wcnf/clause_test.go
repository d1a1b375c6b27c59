package wcnf

import (
	"reflect"
	"testing"
)

func TestPrepareClauseDedup(t *testing.T) {
	in := []Lit{MkLit(2, false), MkLit(0, true), MkLit(2, false), MkLit(1, false)}
	out, ok := PrepareClause(in)
	if !ok {
		t.Fatalf("PrepareClause(%v) reported tautology, want none", in)
	}
	want := []Lit{MkLit(0, true), MkLit(1, false), MkLit(2, false)}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("PrepareClause(...) = %v, want %v", out, want)
	}
}

func TestPrepareClauseTautology(t *testing.T) {
	in := []Lit{MkLit(0, false), MkLit(1, false), MkLit(0, true)}
	_, ok := PrepareClause(in)
	if ok {
		t.Errorf("PrepareClause(%v) did not detect tautology", in)
	}
}

func TestPrepareClauseEmpty(t *testing.T) {
	out, ok := PrepareClause(nil)
	if !ok || len(out) != 0 {
		t.Errorf("PrepareClause(nil) = %v, %v, want empty, true", out, ok)
	}
}

func TestPrepareClauseUnit(t *testing.T) {
	out, ok := PrepareClause([]Lit{MkLit(4, true)})
	if !ok {
		t.Fatalf("PrepareClause reported tautology for a unit clause")
	}
	if want := []Lit{MkLit(4, true)}; !reflect.DeepEqual(out, want) {
		t.Errorf("PrepareClause(unit) = %v, want %v", out, want)
	}
}
