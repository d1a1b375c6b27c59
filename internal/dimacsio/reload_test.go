package dimacsio

import (
	"testing"

	"github.com/wpms-io/wpms-core/wcnf"
)

func TestNewReloader(t *testing.T) {
	reload := NewReloader("testdata/sample.wcnf", false)

	raw, err := reload()
	if err != nil {
		t.Fatalf("reload(): want no error, got %s", err)
	}
	if got, want := len(raw.Hard), 1; got != want {
		t.Fatalf("len(Hard) = %d, want %d", got, want)
	}
	if got, want := len(raw.Soft), 2; got != want {
		t.Fatalf("len(Soft) = %d, want %d", got, want)
	}

	wantHard := []wcnf.Lit{wcnf.MkLit(0, false), wcnf.MkLit(1, false)}
	for i, l := range raw.Hard[0] {
		if l != wantHard[i] {
			t.Errorf("Hard[0][%d] = %v, want %v", i, l, wantHard[i])
		}
	}

	if got, want := raw.Soft[0].Weight, wcnf.Weight(3); got != want {
		t.Errorf("Soft[0].Weight = %v, want %v", got, want)
	}
	if got, want := raw.Soft[1].Weight, wcnf.Weight(5); got != want {
		t.Errorf("Soft[1].Weight = %v, want %v", got, want)
	}
}

func TestNewReloader_independentOfMutation(t *testing.T) {
	// reload() re-parses from disk every call, so it must not be affected
	// by whatever simplification did to a Store loaded from the same file.
	s := wcnf.NewStore()
	if err := LoadWCNF("testdata/sample.wcnf", false, s); err != nil {
		t.Fatalf("LoadWCNF(): %v", err)
	}
	reload := NewReloader("testdata/sample.wcnf", false)

	s.Soft = wcnf.NewPackedVecs[wcnf.Lit](0, 0)
	s.SoftWeight = nil

	raw, err := reload()
	if err != nil {
		t.Fatalf("reload(): want no error, got %s", err)
	}
	if got, want := len(raw.Soft), 2; got != want {
		t.Errorf("len(Soft) = %d, want %d (reload must not see the mutated store)", got, want)
	}
}
