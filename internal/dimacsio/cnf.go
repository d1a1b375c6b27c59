package dimacsio

import (
	"fmt"

	"github.com/rhartert/dimacs"

	"github.com/wpms-io/wpms-core/wcnf"
)

// LoadCNF parses a plain (unweighted) DIMACS CNF file and adds every
// clause to store as a hard clause, delegating the scanning itself to
// github.com/rhartert/dimacs the way the upstream CLI's SAT-only loader
// does.
func LoadCNF(filename string, gzipped bool, store *wcnf.Store) error {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &cnfBuilder{store: store}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("dimacsio: parsing %q: %w", filename, err)
	}
	return nil
}

type cnfBuilder struct {
	store *wcnf.Store
}

func (b *cnfBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacsio: problem type %q is not cnf", problem)
	}
	return nil
}

func (b *cnfBuilder) Clause(tmp []int) error {
	lits := toLits(tmp)
	return b.store.AddHardClause(lits)
}

func (b *cnfBuilder) Comment(_ string) error {
	return nil
}

// toLits converts a slice of DIMACS-style signed 1-based integer literals
// into wcnf.Lit (0-based, sign-in-low-bit) literals.
func toLits(tmp []int) []wcnf.Lit {
	lits := make([]wcnf.Lit, len(tmp))
	for i, v := range tmp {
		if v < 0 {
			lits[i] = wcnf.MkLit(int32(-v-1), true)
		} else {
			lits[i] = wcnf.MkLit(int32(v-1), false)
		}
	}
	return lits
}
