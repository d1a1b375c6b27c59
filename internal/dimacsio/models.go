package dimacsio

import (
	"fmt"

	"github.com/rhartert/dimacs"
)

// LoadModels parses a file holding one or more models, one per line, in
// the same signed-literal-list shape as a DIMACS clause (used by the
// regression fixtures to record an expected satisfying assignment per
// variable, true when positive).
func LoadModels(filename string) ([][]bool, error) {
	r, err := openReader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("dimacsio: parsing %q: %w", filename, err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("dimacsio: model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmp []int) error {
	model := make([]bool, len(tmp))
	for i, l := range tmp {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
