package satoracle

import "github.com/wpms-io/wpms-core/wcnf"

// WcnfOracle adapts a *Solver to wcnf.Oracle. wcnf.Lit and Literal share
// the same sign-in-low-bit encoding by construction (see wcnf.Lit's doc
// comment), so every literal conversion here is a plain int cast; the
// lifted booleans LBool and wcnf.Tri likewise share Undef=0/True=1/False=-1
// and cast the same way.
type WcnfOracle struct {
	*Solver
}

// NewWcnfOracle returns an empty oracle suitable as a wcnf.OracleFactory
// product.
func NewWcnfOracle() *WcnfOracle {
	return &WcnfOracle{Solver: NewSolver(DefaultOptions)}
}

func toLiteral(l wcnf.Lit) Literal { return Literal(l) }
func toLit(l Literal) wcnf.Lit     { return wcnf.Lit(l) }
func toTri(b LBool) wcnf.Tri       { return wcnf.Tri(b) }

func (o *WcnfOracle) ensureVar(v int) {
	for o.Solver.NumVariables() <= v {
		o.Solver.AddVariable()
	}
}

// AddClause implements wcnf.Oracle. It creates any variable referenced by
// clause that the solver has not seen yet, then hands the clause to the
// underlying solver; an unsatisfiable addition is recorded on the solver
// and surfaces through TheoryIsUnsat, never as an error here.
func (o *WcnfOracle) AddClause(clause []wcnf.Lit) {
	lits := make([]Literal, len(clause))
	for i, l := range clause {
		o.ensureVar(int(l.Var()))
		lits[i] = toLiteral(l)
	}
	_ = o.Solver.AddClause(lits)
}

// TheoryIsUnsat implements wcnf.Oracle.
func (o *WcnfOracle) TheoryIsUnsat() bool {
	return o.Solver.TheoryIsUnsat()
}

// UnitPropagate implements wcnf.Oracle.
func (o *WcnfOracle) UnitPropagate() {
	o.Solver.UnitPropagate()
}

// ForcedLiterals implements wcnf.Oracle.
func (o *WcnfOracle) ForcedLiterals(dl int) []wcnf.Lit {
	lits := o.Solver.ForcedLiterals(dl)
	out := make([]wcnf.Lit, len(lits))
	for i, l := range lits {
		out[i] = toLit(l)
	}
	return out
}

// FixedValue implements wcnf.Oracle.
func (o *WcnfOracle) FixedValue(l wcnf.Lit) wcnf.Tri {
	if int(l.Var()) >= o.Solver.NumVariables() {
		return wcnf.Undef
	}
	return toTri(o.Solver.FixedValue(toLiteral(l)))
}

// FindImplications implements wcnf.Oracle.
func (o *WcnfOracle) FindImplications(l wcnf.Lit, out *[]wcnf.Lit) bool {
	o.ensureVar(int(l.Var()))
	var raw []Literal
	ok := o.Solver.FindImplications(toLiteral(l), &raw)
	for _, x := range raw {
		*out = append(*out, toLit(x))
	}
	return ok
}

// SolveWithPropagationBudget implements wcnf.Oracle.
func (o *WcnfOracle) SolveWithPropagationBudget(budget int64) wcnf.Tri {
	return toTri(o.Solver.SolveWithPropagationBudget(budget))
}
