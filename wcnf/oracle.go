package wcnf

// Oracle is the narrow SAT-solving surface the preprocessing pipeline
// consumes as a subroutine. A fresh Oracle is constructed (via an
// OracleFactory) at the start of every pipeline phase that needs one and
// discarded at the end, so no phase relies on solver state leaking into
// the next; see Design Notes for the rationale.
type Oracle interface {
	// AddClause adds a clause to the oracle's theory. It never returns an
	// error to the caller: an unsatisfiable addition is recorded
	// internally and surfaces through TheoryIsUnsat.
	AddClause(clause []Lit)

	// TheoryIsUnsat reports whether the oracle has detected the root-level
	// theory to be unsatisfiable.
	TheoryIsUnsat() bool

	// UnitPropagate runs propagation to a fixpoint at the current
	// decision level.
	UnitPropagate()

	// ForcedLiterals returns every literal forced onto the trail at or
	// above decision level dl. ForcedLiterals(0) returns every literal
	// forced with no assumption in effect.
	ForcedLiterals(dl int) []Lit

	// FixedValue returns the oracle's root-level opinion on l, or Undef
	// if l is not forced at the root.
	FixedValue(l Lit) Tri

	// FindImplications assumes l, propagates, appends every literal
	// thereby forced (excluding l itself) to *out, and undoes the
	// assumption before returning. It returns false if assuming l leads
	// to a conflict.
	FindImplications(l Lit, out *[]Lit) bool

	// SolveWithPropagationBudget attempts a full solve bounded by an
	// approximate propagation budget, returning Undef if the budget runs
	// out first.
	SolveWithPropagationBudget(budget int64) Tri
}

// OracleFactory constructs a fresh, empty Oracle. The pipeline calls this
// once per phase that needs an oracle.
type OracleFactory func() Oracle
