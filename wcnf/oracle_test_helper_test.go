package wcnf

// fakeOracle is a brute-force Oracle used by the simplification-pass
// tests: instead of a real CDCL search, it enumerates every assignment
// over the variables referenced so far and answers queries by scanning
// the resulting model set. This is only tractable because every test
// formula here stays well under twenty variables; it exists purely to
// give the passes under test a correct, deterministic oracle without
// depending on internal/satoracle from this package.
type fakeOracle struct {
	clauses     [][]Lit
	nVars       int32
	forceUnsat  bool
	budgetUndef bool // when true, SolveWithPropagationBudget always reports Undef
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{}
}

func (o *fakeOracle) AddClause(clause []Lit) {
	cp := append([]Lit(nil), clause...)
	o.clauses = append(o.clauses, cp)
	for _, l := range clause {
		if v := l.Var() + 1; v > o.nVars {
			o.nVars = v
		}
	}
	if len(clause) == 0 {
		o.forceUnsat = true
	}
}

func (o *fakeOracle) satisfies(assign []bool, clause []Lit) bool {
	for _, l := range clause {
		v := int(l.Var())
		val := v < len(assign) && assign[v]
		if l.Negated() {
			val = !val
		}
		if val {
			return true
		}
	}
	return false
}

// models returns every assignment (as a []bool indexed by variable)
// satisfying every stored clause.
func (o *fakeOracle) models() [][]bool {
	if o.forceUnsat {
		return nil
	}
	n := int(o.nVars)
	var out [][]bool
	total := 1 << n
	for bits := 0; bits < total; bits++ {
		assign := make([]bool, n)
		for i := 0; i < n; i++ {
			assign[i] = bits&(1<<i) != 0
		}
		ok := true
		for _, c := range o.clauses {
			if !o.satisfies(assign, c) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, assign)
		}
	}
	return out
}

func (o *fakeOracle) TheoryIsUnsat() bool {
	return len(o.models()) == 0
}

func (o *fakeOracle) UnitPropagate() {
	// No-op: ForcedLiterals/FixedValue compute directly from the model
	// set, so there is no propagation state to advance.
}

func (o *fakeOracle) ForcedLiterals(dl int) []Lit {
	ms := o.models()
	if len(ms) == 0 {
		return nil
	}
	var out []Lit
	for v := int32(0); v < o.nVars; v++ {
		allTrue, allFalse := true, true
		for _, m := range ms {
			if m[v] {
				allFalse = false
			} else {
				allTrue = false
			}
		}
		if allTrue {
			out = append(out, MkLit(v, false))
		} else if allFalse {
			out = append(out, MkLit(v, true))
		}
	}
	return out
}

func (o *fakeOracle) FixedValue(l Lit) Tri {
	ms := o.models()
	if len(ms) == 0 {
		return Undef
	}
	v := int(l.Var())
	allTrue, allFalse := true, true
	for _, m := range ms {
		val := v < len(m) && m[v]
		if val {
			allFalse = false
		} else {
			allTrue = false
		}
	}
	switch {
	case allTrue:
		if l.Negated() {
			return False
		}
		return True
	case allFalse:
		if l.Negated() {
			return True
		}
		return False
	default:
		return Undef
	}
}

func (o *fakeOracle) FindImplications(l Lit, out *[]Lit) bool {
	o.ensureVar(l.Var())
	ms := o.models()
	var withL [][]bool
	v := int(l.Var())
	for _, m := range ms {
		val := m[v]
		if l.Negated() {
			val = !val
		}
		if val {
			withL = append(withL, m)
		}
	}
	if len(withL) == 0 {
		return false
	}
	for w := int32(0); w < o.nVars; w++ {
		if w == l.Var() {
			continue
		}
		allTrue, allFalse := true, true
		for _, m := range withL {
			if m[w] {
				allFalse = false
			} else {
				allTrue = false
			}
		}
		if allTrue {
			*out = append(*out, MkLit(w, false))
		} else if allFalse {
			*out = append(*out, MkLit(w, true))
		}
	}
	return true
}

func (o *fakeOracle) SolveWithPropagationBudget(budget int64) Tri {
	if o.budgetUndef {
		return Undef
	}
	if o.TheoryIsUnsat() {
		return False
	}
	return True
}

func (o *fakeOracle) ensureVar(v int32) {
	if v+1 > o.nVars {
		o.nVars = v + 1
	}
}
