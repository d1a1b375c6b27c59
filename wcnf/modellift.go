package wcnf

import "fmt"

// RewriteModelToInput reconstructs a model over the original (external)
// variables given a model over internal (remapped) variables: it lifts
// the remap, then overrides with the captured hard units, then
// propagates each binary-implication SCC from its representative.
func (s *Store) RewriteModelToInput(m []bool) []bool {
	ex := make([]bool, s.NOrigVars)
	for i := range ex {
		ex[i] = true // harmless default
	}

	for i, origVar := range s.In2Ex {
		if origVar < 0 || origVar >= s.NOrigVars {
			continue
		}
		val := false
		if i < len(m) {
			val = m[i]
		}
		if int(origVar) < len(s.FlippedVars) && s.FlippedVars[origVar] {
			val = !val
		}
		ex[origVar] = val
	}

	for _, l := range s.HardUnits {
		v := l.Var()
		if int(v) < len(ex) {
			ex[v] = !l.Negated()
		}
	}

	for _, scc := range s.AllSCC {
		r := scc[0]
		if int(r.Var()) >= len(ex) {
			continue
		}
		rVal := ex[r.Var()]
		for _, x := range scc[1:] {
			if int(x.Var()) >= len(ex) {
				continue
			}
			if x.Negated() == r.Negated() {
				ex[x.Var()] = rVal
			} else {
				ex[x.Var()] = !rVal
			}
		}
	}

	return ex
}

// CheckModel lifts m to the original
// variable space, re-obtains an untouched reference copy of the input
// formula via the registered original-source callback, and evaluates
// every original hard (UnsatModel if any fails) and every original soft
// (summing falsified weight). final releases the simplified clause
// arenas first, matching the original engine's memory-reclaiming intent.
func (s *Store) CheckModel(m []bool, final bool) (Weight, error) {
	if s.reloadOriginal == nil {
		return 0, fmt.Errorf("wcnf: CheckModel requires an original-source callback (see SetOriginalSource)")
	}

	lifted := s.RewriteModelToInput(m)

	if final {
		s.Hard = NewPackedVecs[Lit](0, 0)
		s.Soft = NewPackedVecs[Lit](0, 0)
		s.SoftWeight = nil
	}

	raw, err := s.reloadOriginal()
	if err != nil {
		return 0, err
	}

	value := func(l Lit) bool {
		v := l.Var()
		b := false
		if int(v) < len(lifted) {
			b = lifted[v]
		}
		if l.Negated() {
			return !b
		}
		return b
	}
	satisfied := func(lits []Lit) bool {
		for _, l := range lits {
			if value(l) {
				return true
			}
		}
		return false
	}

	for _, h := range raw.Hard {
		if !satisfied(h) {
			return UnsatModel, nil
		}
	}

	var cost Weight
	for _, sc := range raw.Soft {
		if !satisfied(sc.Lits) {
			cost += sc.Weight
		}
	}
	return cost, nil
}
