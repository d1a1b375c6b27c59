package wcnf

// simplifyRemap renumbers surviving variables contiguously from 0, once
// every rewriting pass is done: unit softs are flip-normalized so every
// one appears as (¬v), and every stored clause, mutex record, and
// cardinality constraint is rewritten to the new internal indices.
func (s *Store) simplifyRemap() {
	if s.Unsat {
		return
	}

	appears := make([]bool, s.MaxVar+1)
	mark := func(_ int, seq []Lit) bool {
		for _, l := range seq {
			appears[l.Var()] = true
		}
		return true
	}
	s.Hard.Each(mark)
	s.Soft.Each(mark)
	for _, c := range s.CardConstraints {
		for _, l := range c.Lits {
			appears[l.Var()] = true
		}
	}
	for _, mx := range s.Mutexes {
		for _, l := range mx.Blits {
			appears[l.Var()] = true
		}
		if mx.HasEncodingLit {
			appears[mx.EncodingLit.Var()] = true
		}
		for _, l := range mx.OrigBlits {
			appears[l.Var()] = true
		}
	}

	// A unit soft (l) with sign(l) positive is inconvenient for the
	// outer solver (making its blit true means negating l); flip every
	// such variable so every unit soft appears as (¬v).
	flipped := make([]bool, s.MaxVar+1)
	for i := 0; i < s.Soft.Len(); i++ {
		seq := s.Soft.At(i)
		if len(seq) == 1 && !seq[0].Negated() {
			flipped[seq[0].Var()] = true
		}
	}
	s.FlippedVars = flipped

	ex2in := make([]int32, s.MaxVar+1)
	for i := range ex2in {
		ex2in[i] = -1
	}
	var in2ex []int32
	next := int32(0)
	for v := int32(0); v <= s.MaxVar; v++ {
		if appears[v] {
			ex2in[v] = next
			in2ex = append(in2ex, v)
			next++
		}
	}
	s.Ex2In = ex2in
	s.In2Ex = in2ex
	s.NOrigVars = s.MaxOrigVar + 1

	remapLit := func(l Lit) Lit {
		v := l.Var()
		neg := l.Negated()
		if flipped[v] {
			neg = !neg
		}
		return MkLit(ex2in[v], neg)
	}

	s.Hard = rebuildWithRemap(s.Hard, remapLit)
	s.Soft = rebuildWithRemap(s.Soft, remapLit)

	for i, c := range s.CardConstraints {
		lits := make([]Lit, len(c.Lits))
		for j, l := range c.Lits {
			lits[j] = remapLit(l)
		}
		s.CardConstraints[i].Lits = lits
	}
	for i, mx := range s.Mutexes {
		lits := make([]Lit, len(mx.Blits))
		for j, l := range mx.Blits {
			lits[j] = remapLit(l)
		}
		s.Mutexes[i].Blits = lits
		if mx.HasEncodingLit {
			s.Mutexes[i].EncodingLit = remapLit(mx.EncodingLit)
		}
		if len(mx.OrigBlits) > 0 {
			origLits := make([]Lit, len(mx.OrigBlits))
			for j, l := range mx.OrigBlits {
				origLits[j] = remapLit(l)
			}
			s.Mutexes[i].OrigBlits = origLits
		}
	}

	s.MaxVar = next - 1
	s.Remapped = true
}

// rebuildWithRemap applies remapLit to every element of every stored
// sequence, producing a fresh PackedVecs (arenas are rebuilt by move on
// mutation, never edited in place).
func rebuildWithRemap(pv *PackedVecs[Lit], remapLit func(Lit) Lit) *PackedVecs[Lit] {
	out := NewPackedVecs[Lit](pv.Len(), pv.TotalLen())
	for i := 0; i < pv.Len(); i++ {
		seq := pv.At(i)
		lits := make([]Lit, len(seq))
		for j, l := range seq {
			lits[j] = remapLit(l)
		}
		out.Add(lits)
	}
	return out
}
