package wcnf

// simplifyEqualityAndUnits loads the current hard
// clauses into a fresh oracle, captures units, optionally finds binary
// implication SCCs, rewrites both clause populations by the discovered
// equalities and units, then re-scans once for pure literals and any
// newly-derived units and rewrites a second time. This is a single
// fixpoint iteration; it does not loop to a full fixpoint.
func (s *Store) simplifyEqualityAndUnits(newOracle OracleFactory, p Params) {
	if s.Unsat {
		return
	}

	units, ok := s.loadAndPropagate(newOracle)
	if !ok {
		return
	}
	s.HardUnits = append(s.HardUnits, units...)

	rep := s.identityRep()
	if p.Eqs {
		s.findBinarySCCs(units, rep)
		if s.Unsat {
			return
		}
	}

	s.rewritePopulations(rep, units)
	if s.Unsat || !p.Units {
		return
	}

	// One additional fixpoint pass: pure literals plus whatever the
	// rewritten hard clauses newly force.
	pureUnits := s.findPureLiterals()
	units2, ok := s.loadAndPropagate(newOracle)
	if !ok {
		return
	}
	extra := append(pureUnits, units2...)
	if len(extra) == 0 {
		return
	}
	s.HardUnits = append(s.HardUnits, extra...)
	s.rewritePopulations(rep, extra)
}

// loadAndPropagate pushes every current hard clause into a fresh oracle
// and runs unit propagation, returning the forced literals. ok is false
// iff the hards are already unsatisfiable, in which case Unsat is set.
func (s *Store) loadAndPropagate(newOracle OracleFactory) ([]Lit, bool) {
	oracle := newOracle()
	s.Hard.Each(func(_ int, seq []Lit) bool {
		oracle.AddClause(seq)
		return true
	})
	if oracle.TheoryIsUnsat() {
		s.Unsat = true
		return nil, false
	}
	oracle.UnitPropagate()
	if oracle.TheoryIsUnsat() {
		s.Unsat = true
		return nil, false
	}
	return oracle.ForcedLiterals(0), true
}

// identityRep returns a literal-indexed representative table initialised
// so that every literal maps to itself.
func (s *Store) identityRep() []Lit {
	n := 2 * (int(s.MaxVar) + 1)
	rep := make([]Lit, n)
	for i := range rep {
		rep[i] = Lit(i)
	}
	return rep
}

// findBinarySCCs builds the binary implication graph from hard clauses
// whose non-false literal count (after the given forced units) is
// exactly two, finds its strongly connected components via an iterative
// Tarjan traversal, and records every SCC of size >= 2 into rep and
// s.AllSCC, emitting only the first of each dual pair.
func (s *Store) findBinarySCCs(units []Lit, rep []Lit) {
	unitVal := litValueIndex(units, int(s.MaxVar)+1)

	n := 2 * (int(s.MaxVar) + 1)
	adj := make([][]int32, n)

	s.Hard.Each(func(_ int, seq []Lit) bool {
		a, b, isBinary := binaryResidue(seq, unitVal)
		if !isBinary {
			return true
		}
		adj[a.Neg().Code()] = append(adj[a.Neg().Code()], int32(b.Code()))
		adj[b.Neg().Code()] = append(adj[b.Neg().Code()], int32(a.Code()))
		return true
	})

	sccs := tarjanSCCs(adj, n)
	processed := make([]bool, n)

	for _, comp := range sccs {
		if len(comp) < 2 {
			continue
		}
		if processed[comp[0]] {
			continue // dual of an already-emitted SCC
		}

		repCode := comp[0]
		for _, c := range comp[1:] {
			if c < repCode {
				repCode = c
			}
		}
		repLit := Lit(repCode)

		entry := make([]Lit, 0, len(comp))
		entry = append(entry, repLit)
		for _, c := range comp {
			processed[c] = true
			processed[Lit(c).Neg().Code()] = true
			rep[c] = repLit
			rep[Lit(c).Neg().Code()] = repLit.Neg()
			if int32(c) != repCode {
				entry = append(entry, Lit(c))
			}
		}
		s.AllSCC = append(s.AllSCC, entry)
	}
}

// binaryResidue returns the (up to) two non-false literals of seq under
// unitVal, and whether there are exactly two of them and no literal is
// already satisfied.
func binaryResidue(seq []Lit, unitVal []Tri) (Lit, Lit, bool) {
	var residue [3]Lit
	count := 0
	for _, l := range seq {
		v := litTri(l, unitVal)
		if v == True {
			return 0, 0, false // clause already satisfied, not informative
		}
		if v == False {
			continue
		}
		if count < 3 {
			residue[count] = l
		}
		count++
	}
	if count != 2 {
		return 0, 0, false
	}
	return residue[0], residue[1], true
}

// litValueIndex builds a per-literal-code Tri array from a list of forced
// literals (var-indexed, 2 entries per variable).
func litValueIndex(units []Lit, nVars int) []Tri {
	idx := make([]Tri, 2*nVars)
	for _, u := range units {
		idx[u.Code()] = True
		idx[u.Neg().Code()] = False
	}
	return idx
}

func litTri(l Lit, idx []Tri) Tri {
	if int(l.Code()) < len(idx) {
		return idx[l.Code()]
	}
	return Undef
}

// findPureLiterals scans both clause populations for variables that
// appear in only one polarity and returns the forcing literal for each:
// fixing a pure literal to satisfy every occurrence can never increase
// cost (it satisfies every hard it appears in and never incurs a soft
// cost it wouldn't otherwise), so it is always a sound simplification.
func (s *Store) findPureLiterals() []Lit {
	seenPos := make([]bool, s.MaxVar+1)
	seenNeg := make([]bool, s.MaxVar+1)

	mark := func(_ int, seq []Lit) bool {
		for _, l := range seq {
			if l.Negated() {
				seenNeg[l.Var()] = true
			} else {
				seenPos[l.Var()] = true
			}
		}
		return true
	}
	s.Hard.Each(mark)
	s.Soft.Each(mark)

	var out []Lit
	for v := int32(0); v <= s.MaxVar; v++ {
		switch {
		case seenPos[v] && !seenNeg[v]:
			out = append(out, MkLit(v, false))
		case seenNeg[v] && !seenPos[v]:
			out = append(out, MkLit(v, true))
		}
	}
	return out
}

// rewritePopulations rewrites every stored clause by rep then by the
// given forced units, dropping satisfied clauses, falsified literals, and
// resulting tautologies, and folding now-empty clauses into Unsat (hard)
// or BaseCost (soft).
func (s *Store) rewritePopulations(rep []Lit, units []Lit) {
	unitVal := make(map[int32]Lit, len(units))
	for _, u := range units {
		unitVal[u.Var()] = u
	}

	newHard := NewPackedVecs[Lit](s.Hard.Len(), s.Hard.TotalLen())
	for i := 0; i < s.Hard.Len(); i++ {
		out, satisfied := rewriteClauseLits(s.Hard.At(i), rep, unitVal)
		if satisfied {
			continue
		}
		prepared, ok := PrepareClause(out)
		if !ok {
			continue
		}
		if len(prepared) == 0 {
			s.Unsat = true
			return
		}
		newHard.Add(prepared)
	}
	s.Hard = newHard

	newSoft := NewPackedVecs[Lit](s.Soft.Len(), s.Soft.TotalLen())
	newWeights := make([]Weight, 0, len(s.SoftWeight))
	for i := 0; i < s.Soft.Len(); i++ {
		w := s.SoftWeight[i]
		out, satisfied := rewriteClauseLits(s.Soft.At(i), rep, unitVal)
		if satisfied {
			continue
		}
		prepared, ok := PrepareClause(out)
		if !ok {
			continue
		}
		if len(prepared) == 0 {
			s.BaseCost += w
			continue
		}
		newSoft.Add(prepared)
		newWeights = append(newWeights, w)
	}
	s.Soft = newSoft
	s.SoftWeight = newWeights
	s.recomputeTotalClsWt()
}

func rewriteClauseLits(seq []Lit, rep []Lit, unitVal map[int32]Lit) (out []Lit, satisfied bool) {
	out = make([]Lit, 0, len(seq))
	for _, l := range seq {
		rl := l
		if int(l.Code()) < len(rep) {
			rl = rep[l.Code()]
		}
		if u, ok := unitVal[rl.Var()]; ok {
			if u == rl {
				return nil, true
			}
			continue
		}
		out = append(out, rl)
	}
	return out, false
}

func (s *Store) recomputeTotalClsWt() {
	var total Weight
	for _, w := range s.SoftWeight {
		total += w
	}
	s.TotalClsWt = total
}

// tarjanSCCs computes the strongly connected components of the graph
// given by adj (adjacency by node index) using an iterative, explicit-
// stack traversal — no recursion, matching the analysis loop's own
// non-recursive style for graph walks over literals.
func tarjanSCCs(adj [][]int32, nNodes int) [][]int32 {
	index := make([]int32, nNodes)
	lowlink := make([]int32, nNodes)
	onStack := make([]bool, nNodes)
	visited := make([]bool, nNodes)
	var tstack []int32
	var sccs [][]int32
	var next int32

	type frame struct {
		node     int32
		childIdx int
	}

	for start := int32(0); start < int32(nNodes); start++ {
		if visited[start] {
			continue
		}

		callStack := []frame{{node: start}}
		visited[start] = true
		index[start] = next
		lowlink[start] = next
		next++
		tstack = append(tstack, start)
		onStack[start] = true

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			v := top.node

			if top.childIdx < len(adj[v]) {
				w := adj[v][top.childIdx]
				top.childIdx++
				if !visited[w] {
					visited[w] = true
					index[w] = next
					lowlink[w] = next
					next++
					tstack = append(tstack, w)
					onStack[w] = true
					callStack = append(callStack, frame{node: w})
				} else if onStack[w] && index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
				continue
			}

			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var comp []int32
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, comp)
			}
		}
	}

	return sccs
}
