package wcnf

import "sort"

// simplifyHarden upgrades a soft clause to hard when
// falsifying it is provably worse than falsifying every soft strictly
// lighter than it. It loads the hards into a fresh oracle (aborting if
// already unsat), then walks transition weights from largest to smallest,
// testing each tier's satisfiability under a small propagation budget.
// Budget exhaustion is treated as "cannot harden" and simply stops the
// pass; the formula remains correct either way.
func (s *Store) simplifyHarden(newOracle OracleFactory, p Params) {
	if s.Unsat || len(s.SoftWeight) == 0 {
		return
	}

	transitions := s.TransitionWeights()
	if len(transitions) == 0 {
		return
	}

	oracle := newOracle()
	s.Hard.Each(func(_ int, seq []Lit) bool {
		oracle.AddClause(seq)
		return true
	})
	if oracle.TheoryIsUnsat() {
		s.Unsat = true
		return
	}

	// Soft indices sorted by weight descending, so that at tier i we can
	// add exactly the softs with transitions[i] <= weight < prevCeiling.
	order := make([]int, len(s.SoftWeight))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return s.SoftWeight[order[a]] > s.SoftWeight[order[b]]
	})

	const maxCeiling = 1 << 62

	hardenThreshold := Weight(-1) // -1 means "nothing hardenable yet"
	prevCeiling := Weight(maxCeiling)
	pos := 0 // index into order, for softs not yet added to the oracle

	for i := len(transitions) - 1; i >= 0; i-- {
		tier := transitions[i]

		for pos < len(order) && s.SoftWeight[order[pos]] >= tier && s.SoftWeight[order[pos]] < prevCeiling {
			oracle.AddClause(s.Soft.At(order[pos]))
			pos++
		}
		if oracle.TheoryIsUnsat() {
			break
		}

		result := oracle.SolveWithPropagationBudget(p.HardenPropagationBudget)
		if result != True {
			break // unsat, or budget exhausted (Undef): stop, do not harden this tier
		}

		hardenThreshold = tier
		prevCeiling = tier
	}

	if hardenThreshold < 0 {
		return
	}

	s.hardenSoftsAtOrAbove(hardenThreshold)
}

// hardenSoftsAtOrAbove moves every soft clause with weight >= threshold
// into the hard partition and recomputes TotalClsWt.
func (s *Store) hardenSoftsAtOrAbove(threshold Weight) {
	newSoft := NewPackedVecs[Lit](s.Soft.Len(), s.Soft.TotalLen())
	newWeights := make([]Weight, 0, len(s.SoftWeight))

	for i := 0; i < s.Soft.Len(); i++ {
		seq := s.Soft.At(i)
		w := s.SoftWeight[i]
		if w >= threshold {
			s.addHardClause(seq)
			continue
		}
		newSoft.Add(seq)
		newWeights = append(newWeights, w)
	}

	s.Soft = newSoft
	s.SoftWeight = newWeights
	s.recomputeTotalClsWt()
}
