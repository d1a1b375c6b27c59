package wcnf

import "sort"

// clsRec is a ClsData record: one entry per stored clause, hashed and
// tagged so the dedup pass can treat hard and soft clauses uniformly.
type clsRec struct {
	lits   []Lit
	hash   uint64
	isHard bool
	weight Weight
}

// simplifyDedup is a single pass that collapses duplicate
// hards, merges duplicate softs by summing their weights, lets a hard
// clause subsume an identical soft with no cost added (the hard already
// forces it true), and resolves contradictory units. Clauses are hashed
// (units by variable only, so l and ¬l land in the same bucket; larger
// clauses by their full sorted literal sequence, since PrepareClause's
// sort makes sequence equality the right equality test), sorted by hash,
// and reduced bucket by bucket.
func (s *Store) simplifyDedup() {
	if s.Unsat {
		return
	}

	recs := make([]clsRec, 0, s.Hard.Len()+s.Soft.Len())
	s.Hard.Each(func(_ int, seq []Lit) bool {
		recs = append(recs, clsRec{lits: seq, hash: hashClause(seq), isHard: true})
		return true
	})
	for i := 0; i < s.Soft.Len(); i++ {
		seq := s.Soft.At(i)
		recs = append(recs, clsRec{lits: seq, hash: hashClause(seq), isHard: false, weight: s.SoftWeight[i]})
	}

	sort.Slice(recs, func(a, b int) bool { return recs[a].hash < recs[b].hash })

	newHard := NewPackedVecs[Lit](s.Hard.Len(), s.Hard.TotalLen())
	newSoft := NewPackedVecs[Lit](s.Soft.Len(), s.Soft.TotalLen())
	newWeights := make([]Weight, 0, len(s.SoftWeight))

	emitHard := func(lits []Lit) {
		newHard.Add(lits)
	}
	emitSoft := func(lits []Lit, w Weight) {
		if w <= 0 {
			return
		}
		newSoft.Add(lits)
		newWeights = append(newWeights, w)
	}

	i := 0
	for i < len(recs) {
		j := i
		for j < len(recs) && recs[j].hash == recs[i].hash {
			j++
		}
		bucket := recs[i:j]
		i = j

		if len(bucket[0].lits) == 1 {
			s.reduceUnitBucket(bucket, emitHard, emitSoft)
			if s.Unsat {
				return
			}
			continue
		}

		// Multi-literal bucket: further split by exact sequence, to
		// guard against hash collisions between genuinely different
		// clauses.
		byLits := map[string][]clsRec{}
		var order []string
		for _, r := range bucket {
			k := litsKey(r.lits)
			if _, ok := byLits[k]; !ok {
				order = append(order, k)
			}
			byLits[k] = append(byLits[k], r)
		}
		for _, k := range order {
			group := byLits[k]
			g := mergeGroupRecs(group)
			if g.hardPresent {
				emitHard(group[0].lits)
			} else if g.softWeight > 0 {
				emitSoft(group[0].lits, g.softWeight)
			}
		}
	}

	s.Hard = newHard
	s.Soft = newSoft
	s.SoftWeight = newWeights
	s.recomputeTotalClsWt()
	s.NoDups = true
}

type mergedGroup struct {
	hardPresent bool
	softWeight  Weight
}

// mergeGroupRecs merges a set of records that all refer to the same
// clause (identical literal sequence, or identical unit literal): any
// hard among them subsumes every soft, with no cost added; otherwise the
// softs merge by adding their weights.
func mergeGroupRecs(group []clsRec) mergedGroup {
	var g mergedGroup
	for _, r := range group {
		if r.isHard {
			g.hardPresent = true
		} else {
			g.softWeight += r.weight
		}
	}
	if g.hardPresent {
		g.softWeight = 0
	}
	return g
}

// reduceUnitBucket resolves every unit clause sharing a hash (i.e.
// sharing a variable, modulo hash collisions which are re-checked here by
// variable). For each variable it merges the positive- and
// negative-literal groups independently, then resolves any contradiction
// between them.
func (s *Store) reduceUnitBucket(bucket []clsRec, emitHard func([]Lit), emitSoft func([]Lit, Weight)) {
	byVar := map[int32][]clsRec{}
	var vars []int32
	for _, r := range bucket {
		v := r.lits[0].Var()
		if _, ok := byVar[v]; !ok {
			vars = append(vars, v)
		}
		byVar[v] = append(byVar[v], r)
	}

	for _, v := range vars {
		var posGroup, negGroup []clsRec
		for _, r := range byVar[v] {
			if r.lits[0].Negated() {
				negGroup = append(negGroup, r)
			} else {
				posGroup = append(posGroup, r)
			}
		}

		pos := mergeGroupRecs(posGroup)
		neg := mergeGroupRecs(negGroup)

		switch {
		case pos.hardPresent && neg.hardPresent:
			s.Unsat = true
			return
		case pos.hardPresent && neg.softWeight > 0:
			s.BaseCost += neg.softWeight
			neg.softWeight = 0
		case neg.hardPresent && pos.softWeight > 0:
			s.BaseCost += pos.softWeight
			pos.softWeight = 0
		case pos.softWeight > 0 && neg.softWeight > 0:
			switch {
			case pos.softWeight == neg.softWeight:
				s.BaseCost += pos.softWeight
				pos.softWeight, neg.softWeight = 0, 0
			case pos.softWeight > neg.softWeight:
				s.BaseCost += neg.softWeight
				pos.softWeight -= neg.softWeight
				neg.softWeight = 0
			default:
				s.BaseCost += pos.softWeight
				neg.softWeight -= pos.softWeight
				pos.softWeight = 0
			}
		}

		if pos.hardPresent {
			emitHard([]Lit{MkLit(v, false)})
		} else if pos.softWeight > 0 {
			emitSoft([]Lit{MkLit(v, false)}, pos.softWeight)
		}
		if neg.hardPresent {
			emitHard([]Lit{MkLit(v, true)})
		} else if neg.softWeight > 0 {
			emitSoft([]Lit{MkLit(v, true)}, neg.softWeight)
		}
	}
}

func hashClause(lits []Lit) uint64 {
	if len(lits) == 1 {
		return hashVar(lits[0].Var())
	}
	h := uint64(14695981039346656037)
	for _, l := range lits {
		h ^= uint64(l.Code())
		h *= 1099511628211
	}
	return h
}

func hashVar(v int32) uint64 {
	h := uint64(14695981039346656037)
	h ^= uint64(v)
	h *= 1099511628211
	return h
}

func litsKey(lits []Lit) string {
	b := make([]byte, len(lits)*4)
	for i, l := range lits {
		code := uint32(l.Code())
		b[i*4] = byte(code)
		b[i*4+1] = byte(code >> 8)
		b[i*4+2] = byte(code >> 16)
		b[i*4+3] = byte(code >> 24)
	}
	return string(b)
}
