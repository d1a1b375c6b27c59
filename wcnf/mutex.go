package wcnf

import (
	"sort"
	"time"
)

// mxBlit records the selector literal ("blit") standing in for one soft
// clause during mutex discovery. For a unit soft (l) the blit is reused
// as ¬l (no fresh variable); for a soft of size > 1 a fresh variable is
// allocated for the transient FbEq encoding and only materialised into
// the store's real clauses if the blit ends up in a committed mutex.
type mxBlit struct {
	softIdx int
	pos     Lit // "relaxed" polarity; weightOf/coreStatus are keyed off both pos and pos.Neg()
	weight  Weight
	isUnit  bool
}

// mxFinder holds the scratch state of one run of the mutex finder:
// the FbEq oracle, the blit bookkeeping, the MX(.) cache, and the
// mem/cpu budget counters. A fresh mxFinder is built and discarded per
// call to Store.simplifyMutex.
type mxFinder struct {
	store  *Store
	params Params
	oracle Oracle

	blits      []mxBlit
	coreStatus map[int]bool
	weightOf   map[int]Weight
	inMutex    map[int]bool
	mxCache    map[int][]Lit

	memUsed   int64
	memLimit  int64
	deadline  time.Time
	hasDeadline bool
	iterations  int64
	budgetHit   bool
}

// simplifyMutex builds a transient FbEq encoding of
// the current formula, greedily grows maximal at-most-one sets among
// soft-clause selector literals, and rewrites the formula per committed
// mutex. If Params.MxFind is MxFindNone, it is a no-op.
func (s *Store) simplifyMutex(newOracle OracleFactory, p Params) {
	if s.Unsat || p.MxFind == MxFindNone || s.Soft.Len() == 0 {
		return
	}

	f := &mxFinder{
		store:      s,
		params:     p,
		coreStatus: map[int]bool{},
		weightOf:   map[int]Weight{},
		inMutex:    map[int]bool{},
		mxCache:    map[int][]Lit{},
		memLimit:   p.MxMemLimit,
	}
	if p.MxCPULimit > 0 {
		f.deadline = time.Now().Add(p.MxCPULimit)
		f.hasDeadline = true
	}

	f.collectBlits()
	f.buildOracle(newOracle)
	if f.oracle.TheoryIsUnsat() {
		return
	}

	committed := f.run()
	s.materializeMutexes(committed, f.blits)
}

// collectBlits allocates (transiently) one selector literal per soft
// clause, numbering fresh variables for size > 1 softs starting right
// above the current MaxVar.
func (f *mxFinder) collectBlits() {
	s := f.store
	nextVar := s.MaxVar + 1
	f.blits = make([]mxBlit, s.Soft.Len())

	for i := 0; i < s.Soft.Len(); i++ {
		seq := s.Soft.At(i)
		w := s.SoftWeight[i]
		var pos Lit
		isUnit := len(seq) == 1
		if isUnit {
			pos = seq[0].Neg()
		} else {
			pos = MkLit(nextVar, false)
			nextVar++
		}
		f.blits[i] = mxBlit{softIdx: i, pos: pos, weight: w, isUnit: isUnit}
		f.coreStatus[pos.Code()] = true
		f.coreStatus[pos.Neg().Code()] = false
		f.weightOf[pos.Code()] = w
		f.weightOf[pos.Neg().Code()] = w
	}
}

// buildOracle pushes the current hard clauses plus the FbEq clauses for
// every non-unit blit: (c ∨ b) and, for each literal l of c, (b ∨ l) —
// together encoding b=true ⇐ c false and, under FbEq, ¬b ⇒ ∧c.
func (f *mxFinder) buildOracle(newOracle OracleFactory) {
	s := f.store
	f.oracle = newOracle()
	s.Hard.Each(func(_ int, seq []Lit) bool {
		f.oracle.AddClause(seq)
		return true
	})

	for _, b := range f.blits {
		if b.isUnit {
			continue // c ∨ b and b ∨ l are tautological for unit softs
		}
		seq := s.Soft.At(b.softIdx)
		withBlit := make([]Lit, len(seq)+1)
		copy(withBlit, seq)
		withBlit[len(seq)] = b.pos
		f.oracle.AddClause(withBlit)
		for _, l := range seq {
			f.oracle.AddClause([]Lit{b.pos, l})
		}
	}
}

// run performs the two-phase greedy growth and returns the
// committed mutexes as lists of blit literals, all sharing core status
// and weight.
func (f *mxFinder) run() [][]Lit {
	var stack []Lit
	// Pushed in reverse pop order: the stack is LIFO, and cores must come
	// off first, so non-cores are pushed first.
	if f.params.MxFind == MxFindNonCore || f.params.MxFind == MxFindBoth {
		for _, b := range f.blits {
			stack = append(stack, b.pos.Neg())
		}
	}
	if f.params.MxFind == MxFindCore || f.params.MxFind == MxFindBoth {
		for _, b := range f.blits {
			stack = append(stack, b.pos)
		}
	}

	var committed [][]Lit
	var twos [][2]Lit

	// Phase A: grow, parking singletons.
	for len(stack) > 0 && !f.budgetHit {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f.checkBudget() {
			break
		}
		if f.inMutex[l.Code()] {
			continue
		}

		mx := f.mx(l)
		switch {
		case len(mx) == 0:
			continue
		case len(mx) == 1:
			twos = append(twos, [2]Lit{l, mx[0]})
			continue
		}

		start := f.bestSeed(l, mx)
		grown := f.growMx(start)
		if len(grown) >= 3 {
			f.commit(grown)
			committed = append(committed, grown)
		}
	}

	// Phase B: drain the pairs, accepting size >= 2.
	for _, pair := range twos {
		if f.budgetHit {
			break
		}
		if f.inMutex[pair[0].Code()] || f.inMutex[pair[1].Code()] {
			continue
		}
		if !f.checkBudget() {
			break
		}
		grown := f.growMx(pair[0])
		if len(grown) >= 2 {
			f.commit(grown)
			committed = append(committed, grown)
		}
	}

	return committed
}

// checkBudget polls the CPU deadline every 500 outer iterations and marks
// budgetHit (sticky) once exceeded.
func (f *mxFinder) checkBudget() bool {
	f.iterations++
	if f.hasDeadline && f.iterations%500 == 0 && time.Now().After(f.deadline) {
		f.budgetHit = true
	}
	return !f.budgetHit
}

// bestSeed picks the member of mx ∪ {l} whose own MX(.) is largest.
func (f *mxFinder) bestSeed(l Lit, mx []Lit) Lit {
	best := l
	bestSize := len(f.mx(l))
	for _, c := range mx {
		if sz := len(f.mx(c)); sz > bestSize {
			bestSize = sz
			best = c
		}
	}
	return best
}

// growMx grows a mutex from start by intersecting candidate sets in a
// static order (descending by |MX(c) ∩ cands|, computed once and not
// re-ranked per accept).
func (f *mxFinder) growMx(start Lit) []Lit {
	mx := []Lit{start}
	cands := append([]Lit(nil), f.mx(start)...)

	type scored struct {
		lit   Lit
		score int
	}
	order := make([]scored, len(cands))
	for i, c := range cands {
		order[i] = scored{c, intersectCount(f.mx(c), cands)}
	}
	sort.SliceStable(order, func(a, b int) bool { return order[a].score > order[b].score })

	remaining := litSet(cands)
	for _, o := range order {
		if !remaining[o.lit.Code()] {
			continue
		}
		mx = append(mx, o.lit)
		cCands := f.mx(o.lit)
		remaining = intersectSet(remaining, cCands)
	}
	return mx
}

// commit marks every accepted blit (and its complement) as absorbed so
// it cannot enter another mutex.
func (f *mxFinder) commit(mx []Lit) {
	for _, l := range mx {
		f.inMutex[l.Code()] = true
		f.inMutex[l.Neg().Code()] = true
	}
}

// mx returns MX(l): selector literals that may join l's mutex, computed
// from l's cached or freshly-queried implication set, pruned of anything
// already absorbed into a mutex. A memory budget, once exhausted,
// permanently empties every further MX(.) lookup that is not already cached.
func (f *mxFinder) mx(l Lit) []Lit {
	if cached, ok := f.mxCache[l.Code()]; ok {
		pruned := cached[:0]
		for _, c := range cached {
			if !f.inMutex[c.Code()] && !f.inMutex[c.Neg().Code()] {
				pruned = append(pruned, c)
			}
		}
		f.mxCache[l.Code()] = pruned
		return pruned
	}

	if f.memLimit > 0 && f.memUsed >= f.memLimit {
		return nil
	}

	var implied []Lit
	if !f.oracle.FindImplications(l, &implied) {
		f.mxCache[l.Code()] = nil
		return nil
	}

	lStatus := f.coreStatus[l.Code()]
	lWeight := f.weightOf[l.Code()]

	var out []Lit
	for _, m := range implied {
		status, known := f.coreStatus[m.Code()]
		if !known || status == lStatus {
			continue
		}
		if f.weightOf[m.Code()] != lWeight {
			continue
		}
		cand := m.Neg()
		if f.inMutex[cand.Code()] || f.inMutex[cand.Neg().Code()] {
			continue
		}
		out = append(out, cand)
	}

	f.memUsed += int64(len(out)) * 8
	f.mxCache[l.Code()] = out
	return out
}

func litSet(lits []Lit) map[int]bool {
	set := make(map[int]bool, len(lits))
	for _, l := range lits {
		set[l.Code()] = true
	}
	return set
}

func intersectSet(set map[int]bool, lits []Lit) map[int]bool {
	present := litSet(lits)
	out := make(map[int]bool, len(set))
	for k := range set {
		if present[k] {
			out[k] = true
		}
	}
	return out
}

func intersectCount(a, b []Lit) int {
	present := litSet(b)
	count := 0
	for _, l := range a {
		if present[l.Code()] {
			count++
		}
	}
	return count
}

// materializeMutexes applies the committing rewrite (for a core mutex,
// replace each non-unit member soft c with the hard (c ∨ b) and the unit
// soft (¬b) over its blit b, keeping unit softs as they are; for a non-core mutex,
// add the encoding clauses and a fresh soft over the encoding literal) for
// every committed mutex, then recomputes TotalClsWt.
func (s *Store) materializeMutexes(committed [][]Lit, blits []mxBlit) {
	if len(committed) == 0 {
		return
	}

	byCode := make(map[int]mxBlit, len(blits))
	for _, b := range blits {
		byCode[b.pos.Code()] = b
	}
	consumed := make(map[int]bool)

	for _, mx := range committed {
		rewriteCommittedMutex(s, mx, byCode, consumed)
	}

	s.removeConsumedSofts(consumed)
	s.recomputeTotalClsWt()
}

func rewriteCommittedMutex(s *Store, mx []Lit, byCode map[int]mxBlit, consumed map[int]bool) {
	// A mutex's members are either all "positive" (core, at-most-one
	// true) or all "negative" (non-core, at-most-one false); whichever
	// polarity has a direct entry in byCode tells us which.
	_, firstIsPos := byCode[mx[0].Code()]
	isCore := firstIsPos

	members := make([]mxBlit, len(mx))
	for i, l := range mx {
		code := l.Code()
		if !isCore {
			code = l.Neg().Code()
		}
		members[i] = byCode[code]
	}
	weight := members[0].weight

	if isCore {
		var origLits []Lit
		seedOriginals := s.params().MxSeedOriginals
		for _, m := range members {
			consumed[m.softIdx] = true
			seq := s.Soft.At(m.softIdx)
			if seedOriginals {
				origLits = append(origLits, seq...)
			}
			if m.isUnit {
				// Unit softs already have their own bi; no rewrite
				// needed, but keep the original soft clause alive.
				s.addSoftClause(append([]Lit(nil), seq...), m.weight)
				continue
			}
			withBlit := append(append([]Lit(nil), seq...), m.pos)
			s.addHardClause(withBlit)
			s.addSoftClause([]Lit{m.pos.Neg()}, m.weight)
		}
		rec := SCMx{Blits: append([]Lit(nil), mx...), IsCore: true}
		if seedOriginals {
			rec.OrigBlits = origLits
		}
		s.Mutexes = append(s.Mutexes, rec)
		return
	}

	// Non-core: introduce a fresh encoding literal, union the original
	// clauses under one hard clause, replace all members with a single
	// soft, and account for the redundancy in BaseCost.
	d := MkLit(s.MaxVar+1, false)
	if d.Var() > s.MaxVar {
		s.MaxVar = d.Var()
	}

	seedOriginals := s.params().MxSeedOriginals
	var union []Lit
	var origLits []Lit
	for _, m := range members {
		consumed[m.softIdx] = true
		seq := s.Soft.At(m.softIdx)
		union = append(union, seq...)
		if seedOriginals {
			origLits = append(origLits, seq...)
		}
	}
	union = append(union, d)
	s.addHardClause(union)
	s.addSoftClause([]Lit{d.Neg()}, weight)
	s.BaseCost += Weight(len(mx)-1) * weight

	rec := SCMx{
		Blits:          append([]Lit(nil), mx...),
		IsCore:         false,
		HasEncodingLit: true,
		EncodingLit:    d,
	}
	if seedOriginals {
		rec.OrigBlits = origLits
	}
	s.Mutexes = append(s.Mutexes, rec)
}

func (s *Store) removeConsumedSofts(consumed map[int]bool) {
	if len(consumed) == 0 {
		return
	}
	newSoft := NewPackedVecs[Lit](s.Soft.Len(), s.Soft.TotalLen())
	newWeights := make([]Weight, 0, len(s.SoftWeight))
	for i := 0; i < s.Soft.Len(); i++ {
		if consumed[i] {
			continue
		}
		newSoft.Add(s.Soft.At(i))
		newWeights = append(newWeights, s.SoftWeight[i])
	}
	s.Soft = newSoft
	s.SoftWeight = newWeights
}

// params lets the mutex-rewrite helpers reach MxSeedOriginals without
// threading Params through every call; simplify.go always sets this
// before running the pipeline.
func (s *Store) params() Params {
	return s.activeParams
}
