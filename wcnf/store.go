package wcnf

import (
	"fmt"
)

// SCMx is a mutex record: a group of soft-clause selector literals
// ("blits") discovered to be pairwise mutually exclusive by the mutex
// finder.
type SCMx struct {
	// Blits are the rewritten selector literals participating in the
	// mutex.
	Blits []Lit

	// IsCore is true for a core mutex (at most one of Blits may be true)
	// and false for a non-core mutex (at most one of Blits may be false).
	IsCore bool

	// HasEncodingLit reports whether EncodingLit is meaningful.
	HasEncodingLit bool

	// EncodingLit is the fresh literal introduced for a non-core mutex
	// (its truth/falsity implies at least one blit is true/false). Only
	// meaningful when HasEncodingLit is true.
	EncodingLit Lit

	// OrigBlits holds the union of the original (pre-rewrite) soft-clause
	// literals consumed by this mutex when Params.MxSeedOriginals is set;
	// nil otherwise. Unlike Blits, which is the compacted selector
	// literals, OrigBlits preserves the actual clause content the mutex
	// replaced.
	OrigBlits []Lit
}

// CardConstraint is a cardinality constraint passed through the store
// untouched (its literals participate in the variable remap like any
// other clause's) for the outer hitting-set/CPLEX loop to interpret.
type CardConstraint struct {
	Lits  []Lit
	K     int
	Sense byte // interpreted by the outer solver; the core never reads it
}

// SoftLit is a soft clause together with its weight, used by RawFormula.
type SoftLit struct {
	Lits   []Lit
	Weight Weight
}

// RawFormula is an untouched copy of the input formula in its original
// variable space, used by CheckModel as the reference against which a
// lifted model is scored.
type RawFormula struct {
	Hard [][]Lit
	Soft []SoftLit
}

// UnsatModel is the sentinel CheckModel returns in place of a cost when
// some hard clause is falsified by the (lifted) model.
const UnsatModel Weight = -1

// Store holds a weighted CNF instance: hard and soft clause partitions,
// per-soft weights, base_cost, derived weight statistics, and the
// preprocessing side tables (captured hard units, SCCs, flipped
// variables, the external<->internal variable remap, and committed
// mutexes) needed to lift a model back to the original variable space.
type Store struct {
	// Clause arenas. Rebuilt wholesale (never mutated element-wise) by
	// every simplification pass that prunes or rewrites clauses.
	Hard *PackedVecs[Lit]
	Soft *PackedVecs[Lit]

	// SoftWeight[i] is the weight of Soft.At(i); kept parallel to Soft.
	SoftWeight []Weight

	// BaseCost accumulates the weight of soft clauses provably falsified
	// by preprocessing.
	BaseCost Weight

	// TotalClsWt is the sum of SoftWeight; recomputed after any mutation
	// to the soft population.
	TotalClsWt Weight

	// MaxVar is the largest variable index referenced by any stored
	// clause. MaxOrigVar is the largest variable index present in the
	// input before any simplification-introduced variable; new variables
	// live strictly above it.
	MaxVar     int32
	MaxOrigVar int32

	// IntWeights is false the moment any non-integral weight is added.
	IntWeights bool

	// Unsat is sticky: once set, every further mutation is a no-op.
	Unsat bool

	// NoDups is true iff deduplication has run since the last mutation.
	NoDups bool

	// Top is the weight at or above which a DIMACS clause is hard
	// (set_dimacs_params).
	Top Weight

	// NVarsHeader/NClausesHeader record the DIMACS header counts, used
	// only for sanity checks and stats printing.
	NVarsHeader    int
	NClausesHeader int

	// HardUnits, AllSCC, and FlippedVars are captured in the *original*
	// (external) variable space so model lift-back is possible even
	// though the stored clauses have been rewritten to internal indices.
	HardUnits   []Lit
	AllSCC      [][]Lit // each entry is [rep, x1, x2, ...]
	FlippedVars []bool  // indexed by original variable

	// Ex2In/In2Ex are the external<->internal variable remap, a partial
	// bijection on surviving variables once the remap has run. -1 marks "not
	// mapped".
	Ex2In []int32 // indexed by original variable
	In2Ex []int32 // indexed by internal variable

	// Remapped is true once the variable remap has run.
	Remapped bool

	// NOrigVars is the number of original (external) variables, fixed at
	// the variable remap step; used by model lift-back to bound which
	// internal indices correspond to original input variables versus
	// variables introduced afterwards.
	NOrigVars int32

	// Mutexes are the committed mutex records, in internal
	// variable space once Remapped.
	Mutexes []SCMx

	// CardConstraints are pass-through cardinality constraints; their
	// literals are remapped like any clause's but their Sense is never
	// interpreted by the core.
	CardConstraints []CardConstraint

	// reloadOriginal, if set, lets CheckModel obtain an untouched copy of
	// the input formula. The core has no parser of its own (out of
	// scope; the caller that did the parsing supplies this.
	reloadOriginal func() (*RawFormula, error)

	// activeParams is the Params value Simplify is currently running
	// with; the mutex-rewrite helpers read MxSeedOriginals off it rather
	// than having Params threaded through every call.
	activeParams Params

	// hardUnitLits holds the literal of every unit clause added through
	// AddHardClause, so a unit whose complement is already present is
	// caught at insertion.
	hardUnitLits map[Lit]bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		Hard:       NewPackedVecs[Lit](0, 0),
		Soft:       NewPackedVecs[Lit](0, 0),
		IntWeights: true,
		NoDups:     false,
	}
}

// SetOriginalSource registers the callback CheckModel uses to obtain an
// untouched reference copy of the input formula.
func (s *Store) SetOriginalSource(reload func() (*RawFormula, error)) {
	s.reloadOriginal = reload
}

// SetDimacsParams records the DIMACS header: variable/clause counts and
// the weight at or above which a clause is hard.
func (s *Store) SetDimacsParams(nvars, nclauses int, top Weight) {
	s.NVarsHeader = nvars
	s.NClausesHeader = nclauses
	s.Top = top
}

// AddDimacsClause routes a parsed (lits, weight) pair to the hard or soft
// partition depending on whether weight meets Top.
func (s *Store) AddDimacsClause(lits []Lit, w Weight) error {
	if w >= s.Top {
		return s.AddHardClause(lits)
	}
	return s.AddSoftClause(lits, w)
}

func (s *Store) bumpMaxVar(lits []Lit, updateOrig bool) {
	for _, l := range lits {
		if v := l.Var(); v > s.MaxVar {
			s.MaxVar = v
		}
	}
	if updateOrig && s.MaxVar > s.MaxOrigVar {
		s.MaxOrigVar = s.MaxVar
	}
}

// AddHardClause is the public hard-clause insertion path: it sorts and
// deduplicates lits, rejects tautologies, updates MaxOrigVar/MaxVar, and
// marks NoDups false. An empty clause after preparation is a hard
// contradiction and sets Unsat, as does a unit clause whose complement was
// already added as a hard unit.
func (s *Store) AddHardClause(lits []Lit) error {
	if s.Unsat {
		return nil
	}
	prepared, ok := PrepareClause(lits)
	if !ok {
		return nil // tautology, silently dropped
	}
	if len(prepared) == 0 {
		s.Unsat = true
		return nil
	}
	if len(prepared) == 1 {
		if s.hardUnitLits[prepared[0].Neg()] {
			s.Unsat = true
			return nil
		}
		if s.hardUnitLits == nil {
			s.hardUnitLits = map[Lit]bool{}
		}
		s.hardUnitLits[prepared[0]] = true
	}
	s.bumpMaxVar(prepared, true)
	s.Hard.Add(prepared)
	s.NoDups = false
	return nil
}

// AddSoftClause is the public soft-clause insertion path. A weight of
// zero is a silent drop. A negative weight is an error. An empty clause
// after preparation contributes w to BaseCost instead of being stored. A
// non-integral weight clears IntWeights permanently.
func (s *Store) AddSoftClause(lits []Lit, w Weight) error {
	if s.Unsat {
		return nil
	}
	if w < 0 {
		return fmt.Errorf("wcnf: negative soft weight %v", w)
	}
	if w == 0 {
		return nil
	}
	if !w.IsIntegral() {
		s.IntWeights = false
	}

	prepared, ok := PrepareClause(lits)
	if !ok {
		return nil // tautology: always satisfied, no cost ever incurred
	}
	if len(prepared) == 0 {
		s.BaseCost += w
		return nil
	}
	s.bumpMaxVar(prepared, true)
	s.Soft.Add(prepared)
	s.SoftWeight = append(s.SoftWeight, w)
	s.TotalClsWt += w
	s.NoDups = false
	return nil
}

// addHardClause is the internal insertion path used by the simplification
// passes: it does not touch MaxOrigVar.
func (s *Store) addHardClause(lits []Lit) {
	if s.Unsat {
		return
	}
	prepared, ok := PrepareClause(lits)
	if !ok {
		return
	}
	if len(prepared) == 0 {
		s.Unsat = true
		return
	}
	s.bumpMaxVar(prepared, false)
	s.Hard.Add(prepared)
	s.NoDups = false
}

// addSoftClause is the internal insertion path used by the simplification
// passes: it does not touch MaxOrigVar.
func (s *Store) addSoftClause(lits []Lit, w Weight) {
	if s.Unsat || w <= 0 {
		return
	}
	prepared, ok := PrepareClause(lits)
	if !ok {
		return
	}
	if len(prepared) == 0 {
		s.BaseCost += w
		return
	}
	s.bumpMaxVar(prepared, false)
	s.Soft.Add(prepared)
	s.SoftWeight = append(s.SoftWeight, w)
	s.TotalClsWt += w
	s.NoDups = false
}

// AddCardConstraint stores a cardinality constraint for later pass-through
// to the outer solver; the core remaps its literals like any clause's but never
// interprets sense.
func (s *Store) AddCardConstraint(lits []Lit, k int, sense byte) {
	s.CardConstraints = append(s.CardConstraints, CardConstraint{
		Lits: append([]Lit(nil), lits...), K: k, Sense: sense,
	})
}

// OrigAllLitsAreSoft reports whether every variable appearing anywhere in
// the formula also appears in some unit soft clause (test_all_lits_are_
// softs in the original engine). The outer solver uses this to pick a
// search strategy; the core only computes and exposes it.
func (s *Store) OrigAllLitsAreSoft() bool {
	seenInUnitSoft := make(map[int32]bool)
	for i := 0; i < s.Soft.Len(); i++ {
		seq := s.Soft.At(i)
		if len(seq) == 1 {
			seenInUnitSoft[seq[0].Var()] = true
		}
	}
	all := true
	check := func(seq []Lit) {
		for _, l := range seq {
			if !seenInUnitSoft[l.Var()] {
				all = false
			}
		}
	}
	s.Hard.Each(func(_ int, seq []Lit) bool { check(seq); return all })
	if !all {
		return false
	}
	s.Soft.Each(func(_ int, seq []Lit) bool { check(seq); return all })
	return all
}
