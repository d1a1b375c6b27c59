package wcnf

import "sort"

// PrepareClause stable-sorts lits by Code, removes duplicates in place, and
// reports false iff a complementary pair (l and l.Neg()) is present, in
// which case the clause is a tautology and must be rejected rather than
// stored. The returned slice is lits[:n] for the deduplicated length n; it
// aliases the input backing array.
func PrepareClause(lits []Lit) ([]Lit, bool) {
	if len(lits) == 0 {
		return lits, true
	}

	sort.SliceStable(lits, func(i, j int) bool {
		return lits[i].Code() < lits[j].Code()
	})

	j := 0
	for i := 0; i < len(lits); i++ {
		if i > 0 && lits[i] == lits[j-1] {
			continue // duplicate literal, drop
		}
		lits[j] = lits[i]
		j++
	}
	lits = lits[:j]

	for i := 1; i < len(lits); i++ {
		if lits[i] == lits[i-1].Neg() {
			return lits, false // l and -l both present: tautology
		}
	}

	return lits, true
}
