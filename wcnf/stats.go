package wcnf

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// MSType classifies a formula along the two axes the original engine
// reports: whether it has any soft clause with weight != 1 (weighted) and
// whether it has any hard clause at all (partial).
type MSType int

const (
	MSPlain    MSType = iota // ms: unweighted, no hards beyond the softs' own
	MSWeighted               // wms: weighted, no hards
	MSPartial                // pms: unweighted, has hards
	MSWeightedPartial        // wpms: weighted, has hards
)

func (t MSType) String() string {
	switch t {
	case MSPlain:
		return "ms"
	case MSWeighted:
		return "wms"
	case MSPartial:
		return "pms"
	case MSWeightedPartial:
		return "wpms"
	default:
		return "unknown"
	}
}

// WeightInfo summarizes the distribution of soft-clause weights
// (computeWtInfo in the original engine).
type WeightInfo struct {
	Min, Max, Mean, Variance Weight
	NDistinct                int
	Type                     MSType
}

// Stats computes weight statistics over the store's current soft clause
// population. It is safe to call at any point in the pipeline (before
// hardening, after mutex processing, etc.) and recomputes from scratch
// every time, matching the original engine's computeWtInfo.
func (s *Store) Stats() WeightInfo {
	n := len(s.SoftWeight)
	if n == 0 {
		return WeightInfo{Type: s.classify()}
	}

	min, max := s.SoftWeight[0], s.SoftWeight[0]
	var sum Weight
	distinct := map[Weight]struct{}{}
	for _, w := range s.SoftWeight {
		if w < min {
			min = w
		}
		if w > max {
			max = w
		}
		sum += w
		distinct[w] = struct{}{}
	}
	mean := sum / Weight(n)

	var varSum Weight
	for _, w := range s.SoftWeight {
		d := w - mean
		varSum += d * d
	}
	variance := varSum / Weight(n)

	return WeightInfo{
		Min: min, Max: max, Mean: mean, Variance: variance,
		NDistinct: len(distinct),
		Type:      s.classify(),
	}
}

func (s *Store) classify() MSType {
	weighted := false
	for _, w := range s.SoftWeight {
		if w != 1 {
			weighted = true
			break
		}
	}
	partial := s.Hard.Len() > 0

	switch {
	case weighted && partial:
		return MSWeightedPartial
	case weighted:
		return MSWeighted
	case partial:
		return MSPartial
	default:
		return MSPlain
	}
}

// TransitionWeights returns the increasing list of distinct soft weights
// w such that the sum of weights strictly lighter than w is strictly less
// than w, used by the hardening rule below.
func (s *Store) TransitionWeights() []Weight {
	distinct := make([]Weight, 0, len(s.SoftWeight))
	seen := map[Weight]bool{}
	for _, w := range s.SoftWeight {
		if !seen[w] {
			seen[w] = true
			distinct = append(distinct, w)
		}
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	var running Weight
	out := make([]Weight, 0, len(distinct))
	for _, w := range distinct {
		if running < w {
			out = append(out, w)
		}
		running += w
	}
	return out
}

// WriteStats prints a formula/simplification summary in the original
// engine's "c "-prefixed DIMACS-comment convention; this is wire-format
// content (part of the simplified-formula dump the CLI's simplify command
// writes), not operational log noise, so it is not routed
// through logrus.
func (s *Store) WriteStats(w io.Writer) {
	info := s.Stats()
	fmt.Fprintf(w, "c |formula type|       %s\n", info.Type)
	fmt.Fprintf(w, "c |vars|              %d\n", s.MaxVar+1)
	fmt.Fprintf(w, "c |hard clauses|      %d\n", s.Hard.Len())
	fmt.Fprintf(w, "c |soft clauses|      %d\n", s.Soft.Len())
	fmt.Fprintf(w, "c |base cost|         %v\n", s.BaseCost)
	fmt.Fprintf(w, "c |total soft weight| %v\n", s.TotalClsWt)
	fmt.Fprintf(w, "c |distinct weights|  %d\n", info.NDistinct)
	if !math.IsNaN(float64(info.Mean)) {
		fmt.Fprintf(w, "c |mean weight|       %v\n", info.Mean)
	}
	fmt.Fprintf(w, "c |unsat|             %v\n", s.Unsat)
}

// WriteDimacs emits the current clause populations in extended WCNF
// DIMACS form (old-format weighted clauses, softs prefixed by weight,
// hards prefixed by a weight at or above Top).
func (s *Store) WriteDimacs(w io.Writer) {
	top := s.Top
	if top == 0 {
		top = s.TotalClsWt + 1
	}
	fmt.Fprintf(w, "p wcnf %d %d %v\n", s.MaxVar+1, s.Hard.Len()+s.Soft.Len(), top)
	s.Hard.Each(func(_ int, seq []Lit) bool {
		writeWeightedClause(w, top, seq)
		return true
	})
	for i := 0; i < s.Soft.Len(); i++ {
		writeWeightedClause(w, s.SoftWeight[i], s.Soft.At(i))
	}
}

func writeWeightedClause(w io.Writer, weight Weight, lits []Lit) {
	fmt.Fprintf(w, "%v", weight)
	for _, l := range lits {
		fmt.Fprintf(w, " %s", l)
	}
	fmt.Fprint(w, " 0\n")
}
