package wcnf

import "fmt"

// Lit is a literal: a reference to a variable together with a sign. The
// sign is carried in the low bit so that Var and Neg are cheap bit ops and
// Code gives a stable, dense integer usable as an array index.
//
// Var 0's positive literal is 0, its negative literal is 1; var 1's
// positive literal is 2, negative is 3; and so on. This matches the
// encoding internal/satoracle uses for its own Literal type, so the oracle
// adapter can cast between the two without re-encoding.
type Lit int32

// MkLit builds the literal for variable v with the given sign.
func MkLit(v int32, negated bool) Lit {
	if negated {
		return Lit(v<<1) | 1
	}
	return Lit(v << 1)
}

// Var returns the variable index referenced by l.
func (l Lit) Var() int32 {
	return int32(l) >> 1
}

// Negated reports whether l is the negative literal of its variable.
func (l Lit) Negated() bool {
	return l&1 == 1
}

// Neg returns the complementary literal. Negation is involutive: l.Neg().Neg() == l.
func (l Lit) Neg() Lit {
	return l ^ 1
}

// Code returns a stable integer encoding of l suitable for indexing dense
// arrays keyed by literal.
func (l Lit) Code() int {
	return int(l)
}

func (l Lit) String() string {
	if l.Negated() {
		return fmt.Sprintf("-%d", l.Var()+1)
	}
	return fmt.Sprintf("%d", l.Var()+1)
}

// Weight is a soft clause's cost if falsified, or base_cost's running
// accumulation. The store tracks separately whether every weight inserted
// so far has been integral (see Store.IntWeights).
type Weight float64

// IsIntegral reports whether w has no fractional part.
func (w Weight) IsIntegral() bool {
	return w == Weight(int64(w))
}

// Tri is a lifted boolean returned by oracle queries: True, False, or
// Undef when the oracle has no opinion. The core always treats Undef
// conservatively (no inference drawn).
type Tri int8

const (
	Undef Tri = 0
	True  Tri = 1
	False Tri = -1
)

func (t Tri) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undef"
	}
}
