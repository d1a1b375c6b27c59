package wcnf

import (
	"errors"
	"fmt"
)

// ErrUnsat is returned by Simplify to report hard-clause unsatisfiability
// immediately rather than let the store's sticky Unsat flag do the talking;
// the loaders only set the flag. Once the store's Unsat flag is set, further mutations are
// no-ops rather than errors; callers that need to observe the transition
// check the returned error from Simplify.
var ErrUnsat = errors.New("wcnf: formula is unsatisfiable")

// ErrInvariant reports a programmer error: a broken store invariant
// detected at runtime (e.g. a literal referencing a variable above
// max_var). It is not a recoverable condition.
var ErrInvariant = errors.New("wcnf: invariant violation")

// ParseError wraps a malformed-input failure from the DIMACS/WCNF text
// format, carrying the line number for diagnostics.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("wcnf: parse error at line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("wcnf: parse error: %s", e.Msg)
}
