package wcnf

import (
	"time"

	"github.com/sirupsen/logrus"
)

// MxFindMode selects which kind of mutexes the mutex finder looks for.
type MxFindMode int

const (
	MxFindNone    MxFindMode = 0
	MxFindCore    MxFindMode = 1
	MxFindNonCore MxFindMode = 2
	MxFindBoth    MxFindMode = 3
)

// Params replaces what the original engine kept as a global mutable
// parameter singleton: every option Simplify and the mutex finder need is
// a field here, passed in explicitly by the caller (the CLI populates one
// from flags; a library caller builds one directly).
type Params struct {
	// Harden runs the simple-hardening pass.
	Harden bool

	// Eqs enables SCC (equality) discovery in the equality-and-units pass.
	Eqs bool

	// Units enables unit propagation in the equality-and-units pass. Units
	// are always captured from the initial oracle load regardless of this
	// flag; Units gates the single repropagate-and-rewrite pass that follows.
	Units bool

	// MxFind selects which mutex kinds the mutex finder looks for.
	MxFind MxFindMode

	// MxMemLimit bounds the number of bytes the mutex finder's cached
	// MX(.) sets may consume in total. Zero means unbounded.
	MxMemLimit int64

	// MxCPULimit bounds the wall-clock time the mutex finder may spend.
	// Zero means unbounded.
	MxCPULimit time.Duration

	// MxSeedOriginals keeps a committed mutex's original soft-clause
	// literals (the content of every consumed soft, before blit
	// compaction) in its SCMx.OrigBlits, for the outer solver's
	// diagnostics.
	MxSeedOriginals bool

	// HardenPropagationBudget bounds each solve_with_propagation_budget
	// call issued during hardening.
	HardenPropagationBudget int64

	// SimplifyAndExit records the CLI's simplify_and_exit flag. Neither the
	// core nor the CLI acts on it: the CLI's simplify command emits the
	// simplified formula and stops whether or not it is set. It is plumbed
	// through so that a Params value built from CLI flags round-trips every
	// recognised option.
	SimplifyAndExit bool

	// Logger receives phase-level progress messages from Simplify. Nil
	// means logrus.StandardLogger().
	Logger *logrus.Logger
}

// DefaultParams mirrors the original engine's defaults: everything that is
// a pure refinement is on, mutex discovery looks for both kinds, and
// budgets are generous but not unbounded.
var DefaultParams = Params{
	Harden:                  true,
	Eqs:                     true,
	Units:                   true,
	MxFind:                  MxFindBoth,
	MxMemLimit:              2 << 30, // 2 GiB
	MxCPULimit:              10 * time.Minute,
	MxSeedOriginals:         false,
	HardenPropagationBudget: 1 << 20,
}
