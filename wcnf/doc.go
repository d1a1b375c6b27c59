// Package wcnf implements the core of a Weighted Partial MaxSAT formula
// store: hard and soft clause partitions, weight bookkeeping, and the
// simplification pipeline (harden, equality/unit reduction, deduplication,
// mutex discovery, variable remap) that turns a raw parsed instance into a
// reduced one plus the bookkeeping needed to lift a model back to the
// original variable space.
//
// The package only consumes a SAT-solving capability through the narrow
// Oracle interface in oracle.go; internal/satoracle is one implementation
// of it, used by the CLI (this package's own tests use a brute-force fake
// oracle instead), and wcnf itself never imports a concrete solver.
package wcnf
