// Package dimacsio loads weighted partial MaxSAT instances into a
// wcnf.Store and parses the plain-model files the outer solver's
// regression fixtures compare against.
//
// Two input shapes are supported: the weighted WDIMACS/MaxSAT text format
// ("p wcnf nvars nclauses top", clause lines prefixed by a weight) and
// plain unweighted DIMACS CNF (every clause hard), the latter delegated to
// github.com/rhartert/dimacs the way the upstream CLI already does for
// plain SAT instances.
package dimacsio
