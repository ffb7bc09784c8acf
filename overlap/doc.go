// Package overlap computes the longest-suffix-that-is-a-prefix relation
// between two strings, the shared primitive every SSP solver builds on.
//
// ov(a, b) is the length of the longest suffix of a (possibly all of a)
// that equals a prefix of b. It is computed via the failure function of the
// Knuth–Morris–Pratt automaton run over b + sentinel + a, so it costs
// O(|a|+|b|) time and space rather than the naive O(|a|*|b|) scan.
package overlap
