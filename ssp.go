package ssp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ssp/hgraph"
	"github.com/katalvlaran/ssp/ograph"
	"github.com/katalvlaran/ssp/substrfree"
)

// GREEDY solves strings using the overlap-graph greedy Hamiltonian-path
// heuristic: accept the highest-weight edges first, rejecting any that
// would give a vertex a second outgoing or incoming edge or that would
// close a cycle before every input is consumed.
func GREEDY(strings []string) (string, error) {
	return wrapInvalidInput(ograph.GREEDY(strings))
}

// TGREEDY solves strings like GREEDY but without cycle-avoidance while
// edges accumulate; closed cycles and leftover isolated vertices are
// harvested afterwards and fed back through GREEDY.
func TGREEDY(strings []string) (string, error) {
	return wrapInvalidInput(ograph.TGREEDY(strings))
}

// GHA solves strings using the Greedy Hierarchical Algorithm: build the
// hierarchical multigraph directly in balanced form, then read a
// superstring off its Eulerian walk from ε.
func GHA(strings []string) (string, error) {
	return wrapInvalidInput(hgraph.GHA(strings))
}

// CA solves strings by building the trivial concatenation solution as a
// hierarchical multigraph, doubling and collapsing it, then reading a
// superstring off its Eulerian walk from ε.
func CA(strings []string) (string, error) {
	return wrapInvalidInput(hgraph.CA(strings))
}

// EnsureSubstringFree removes duplicates and any string that is a
// contiguous substring of another, keeping first-seen order among the
// survivors. Every solver requires its input already be in this form;
// this is the step that gets it there.
func EnsureSubstringFree(strings []string) []string {
	return substrfree.EnsureSubstringFree(strings)
}

// EqualGraphs reports whether two hierarchical graphs carry the same
// multiset of edges. It exists to spot-check the Collapsing Conjecture —
// that CA applied to GHA's own graph leaves it unchanged — without either
// solver depending on the conjecture internally.
func EqualGraphs(g1, g2 *hgraph.Graph) bool {
	return hgraph.EqualGraphs(g1, g2)
}

// wrapInvalidInput translates a package-local ErrInvalidInput sentinel
// into ssp.ErrInvalidInput (still matched by errors.Is against the
// original), leaving every other error untouched.
func wrapInvalidInput(s string, err error) (string, error) {
	if err == nil {
		return s, nil
	}
	if errors.Is(err, ograph.ErrInvalidInput) || errors.Is(err, hgraph.ErrInvalidInput) {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return "", err
}
