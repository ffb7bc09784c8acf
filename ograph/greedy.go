package ograph

import "github.com/katalvlaran/ssp/substrfree"

// GREEDY solves the given substring-free instance with the classical
// greedy algorithm: sort all ordered overlaps descending, greedily link
// strings into a single Hamiltonian path while never creating a cycle,
// falling back to the source/sink sentinels to close off any string that
// never found a real predecessor or successor.
func GREEDY(strings []string) (string, error) {
	if !substrfree.IsSubstringFree(strings) {
		return "", ErrInvalidInput
	}

	return greedyNoValidation(strings)
}

// greedyNoValidation is GREEDY's actual algorithm, factored out so
// TGREEDY can feed it an already-derived set of strings (its harvested
// cycles) without re-asserting the substring-free precondition a second
// time, matching the reference implementation's behavior of feeding
// cyclics straight into a fresh GREEDY pass.
func greedyNoValidation(strings []string) (string, error) {
	// n=1 would otherwise produce a path source->0->sink with no real
	// edge for pathToString to walk; short-circuit it directly.
	if len(strings) == 1 {
		return strings[0], nil
	}

	g, err := newGraph(strings)
	if err != nil {
		return "", err
	}

	for _, e := range g.sortedRealEdges() {
		g.tryAccept(e.u, e.v, true)
	}
	for _, e := range g.sentinelEdges() {
		g.tryAccept(e.u, e.v, true)
	}

	path, err := g.hamiltonianPath()
	if err != nil {
		return "", err
	}

	return g.pathToString(path), nil
}
