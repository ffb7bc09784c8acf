package ograph

import "github.com/katalvlaran/ssp/substrfree"

// TGREEDY solves the given substring-free instance with the TGREEDY
// heuristic: run the same sorted-edge pass as GREEDY but without
// sentinels and without cycle avoidance, harvesting each closed cycle (and
// every isolated leftover vertex) as a separate string, then GREEDY those
// cycle-strings into the final superstring.
func TGREEDY(strings []string) (string, error) {
	if !substrfree.IsSubstringFree(strings) {
		return "", ErrInvalidInput
	}

	g, err := newGraph(strings)
	if err != nil {
		return "", err
	}

	cyclics := make([]string, 0)
	for _, e := range g.sortedRealEdges() {
		accepted, closesCycle := g.tryAccept(e.u, e.v, false)
		if accepted && closesCycle {
			cycle, err := g.walkCycle(e.u, e.v)
			if err != nil {
				return "", err
			}
			cyclics = append(cyclics, g.pathToString(cycle))
		}
	}

	for v := 0; v < g.n; v++ {
		if g.outEdge[v] == noEdge && g.inEdge[v] == noEdge {
			cyclics = append(cyclics, g.strings[v])
		}
	}

	return greedyNoValidation(cyclics)
}
