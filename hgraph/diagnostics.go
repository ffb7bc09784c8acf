package hgraph

// EqualGraphs reports whether g1 and g2 carry exactly the same multiset
// of edges (same pairs, same multiplicities, nothing in one that is
// missing from the other). It exists to spot-check the Collapsing
// Conjecture — that double_and_collapse, applied to the graph GHA builds,
// leaves that graph unchanged — without assuming the conjecture anywhere
// in GHA or CA themselves.
func EqualGraphs(g1, g2 *Graph) bool {
	return coversAll(g1.adjacency, g2.adjacency) && coversAll(g2.adjacency, g1.adjacency)
}

// coversAll reports whether every edge multiplicity recorded in a also
// appears, identically, in b.
func coversAll(a, b map[string]map[string]int) bool {
	for u, inner := range a {
		for v, c := range inner {
			if b[u][v] != c {
				return false
			}
		}
	}

	return true
}
