package hgraph

import (
	"github.com/katalvlaran/ssp/dsu"
	"github.com/katalvlaran/ssp/overlap"
)

// constructTrivialGraph threads every input string into the graph as a
// single concatenation path: the prefix chain of string i is grafted onto
// the suffix chain left over from string i-1, and trimmed back down to
// however much string i overlaps string i+1. The result is exactly the
// trivial "glue the strings end to end" superstring, represented as a
// graph so double_and_collapse can work on it.
func constructTrivialGraph(g *Graph, strings []string) error {
	curOverlap := 0
	n := len(strings)
	for i := 0; i < n; i++ {
		s := strings[i]
		for j := curOverlap; j < len(s); j++ {
			g.addEdge(s[:j], s[:j+1])
		}

		next := 0
		if i+1 != n {
			ov, err := overlap.Overlap(s, strings[i+1])
			if err != nil {
				return err
			}
			next = ov
		}
		for j := len(s); j > next; j-- {
			tail := s[len(s)-j:]
			to := Epsilon
			if j != 1 {
				to = s[len(s)-j+1:]
			}
			g.addEdge(tail, to)
		}
		curOverlap = next
	}

	return nil
}

// constructGreedyGraph builds the GHA solution directly: every input
// string is first wired in as its own three-node chain (prefix -> string
// -> suffix), then every substring, longest first, gets its in/out degree
// balanced against its same-length-class neighbors. A node whose balance
// is exact, but which is still disconnected from ε and is its set's
// chosen representative, gets one last chance to be pulled in.
func constructGreedyGraph(g *Graph, strings []string) {
	nodes := g.allNodesForDSU()
	d := dsu.Make(nodes)
	nodes = nodes[:len(nodes)-1] // ε is always last; GHA never iterates it directly

	for _, s := range strings {
		pre, suf := Epsilon, Epsilon
		if len(s) > 0 {
			pre = s[:len(s)-1]
			suf = s[1:]
		}
		g.addEdge(pre, s)
		g.addEdge(s, suf)
		d.Union(pre, s)
		d.Union(s, suf)
	}

	for _, node := range nodes {
		if g.isIsolated(node) {
			continue
		}

		indeg := g.indegreeFromLength(node, len(node)+1)
		outdeg := g.outdegreeToLength(node, len(node)+1)

		switch {
		case indeg > outdeg:
			suff := node[1:]
			g.addEdges(node, suff, indeg-outdeg)
			d.Union(node, suff)
		case indeg < outdeg:
			pref := node[:len(node)-1]
			g.addEdges(pref, node, outdeg-indeg)
			d.Union(pref, node)
		default:
			if d.Find(Epsilon) != d.Find(node) && d.Rep(node) == node {
				pref := node[:len(node)-1]
				suff := node[1:]
				g.addEdge(pref, node)
				g.addEdge(node, suff)
				d.Union(pref, node)
				d.Union(node, suff)
			}
		}
	}
}
