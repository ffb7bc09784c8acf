package ograph

import "strings"

// pathToString merges a sequence of real (non-sentinel) vertex ids,
// already known to form a path u0->u1->...->uk in the overlap graph, into
// a single string: the first vertex's string, then for every subsequent
// vertex only the suffix past the overlap with its predecessor.
func (g *graph) pathToString(nodes []int) string {
	if len(nodes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(g.strings[nodes[0]])
	for k := 1; k < len(nodes); k++ {
		u, v := nodes[k-1], nodes[k]
		sb.WriteString(g.strings[v][g.ov[u][v]:])
	}

	return sb.String()
}

// hamiltonianPath walks the unique source->...->sink chain left by GREEDY
// and returns the real vertices visited, in order. Every real vertex has
// exactly one outgoing edge by construction, so this walk must reach the
// sink within g.n steps; if it doesn't, something upstream broke that
// invariant, and ErrUnreachable is returned rather than looping forever
// or indexing past outEdge.
func (g *graph) hamiltonianPath() ([]int, error) {
	nodes := make([]int, 0, g.n)
	cur := g.outEdge[g.source()]
	for cur != g.sink() {
		if cur == noEdge || len(nodes) >= g.n {
			return nil, ErrUnreachable
		}
		nodes = append(nodes, cur)
		cur = g.outEdge[cur]
	}

	return nodes, nil
}

// walkCycle returns the real vertices of the cycle that closing edge u->v
// just formed, starting at v and ending at u — the closing edge u->v
// itself contributes nothing to the eventual string. The cycle can
// contain at most g.n vertices; exceeding that (or running off an unset
// edge before reaching back to u) means tryAccept reported a cycle that
// isn't actually there, and ErrUnreachable is returned instead of
// looping forever.
func (g *graph) walkCycle(u, v int) ([]int, error) {
	nodes := []int{v}
	cur := g.outEdge[v]
	for cur != u {
		if cur == noEdge || len(nodes) > g.n {
			return nil, ErrUnreachable
		}
		nodes = append(nodes, cur)
		cur = g.outEdge[cur]
	}
	nodes = append(nodes, u)

	return nodes, nil
}
