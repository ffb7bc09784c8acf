package ograph

import "github.com/katalvlaran/ssp/overlap"

// graph is the overlap graph G_O over n input strings plus two sentinel
// vertices: source = n, sink = n+1.
//
// Invariant (enforced by the algorithms, not by this type): each
// non-sentinel vertex ends up with at most one outgoing and at most one
// incoming "real" edge. outEdge[v] (resp. inEdge[v]) is -1 until that edge
// is chosen.
type graph struct {
	strings []string
	n       int // number of real input strings
	ov      [][]int // ov[i][j] = Overlap(strings[i], strings[j]), i != j

	outEdge []int // size n+2, -1 = unset
	inEdge  []int // size n+2, -1 = unset

	// reach[v] is the set of vertices currently reachable from v through
	// edges already added to the graph.
	reach []map[int]struct{}
}

const (
	// noEdge marks an unset outEdge/inEdge slot. (Sentinel vertex ids are
	// not constants: source and sink are n and n+1.)
	noEdge = -1
)

func newGraph(strings []string) (*graph, error) {
	n := len(strings)
	ov := make([][]int, n)
	for i := range ov {
		ov[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			o, err := overlap.Overlap(strings[i], strings[j])
			if err != nil {
				return nil, err
			}
			ov[i][j] = o
		}
	}

	size := n + 2
	g := &graph{
		strings: strings,
		n:       n,
		ov:      ov,
		outEdge: make([]int, size),
		inEdge:  make([]int, size),
		reach:   make([]map[int]struct{}, size),
	}
	for v := 0; v < size; v++ {
		g.outEdge[v] = noEdge
		g.inEdge[v] = noEdge
		g.reach[v] = make(map[int]struct{})
	}

	return g, nil
}

func (g *graph) source() int { return g.n }
func (g *graph) sink() int   { return g.n + 1 }

func (g *graph) reaches(from, to int) bool {
	_, ok := g.reach[from][to]
	return ok
}

// tryAccept attempts to add edge u->v. It enforces rules 1 and 2 shared by
// GREEDY and TGREEDY (u has no outgoing real edge yet, v has no incoming
// real edge yet) always; rule 3 (v must not already reach u, i.e. adding
// the edge must not close a cycle) only when acyclic is true.
//
// accepted reports whether the edge was added. closesCycle reports whether
// u was already reachable from v at the time of the attempt; it is set
// whenever rules 1 and 2 pass, including when rule 3 then rejects the
// edge, and is false when rule 1 or 2 rejects it. TGREEDY uses this to
// detect and harvest cycles.
func (g *graph) tryAccept(u, v int, acyclic bool) (accepted, closesCycle bool) {
	if g.outEdge[u] != noEdge || g.inEdge[v] != noEdge {
		return false, false
	}

	closesCycle = g.reaches(v, u)
	if acyclic && closesCycle {
		return false, closesCycle
	}

	g.outEdge[u] = v
	g.inEdge[v] = u
	g.updateReachability(u, v)

	return true, closesCycle
}

// updateReachability folds the newly added edge u->v into the incremental
// reachability sets: every vertex that can already reach u (plus u
// itself) gains every vertex v can already reach (plus v itself) as
// newly reachable — exactly the standard incremental-transitive-closure
// update for adding one edge to an acyclic reachability relation.
func (g *graph) updateReachability(u, v int) {
	newlyReachable := make([]int, 0, len(g.reach[v])+1)
	newlyReachable = append(newlyReachable, v)
	for x := range g.reach[v] {
		newlyReachable = append(newlyReachable, x)
	}

	affected := make([]int, 0, 1)
	affected = append(affected, u)
	size := len(g.outEdge)
	for w := 0; w < size; w++ {
		if g.reaches(w, u) {
			affected = append(affected, w)
		}
	}

	for _, w := range affected {
		for _, x := range newlyReachable {
			g.reach[w][x] = struct{}{}
		}
	}
}
