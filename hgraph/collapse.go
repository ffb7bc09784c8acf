package hgraph

import "github.com/katalvlaran/ssp/dsu"

// doubleAndCollapse implements CA: it doubles every edge's multiplicity
// (guaranteeing every vertex an even degree, hence an Eulerian circuit
// through the whole graph), then repeatedly collapses each node into its
// neighbors wherever doing so leaves a valid solution graph behind. A node
// is only ever fully absorbed once its own path through it is the unique
// remaining path, it isn't one of the original inputs, and either its
// degree has already dropped below the generic case or it no longer
// matters for reconnecting ε.
func doubleAndCollapse(g *Graph, strings []string) {
	doubleEdges(g)

	nodes := g.allNodesForDSU()
	d := dsu.Make(nodes)
	nodes = nodes[:len(nodes)-1]

	inputNodes := make(map[string]struct{}, len(strings))
	for _, s := range strings {
		inputNodes[s] = struct{}{}
	}

	for _, node := range nodes {
		prev := node[:len(node)-1]
		suff := node[1:]
		var prevSuff string
		if len(node) > 1 {
			prevSuff = node[1 : len(node)-1]
		}

		for g.hasEdge(prev, node) && g.hasEdge(node, suff) {
			if g.multiplicity(prev, node) == 1 && g.multiplicity(node, suff) == 1 {
				if _, isInput := inputNodes[node]; isInput {
					break
				}
				if g.degree(node) != 2 && d.Rep(node) == node {
					break
				}
			}

			g.removeEdge(prev, node)
			g.removeEdge(node, suff)
			if len(node) > 1 {
				g.addEdge(prev, prevSuff)
				g.addEdge(prevSuff, suff)
			}
		}

		if g.hasEdge(prev, node) {
			d.Union(prev, node)
		}
		if g.hasEdge(node, suff) {
			d.Union(node, suff)
		}
	}
}

type edgeCount struct {
	u, v string
	n    int
}

// doubleEdges snapshots every edge's current multiplicity and adds that
// many copies again, so every multiplicity exactly doubles.
func doubleEdges(g *Graph) {
	snapshot := make([]edgeCount, 0, len(g.adjacency))
	for u, m := range g.adjacency {
		for v, c := range m {
			snapshot = append(snapshot, edgeCount{u, v, c})
		}
	}
	for _, e := range snapshot {
		g.addEdges(e.u, e.v, e.n)
	}
}
