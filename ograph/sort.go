package ograph

// edge is a candidate real edge (u, v) of the overlap graph with its
// precomputed weight ov(u, v).
type edge struct {
	u, v   int
	weight int
}

// sortedRealEdges returns every ordered pair (i, j), i != j, i, j < n,
// sorted by weight descending. Ties are broken by a stable bucket sort
// that preserves the edges' natural generation order — i ascending, then
// j ascending — so that identical input ordering always produces
// identical output, per the spec's determinism requirement.
func (g *graph) sortedRealEdges() []edge {
	maxWeight := 0
	edges := make([]edge, 0, g.n*(g.n-1))
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if i == j {
				continue
			}
			w := g.ov[i][j]
			edges = append(edges, edge{u: i, v: j, weight: w})
			if w > maxWeight {
				maxWeight = w
			}
		}
	}

	buckets := make([][]edge, maxWeight+1)
	for _, e := range edges {
		buckets[e.weight] = append(buckets[e.weight], e)
	}

	sorted := make([]edge, 0, len(edges))
	for w := maxWeight; w >= 0; w-- {
		sorted = append(sorted, buckets[w]...)
	}

	return sorted
}

// sentinelEdges appends, after the real edges, every source->i edge (i
// ascending) and then every i->sink edge (i ascending). The spec leaves
// the order among sentinel edges unconstrained; this module picks a
// stable order for reproducible test fixtures.
func (g *graph) sentinelEdges() []edge {
	out := make([]edge, 0, 2*g.n)
	src, dst := g.source(), g.sink()
	for i := 0; i < g.n; i++ {
		out = append(out, edge{u: src, v: i})
	}
	for i := 0; i < g.n; i++ {
		out = append(out, edge{u: i, v: dst})
	}

	return out
}
