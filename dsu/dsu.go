package dsu

// DSU is a disjoint-set-union over strings. Each set tracks, alongside the
// usual parent/rank union-find state, the "representative" string ever
// inserted into it: the shortest member, with ties broken in favor of the
// lexicographically largest.
type DSU struct {
	parent map[string]string
	rank   map[string]int
	rep    map[string]string // rep[root] = current representative of that set
}

// Make builds a fresh DSU with one singleton set per node. Each node is,
// trivially, its own representative until unioned with another set.
func Make(nodes []string) *DSU {
	d := &DSU{
		parent: make(map[string]string, len(nodes)),
		rank:   make(map[string]int, len(nodes)),
		rep:    make(map[string]string, len(nodes)),
	}
	for _, n := range nodes {
		d.parent[n] = n
		d.rank[n] = 0
		d.rep[n] = n
	}

	return d
}

// Find returns the root of x's set, path-compressing along the way.
func (d *DSU) Find(x string) string {
	if d.parent[x] != x {
		d.parent[x] = d.Find(d.parent[x])
	}

	return d.parent[x]
}

// Rep returns the current representative of x's set: the shortest string
// ever inserted into the set, lexicographically largest among ties.
func (d *DSU) Rep(x string) string {
	return d.rep[d.Find(x)]
}

// Union merges the sets containing x and y, by rank. The merged set's
// representative is whichever of the two sides' representatives wins the
// (shortest, then lexicographically-largest) comparison; on a tie (which
// can only happen if both sides already share the same representative
// string) both sides are left pointing at that winner.
func (d *DSU) Union(x, y string) {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return
	}

	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}

	if better(d.rep[ry], d.rep[rx]) {
		d.rep[rx] = d.rep[ry]
	} else {
		d.rep[ry] = d.rep[rx]
	}
}

// better reports whether candidate should replace current as a set's
// representative: shorter strings win, and among equal lengths the
// lexicographically larger string wins.
func better(candidate, current string) bool {
	if len(candidate) != len(current) {
		return len(candidate) < len(current)
	}

	return candidate > current
}
