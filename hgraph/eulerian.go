package hgraph

import (
	"sort"
	"strings"
)

// extractSuperstring reads a superstring off of an Eulerian walk of the
// main component (the one containing ε), started at ε itself. The walk
// necessarily exists once a constructor's balance invariant holds: every
// vertex has equal in- and out-degree, except that the check tolerates a
// difference of one (in either direction) at ε.
func (g *Graph) extractSuperstring() (string, error) {
	comp := g.mainComponent()
	for v := range comp {
		diff := g.outDegree(v) - g.inDegree(v)
		limit := 0
		if v == Epsilon {
			limit = 1
		}
		if diff < -limit || diff > limit {
			return "", ErrUnreachable
		}
	}

	path := g.eulerianWalk(Epsilon, comp)
	if len(path) == 0 || path[0] != Epsilon {
		return "", ErrUnreachable
	}

	return pathToString(path), nil
}

// mainComponent returns every vertex weakly reachable from ε.
func (g *Graph) mainComponent() map[string]struct{} {
	visited := map[string]struct{}{Epsilon: {}}
	queue := []string{Epsilon}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for w := range g.adjacency[v] {
			if _, ok := visited[w]; !ok {
				visited[w] = struct{}{}
				queue = append(queue, w)
			}
		}
		for w := range g.reverse[v] {
			if _, ok := visited[w]; !ok {
				visited[w] = struct{}{}
				queue = append(queue, w)
			}
		}
	}

	return visited
}

// eulerianWalk runs Hierholzer's algorithm over the edges induced by comp,
// starting at start. Among several available edges out of a vertex, it
// always takes the lexicographically largest destination, so the walk
// (and hence the final superstring) is fully deterministic.
func (g *Graph) eulerianWalk(start string, comp map[string]struct{}) []string {
	remaining := make(map[string]map[string]int, len(comp))
	for v := range comp {
		if m := g.adjacency[v]; len(m) > 0 {
			mm := make(map[string]int, len(m))
			for w, c := range m {
				mm[w] = c
			}
			remaining[v] = mm
		}
	}

	stack := []string{start}
	circuit := make([]string, 0, len(comp))
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		next, ok := pickNext(remaining[v])
		if !ok {
			circuit = append(circuit, v)
			stack = stack[:len(stack)-1]
			continue
		}

		remaining[v][next]--
		if remaining[v][next] == 0 {
			delete(remaining[v], next)
		}
		stack = append(stack, next)
	}

	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit
}

// pickNext returns the lexicographically largest destination with a
// remaining edge, if any.
func pickNext(edges map[string]int) (string, bool) {
	if len(edges) == 0 {
		return "", false
	}

	candidates := make([]string, 0, len(edges))
	for w := range edges {
		candidates = append(candidates, w)
	}
	sort.Strings(candidates)

	return candidates[len(candidates)-1], true
}

// pathToString reconstructs the superstring from an Eulerian walk: every
// step from a shorter vertex to a longer one contributes that longer
// vertex's last character.
func pathToString(path []string) string {
	var b strings.Builder
	for i := 1; i < len(path); i++ {
		u, w := path[i-1], path[i]
		if len(u) < len(w) {
			b.WriteByte(w[len(w)-1])
		}
	}

	return b.String()
}
