// Package hgraph implements the hierarchical graph engine: a directed
// multigraph over every substring of every input string, plus the empty
// string ε, together with the two constructors (GHA and the trivial
// solution CA collapses), the collapsing procedure, and the Eulerian
// extraction that turns any balanced, ε-connected instance of the graph
// back into a superstring.
//
// Edges carry no weight; only their multiplicity matters, so the
// adjacency representation is a multiset per vertex — a
// map[string]map[string]int counting parallel edges, which stores counts
// instead of edge-identity sets since hierarchical-graph edges have no
// identity of their own.
package hgraph
