// Package ograph implements the overlap-graph engine: the complete
// directed, weighted graph over n input strings (plus source/sink
// sentinels) and the GREEDY/TGREEDY Hamiltonian-path heuristics that walk
// it.
//
// The graph itself is never materialized as a generic adjacency
// structure — since the algorithms only ever need "does u already have an
// outgoing real edge" and "is u reachable from v", the graph is
// represented directly as two id arrays (outEdge/inEdge) plus an
// incremental reachability set per vertex, per the bespoke,
// algorithm-specific structures this engine is built around.
package ograph
