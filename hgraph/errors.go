package hgraph

import "errors"

// ErrInvalidInput indicates an empty input list, or an input list that is
// not substring-free (a required precondition of every hierarchical-graph
// solver).
var ErrInvalidInput = errors.New("hgraph: input is empty or not substring-free")

// ErrUnreachable indicates the solver hit a branch its own invariants
// should have excluded: an Eulerian extraction attempted on a graph whose
// component containing ε is not balanced. (Edges outside that component
// are ignored by the extraction, not reported.) Seeing it surface means a
// bug in graph construction, not a property of the input.
var ErrUnreachable = errors.New("hgraph: unreachable state (invariant violation)")
