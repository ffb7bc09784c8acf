package ograph

import "errors"

// ErrInvalidInput indicates an empty input list, or an input list that is
// not substring-free (a required precondition of every overlap-graph
// solver).
var ErrInvalidInput = errors.New("ograph: input is empty or not substring-free")

// ErrUnreachable indicates the solver hit a branch its own invariants
// should have excluded. Seeing it surface means a bug in graph
// construction, not a property of the input.
var ErrUnreachable = errors.New("ograph: unreachable state (invariant violation)")
