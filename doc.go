// Package ssp solves the Shortest Common Superstring problem: given a
// substring-free set of strings, produce one string containing every
// member as a contiguous substring, as short as the chosen heuristic can
// manage.
//
// Four approximations are exposed, drawn from two families:
//
//	GREEDY, TGREEDY  — operate on the overlap graph of whole input
//	                   strings (package ograph)
//	GHA, CA          — operate on a hierarchical, de-Bruijn-like
//	                   multigraph over every substring of the inputs
//	                   (package hgraph)
//
// Supporting packages:
//
//	overlap/    — longest-suffix-is-prefix primitive (KMP failure function)
//	dsu/        — union-find with a shortest-then-largest representative rule
//	ograph/     — overlap graph engine (GREEDY, TGREEDY)
//	hgraph/     — hierarchical graph engine (GHA, CA, Eulerian extraction)
//	substrfree/ — substring-free precondition filter
//
// None of the four solvers repairs a substring-free violation on the
// caller's behalf; EnsureSubstringFree is a separate, explicit step.
package ssp
