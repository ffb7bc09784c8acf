// Package dsu implements a disjoint-set-union (union-find) structure with
// path compression and union by rank, specialized for the hierarchical SSP
// graph's "anchor" queries: every set carries the representative string
// that is shortest, and — among equal-shortest members — lexicographically
// largest.
//
// The comparator is the opposite of the usual union-find habit of tracking
// the smallest element; it is kept explicit here (see better in dsu.go) precisely
// because it is easy to get backwards.
package dsu
