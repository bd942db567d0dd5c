// Package graph provides an immutable, index-addressed view over a set of
// vertices and a pairwise conflict predicate.
//
// A Graph assigns every vertex a dense index in [0, n) following the input
// order, materializes the adjacency matrix of the conflict predicate, and
// exposes membership, neighbor, and connected-component queries on top of it.
// Self-loops are suppressed: a vertex is never its own neighbor, regardless
// of what the predicate returns.
//
// The predicate is evaluated once per ordered vertex pair at construction
// time and never again. No symmetrization is performed, so an asymmetric
// predicate yields an asymmetric matrix; callers that need an undirected
// graph must supply a symmetric predicate.
//
// Graphs are cheap, throwaway structures: build one per computation, query
// it, discard it. They are safe for concurrent readers once built.
package graph
