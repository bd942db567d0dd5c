// Package mwis finds exact maximum-weight independent sets.
//
// Given vertices, a pairwise conflict predicate, and a weight function, Find
// returns the subset of vertices maximizing total weight such that no two
// selected vertices conflict. The problem is NP-hard in general; this solver
// stays exact by decomposing the conflict graph into connected components and
// paying the exponential search cost per component rather than globally. No
// edges cross components, so the global optimum is the union of per-component
// optima.
//
// Callers are responsible for keeping component sizes small (low double
// digits); the search over one component is worst-case O(2^n).
//
// The conflict predicate is assumed symmetric and irreflexive. A predicate
// violating that yields undefined relative weights but never a crash. For an
// inexact single-row alternative over set families see package disjoint; the
// two strategies are intentionally separate and never substitute for one
// another.
package mwis
