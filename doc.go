// Package disjoint is a small home for partitioning structures over dense
// integer universes, built for batch computations such as clustering points
// by ascending pairwise distance.
//
// 🚀 What is inside?
//
//	dsu/ — Disjoint-Set-Union (union-find) over elements 0..n-1 with full
//	       path compression and union-by-size, plus root-filtered size
//	       queries and ordered pair feeding.
//
// ✨ Why disjoint?
//
//   - Minimal API – New, Find, Union, ComponentSizes and friends
//   - Deterministic – equal-size ties always keep the first argument's root
//   - Pure Go – no cgo, no runtime dependencies
//
// Quick ASCII example:
//
//	0───1───2    3    4
//
//	after Union(0,1) and Union(1,2): groups {0,1,2} {3} {4}, sizes [3 1 1].
//
//	go get github.com/katalvlaran/disjoint/dsu
package disjoint
