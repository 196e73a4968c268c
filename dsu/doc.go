// Package dsu provides a Disjoint-Set-Union (union-find) structure over a
// fixed universe of n elements identified by the dense indices 0..n-1.
//
// What
//
//   - New(n) builds n singleton groups; every element is its own root.
//   - Find(x) returns the root of x's group and rewires every node visited on
//     the way directly to that root (full path compression).
//   - Union(a, b) merges two groups by size: the smaller group's root is
//     attached under the larger one's. Equal sizes keep a's root on top.
//     It reports false when a and b already share a root.
//   - ComponentSizes() rescans the universe and returns one size per group.
//   - RootSizes() and LargestSizes(k) read the size table filtered to roots,
//     so no stale entry of a merged-away root is ever observed.
//   - UnionAll and UnionUntil feed an ordered slice of Pair values, typically
//     edges sorted by ascending weight, either fully or until a predicate
//     over the structure holds.
//
// Why
//
//   - Kruskal-style clustering: connect the closest pairs first and watch
//     groups form.
//   - Connectivity checks in O(α(n)) amortized time per operation.
//   - Counting and ranking groups by size without re-deriving roots by hand.
//
// Complexity
//
//   - New:             O(n) time, O(n) memory.
//   - Find, Union:     O(α(n)) amortized (path compression + union-by-size).
//   - Count, Len:      O(1).
//   - ComponentSizes:  O(n·α(n)); a full rescan on every call.
//   - RootSizes:       O(n), no Find calls.
//   - LargestSizes:    O(n + g log g) for g groups.
//
// Determinism
//
//	Tie-breaking in Union is fixed (b's root goes under a's root), and
//	ComponentSizes lists groups in ascending root order, so any sequence of
//	calls yields the same forest and the same slices on every run.
//
// Errors and preconditions
//
//	Element ids outside [0, n) are programming errors. Every entry point
//	checks its ids and panics with a message starting with ErrOutOfRange's
//	text; ids are never clamped. New panics on n < 0 (ErrNegativeSize).
//	No operation returns an error: Union reporting false is a normal outcome.
//
// Concurrency
//
//	A DSU is not safe for concurrent use. Find writes parent links, so even
//	read-looking calls mutate state. Guard shared instances with a mutex.
//
// For end-to-end usage (clustering 3-D points by distance) see example_test.go.
package dsu
