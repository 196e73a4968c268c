package dsu

import "fmt"

// DSU partitions the elements 0..n-1 into disjoint groups.
//
// parent links form a forest: parent[r] == r exactly when r is a root.
// size[r] is authoritative only while r is a root; entries of merged-away
// roots are stale and never read.
type DSU struct {
	parent []int
	size   []int
	count  int // distinct roots remaining
	opts   Options
}

// New builds a universe of n singleton groups, each element its own root
// with size 1. n == 0 yields an empty structure with no valid ids.
//
// Panics with ErrNegativeSize if n < 0.
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) *DSU {
	if n < 0 {
		panic(ErrNegativeSize.Error())
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
		opts:   o,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the universe size n.
func (d *DSU) Len() int {
	return len(d.parent)
}

// Count returns the number of distinct groups.
func (d *DSU) Count() int {
	return d.count
}

// Find returns the root of x's group.
//
// The first pass walks parent links up to the root; the second pass rewires
// every node on that path (the root excluded) to point at the root, so later
// lookups for them take one step.
func (d *DSU) Find(x int) int {
	d.check(x)

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the groups of a and b and reports whether they were distinct.
//
// The root of the smaller group is attached under the root of the larger one.
// On equal sizes b's root goes under a's root. When a and b already share a
// root nothing changes and Union returns false.
func (d *DSU) Union(a, b int) bool {
	ra := d.Find(a)
	rb := d.Find(b)
	if ra == rb {
		return false
	}

	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	d.opts.OnMerge(ra, rb, d.size[ra])

	return true
}

// Connected reports whether a and b belong to the same group.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// SizeOf returns the number of elements in x's group.
func (d *DSU) SizeOf(x int) int {
	return d.size[d.Find(x)]
}

// check panics when x is not a valid element id.
func (d *DSU) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Sprintf("%v: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent)))
	}
}
