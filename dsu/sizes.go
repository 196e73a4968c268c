package dsu

import "sort"

// ComponentSizes returns one entry per group: the number of elements whose
// root resolves to it. Entries follow ascending root id; callers should rely
// only on the multiset of values.
//
// Every call resolves the root of all n elements, so it costs a full O(n)
// rescan. Use Count when only the number of groups is needed.
func (d *DSU) ComponentSizes() []int {
	n := len(d.parent)
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		counts[d.Find(i)]++
	}

	sizes := make([]int, 0, d.count)
	for _, c := range counts {
		if c > 0 {
			sizes = append(sizes, c)
		}
	}

	return sizes
}

// RootSizes returns the size table restricted to current roots, keyed by
// root id. Entries left behind by merged-away roots are skipped, so every
// value is a true group size. No path compression takes place.
func (d *DSU) RootSizes() map[int]int {
	out := make(map[int]int, d.count)
	for i, p := range d.parent {
		if p == i {
			out[i] = d.size[i]
		}
	}

	return out
}

// LargestSizes returns the k largest group sizes in descending order.
// k <= 0 yields an empty slice; k above Count yields every group size.
func (d *DSU) LargestSizes(k int) []int {
	if k <= 0 {
		return []int{}
	}

	sizes := make([]int, 0, d.count)
	for i, p := range d.parent {
		if p == i {
			sizes = append(sizes, d.size[i])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	if k > len(sizes) {
		k = len(sizes)
	}

	return sizes[:k]
}
