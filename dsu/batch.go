package dsu

// UnionAll applies Union to every pair in order and returns how many of them
// merged two distinct groups.
func (d *DSU) UnionAll(pairs []Pair) int {
	merged := 0
	for _, p := range pairs {
		if d.Union(p.A, p.B) {
			merged++
		}
	}

	return merged
}

// UnionUntil applies pairs in order and stops as soon as stop(d) holds.
//
// stop is checked once before the first pair and again after every Union,
// merged or not. The result is the index of the pair after which stop first
// held and true; (-1, true) if stop held before any pair was applied; and
// (-1, false) if the pairs ran out first. A nil stop applies every pair and
// returns (-1, false).
func (d *DSU) UnionUntil(pairs []Pair, stop func(*DSU) bool) (int, bool) {
	if stop == nil {
		d.UnionAll(pairs)

		return -1, false
	}
	if stop(d) {
		return -1, true
	}

	for i, p := range pairs {
		d.Union(p.A, p.B)
		if stop(d) {
			return i, true
		}
	}

	return -1, false
}
