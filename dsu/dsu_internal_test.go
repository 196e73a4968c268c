package dsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFind_FullPathCompression builds a hand-made chain 0→1→2→3 and checks
// that a single Find rewires every visited node straight to the root.
func TestFind_FullPathCompression(t *testing.T) {
	d := New(5)
	d.parent = []int{1, 2, 3, 3, 4}
	d.size = []int{1, 2, 3, 4, 1}
	d.count = 2

	assert.Equal(t, 3, d.Find(0))
	assert.Equal(t, []int{3, 3, 3, 3, 4}, d.parent)

	// untouched group keeps its own root.
	assert.Equal(t, 4, d.Find(4))
}

// TestFind_CompressesOnlyThePath leaves branches outside the walked path alone.
func TestFind_CompressesOnlyThePath(t *testing.T) {
	d := New(5)
	// 0→1→2 (root), 3→4→2
	d.parent = []int{1, 2, 2, 4, 2}
	d.size = []int{1, 2, 5, 1, 2}
	d.count = 1

	assert.Equal(t, 2, d.Find(0))
	assert.Equal(t, []int{2, 2, 2, 4, 2}, d.parent)
}

// TestRootSizes_SkipsStaleEntries shows that merged-away roots keep their
// old size slot but never surface through the public size queries.
func TestRootSizes_SkipsStaleEntries(t *testing.T) {
	d := New(6)
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(0, 2) // root 0 absorbs root 2, whose slot stays at 2

	assert.Equal(t, 2, d.size[2], "stale entry is left in place")
	assert.Equal(t, map[int]int{0: 4, 4: 1, 5: 1}, d.RootSizes())
	assert.Equal(t, []int{4, 1, 1}, d.LargestSizes(3))
}
