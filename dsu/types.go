// Package dsu defines options, pair values and sentinel errors for the
// disjoint-set structure.
package dsu

import "errors"

// ErrOutOfRange indicates an element id outside [0, n).
// It is raised as a panic message prefix, never returned.
var ErrOutOfRange = errors.New("dsu: element out of range")

// ErrNegativeSize indicates New was asked for a universe with n < 0.
var ErrNegativeSize = errors.New("dsu: negative universe size")

// Pair is one candidate merge of elements A and B, usually an edge taken
// from a list sorted by ascending weight.
type Pair struct {
	A int
	B int
}

// Option configures a DSU at construction time.
type Option func(*Options)

// Options holds construction-time callbacks for a DSU.
type Options struct {
	// OnMerge is called after every successful Union with the surviving
	// root, the root attached beneath it, and the merged group size.
	OnMerge func(root, child, size int)
}

// DefaultOptions returns Options with a no-op OnMerge hook.
func DefaultOptions() Options {
	return Options{
		OnMerge: func(int, int, int) {},
	}
}

// WithOnMerge registers fn to run after each successful merge.
// A nil fn keeps the current hook.
func WithOnMerge(fn func(root, child, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}
