package unionfind

import "errors"

// Sentinel errors for Forest operations.
var (
	// ErrInvalidArgument indicates a non-positive forest capacity.
	ErrInvalidArgument = errors.New("unionfind: capacity must be positive")
	// ErrIndexOutOfRange indicates an element outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// Forest is a weighted quick-union structure over [0, n).
// parent[i] == i iff i is a root; size[r] is only meaningful for a root r.
type Forest struct {
	parent []int
	size   []int
	count  int // number of disjoint sets remaining
}
