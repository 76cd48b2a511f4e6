package unionfind

import "fmt"

// New returns a Forest of n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidArgument if n <= 0.
// Complexity: O(n) time and memory.
func New(n int) (*Forest, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidArgument, n)
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Len returns the capacity n the forest was built with.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Count returns the number of disjoint sets.
func (f *Forest) Count() int {
	return f.count
}

// Find returns the root of the tree containing i.
// Returns ErrIndexOutOfRange if i is outside [0, n).
// Complexity: O(log n) worst case; path halving keeps it near O(1) amortized.
func (f *Forest) Find(i int) (int, error) {
	if err := f.validate(i); err != nil {
		return 0, err
	}

	return f.root(i), nil
}

// Connected reports whether p and q belong to the same set.
func (f *Forest) Connected(p, q int) (bool, error) {
	if err := f.validate(p); err != nil {
		return false, err
	}
	if err := f.validate(q); err != nil {
		return false, err
	}

	return f.root(p) == f.root(q), nil
}

// Union merges the sets containing p and q.
//
// Steps:
//  1. Find both roots; if they are equal the call is a no-op.
//  2. Attach the root of the smaller tree under the root of the larger tree,
//     which accumulates the combined size.
//  3. On equal sizes q's root goes under p's root.
//
// Complexity: same as Find.
func (f *Forest) Union(p, q int) error {
	if err := f.validate(p); err != nil {
		return err
	}
	if err := f.validate(q); err != nil {
		return err
	}

	rootP, rootQ := f.root(p), f.root(q)
	if rootP == rootQ {
		return nil
	}
	if f.size[rootP] < f.size[rootQ] {
		f.parent[rootP] = rootQ
		f.size[rootQ] += f.size[rootP]
	} else {
		f.parent[rootQ] = rootP
		f.size[rootP] += f.size[rootQ]
	}
	f.count--

	return nil
}

// SizeOf returns the number of elements in the set containing i.
func (f *Forest) SizeOf(i int) (int, error) {
	if err := f.validate(i); err != nil {
		return 0, err
	}

	return f.size[f.root(i)], nil
}

// root walks to the root of i, pointing every other node on the path at its
// grandparent. i must already be validated.
func (f *Forest) root(i int) int {
	for f.parent[i] != i {
		f.parent[i] = f.parent[f.parent[i]]
		i = f.parent[i]
	}

	return i
}

func (f *Forest) validate(i int) error {
	if i < 0 || i >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(f.parent))
	}

	return nil
}
