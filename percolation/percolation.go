package percolation

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/n0bl3/sedgewick/unionfind"
)

// New returns an n×n Grid with every site closed.
// Returns ErrInvalidArgument if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidArgument, n)
	}
	sites := n * n
	perc, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}

	return &Grid{
		n:                 n,
		opened:            bitset.New(uint(sites)),
		percolationForest: perc,
		fullnessForest:    full,
	}, nil
}

// Size returns the grid side N.
func (g *Grid) Size() int {
	return g.n
}

// OpenSites returns the number of open sites.
func (g *Grid) OpenSites() int {
	return g.openCount
}

func (g *Grid) virtualTop() int {
	return g.n * g.n
}

func (g *Grid) virtualBottom() int {
	return g.n*g.n + 1
}

// Open opens site (row, col) and joins it to its open neighbors.
//
// Steps:
//  1. Validate the coordinate; return ErrIndexOutOfRange otherwise.
//  2. If the site is already open, return: its unions were done on first open.
//  3. Mark it open.
//  4. Row 1: union with the virtual top in both forests.
//  5. Row N: union with the virtual bottom in the percolation forest only.
//  6. Union with every open orthogonal neighbor in both forests.
//
// Complexity: O(log N) worst case, near O(1) amortized.
func (g *Grid) Open(row, col int) error {
	idx, err := siteIndex(g.n, row, col)
	if err != nil {
		return err
	}
	if g.opened.Test(uint(idx)) {
		return nil
	}
	g.opened.Set(uint(idx))
	g.openCount++

	if row == 1 {
		if err = g.link(idx, g.virtualTop()); err != nil {
			return err
		}
	}
	// Never in the fullness forest: that is what keeps IsFull free of backwash.
	if row == g.n {
		if err = g.percolationForest.Union(idx, g.virtualBottom()); err != nil {
			return err
		}
	}
	for _, nb := range neighbors(g.n, row, col) {
		nIdx := (nb.Row-1)*g.n + (nb.Col - 1)
		if !g.opened.Test(uint(nIdx)) {
			continue
		}
		if err = g.link(idx, nIdx); err != nil {
			return err
		}
	}

	return nil
}

// link unions p and q in both forests. q may be the virtual top, which both
// forests share at index N².
func (g *Grid) link(p, q int) error {
	if err := g.percolationForest.Union(p, q); err != nil {
		return err
	}

	return g.fullnessForest.Union(p, q)
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrIndexOutOfRange for coordinates outside the grid.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	idx, err := siteIndex(g.n, row, col)
	if err != nil {
		return false, err
	}

	return g.opened.Test(uint(idx)), nil
}

// IsFull reports whether site (row, col) is joined to the top row through
// open sites. A closed site is never full.
// Returns ErrIndexOutOfRange for coordinates outside the grid.
func (g *Grid) IsFull(row, col int) (bool, error) {
	idx, err := siteIndex(g.n, row, col)
	if err != nil {
		return false, err
	}
	if !g.opened.Test(uint(idx)) {
		return false, nil
	}

	return g.fullnessForest.Connected(idx, g.virtualTop())
}

// Percolates reports whether an open path joins the top and bottom rows.
// Once true it stays true, since sites are never closed.
func (g *Grid) Percolates() bool {
	ok, err := g.percolationForest.Connected(g.virtualTop(), g.virtualBottom())
	if err != nil {
		// Both virtual nodes exist for every valid Grid.
		return false
	}

	return ok
}

// OpenList returns the open sites in row-major order.
// Complexity: O(N²/64 + k) for k open sites.
func (g *Grid) OpenList() []Site {
	out := make([]Site, 0, g.openCount)
	for i, ok := g.opened.NextSet(0); ok; i, ok = g.opened.NextSet(i + 1) {
		out = append(out, siteAt(g.n, int(i)))
	}

	return out
}
