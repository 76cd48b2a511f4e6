package percolation

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/n0bl3/sedgewick/unionfind"
)

// Site is a 1-indexed grid coordinate; Row 1 is the top row.
type Site struct {
	Row, Col int
}

// neighborOffsets lists the orthogonal moves: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an N×N percolation system.
// opened holds one bit per site in row-major order.
// percolationForest has N²+2 elements (sites, virtual top, virtual bottom);
// fullnessForest has N²+1 elements (sites, virtual top).
type Grid struct {
	n                 int
	opened            *bitset.BitSet
	openCount         int
	percolationForest *unionfind.Forest
	fullnessForest    *unionfind.Forest
}
