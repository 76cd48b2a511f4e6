// Package percolation models a porous medium as an N×N lattice of sites and
// answers connectivity questions about it in near-constant amortized time.
//
// What:
//
//   - Grid holds N×N sites, each blocked (closed) or open; sites only ever
//     transition closed → open.
//   - Percolates reports whether an open path joins the top row to the
//     bottom row.
//   - IsFull reports whether an open site is joined to the top row.
//   - FloodFull recomputes fullness by breadth-first search, without the
//     union-find forests, and String renders the grid as ASCII.
//
// How:
//
//	Two unionfind.Forest instances are kept in step. The percolation forest
//	holds N² sites plus a virtual top and a virtual bottom node, so
//	Percolates is a single Connected(top, bottom) query. The fullness forest
//	holds the sites plus the virtual top only: with a virtual bottom, an
//	isolated bottom-row site would look full through any percolating path
//	("backwash").
//
//	  virtual top ── row 1 ── … ── row N ── virtual bottom (percolation only)
//
// Coordinates:
//
//	Sites are addressed by 1-indexed (row, col), row 1 being the top.
//	Site (row, col) is stored at row-major index (row-1)*N + (col-1).
//
// Complexity:
//
//   - New:                    O(N²) time and memory.
//   - Open, IsFull:           O(log N) worst case, near O(1) amortized.
//   - IsOpen, Percolates:     O(1) / near O(1) amortized.
//   - FloodFull, String:      O(N²).
//
// Errors:
//
//   - ErrInvalidArgument: N < 1.
//   - ErrIndexOutOfRange: row or col outside [1, N].
//
// A Grid is not safe for concurrent use; guard it externally if shared.
package percolation
