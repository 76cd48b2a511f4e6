package percolation

import "fmt"

// inBounds reports whether (row, col) lies within [1, n]×[1, n].
// Complexity: O(1).
func inBounds(n, row, col int) bool {
	return row >= 1 && row <= n && col >= 1 && col <= n
}

// siteIndex maps (row, col) to its row-major index (row-1)*n + (col-1).
// Returns ErrIndexOutOfRange for coordinates outside the grid.
// Complexity: O(1).
func siteIndex(n, row, col int) (int, error) {
	if !inBounds(n, row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) not in [1, %d]×[1, %d]", ErrIndexOutOfRange, row, col, n, n)
	}

	return (row-1)*n + (col - 1), nil
}

// siteAt converts a row-major index back to its 1-indexed coordinate.
func siteAt(n, idx int) Site {
	return Site{Row: idx/n + 1, Col: idx%n + 1}
}

// neighbors returns the in-bounds orthogonal neighbors of (row, col).
// Complexity: O(1).
func neighbors(n, row, col int) []Site {
	out := make([]Site, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if inBounds(n, r, c) {
			out = append(out, Site{Row: r, Col: c})
		}
	}

	return out
}
