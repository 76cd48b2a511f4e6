package percolation

import "strings"

// Glyphs used by String.
const (
	glyphClosed = '#'
	glyphOpen   = 'o'
	glyphFull   = '*'
)

// String renders the grid one row per line, top row first, sites separated
// by a space: '#' closed, 'o' open, '*' full.
//
//	* # #
//	* # #
//	* # o
//
// Complexity: O(N²).
func (g *Grid) String() string {
	full := g.FloodFull()
	var sb strings.Builder
	sb.Grow(g.n * g.n * 2)
	for r := 1; r <= g.n; r++ {
		for c := 1; c <= g.n; c++ {
			if c > 1 {
				sb.WriteByte(' ')
			}
			idx := (r-1)*g.n + (c - 1)
			switch {
			case full[r-1][c-1]:
				sb.WriteByte(glyphFull)
			case g.opened.Test(uint(idx)):
				sb.WriteByte(glyphOpen)
			default:
				sb.WriteByte(glyphClosed)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
