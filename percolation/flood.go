package percolation

// FloodFull computes, for every site, whether it is full, by breadth-first
// search from the open sites of row 1 over open orthogonal neighbors.
// It never consults the union-find forests, so it serves as an independent
// reference for IsFull. full[r-1][c-1] holds the answer for site (r, c).
//
// Time:   O(N²).
// Memory: O(N²) for the result and the queue.
func (g *Grid) FloodFull() [][]bool {
	n := g.n
	full := make([][]bool, n)
	for r := range full {
		full[r] = make([]bool, n)
	}

	queue := make([]int, 0, n)
	for c := 1; c <= n; c++ {
		idx := c - 1
		if g.opened.Test(uint(idx)) {
			full[0][c-1] = true
			queue = append(queue, idx)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		s := siteAt(n, queue[qi])
		for _, nb := range neighbors(n, s.Row, s.Col) {
			if full[nb.Row-1][nb.Col-1] {
				continue
			}
			nIdx := (nb.Row-1)*n + (nb.Col - 1)
			if !g.opened.Test(uint(nIdx)) {
				continue
			}
			full[nb.Row-1][nb.Col-1] = true
			queue = append(queue, nIdx)
		}
	}

	return full
}

// FloodPercolates reports whether FloodFull reaches any bottom-row site.
func (g *Grid) FloodPercolates() bool {
	full := g.FloodFull()
	for _, ok := range full[g.n-1] {
		if ok {
			return true
		}
	}

	return false
}
