package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/n0bl3/sedgewick/percolation"
)

// randomSites returns k distinct sites of an n×n grid chosen with r.
func randomSites(r *rand.Rand, n, k int) []percolation.Site {
	perm := r.Perm(n * n)[:k]
	out := make([]percolation.Site, k)
	for i, idx := range perm {
		out[i] = percolation.Site{Row: idx/n + 1, Col: idx%n + 1}
	}
	return out
}

// snapshot captures every observable answer of g.
func snapshot(t *testing.T, g *percolation.Grid) (perc bool, open, full [][]bool) {
	t.Helper()
	n := g.Size()
	open = make([][]bool, n)
	full = make([][]bool, n)
	for r := 1; r <= n; r++ {
		open[r-1] = make([]bool, n)
		full[r-1] = make([]bool, n)
		for c := 1; c <= n; c++ {
			o, err := g.IsOpen(r, c)
			require.NoError(t, err)
			f, err := g.IsFull(r, c)
			require.NoError(t, err)
			open[r-1][c-1], full[r-1][c-1] = o, f
		}
	}
	return g.Percolates(), open, full
}

// TestIsFull_AgreesWithFlood checks after every Open that IsFull and
// Percolates agree with the breadth-first reference.
func TestIsFull_AgreesWithFlood(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(8)
		g, err := percolation.New(n)
		require.NoError(t, err)

		for _, site := range randomSites(r, n, n*n) {
			require.NoError(t, g.Open(site.Row, site.Col))
			perc, _, full := snapshot(t, g)
			require.Equal(t, g.FloodFull(), full, "n=%d after %v", n, site)
			require.Equal(t, g.FloodPercolates(), perc, "n=%d after %v", n, site)
		}
		require.True(t, g.Percolates())
	}
}

// TestOrderInvariance opens the same set of sites in several orders and
// expects identical final answers.
func TestOrderInvariance(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		n := 2 + r.Intn(7)
		sites := randomSites(r, n, r.Intn(n*n+1))

		var (
			wantPerc bool
			wantOpen [][]bool
			wantFull [][]bool
		)
		for order := 0; order < 4; order++ {
			r.Shuffle(len(sites), func(i, j int) { sites[i], sites[j] = sites[j], sites[i] })
			g, err := percolation.New(n)
			require.NoError(t, err)
			for _, site := range sites {
				require.NoError(t, g.Open(site.Row, site.Col))
			}
			perc, open, full := snapshot(t, g)
			if order == 0 {
				wantPerc, wantOpen, wantFull = perc, open, full
				continue
			}
			require.Equal(t, wantPerc, perc)
			require.Equal(t, wantOpen, open)
			require.Equal(t, wantFull, full)
		}
	}
}

// TestPercolationThresholdFraction opens random sites until the system
// percolates; the fraction must lie in (0, 1].
func TestPercolationThresholdFraction(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	const n = 20
	g, err := percolation.New(n)
	require.NoError(t, err)
	for _, site := range randomSites(r, n, n*n) {
		if g.Percolates() {
			break
		}
		require.NoError(t, g.Open(site.Row, site.Col))
	}
	require.True(t, g.Percolates())
	frac := float64(g.OpenSites()) / float64(n*n)
	require.Greater(t, frac, 0.0)
	require.LessOrEqual(t, frac, 1.0)
}
