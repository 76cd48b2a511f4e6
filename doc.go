// Package sedgewick is a percolation toolkit: a union-find backed
// connectivity engine for N×N grids and a Monte Carlo estimator of the
// percolation threshold built on top of it.
//
// Packages:
//
//	unionfind/             — weighted quick-union forest over [0, n)
//	percolation/           — N×N grid: Open, IsOpen, IsFull, Percolates (backwash-free)
//	stats/                 — parallel, seeded Monte Carlo threshold estimation
//	cmd/percolationstats/  — command-line front-end for stats
//
// Quick ASCII example ('*' full, 'o' open, '#' closed):
//
//	* # #
//	* # #
//	* # o
//
// percolates through column 1, while the open site at (3,3) stays empty:
// it touches the bottom row but has no open path to the top.
package sedgewick
