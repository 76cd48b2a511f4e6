// Package stats estimates the percolation threshold of an N×N system by
// Monte Carlo simulation.
//
// Each trial creates a fresh percolation.Grid, opens its sites in a random
// order (never the same site twice) until the system percolates, and records
// the fraction of open sites. Result aggregates the trials into a sample
// mean, sample standard deviation and 95% confidence interval.
//
// Determinism:
//
//	Trial t draws from its own RNG stream, derived from the base seed and t.
//	For a fixed seed the thresholds are identical regardless of how many
//	workers run the trials.
//
// Concurrency:
//
//	Trials run on a bounded pool of goroutines (WithWorkers). Every trial
//	owns its Grid and RNG, so nothing is shared between workers except the
//	result slot it writes.
package stats
