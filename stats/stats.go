package stats

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/n0bl3/sedgewick/percolation"
)

// confidence95 is the z-score of a two-sided 95% interval.
const confidence95 = 1.96

// Result holds the per-trial thresholds of a Run.
type Result struct {
	N          int
	Trials     int
	Thresholds []float64 // Thresholds[t] is the open fraction at which trial t percolated
}

// Run performs trials independent experiments on an n×n grid.
//
// Steps:
//  1. Validate n >= 1, trials >= 1 and the options.
//  2. Start a worker group bounded by WithWorkers.
//  3. Each trial opens sites of a fresh Grid in a random permutation until it
//     percolates, and stores OpenSites()/n² in its slot.
//  4. Return the first error, including ctx.Err() if the context is done.
//
// Complexity: O(trials · n² log n) time, O(workers · n²) memory.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Result, error) {
	if n < 1 || trials < 1 {
		return nil, fmt.Errorf("%w: n=%d trials=%d", ErrInvalidArgument, n, trials)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	log := o.logger.With(zap.Int("n", n), zap.Int("trials", trials))
	log.Debug("starting percolation trials", zap.Int("workers", o.workers), zap.Int64("seed", o.seed))
	start := time.Now()

	res := &Result{N: n, Trials: trials, Thresholds: make([]float64, trials)}
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for t := 0; t < trials; t++ {
		t := t
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			g, err := runTrial(n, trialRNG(o.seed, t))
			if err != nil {
				return fmt.Errorf("trial %d: %w", t, err)
			}
			frac := float64(g.OpenSites()) / float64(n*n)
			res.Thresholds[t] = frac
			log.Debug("trial finished", zap.Int("trial", t), zap.Float64("threshold", frac))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn("percolation trials aborted", zap.Error(err))
		return nil, err
	}

	log.Info("percolation trials finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("mean", res.Mean()),
	)

	return res, nil
}

// Simulate replays trial t of a Run with the given seed and returns the
// grid at the moment it first percolated.
// Returns ErrInvalidArgument if n < 1 or t < 0.
func Simulate(n int, seed int64, t int) (*percolation.Grid, error) {
	if n < 1 || t < 0 {
		return nil, fmt.Errorf("%w: n=%d trial=%d", ErrInvalidArgument, n, t)
	}

	return runTrial(n, trialRNG(seed, t))
}

// runTrial opens sites of a new n×n grid in the order drawn from r until it
// percolates.
func runTrial(n int, r *rand.Rand) (*percolation.Grid, error) {
	g, err := percolation.New(n)
	if err != nil {
		return nil, err
	}
	for _, idx := range permutation(n*n, r) {
		if g.Percolates() {
			break
		}
		if err = g.Open(idx/n+1, idx%n+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Mean returns the sample mean of the thresholds.
func (r *Result) Mean() float64 {
	if len(r.Thresholds) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range r.Thresholds {
		sum += x
	}

	return sum / float64(len(r.Thresholds))
}

// Stddev returns the sample standard deviation of the thresholds.
// It is NaN for fewer than two trials.
func (r *Result) Stddev() float64 {
	k := len(r.Thresholds)
	if k < 2 {
		return math.NaN()
	}
	mu := r.Mean()
	var ss float64
	for _, x := range r.Thresholds {
		ss += (x - mu) * (x - mu)
	}

	return math.Sqrt(ss / float64(k-1))
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (r *Result) ConfidenceLo() float64 {
	return r.Mean() - r.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (r *Result) ConfidenceHi() float64 {
	return r.Mean() + r.halfWidth()
}

func (r *Result) halfWidth() float64 {
	return confidence95 * r.Stddev() / math.Sqrt(float64(len(r.Thresholds)))
}
