package stats

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// ErrInvalidArgument indicates a non-positive grid size, trial count or
// worker count.
var ErrInvalidArgument = errors.New("stats: invalid argument")

// Option configures a Run.
type Option func(*options)

type options struct {
	seed    int64
	workers int
	logger  *zap.Logger
}

// defaultOptions returns seed 0 (the default stream), one worker per CPU and
// a no-op logger.
func defaultOptions() options {
	return options{
		seed:    0,
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
}

// WithSeed sets the base seed. Seed 0 selects a fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithWorkers bounds the number of trials run concurrently.
// Values below 1 make Run fail with ErrInvalidArgument.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger routes progress logging to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o options) validate() error {
	if o.workers < 1 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidArgument, o.workers)
	}

	return nil
}
