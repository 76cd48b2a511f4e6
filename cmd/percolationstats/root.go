package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/n0bl3/sedgewick/stats"
)

// rootOptions holds the command-line flags.
type rootOptions struct {
	Seed    int64
	Workers int
	Verbose bool
	Show    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "percolationstats <N> <T>",
		Short: "Estimate the percolation threshold of an N×N grid",
		Long: `Run T independent experiments on an N×N grid. Each experiment opens
random sites until the grid percolates and records the fraction of open
sites. The sample mean, standard deviation and 95% confidence interval of
those fractions are printed.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parsePositive("N", args[0])
			if err != nil {
				return err
			}
			trials, err := parsePositive("T", args[1])
			if err != nil {
				return err
			}
			return run(cmd, opts, n, trials)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "base random seed (0 selects the default seed)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "number of trials run concurrently")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log every trial")
	cmd.Flags().BoolVar(&opts.Show, "show", false, "print the grid of the first trial when it percolated")

	return cmd
}

func parsePositive(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s %d: must be at least 1", name, v)
	}

	return v, nil
}

// newLogger writes console-encoded logs to w; debug level when verbose,
// warnings and above otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

func run(cmd *cobra.Command, opts *rootOptions, n, trials int) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	defer func() { _ = logger.Sync() }()

	res, err := stats.Run(cmd.Context(), n, trials,
		stats.WithSeed(opts.Seed),
		stats.WithWorkers(opts.Workers),
		stats.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mean                    = %f\n", res.Mean())
	fmt.Fprintf(out, "stddev                  = %f\n", res.Stddev())
	fmt.Fprintf(out, "95%% confidence interval = [%f, %f]\n", res.ConfidenceLo(), res.ConfidenceHi())

	if opts.Show {
		g, err := stats.Simulate(n, opts.Seed, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\ntrial 0 percolated with %d/%d open sites:\n%s", g.OpenSites(), n*n, g)
	}

	return nil
}
