// Command percolationstats estimates the percolation threshold of an N×N
// grid by running T Monte Carlo trials.
//
//	percolationstats 200 100
//	percolationstats --seed 7 --workers 4 --show 20 30
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
