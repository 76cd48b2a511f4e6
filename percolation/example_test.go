package percolation_test

import (
	"fmt"

	"github.com/n0bl3/sedgewick/percolation"
)

// ExampleGrid_IsFull shows that an isolated bottom-row site stays empty
// while a neighbouring column percolates.
func ExampleGrid_IsFull() {
	g, _ := percolation.New(3)
	for _, s := range []percolation.Site{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 3}} {
		_ = g.Open(s.Row, s.Col)
	}

	full, _ := g.IsFull(3, 3)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("(3,3) full:", full)
	fmt.Print(g)

	// Output:
	// percolates: true
	// (3,3) full: false
	// * # #
	// * # #
	// * # o
}
