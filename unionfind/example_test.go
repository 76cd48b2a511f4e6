package unionfind_test

import (
	"fmt"

	"github.com/n0bl3/sedgewick/unionfind"
)

// ExampleForest_Union merges a few pairs and queries connectivity.
func ExampleForest_Union() {
	f, _ := unionfind.New(6)
	_ = f.Union(0, 1)
	_ = f.Union(1, 2)
	_ = f.Union(4, 5)

	a, _ := f.Connected(0, 2)
	b, _ := f.Connected(2, 4)
	fmt.Println("0~2:", a)
	fmt.Println("2~4:", b)
	fmt.Println("sets:", f.Count())

	// Output:
	// 0~2: true
	// 2~4: false
	// sets: 3
}
