package similarity_test

import (
	"fmt"

	"github.com/cwbudde/algo-vibspec/measure/similarity"
)

func ExampleOverlap() {
	x := []float64{0, 1, 2, 3, 4}
	a := []float64{0, 1, 0, -1, 0}
	b := []float64{0, 1, 0, 1, 0}

	self, _ := similarity.Overlap(x, a, a)
	cross, _ := similarity.Overlap(x, a, b)
	fmt.Printf("%.2f %.2f\n", self, cross)
	// Output:
	// 1.00 0.00
}

func ExampleSignMismatches() {
	n, _ := similarity.SignMismatches([]float64{1, -1, 0.5}, []float64{1, 1, -0.5})
	fmt.Println(n)
	// Output:
	// 2
}
