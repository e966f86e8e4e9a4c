package connectivity_test

import (
	"fmt"

	"github.com/katalvlaran/gridtrace/connectivity"
)

// ExampleKind_ApertureShifts demonstrates the canonical neighbour-offset
// tables for a 2D matrix under both connectivity kinds.
func ExampleKind_ApertureShifts() {
	straight, _ := connectivity.StraightOnly.ApertureShifts(2)
	fmt.Println("straight:", straight)

	diagonal, _ := connectivity.StraightAndDiagonal.ApertureShifts(2)
	fmt.Println("diagonal:", diagonal)

	n, _ := connectivity.StraightAndDiagonal.NumberOfNeighbours(3)
	fmt.Println("3D diagonal neighbours:", n)

	// Output:
	// straight: [[1 0] [-1 0] [0 1] [0 -1]]
	// diagonal: [[-1 -1] [-1 0] [-1 1] [0 -1] [0 1] [1 -1] [1 0] [1 1]]
	// 3D diagonal neighbours: 26
}
