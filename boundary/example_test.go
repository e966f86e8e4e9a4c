package boundary_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridtrace/bitmatrix"
	"github.com/katalvlaran/gridtrace/boundary"
	"github.com/katalvlaran/gridtrace/connectivity"
)

// ExampleScanBoundary traces the boundary of a 2x2 block and reports
// the measurements of the traced contour.
func ExampleScanBoundary() {
	m, _ := bitmatrix.FromRows([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	s, _ := boundary.NewSingleBoundaryScanner(m, connectivity.StraightOnly)
	_ = s.GoTo(1, 1, boundary.XMinus)

	steps, _ := boundary.ScanBoundary(context.Background(), s)
	area, _ := boundary.StrictBoundary.OrientedArea(s)
	perim, _ := boundary.StrictBoundary.Perimeter(s)

	fmt.Println("steps:", steps)
	fmt.Println("area:", area)
	fmt.Println("perimeter:", perim)

	// Output:
	// steps: 8
	// area: 4
	// perimeter: 8
}

// ExampleAllBoundariesScanner enumerates every boundary of a ring with
// a hole, printing the nesting level and oriented area of each.
func ExampleAllBoundariesScanner() {
	m, _ := bitmatrix.FromRows([][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	})
	buf1, _ := bitmatrix.New(m.Width(), m.Height())
	buf2, _ := bitmatrix.New(m.Width(), m.Height())
	s, _ := boundary.NewAllBoundariesScanner(m, buf1, buf2, connectivity.StraightOnly)

	for {
		found, _ := s.NextBoundary()
		if !found {
			break
		}
		_, _ = boundary.ScanBoundary(context.Background(), s)
		fmt.Printf("nesting %d: area %d\n", s.NestingLevel(), s.OrientedArea())
	}

	// Output:
	// nesting 1: area 9
	// nesting 2: area -1
}
