package boundary_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridtrace/bitmatrix"
	"github.com/katalvlaran/gridtrace/boundary"
	"github.com/katalvlaran/gridtrace/connectivity"
)

// benchMatrix builds a size×size matrix with one centered square
// object occupying half the matrix in each dimension.
func benchMatrix(b *testing.B, size int) *bitmatrix.Matrix {
	b.Helper()
	m, err := bitmatrix.New(size, size)
	if err != nil {
		b.Fatal(err)
	}
	for y := size / 4; y < 3*size/4; y++ {
		for x := size / 4; x < 3*size/4; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

func BenchmarkScanBoundary_Straight(b *testing.B) {
	m := benchMatrix(b, 512)
	s, err := boundary.NewSingleBoundaryScanner(m, connectivity.StraightOnly)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.GoTo(128, 128, boundary.XMinus); err != nil {
			b.Fatal(err)
		}
		if _, err := boundary.ScanBoundary(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanBoundary_Diagonal(b *testing.B) {
	m := benchMatrix(b, 512)
	s, err := boundary.NewSingleBoundaryScanner(m, connectivity.StraightAndDiagonal)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.GoTo(128, 128, boundary.XMinus); err != nil {
			b.Fatal(err)
		}
		if _, err := boundary.ScanBoundary(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNextBoundary_All(b *testing.B) {
	m := benchMatrix(b, 256)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		buf1, _ := bitmatrix.New(m.Width(), m.Height())
		buf2, _ := bitmatrix.New(m.Width(), m.Height())
		s, err := boundary.NewAllBoundariesScanner(m, buf1, buf2, connectivity.StraightOnly)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		for {
			found, err := s.NextBoundary()
			if err != nil {
				b.Fatal(err)
			}
			if !found {
				break
			}
			if _, err := boundary.ScanBoundary(ctx, s); err != nil {
				b.Fatal(err)
			}
		}
	}
}
