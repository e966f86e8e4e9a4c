package raster_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridtrace/bitmatrix"
	"github.com/katalvlaran/gridtrace/boundary"
	"github.com/katalvlaran/gridtrace/connectivity"
	"github.com/katalvlaran/gridtrace/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockScanner(t *testing.T) boundary.Scanner {
	t.Helper()
	m, err := bitmatrix.FromRows([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	s, err := boundary.NewSingleBoundaryScanner(m, connectivity.StraightOnly)
	require.NoError(t, err)
	require.NoError(t, s.GoTo(1, 1, boundary.XMinus))
	return s
}

func TestTrace(t *testing.T) {
	s := blockScanner(t)
	points, err := raster.Trace(context.Background(), s, boundary.StrictBoundary)
	require.NoError(t, err)

	assert.Len(t, points, 8, "one point per step")
	assert.Equal(t, raster.Point{X: 0.5, Y: 0.5}, points[0])
	assert.Equal(t, raster.Point{X: 0.5, Y: 1.5}, points[len(points)-1])
	assert.True(t, s.BoundaryFinished())
}

func TestTrace_Errors(t *testing.T) {
	m, err := bitmatrix.FromRows([][]int{{1}})
	require.NoError(t, err)
	s, err := boundary.NewSingleBoundaryScanner(m, connectivity.StraightOnly)
	require.NoError(t, err)

	_, err = raster.Trace(context.Background(), s, boundary.StrictBoundary)
	assert.ErrorIs(t, err, boundary.ErrNotPositioned)

	require.NoError(t, s.GoTo(0, 0, boundary.XMinus))
	_, err = raster.Trace(context.Background(), s, boundary.ContourLine(9))
	assert.ErrorIs(t, err, boundary.ErrUnknownContourLine)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = raster.Trace(ctx, s, boundary.StrictBoundary)
	assert.ErrorIs(t, err, context.Canceled)
}

// The strict contour of the 2x2 block fills exactly its four pixels in
// the rendered mask.
func TestRenderer_Render(t *testing.T) {
	s := blockScanner(t)
	points, err := raster.Trace(context.Background(), s, boundary.StrictBoundary)
	require.NoError(t, err)

	r := raster.NewRenderer()
	mask, err := r.Render(points, 4, 4)
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x <= 2 && y >= 1 && y <= 2
			a := mask.AlphaAt(x, y).A
			if inside {
				assert.Equal(t, uint8(255), a, "pixel (%d,%d) must be fully covered", x, y)
			} else {
				assert.Equal(t, uint8(0), a, "pixel (%d,%d) must stay empty", x, y)
			}
		}
	}
}

// A Renderer survives reuse across different mask sizes.
func TestRenderer_Reuse(t *testing.T) {
	s := blockScanner(t)
	points, err := raster.Trace(context.Background(), s, boundary.StrictBoundary)
	require.NoError(t, err)

	r := raster.NewRenderer()
	first, err := r.Render(points, 4, 4)
	require.NoError(t, err)
	second, err := r.Render(points, 8, 8)
	require.NoError(t, err)

	assert.Equal(t, first.AlphaAt(1, 1).A, second.AlphaAt(1, 1).A)
	assert.Equal(t, 8, second.Bounds().Dx())
}

func TestRenderer_Errors(t *testing.T) {
	r := raster.NewRenderer()

	_, err := r.Render(nil, 4, 4)
	assert.ErrorIs(t, err, raster.ErrEmptyContour)

	_, err = r.Render([]raster.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, 4, 4)
	assert.ErrorIs(t, err, raster.ErrEmptyContour)

	pts := []raster.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	_, err = r.Render(pts, 0, 4)
	assert.ErrorIs(t, err, raster.ErrBadBounds)
	_, err = r.Render(pts, 4, -1)
	assert.ErrorIs(t, err, raster.ErrBadBounds)
}
