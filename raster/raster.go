package raster

import (
	"context"
	"errors"
	"image"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/gridtrace/boundary"
)

// Sentinel errors for contour rasterization.
var (
	// ErrEmptyContour indicates a contour with fewer than three points.
	ErrEmptyContour = errors.New("raster: contour must have at least three points")
	// ErrBadBounds indicates non-positive mask dimensions.
	ErrBadBounds = errors.New("raster: mask dimensions must be positive")
)

// Point is one vertex of a contour polyline in pixel-center
// coordinates: pixel (x, y) has its center at (x, y).
type Point struct {
	X, Y float64
}

// Trace scans the current boundary of s to completion and returns the
// contour polyline in the given style, one point per step. The context
// is checked between steps.
//
// Returns boundary.ErrNotPositioned when s is not positioned and
// boundary.ErrUnknownContourLine for an undefined style.
func Trace(ctx context.Context, s boundary.Scanner, line boundary.ContourLine) ([]Point, error) {
	if !s.IsInitialized() {
		return nil, boundary.ErrNotPositioned
	}
	if !line.Valid() {
		return nil, boundary.ErrUnknownContourLine
	}
	points := make([]Point, 0, 16)
	for !s.BoundaryFinished() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.Next(); err != nil {
			return nil, err
		}
		x, y, err := line.Point(s)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

// Renderer rasterizes contour polylines into alpha coverage masks. The
// zero value is not usable; construct with NewRenderer. A Renderer is
// not safe for concurrent use.
type Renderer struct {
	ras *vector.Rasterizer
}

// NewRenderer returns an empty Renderer.
func NewRenderer() *Renderer {
	return &Renderer{ras: &vector.Rasterizer{}}
}

// Render fills the closed polygon described by points into a
// width×height alpha mask. Points are in pixel-center coordinates; the
// mask pixel (x, y) covers [x, x+1) × [y, y+1) in rasterizer space, so
// contour coordinates are shifted by +0.5 to align pixel centers with
// pixel middles.
//
// Returns ErrEmptyContour for degenerate contours and ErrBadBounds for
// non-positive dimensions.
func (r *Renderer) Render(points []Point, width, height int) (*image.Alpha, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadBounds
	}
	if len(points) < 3 {
		return nil, ErrEmptyContour
	}
	r.ras.Reset(width, height)
	r.ras.MoveTo(float32(points[0].X+0.5), float32(points[0].Y+0.5))
	for _, p := range points[1:] {
		r.ras.LineTo(float32(p.X+0.5), float32(p.Y+0.5))
	}
	r.ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	r.ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, nil
}
