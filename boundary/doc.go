// Package boundary traces the boundaries of connected unit-pixel
// regions in a 2D 0/1 matrix, one elementary movement at a time.
//
// A boundary is the closed chain of pixel sides separating unit pixels
// from zero pixels, passed in the clockwise order (x axis rightwards,
// y axis downwards). The scanner state is the triple (x, y, Side):
// the current pixel and the side the scanner stands on. Each call to
// Next performs exactly one Step — straight, diagonal or a rotation
// around the same pixel — chosen deterministically from the matrix
// content and the connectivity kind.
//
// Three scanner flavours share the same movement engine:
//
//   - SingleBoundaryScanner — traces whatever boundary the caller
//     positions it on; NextBoundary visits boundary segments in
//     natural row-major order, possibly revisiting boundaries.
//   - AllBoundariesScanner — enumerates every boundary exactly once,
//     external and internal, maintaining the nesting level; requires
//     two same-size writable buffer matrices.
//   - MainBoundariesScanner — external boundaries only, skipping
//     everything nested inside an already-traced boundary; requires
//     one buffer matrix.
//
// Along the trace the engine maintains step counters and the oriented
// area of the region (positive for external boundaries, negative for
// internal ones). ContourLine converts the per-step state into points
// of three contour styles and corrects area and perimeter per style.
//
// Wrapper is the decorator base: measurement logic hooks into
// ResetCounters and is notified on every reposition, without touching
// the scanning algorithm. ScanBoundary drives a whole boundary under a
// context.Context.
//
// All failures are reported with package sentinel errors (ErrNotPositioned,
// ErrNoSteps, ErrOutOfBounds, ...) matched with errors.Is.
package boundary
