// Package raster converts traced boundary contours into anti-aliased
// coverage masks.
//
// Trace walks a positioned boundary scanner to completion and collects
// the contour polyline in the requested style; Renderer rasterizes such
// polylines into *image.Alpha masks using golang.org/x/image/vector.
// A Renderer reuses its rasterizer between calls, so rendering many
// contours of similar size allocates little.
package raster
