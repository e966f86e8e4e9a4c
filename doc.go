// Package gridtrace is an algorithmic kernel for tracing the boundaries
// of connected 0/1 regions ("objects") in a matrix and converting the
// traced boundaries into geometric contours usable for measurement
// (perimeter, area, projections).
//
// 🚀 What is gridtrace?
//
//	A small, deterministic, embeddable library that brings together:
//		• Connectivity models: straight (4-neighbour) and
//		  straight-and-diagonal (8-neighbour), generalized to n dimensions
//		• A stepwise boundary scanner: walks the edge of a region one
//		  pixel-side at a time, tracking orientation, nesting and counters
//		• Contour styles: strict pixel-edge polylines, pixel-center
//		  polylines and segment-center polylines
//		• A decorator layer: attach measurement logic to a scan without
//		  touching the scanning algorithm
//
// ✨ Why choose gridtrace?
//
//   - Deterministic – the same object traced twice yields byte-identical
//     step sequences, for both connectivity kinds
//   - Cooperative – whole-boundary scans are cancellable between steps
//   - Composable – scanners are an interface; decorators stack freely
//   - Pure Go – no cgo, minimal deps
//
// Everything is organized under four subpackages:
//
//	connectivity/ — neighbour-offset tables per dimensionality
//	bitmatrix/    — packed row-major 0/1 matrix storage
//	boundary/     — Side/Step types, scanners, wrapper, contour styles
//	raster/       — contour polyline rasterization to coverage masks
//
// Quick ASCII example:
//
//	    . X X .
//	    . X X .      the scanner starts at the left side of the top-left
//	    . . . .      X, walks clockwise and returns to its start
//
// Dive into the package docs and runnable examples for full usage.
package gridtrace
