package boundary

import "errors"

// Sentinel errors for boundary scanning.
var (
	// ErrNilMatrix indicates a nil matrix or buffer argument.
	ErrNilMatrix = errors.New("boundary: nil matrix or buffer")
	// ErrNilScanner indicates a nil parent scanner argument.
	ErrNilScanner = errors.New("boundary: nil parent scanner")
	// ErrDimensionMismatch indicates a buffer whose dimensions differ
	// from the scanned matrix.
	ErrDimensionMismatch = errors.New("boundary: buffer dimensions must equal matrix dimensions")
	// ErrOutOfBounds indicates a position outside the matrix.
	ErrOutOfBounds = errors.New("boundary: position outside the matrix")
	// ErrNotPositioned indicates an operation that requires the scanner
	// to be positioned by GoTo or NextBoundary first.
	ErrNotPositioned = errors.New("boundary: scanner is not positioned yet")
	// ErrNoSteps indicates an operation that requires at least one
	// performed step since the last repositioning.
	ErrNoSteps = errors.New("boundary: scanner has not performed any steps yet")
	// ErrUnknownSide indicates a Side value outside the defined set.
	ErrUnknownSide = errors.New("boundary: unknown pixel side")
	// ErrUnknownContourLine indicates a ContourLine value outside the
	// defined set.
	ErrUnknownContourLine = errors.New("boundary: unknown contour line style")
)
