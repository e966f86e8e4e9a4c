package boundary

import "github.com/katalvlaran/gridtrace/connectivity"

// Scanner is the full observable and mutable contract of a boundary
// scanner. The three concrete scanners of this package implement it, as
// does Wrapper; custom decorators should accept and return this
// interface.
//
// A scanner is a state machine over the triple (X, Y, Side):
//
//	Unpositioned --GoTo/NextBoundary--> Positioned
//	Positioned   --Next-------------->  Positioned (one Step performed)
//	Positioned   --(back at start)--->  BoundaryFinished (Next is a no-op)
//
// Methods that require a position return ErrNotPositioned before the
// first successful GoTo or NextBoundary; LastStep and
// CoordinatesChanged return ErrNoSteps before the first Next after a
// reposition.
type Scanner interface {
	// Connectivity returns the connectivity kind the scanner traces
	// with.
	Connectivity() connectivity.Kind

	// IsSingleBoundaryScanner reports whether NextBoundary performs a
	// plain row-major segment search that may revisit boundaries.
	IsSingleBoundaryScanner() bool
	// IsAllBoundariesScanner reports whether NextBoundary enumerates
	// every boundary exactly once.
	IsAllBoundariesScanner() bool
	// IsMainBoundariesScanner reports whether NextBoundary enumerates
	// external boundaries only, skipping nested ones.
	IsMainBoundariesScanner() bool

	// IsInitialized reports whether the scanner has been positioned.
	IsInitialized() bool
	// MovedAlongBoundary reports whether at least one step has been
	// performed since the last positioning.
	MovedAlongBoundary() bool

	// X returns the x coordinate of the current pixel (0 when not
	// positioned).
	X() int
	// Y returns the y coordinate of the current pixel (0 when not
	// positioned).
	Y() int
	// Side returns the pixel side the scanner currently stands on
	// (XMinus when not positioned).
	Side() Side
	// CurrentIndex returns the row-major linear index of the current
	// pixel: Y()*Width + X().
	CurrentIndex() int
	// AtMatrixBoundary reports whether the current boundary segment
	// lies on the outer border of the matrix.
	AtMatrixBoundary() bool
	// NestingLevel returns the nesting depth of the current boundary.
	// Only the all-boundaries scanner maintains it; others return 0.
	NestingLevel() int
	// Get returns the matrix bit at the current position.
	Get() bool

	// GoTo positions the scanner at (x, y, side), resets the counters
	// and clears the moved-along-boundary state. Returns ErrOutOfBounds
	// or ErrUnknownSide on invalid arguments, leaving the state intact.
	GoTo(x, y int, side Side) error
	// GoToSamePosition positions the scanner at the current position of
	// another scanner. Returns ErrNotPositioned when other is not
	// positioned.
	GoToSamePosition(other Scanner) error
	// NextBoundary positions the scanner at the start of the next
	// boundary in row-major order and reports whether one was found.
	NextBoundary() (bool, error)
	// Next performs one elementary step along the current boundary.
	// Once BoundaryFinished reports true, Next is a no-op until the
	// scanner is repositioned.
	Next() error

	// LastStep returns the step performed by the most recent Next.
	LastStep() (Step, error)
	// CoordinatesChanged reports whether the most recent Next moved to
	// another pixel (false for rotations).
	CoordinatesChanged() (bool, error)
	// BoundaryFinished reports whether the scanner has returned to its
	// starting position after at least one step: the boundary has been
	// fully traced.
	BoundaryFinished() bool

	// StepCount returns the number of steps since the last counter
	// reset.
	StepCount() int64
	// DiagonalStepCount returns the number of diagonal steps since the
	// last counter reset.
	DiagonalStepCount() int64
	// RotationStepCount returns the number of rotations since the last
	// counter reset.
	RotationStepCount() int64
	// OrientedArea returns the oriented area enclosed by the traced
	// contour: positive when the boundary is external (passed
	// clockwise), negative when internal.
	OrientedArea() int64
	// ResetCounters zeroes StepCount, DiagonalStepCount,
	// RotationStepCount and OrientedArea.
	ResetCounters()
}

// StraightStepCount returns the number of straight steps of s since the
// last counter reset: StepCount − DiagonalStepCount − RotationStepCount.
func StraightStepCount(s Scanner) int64 {
	return s.StepCount() - s.DiagonalStepCount() - s.RotationStepCount()
}
