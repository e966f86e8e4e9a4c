package boundary

import "github.com/katalvlaran/gridtrace/connectivity"

// tracer is the movement engine shared by the three concrete scanners.
// It owns the (x, y, side) state, the step counters and the oriented
// area, and implements every Scanner method except the per-flavour
// Next, NextBoundary and the three Is*Scanner flags.
type tracer struct {
	m          Bitmap
	kind       connectivity.Kind
	dimX, dimY int

	x, y    int
	curSide Side

	startX, startY int
	startSide      Side

	initialized bool
	moved       bool
	hasStep     bool
	last        Step

	stepCount         int64
	diagonalStepCount int64
	rotationStepCount int64
	orientedArea      int64
}

func newTracer(m Bitmap, kind connectivity.Kind) (tracer, error) {
	if m == nil {
		return tracer{}, ErrNilMatrix
	}
	if !kind.Valid() {
		return tracer{}, connectivity.ErrUnknownKind
	}
	return tracer{m: m, kind: kind, dimX: m.Width(), dimY: m.Height()}, nil
}

func (t *tracer) Connectivity() connectivity.Kind { return t.kind }
func (t *tracer) IsInitialized() bool             { return t.initialized }
func (t *tracer) MovedAlongBoundary() bool        { return t.moved }
func (t *tracer) X() int                          { return t.x }
func (t *tracer) Y() int                          { return t.y }
func (t *tracer) Side() Side                      { return t.curSide }
func (t *tracer) CurrentIndex() int               { return t.y*t.dimX + t.x }

// NestingLevel is 0 for every scanner except the all-boundaries one,
// which shadows this method.
func (t *tracer) NestingLevel() int { return 0 }

// Get returns the matrix bit at the current position.
func (t *tracer) Get() bool { return t.m.Get(t.x, t.y) }

// AtMatrixBoundary reports whether the current segment lies on the
// outer border of the matrix. Computed from the position on demand.
func (t *tracer) AtMatrixBoundary() bool {
	if !t.initialized {
		return false
	}
	switch t.curSide {
	case XMinus:
		return t.x == 0
	case YMinus:
		return t.y == 0
	case XPlus:
		return t.x == t.dimX-1
	default:
		return t.y == t.dimY-1
	}
}

// GoTo positions the scanner. On success it also resets the counters
// and the moved/last-step state; on error the state is untouched.
func (t *tracer) GoTo(x, y int, side Side) error {
	if x < 0 || x >= t.dimX || y < 0 || y >= t.dimY {
		return ErrOutOfBounds
	}
	if !side.Valid() {
		return ErrUnknownSide
	}
	t.position(x, y, side)
	return nil
}

// GoToSamePosition positions the scanner at the current position of
// another scanner.
func (t *tracer) GoToSamePosition(other Scanner) error {
	if !other.IsInitialized() {
		return ErrNotPositioned
	}
	return t.GoTo(other.X(), other.Y(), other.Side())
}

// position is GoTo without argument validation, for internal callers
// that compute in-range coordinates themselves.
func (t *tracer) position(x, y int, side Side) {
	t.x, t.startX = x, x
	t.y, t.startY = y, y
	t.curSide, t.startSide = side, side
	t.initialized = true
	t.moved = false
	t.hasStep = false
	t.ResetCounters()
}

func (t *tracer) LastStep() (Step, error) {
	if !t.hasStep {
		return Step{}, ErrNoSteps
	}
	return t.last, nil
}

func (t *tracer) CoordinatesChanged() (bool, error) {
	if !t.hasStep {
		return false, ErrNoSteps
	}
	return !t.last.SamePixel(), nil
}

// BoundaryFinished reports a completed trace: back at the starting
// (x, y, side) after at least one step.
func (t *tracer) BoundaryFinished() bool {
	return t.moved && t.x == t.startX && t.y == t.startY && t.curSide == t.startSide
}

func (t *tracer) StepCount() int64         { return t.stepCount }
func (t *tracer) DiagonalStepCount() int64 { return t.diagonalStepCount }
func (t *tracer) RotationStepCount() int64 { return t.rotationStepCount }
func (t *tracer) OrientedArea() int64      { return t.orientedArea }

func (t *tracer) ResetCounters() {
	t.stepCount = 0
	t.diagonalStepCount = 0
	t.rotationStepCount = 0
	t.orientedArea = 0
}

// get reads the matrix bit, treating everything outside the matrix as
// zero background.
func (t *tracer) get(x, y int) bool {
	return x >= 0 && x < t.dimX && y >= 0 && y < t.dimY && t.m.Get(x, y)
}

// advance performs one elementary step and reports whether a step was
// actually taken: a finished boundary is a terminal no-op until the
// scanner is repositioned.
func (t *tracer) advance() (bool, error) {
	if !t.initialized {
		return false, ErrNotPositioned
	}
	if t.BoundaryFinished() {
		return false, nil
	}
	var st Step
	if t.kind == connectivity.StraightAndDiagonal {
		st = t.probe8()
	} else {
		st = t.probe4()
	}
	t.curSide = st.NewSide()
	t.last = st
	t.hasStep = true
	t.moved = true
	t.stepCount++
	switch {
	case st.IsDiagonal():
		t.diagonalStepCount++
	case st.IsRotation():
		t.rotationStepCount++
	}
	// Trapezoid update of the oriented area: vertical segments sweep
	// the region between the segment and the y axis.
	switch t.curSide {
	case XMinus:
		t.orientedArea -= int64(t.x) - 1
	case XPlus:
		t.orientedArea += int64(t.x)
	}
	return true, nil
}

// probe4 picks the next step under straight-only connectivity:
// the forward pixel decides between a move and a rotation, and the
// forward+outward pixel upgrades the move to a diagonal one (two
// straight-connected region pixels touching at a corner).
func (t *tracer) probe4() Step {
	g := &sideData[t.curSide]
	fx, fy := t.x+g.fdx, t.y+g.fdy
	if !t.get(fx, fy) {
		return rotationSteps[t.curSide]
	}
	if t.get(fx+g.odx, fy+g.ody) {
		t.x, t.y = fx+g.odx, fy+g.ody
		return diagonalSteps[t.curSide]
	}
	t.x, t.y = fx, fy
	return straightSteps[t.curSide]
}

// probe8 picks the next step under straight-and-diagonal connectivity:
// the diagonal pixel is preferred, then the forward one, otherwise the
// scanner rotates in place.
func (t *tracer) probe8() Step {
	g := &sideData[t.curSide]
	dx, dy := t.x+g.fdx+g.odx, t.y+g.fdy+g.ody
	if t.get(dx, dy) {
		t.x, t.y = dx, dy
		return diagonalSteps[t.curSide]
	}
	fx, fy := t.x+g.fdx, t.y+g.fdy
	if t.get(fx, fy) {
		t.x, t.y = fx, fy
		return straightSteps[t.curSide]
	}
	return rotationSteps[t.curSide]
}

// nextSingleBoundary positions the scanner at the nearest boundary
// segment in natural row-major order: the left (XMinus) side of the
// first unit pixel of a run, or the right (XPlus) side after its last
// unit pixel. Reports whether a position was found.
func (t *tracer) nextSingleBoundary() bool {
	n := t.dimX * t.dimY
	if n == 0 {
		return false
	}
	index := t.CurrentIndex()
	if !t.m.Get(t.x, t.y) {
		return t.goToNextUnitBit(index + 1)
	}
	if !t.initialized {
		// Unpositioned scanner standing on a unit bit at (0,0).
		t.position(0, 0, XMinus)
		return true
	}
	// Find the end of the current run of unit bits within the row.
	rowEnd := index + t.dimX - t.x
	var run int
	if i := nextZeroIn(t.m, index+1, rowEnd); i == -1 {
		run = t.dimX - t.x - 1
	} else {
		run = i - (index + 1)
	}
	if run == 0 {
		// The current pixel is the last unit of its run.
		if t.curSide != XPlus {
			t.position(t.x, t.y, XPlus)
			return true
		}
		return t.goToNextUnitBit(index + 1)
	}
	t.position(t.x+run, t.y, XPlus)
	return true
}

// goToNextUnitBit positions the scanner at the XMinus side of the first
// unit bit at or after the given linear index.
func (t *tracer) goToNextUnitBit(from int) bool {
	i := nextUnitIn(t.m, from, t.dimX*t.dimY)
	if i == -1 {
		return false
	}
	t.position(i%t.dimX, i/t.dimX, XMinus)
	return true
}

// bracket reads the horizontal bracket bit of buf for the current
// position: at the pixel itself on XMinus sides, right after the pixel
// on XPlus sides. Horizontal sides carry no brackets.
func (t *tracer) bracket(buf MutableBitmap) bool {
	switch t.curSide {
	case XMinus:
		return buf.Get(t.x, t.y)
	case XPlus:
		return t.x < t.dimX-1 && buf.Get(t.x+1, t.y)
	default:
		return false
	}
}

// setBracket writes the horizontal bracket bit of buf for the current
// position.
func (t *tracer) setBracket(buf MutableBitmap) {
	switch t.curSide {
	case XMinus:
		buf.Set(t.x, t.y, true)
	case XPlus:
		if t.x < t.dimX-1 {
			buf.Set(t.x+1, t.y, true)
		}
	}
}
