package boundary

import "math"

// Unique step codes, one per possible elementary movement. The four
// straight codes are named by the movement direction, the diagonal
// codes by the pair of changed coordinates, the rotation codes by the
// old and new side.
const (
	StepYMinusCode = 0 // straight up (y−−), along XMinus
	StepXPlusCode  = 1 // straight right (x++), along YMinus
	StepYPlusCode  = 2 // straight down (y++), along XPlus
	StepXMinusCode = 3 // straight left (x−−), along YPlus

	StepXMinusYMinusCode = 4 // diagonal up-left, XMinus → YPlus
	StepXPlusYMinusCode  = 5 // diagonal up-right, YMinus → XMinus
	StepXPlusYPlusCode   = 6 // diagonal down-right, XPlus → YMinus
	StepXMinusYPlusCode  = 7 // diagonal down-left, YPlus → XPlus

	StepRotationXMinusToYMinusCode = 8
	StepRotationYMinusToXPlusCode  = 9
	StepRotationXPlusToYPlusCode   = 10
	StepRotationYPlusToXMinusCode  = 11
)

// Distances covered by a single step, measured between the centers of
// the visited pixels or boundary segments.
const (
	// DiagonalLength is the distance between pixel centers for a
	// diagonal step: √2.
	DiagonalLength = math.Sqrt2
	// HalfDiagonalLength is the distance between segment centers for a
	// diagonal step or a rotation around the same pixel: √2/2.
	HalfDiagonalLength = 0.5 * math.Sqrt2
)

// Step describes one elementary movement of the scanner: from one
// boundary segment to the next one. There are exactly 12 distinct
// steps, four straight, four diagonal and four rotations around the
// same pixel; all are immutable values from fixed tables.
type Step struct {
	code                         int
	pixelCenterDX, pixelCenterDY int
	oldSide, newSide             Side

	samePixel, straight, diagonal  bool
	segmentCenterDX                float64
	segmentCenterDY                float64
	pixelVertexX, pixelVertexY     float64
	pixelCenterDist, segCenterDist float64
}

// Per-side step tables, indexed by the side the scanner stands on
// before the step. Filled by init from the side geometry.
var (
	straightSteps [numSides]Step
	diagonalSteps [numSides]Step
	rotationSteps [numSides]Step
)

func init() {
	straightSteps[XMinus] = makeStep(StepYMinusCode, 0, -1, XMinus, XMinus)
	diagonalSteps[XMinus] = makeStep(StepXMinusYMinusCode, -1, -1, XMinus, YPlus)
	rotationSteps[XMinus] = makeStep(StepRotationXMinusToYMinusCode, 0, 0, XMinus, YMinus)

	straightSteps[YMinus] = makeStep(StepXPlusCode, 1, 0, YMinus, YMinus)
	diagonalSteps[YMinus] = makeStep(StepXPlusYMinusCode, 1, -1, YMinus, XMinus)
	rotationSteps[YMinus] = makeStep(StepRotationYMinusToXPlusCode, 0, 0, YMinus, XPlus)

	straightSteps[XPlus] = makeStep(StepYPlusCode, 0, 1, XPlus, XPlus)
	diagonalSteps[XPlus] = makeStep(StepXPlusYPlusCode, 1, 1, XPlus, YMinus)
	rotationSteps[XPlus] = makeStep(StepRotationXPlusToYPlusCode, 0, 0, XPlus, YPlus)

	straightSteps[YPlus] = makeStep(StepXMinusCode, -1, 0, YPlus, YPlus)
	diagonalSteps[YPlus] = makeStep(StepXMinusYPlusCode, -1, 1, YPlus, XPlus)
	rotationSteps[YPlus] = makeStep(StepRotationYPlusToXMinusCode, 0, 0, YPlus, XMinus)
}

// makeStep derives the geometric attributes of a step from its pixel
// center shift and the old/new side pair.
func makeStep(code, dx, dy int, oldSide, newSide Side) Step {
	st := Step{
		code:          code,
		pixelCenterDX: dx,
		pixelCenterDY: dy,
		oldSide:       oldSide,
		newSide:       newSide,
		samePixel:     dx == 0 && dy == 0,
		diagonal:      dx != 0 && dy != 0,
	}
	st.straight = !st.samePixel && !st.diagonal
	switch {
	case st.straight:
		st.segmentCenterDX = float64(dx)
		st.segmentCenterDY = float64(dy)
		st.pixelVertexX = straightVertex(dx, newSide.CenterX())
		st.pixelVertexY = straightVertex(dy, newSide.CenterY())
		st.pixelCenterDist = 1
		st.segCenterDist = 1
	case st.samePixel:
		st.segmentCenterDX = newSide.CenterX() - oldSide.CenterX()
		st.segmentCenterDY = newSide.CenterY() - oldSide.CenterY()
		if newSide.IsVertical() {
			st.pixelVertexX = newSide.CenterX()
			st.pixelVertexY = oldSide.CenterY()
		} else {
			st.pixelVertexX = oldSide.CenterX()
			st.pixelVertexY = newSide.CenterY()
		}
		st.pixelCenterDist = 0
		st.segCenterDist = HalfDiagonalLength
	default: // diagonal
		st.segmentCenterDX = 0.5 * float64(dx)
		st.segmentCenterDY = 0.5 * float64(dy)
		if newSide.IsVertical() {
			st.pixelVertexX = newSide.CenterX()
			st.pixelVertexY = -oldSide.CenterY()
		} else {
			st.pixelVertexX = -oldSide.CenterX()
			st.pixelVertexY = newSide.CenterY()
		}
		st.pixelCenterDist = DiagonalLength
		st.segCenterDist = HalfDiagonalLength
	}
	return st
}

func straightVertex(d int, center float64) float64 {
	switch d {
	case 0:
		return center
	case 1:
		return -0.5
	default:
		return 0.5
	}
}

// Code returns the unique step code, 0..11.
func (st Step) Code() int { return st.code }

// PixelCenterDX returns the x shift of the current pixel performed by
// this step: −1, 0 or 1.
func (st Step) PixelCenterDX() int { return st.pixelCenterDX }

// PixelCenterDY returns the y shift of the current pixel performed by
// this step: −1, 0 or 1.
func (st Step) PixelCenterDY() int { return st.pixelCenterDY }

// OldSide returns the side the scanner stood on before the step.
func (st Step) OldSide() Side { return st.oldSide }

// NewSide returns the side the scanner stands on after the step.
func (st Step) NewSide() Side { return st.newSide }

// SamePixel reports whether the step is a rotation around the same
// pixel (both pixel center shifts are zero).
func (st Step) SamePixel() bool { return st.samePixel }

// IsStraight reports whether exactly one pixel center shift is nonzero.
func (st Step) IsStraight() bool { return st.straight }

// IsDiagonal reports whether both pixel center shifts are nonzero.
func (st Step) IsDiagonal() bool { return st.diagonal }

// IsRotation reports whether the step rotates around the same pixel;
// identical to SamePixel.
func (st Step) IsRotation() bool { return st.samePixel }

// SegmentCenterDX returns the x shift of the boundary segment center
// performed by this step.
func (st Step) SegmentCenterDX() float64 { return st.segmentCenterDX }

// SegmentCenterDY returns the y shift of the boundary segment center
// performed by this step.
func (st Step) SegmentCenterDY() float64 { return st.segmentCenterDY }

// PixelVertexX returns the x coordinate, relative to the current pixel
// center, of the pixel vertex passed by this step. Together with
// PixelVertexY it always lies on the pixel corner grid:
// |PixelVertexX| + |PixelVertexY| = 1.
func (st Step) PixelVertexX() float64 { return st.pixelVertexX }

// PixelVertexY returns the y coordinate, relative to the current pixel
// center, of the pixel vertex passed by this step.
func (st Step) PixelVertexY() float64 { return st.pixelVertexY }

// DistanceBetweenPixelCenters returns the length of the step measured
// between pixel centers: 0 for rotations, 1 for straight steps,
// DiagonalLength for diagonal ones.
func (st Step) DistanceBetweenPixelCenters() float64 { return st.pixelCenterDist }

// DistanceBetweenSegmentCenters returns the length of the step measured
// between boundary segment centers: 1 for straight steps,
// HalfDiagonalLength for diagonal steps and rotations.
func (st Step) DistanceBetweenSegmentCenters() float64 { return st.segCenterDist }

// String returns a short human-readable description of the step.
func (st Step) String() string {
	switch {
	case st.samePixel:
		return "rotation " + st.oldSide.String() + "→" + st.newSide.String()
	case st.diagonal:
		return "diagonal step " + st.oldSide.String() + "→" + st.newSide.String()
	default:
		return "straight step along " + st.newSide.String()
	}
}
