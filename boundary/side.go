package boundary

// Side identifies one of the four sides of a square pixel. While
// scanning, the scanner always stands on a side so that the unit pixel
// is on the inner side of the boundary; the boundary is passed in the
// clockwise order when the x axis is directed rightwards and the
// y axis downwards.
type Side int

const (
	// XMinus is the left side: the vertical segment of the pixel with
	// the lesser x coordinate. Traversal direction: upwards (y−−).
	XMinus Side = iota
	// YMinus is the top side: the horizontal segment of the pixel with
	// the lesser y coordinate. Traversal direction: rightwards (x++).
	YMinus
	// XPlus is the right side: the vertical segment of the pixel with
	// the greater x coordinate. Traversal direction: downwards (y++).
	XPlus
	// YPlus is the bottom side: the horizontal segment of the pixel
	// with the greater y coordinate. Traversal direction: leftwards (x−−).
	YPlus

	numSides = 4
)

// sideData holds the immutable per-side geometry:
//   - dxAlong/dyAlong: the side as an oriented segment in clockwise
//     traversal order
//   - centerX/centerY: the midpoint of the side relative to the pixel
//     center
//   - fdx/fdy, odx/ody: the forward (traversal) and outward (away from
//     the object) unit vectors used by the movement engine
var sideData = [numSides]struct {
	vertical         bool
	dxAlong, dyAlong int
	centerX, centerY float64
	fdx, fdy         int
	odx, ody         int
}{
	XMinus: {vertical: true, dxAlong: 0, dyAlong: -1, centerX: -0.5, centerY: 0, fdx: 0, fdy: -1, odx: -1, ody: 0},
	YMinus: {vertical: false, dxAlong: 1, dyAlong: 0, centerX: 0, centerY: -0.5, fdx: 1, fdy: 0, odx: 0, ody: -1},
	XPlus:  {vertical: true, dxAlong: 0, dyAlong: 1, centerX: 0.5, centerY: 0, fdx: 0, fdy: 1, odx: 1, ody: 0},
	YPlus:  {vertical: false, dxAlong: -1, dyAlong: 0, centerX: 0, centerY: 0.5, fdx: -1, fdy: 0, odx: 0, ody: 1},
}

// Valid reports whether s is one of the four defined sides.
func (s Side) Valid() bool { return s >= XMinus && s < numSides }

// IsVertical reports whether the side is vertical (XMinus or XPlus).
func (s Side) IsVertical() bool { return sideData[s].vertical }

// IsHorizontal reports whether the side is horizontal (YMinus or YPlus).
func (s Side) IsHorizontal() bool { return !sideData[s].vertical }

// DXAlong returns the x projection of the side as an oriented segment
// in clockwise traversal order: +1 for YMinus, −1 for YPlus, 0 for the
// vertical sides.
func (s Side) DXAlong() int { return sideData[s].dxAlong }

// DYAlong returns the y projection of the side as an oriented segment
// in clockwise traversal order: −1 for XMinus, +1 for XPlus, 0 for the
// horizontal sides.
func (s Side) DYAlong() int { return sideData[s].dyAlong }

// CenterX returns the x coordinate of the side midpoint relative to
// the pixel center: −0.5 for XMinus, +0.5 for XPlus, 0 otherwise.
func (s Side) CenterX() float64 { return sideData[s].centerX }

// CenterY returns the y coordinate of the side midpoint relative to
// the pixel center: −0.5 for YMinus, +0.5 for YPlus, 0 otherwise.
func (s Side) CenterY() float64 { return sideData[s].centerY }

// String returns the name of the side.
func (s Side) String() string {
	switch s {
	case XMinus:
		return "XMinus"
	case YMinus:
		return "YMinus"
	case XPlus:
		return "XPlus"
	case YPlus:
		return "YPlus"
	default:
		return "Side(unknown)"
	}
}
