package boundary

// ContourLine selects the geometric style of the contour built from a
// traced boundary. The set is closed: operations return
// ErrUnknownContourLine for any other value, so callers switching on
// the style get an explicit failure instead of silent garbage when a
// new style appears.
type ContourLine int

const (
	// StrictBoundary is the exact polygon of pixel edges: the contour
	// passes through pixel vertices, area and perimeter are exact for
	// the pixelated region.
	StrictBoundary ContourLine = iota
	// PixelCentersPolyline connects the centers of the visited pixels;
	// rotations around one pixel contribute nothing.
	PixelCentersPolyline
	// SegmentCentersPolyline connects the midpoints of the visited
	// boundary segments; a smoother contour that cuts pixel corners.
	SegmentCentersPolyline

	numContourLines = 3
)

// Valid reports whether c is one of the defined contour styles.
func (c ContourLine) Valid() bool { return c >= StrictBoundary && c < numContourLines }

// String returns the name of the contour style.
func (c ContourLine) String() string {
	switch c {
	case StrictBoundary:
		return "StrictBoundary"
	case PixelCentersPolyline:
		return "PixelCentersPolyline"
	case SegmentCentersPolyline:
		return "SegmentCentersPolyline"
	default:
		return "ContourLine(unknown)"
	}
}

// Point returns the current contour point of s in this style:
//
//   - StrictBoundary: the pixel vertex passed by the last step
//     (requires at least one step: ErrNoSteps before the first Next).
//   - PixelCentersPolyline: the current pixel center.
//   - SegmentCentersPolyline: the midpoint of the current boundary
//     segment.
//
// Coordinates are in the pixel-center system: pixel (x, y) has its
// center at (x, y) and occupies [x−0.5, x+0.5] × [y−0.5, y+0.5].
func (c ContourLine) Point(s Scanner) (x, y float64, err error) {
	if !s.IsInitialized() {
		return 0, 0, ErrNotPositioned
	}
	switch c {
	case StrictBoundary:
		st, err := s.LastStep()
		if err != nil {
			return 0, 0, err
		}
		return float64(s.X()) + st.PixelVertexX(), float64(s.Y()) + st.PixelVertexY(), nil
	case PixelCentersPolyline:
		return float64(s.X()), float64(s.Y()), nil
	case SegmentCentersPolyline:
		side := s.Side()
		return float64(s.X()) + side.CenterX(), float64(s.Y()) + side.CenterY(), nil
	default:
		return 0, 0, ErrUnknownContourLine
	}
}

// OrientedArea returns the oriented area enclosed by the contour of a
// fully traced boundary, corrected for this style:
//
//   - StrictBoundary: the scanner's raw oriented area.
//   - PixelCentersPolyline: each straight step cuts half a pixel off
//     the strict contour and each other step a quarter.
//   - SegmentCentersPolyline: the cut corners sum to half a pixel over
//     the whole contour, toward zero.
//
// Positive for external boundaries, negative for internal ones.
func (c ContourLine) OrientedArea(s Scanner) (float64, error) {
	if !s.IsInitialized() {
		return 0, ErrNotPositioned
	}
	area := float64(s.OrientedArea())
	switch c {
	case StrictBoundary:
		return area, nil
	case PixelCentersPolyline:
		straight := float64(StraightStepCount(s))
		other := float64(s.StepCount()) - straight
		return area - 0.5*straight - 0.25*other, nil
	case SegmentCentersPolyline:
		if area > 0 {
			return area - 0.5, nil
		}
		return area + 0.5, nil
	default:
		return 0, ErrUnknownContourLine
	}
}

// Perimeter returns the length of the contour of a fully traced
// boundary in this style:
//
//   - StrictBoundary: every step contributes one pixel edge.
//   - PixelCentersPolyline: 1 per straight step, √2 per diagonal step,
//     0 per rotation.
//   - SegmentCentersPolyline: 1 per straight step, √2/2 per diagonal
//     step or rotation.
func (c ContourLine) Perimeter(s Scanner) (float64, error) {
	if !s.IsInitialized() {
		return 0, ErrNotPositioned
	}
	switch c {
	case StrictBoundary:
		return float64(s.StepCount()), nil
	case PixelCentersPolyline:
		straight := float64(StraightStepCount(s))
		return straight + DiagonalLength*float64(s.DiagonalStepCount()), nil
	case SegmentCentersPolyline:
		straight := float64(StraightStepCount(s))
		corners := float64(s.DiagonalStepCount() + s.RotationStepCount())
		return straight + HalfDiagonalLength*corners, nil
	default:
		return 0, ErrUnknownContourLine
	}
}
