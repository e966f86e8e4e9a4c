package boundary

import "github.com/katalvlaran/gridtrace/connectivity"

// Compile-time interface checks.
var (
	_ Scanner = (*SingleBoundaryScanner)(nil)
	_ Scanner = (*AllBoundariesScanner)(nil)
	_ Scanner = (*MainBoundariesScanner)(nil)
)

// SingleBoundaryScanner traces one boundary at a time. Its
// NextBoundary performs a plain row-major search for the nearest
// vertical boundary segment; it does not remember which boundaries
// were already traced, so revisits are possible. It is the cheapest
// scanner: no buffer matrices, no per-step bookkeeping.
type SingleBoundaryScanner struct {
	tracer
}

// NewSingleBoundaryScanner returns a scanner over m with the given
// connectivity kind. Returns ErrNilMatrix for a nil matrix and
// connectivity.ErrUnknownKind for an undefined kind.
func NewSingleBoundaryScanner(m Bitmap, kind connectivity.Kind) (*SingleBoundaryScanner, error) {
	t, err := newTracer(m, kind)
	if err != nil {
		return nil, err
	}
	return &SingleBoundaryScanner{tracer: t}, nil
}

func (s *SingleBoundaryScanner) IsSingleBoundaryScanner() bool { return true }
func (s *SingleBoundaryScanner) IsAllBoundariesScanner() bool  { return false }
func (s *SingleBoundaryScanner) IsMainBoundariesScanner() bool { return false }

// NextBoundary moves to the nearest boundary segment after the current
// position in row-major order.
func (s *SingleBoundaryScanner) NextBoundary() (bool, error) {
	return s.nextSingleBoundary(), nil
}

// Next performs one elementary step along the current boundary.
func (s *SingleBoundaryScanner) Next() error {
	_, err := s.advance()
	return err
}

// AllBoundariesScanner enumerates every boundary of the matrix exactly
// once: external boundaries are entered on XMinus sides, internal ones
// on XPlus sides. Two writable buffer matrices record horizontal
// brackets around already-traced boundaries (buf1 for external, buf2
// for internal); crossing recorded brackets while searching updates
// the signed nesting level.
//
// Every boundary returned by NextBoundary must be traced to completion
// (Next until BoundaryFinished) before the next NextBoundary call,
// otherwise the brackets stay incomplete and enumeration is undefined.
type AllBoundariesScanner struct {
	tracer
	buf1, buf2 MutableBitmap
	cur        MutableBitmap
	nesting    int
}

// NewAllBoundariesScanner returns an all-boundaries scanner over m.
// buf1 and buf2 must be zero-filled matrices of the same dimensions as
// m; the scanner owns their content afterwards. Returns ErrNilMatrix,
// ErrDimensionMismatch or connectivity.ErrUnknownKind.
func NewAllBoundariesScanner(m Bitmap, buf1, buf2 MutableBitmap, kind connectivity.Kind) (*AllBoundariesScanner, error) {
	t, err := newTracer(m, kind)
	if err != nil {
		return nil, err
	}
	if buf1 == nil || buf2 == nil {
		return nil, ErrNilMatrix
	}
	if buf1.Width() != t.dimX || buf1.Height() != t.dimY ||
		buf2.Width() != t.dimX || buf2.Height() != t.dimY {
		return nil, ErrDimensionMismatch
	}
	return &AllBoundariesScanner{tracer: t, buf1: buf1, buf2: buf2, cur: buf1}, nil
}

func (s *AllBoundariesScanner) IsSingleBoundaryScanner() bool { return false }
func (s *AllBoundariesScanner) IsAllBoundariesScanner() bool  { return true }
func (s *AllBoundariesScanner) IsMainBoundariesScanner() bool { return false }

// NestingLevel returns the nesting depth of the current boundary: 1
// for a top-level external boundary, 2 for a hole inside it, 3 for an
// object inside that hole, and so on.
func (s *AllBoundariesScanner) NestingLevel() int { return s.nesting }

// NextBoundary moves to the start of the next not-yet-traced boundary.
func (s *AllBoundariesScanner) NextBoundary() (bool, error) {
	for {
		if !s.nextSingleBoundary() {
			return false, nil
		}
		b1 := s.bracket(s.buf1)
		b2 := s.bracket(s.buf2)
		if s.x == s.dimX-1 && s.curSide == XPlus {
			// An XPlus segment at the right border has no room for its
			// bracket, so it cannot be recognized later; never start a
			// trace here.
			s.nesting = 0
			continue
		}
		if b1 || b2 {
			// Passing through an already-traced boundary.
			switch s.curSide {
			case XMinus:
				if b1 {
					s.nesting++
				} else {
					s.nesting--
				}
			case XPlus:
				if b1 {
					s.nesting--
				} else {
					s.nesting++
				}
			}
			continue
		}
		s.nesting++
		if s.curSide == XMinus {
			s.cur = s.buf1 // external boundary
		} else {
			s.cur = s.buf2 // internal boundary
		}
		return true, nil
	}
}

// Next performs one elementary step, recording the bracket of the new
// position in the current boundary's buffer.
func (s *AllBoundariesScanner) Next() error {
	stepped, err := s.advance()
	if err != nil || !stepped {
		return err
	}
	s.setBracket(s.cur)
	return nil
}

// MainBoundariesScanner enumerates external ("main") boundaries only,
// skipping every boundary and object nested inside an already-traced
// one. One writable buffer matrix records brackets and swept interior.
//
// As with AllBoundariesScanner, each returned boundary must be traced
// to completion before the next NextBoundary call.
type MainBoundariesScanner struct {
	tracer
	buf MutableBitmap
}

// NewMainBoundariesScanner returns a main-boundaries scanner over m.
// buf must be a zero-filled matrix of the same dimensions as m.
// Returns ErrNilMatrix, ErrDimensionMismatch or
// connectivity.ErrUnknownKind.
func NewMainBoundariesScanner(m Bitmap, buf MutableBitmap, kind connectivity.Kind) (*MainBoundariesScanner, error) {
	t, err := newTracer(m, kind)
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, ErrNilMatrix
	}
	if buf.Width() != t.dimX || buf.Height() != t.dimY {
		return nil, ErrDimensionMismatch
	}
	return &MainBoundariesScanner{tracer: t, buf: buf}, nil
}

func (s *MainBoundariesScanner) IsSingleBoundaryScanner() bool { return false }
func (s *MainBoundariesScanner) IsAllBoundariesScanner() bool  { return false }
func (s *MainBoundariesScanner) IsMainBoundariesScanner() bool { return true }

// NextBoundary moves to the XMinus start of the next external boundary,
// sweeping over the interior of already-traced boundaries.
func (s *MainBoundariesScanner) NextBoundary() (bool, error) {
	n := s.dimX * s.dimY
	if n == 0 {
		return false, nil
	}
	index := s.CurrentIndex()
	if !s.buf.Get(index%s.dimX, index/s.dimX) {
		return s.nextSingleBoundary(), nil
	}
	// The current position carries a left bracket of a traced boundary:
	// skip to its right bracket, mark the swept span, and look for the
	// next unit bit beyond it.
	x := s.x
	for {
		rowEnd := index + s.dimX - x
		var span int
		if i := nextUnitIn(s.buf, index+1, rowEnd); i == -1 {
			span = s.dimX - x - 1
		} else {
			// Consume the right bracket so it is not taken for a left
			// one on a later pass.
			s.buf.Set(i%s.dimX, i/s.dimX, false)
			span = i - (index + 1)
		}
		for j := index + 1; j <= index+span; j++ {
			s.buf.Set(j%s.dimX, j/s.dimX, true)
		}
		index += span
		if index >= n {
			return false, nil
		}
		i := nextUnitIn(s.m, index+1, n)
		if i == -1 {
			return false, nil
		}
		index = i
		x = index % s.dimX
		if !s.buf.Get(x, index/s.dimX) {
			break
		}
	}
	s.position(x, index/s.dimX, XMinus)
	return true, nil
}

// Next performs one elementary step, recording the bracket of the new
// position in the buffer.
func (s *MainBoundariesScanner) Next() error {
	stepped, err := s.advance()
	if err != nil || !stepped {
		return err
	}
	s.setBracket(s.buf)
	return nil
}
