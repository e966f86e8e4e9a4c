package boundary

// Bitmap is the read-only 0/1 matrix view scanned by the package.
// *bitmatrix.Matrix satisfies it; any row-major 0/1 storage works.
type Bitmap interface {
	Width() int
	Height() int
	// Get returns the bit at (x, y). The scanner only calls it with
	// in-bounds coordinates.
	Get(x, y int) bool
}

// MutableBitmap is a writable Bitmap, used for the bracket buffers of
// the all- and main-boundaries scanners.
type MutableBitmap interface {
	Bitmap
	Set(x, y int, value bool)
}

// BitSeeker is an optional fast path for Bitmap implementations that
// can locate bits word-at-a-time by row-major linear index.
// *bitmatrix.Matrix satisfies it.
type BitSeeker interface {
	// NextUnit returns the linear index of the first unit bit at or
	// after from, or -1 when none exists.
	NextUnit(from int) int
	// NextZero returns the linear index of the first zero bit at or
	// after from, or -1 when none exists.
	NextZero(from int) int
}

// nextUnitIn returns the linear index of the first unit bit of m in
// [from, limit), or -1. Uses the BitSeeker fast path when available.
func nextUnitIn(m Bitmap, from, limit int) int {
	if from < 0 {
		from = 0
	}
	if s, ok := m.(BitSeeker); ok {
		i := s.NextUnit(from)
		if i < 0 || i >= limit {
			return -1
		}
		return i
	}
	w := m.Width()
	for i := from; i < limit; i++ {
		if m.Get(i%w, i/w) {
			return i
		}
	}
	return -1
}

// nextZeroIn returns the linear index of the first zero bit of m in
// [from, limit), or -1. Uses the BitSeeker fast path when available.
func nextZeroIn(m Bitmap, from, limit int) int {
	if from < 0 {
		from = 0
	}
	if s, ok := m.(BitSeeker); ok {
		i := s.NextZero(from)
		if i < 0 || i >= limit {
			return -1
		}
		return i
	}
	w := m.Width()
	for i := from; i < limit; i++ {
		if !m.Get(i%w, i/w) {
			return i
		}
	}
	return -1
}
