package bitmatrix

import (
	"errors"
	"math/bits"
)

// Sentinel errors for matrix construction.
var (
	// ErrEmptyMatrix indicates a construction input with zero rows,
	// zero columns, or non-positive explicit dimensions.
	ErrEmptyMatrix = errors.New("bitmatrix: matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("bitmatrix: all rows must have the same length")
)

const wordBits = 64

// Matrix is a bit-packed 2D 0/1 matrix in row-major order.
// The zero value is not usable; construct with New or FromRows.
type Matrix struct {
	width  int
	height int
	words  []uint64
}

// New returns a zero-filled width×height matrix.
// Returns ErrEmptyMatrix when either dimension is not positive.
func New(width, height int) (*Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyMatrix
	}
	n := width * height
	return &Matrix{
		width:  width,
		height: height,
		words:  make([]uint64, (n+wordBits-1)/wordBits),
	}, nil
}

// FromRows builds a matrix from a row-major [][]int, deep-copying the
// input. Any value ≥ 1 becomes a unit bit; 0 and negative values become
// zero bits. Returns ErrEmptyMatrix for empty input and
// ErrNonRectangular for ragged rows.
func FromRows(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	m, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			if v >= 1 {
				m.Set(x, y, true)
			}
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// Len returns the total number of elements (Width·Height).
func (m *Matrix) Len() int { return m.width * m.height }

// InBounds reports whether (x, y) lies inside the matrix.
func (m *Matrix) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index returns the row-major linear index of (x, y).
// The coordinates are not range-checked.
func (m *Matrix) Index(x, y int) int { return y*m.width + x }

// Coordinate returns the (x, y) coordinates of a linear index.
// The index is not range-checked.
func (m *Matrix) Coordinate(index int) (x, y int) {
	return index % m.width, index / m.width
}

// Get returns the bit at (x, y). Coordinates outside the matrix read as
// false: the matrix is embedded in an infinite zero background.
func (m *Matrix) Get(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	i := m.Index(x, y)
	return m.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Set writes the bit at (x, y). Writes outside the matrix are ignored.
func (m *Matrix) Set(x, y int, value bool) {
	if !m.InBounds(x, y) {
		return
	}
	i := m.Index(x, y)
	if value {
		m.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		m.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// Bit returns the bit at a linear index; out-of-range indexes read as
// false.
func (m *Matrix) Bit(index int) bool {
	if index < 0 || index >= m.Len() {
		return false
	}
	return m.words[index/wordBits]&(1<<(index%wordBits)) != 0
}

// SetBit writes the bit at a linear index; out-of-range writes are
// ignored.
func (m *Matrix) SetBit(index int, value bool) {
	if index < 0 || index >= m.Len() {
		return
	}
	if value {
		m.words[index/wordBits] |= 1 << (index % wordBits)
	} else {
		m.words[index/wordBits] &^= 1 << (index % wordBits)
	}
}

// Fill sets every element to the given value.
func (m *Matrix) Fill(value bool) {
	var w uint64
	if value {
		w = ^uint64(0)
	}
	for i := range m.words {
		m.words[i] = w
	}
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	words := make([]uint64, len(m.words))
	copy(words, m.words)
	return &Matrix{width: m.width, height: m.height, words: words}
}

// NextUnit returns the linear index of the first unit bit at or after
// from, or -1 when none exists. Scans word-at-a-time.
//
// Time: O(Len/64) worst case.
func (m *Matrix) NextUnit(from int) int {
	n := m.Len()
	if from < 0 {
		from = 0
	}
	if from >= n {
		return -1
	}
	wi := from / wordBits
	w := m.words[wi] >> (from % wordBits)
	if w != 0 {
		i := from + bits.TrailingZeros64(w)
		if i < n {
			return i
		}
		return -1
	}
	for wi++; wi < len(m.words); wi++ {
		if m.words[wi] != 0 {
			i := wi*wordBits + bits.TrailingZeros64(m.words[wi])
			if i < n {
				return i
			}
			return -1
		}
	}
	return -1
}

// NextZero returns the linear index of the first zero bit at or after
// from, or -1 when none exists. Scans word-at-a-time.
//
// Time: O(Len/64) worst case.
func (m *Matrix) NextZero(from int) int {
	n := m.Len()
	if from < 0 {
		from = 0
	}
	if from >= n {
		return -1
	}
	wi := from / wordBits
	w := ^m.words[wi] >> (from % wordBits)
	if w != 0 {
		i := from + bits.TrailingZeros64(w)
		if i < n {
			return i
		}
		return -1
	}
	for wi++; wi < len(m.words); wi++ {
		if inv := ^m.words[wi]; inv != 0 {
			i := wi*wordBits + bits.TrailingZeros64(inv)
			if i < n {
				return i
			}
			return -1
		}
	}
	return -1
}
