package connectivity

import (
	"errors"
	"sync"
)

// Sentinel errors for connectivity operations.
var (
	// ErrDimCount indicates a dimensionality outside 1..MaxDimCount.
	ErrDimCount = errors.New("connectivity: dimCount must be in range 1..MaxDimCount")
	// ErrUnknownKind indicates a Kind value outside the defined set.
	ErrUnknownKind = errors.New("connectivity: unknown connectivity kind")
)

// MaxDimCount is the maximal matrix dimensionality for which
// neighbour-offset tables are generated.
const MaxDimCount = 9

// Kind selects the connectivity model of a matrix.
// A Kind is immutable; its aperture tables are shared and read-only.
type Kind int

const (
	// StraightOnly connects elements differing by 1 in exactly one axis.
	// In 2D this is the classic 4-connectivity.
	StraightOnly Kind = iota
	// StraightAndDiagonal connects elements differing by at most 1 in
	// every axis (and by 1 in at least one). In 2D this is 8-connectivity.
	StraightAndDiagonal

	numKinds = 2
)

// Valid reports whether k is one of the defined connectivity kinds.
func (k Kind) Valid() bool {
	return k == StraightOnly || k == StraightAndDiagonal
}

// String returns the name of the connectivity kind.
func (k Kind) String() string {
	switch k {
	case StraightOnly:
		return "StraightOnly"
	case StraightAndDiagonal:
		return "StraightAndDiagonal"
	default:
		return "Kind(unknown)"
	}
}

// apertureTables holds the memoized offset tables, one slot per
// (kind, dimCount). Each slot is filled at most once and never mutated
// afterwards; readers share the published slices without copying.
var apertureTables [numKinds][MaxDimCount + 1]struct {
	once   sync.Once
	shifts [][]int
}

// ApertureShifts returns the ordered list of neighbour coordinate
// offsets for the given dimensionality.
//
// The order is canonical and stable across calls:
//   - StraightOnly: axis by axis, +1 before −1
//     (2D: (1,0), (−1,0), (0,1), (0,−1)).
//   - StraightAndDiagonal: mixed-radix-3 counting order over
//     {−1,0,1}^dimCount starting at (−1,…,−1), skipping the origin.
//
// The returned slices are shared read-only tables; callers must not
// mutate them. Returns ErrDimCount for dimCount outside 1..MaxDimCount
// and ErrUnknownKind for an undefined kind.
//
// Time: O(1) after the first call per (kind, dimCount).
func (k Kind) ApertureShifts(dimCount int) ([][]int, error) {
	if !k.Valid() {
		return nil, ErrUnknownKind
	}
	if dimCount < 1 || dimCount > MaxDimCount {
		return nil, ErrDimCount
	}
	slot := &apertureTables[k][dimCount]
	slot.once.Do(func() {
		if k == StraightOnly {
			slot.shifts = generateStraightShifts(dimCount)
		} else {
			slot.shifts = generateStraightAndDiagonalShifts(dimCount)
		}
	})
	return slot.shifts, nil
}

// NumberOfNeighbours returns the number of neighbours of any matrix
// element: 2·dimCount for StraightOnly, 3^dimCount − 1 for
// StraightAndDiagonal. Errors as for ApertureShifts.
func (k Kind) NumberOfNeighbours(dimCount int) (int, error) {
	shifts, err := k.ApertureShifts(dimCount)
	if err != nil {
		return 0, err
	}
	return len(shifts), nil
}

// generateStraightShifts emits the 2·dimCount unit offsets, axis by
// axis, +1 before −1.
func generateStraightShifts(dimCount int) [][]int {
	shifts := make([][]int, 0, 2*dimCount)
	for axis := 0; axis < dimCount; axis++ {
		plus := make([]int, dimCount)
		plus[axis] = 1
		minus := make([]int, dimCount)
		minus[axis] = -1
		shifts = append(shifts, plus, minus)
	}
	return shifts
}

// generateStraightAndDiagonalShifts enumerates {−1,0,1}^dimCount as a
// dimCount-digit radix-3 counter with digits −1,0,1 and emits every
// combination except the all-zero origin: exactly 3^dimCount − 1
// vectors, no duplicates.
func generateStraightAndDiagonalShifts(dimCount int) [][]int {
	total := 1
	for i := 0; i < dimCount; i++ {
		total *= 3
	}
	shifts := make([][]int, 0, total-1)
	digits := make([]int, dimCount)
	for i := range digits {
		digits[i] = -1
	}
	for index := 0; ; {
		origin := true
		for _, d := range digits {
			if d != 0 {
				origin = false
				break
			}
		}
		if !origin {
			v := make([]int, dimCount)
			copy(v, digits)
			shifts = append(shifts, v)
		}
		if index++; index >= total {
			break
		}
		// Increment the radix-3 counter by one. The all-ones overflow
		// case is unreachable: it is the last combination, and the
		// loop has already exited on it.
		j := dimCount - 1
		for digits[j] == 1 {
			digits[j] = -1
			j--
		}
		digits[j]++
	}
	return shifts
}
