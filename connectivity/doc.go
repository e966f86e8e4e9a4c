// Package connectivity defines the connectivity kinds of connected
// objects in an n-dimensional 0/1 matrix and generates the canonical
// neighbour-offset ("aperture shift") tables for them.
//
// Two kinds are supported:
//
//   - StraightOnly: two elements are neighbours when exactly one
//     coordinate differs by 1 (4-connectivity in 2D).
//   - StraightAndDiagonal: two elements are neighbours when every
//     coordinate differs by at most 1 and at least one differs
//     (8-connectivity in 2D).
//
// Offset tables are a pure function of (kind, dimCount). They are
// computed lazily, published once, and shared read-only afterwards, so
// concurrent first use from multiple goroutines is safe without locking
// on the read path.
package connectivity
