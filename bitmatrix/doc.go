// Package bitmatrix provides a compact, row-major, bit-packed 0/1
// matrix used as the substrate for boundary scanning.
//
// A Matrix stores one bit per element in []uint64 words, giving:
//
//   - O(1) Get/Set by (x, y) coordinates or by linear index
//   - word-at-a-time NextUnit / NextZero searches (≈64× faster than a
//     naive per-bit loop on sparse data)
//   - cheap Clone and Fill for test fixtures and staging buffers
//
// Out-of-range reads return 0 and out-of-range writes are ignored, so a
// matrix behaves as if embedded in an infinite zero background. This is
// exactly the convention boundary tracing needs: object edges at the
// matrix border are still closed curves.
//
// Construction errors (empty input, ragged rows) are reported with the
// package sentinel errors and can be matched with errors.Is.
package bitmatrix
