package boundary

import "context"

// ScanBoundary traces the scanner's current boundary to completion,
// calling Next until BoundaryFinished reports true, and returns the
// number of steps performed. The context is checked between steps, so
// long traces are cancellable; on cancellation the scanner keeps its
// partial state and ctx.Err() is returned.
//
// Returns ErrNotPositioned when s has not been positioned yet.
func ScanBoundary(ctx context.Context, s Scanner) (int64, error) {
	if !s.IsInitialized() {
		return 0, ErrNotPositioned
	}
	var steps int64
	for !s.BoundaryFinished() {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if err := s.Next(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}
