package boundary

import "github.com/katalvlaran/gridtrace/connectivity"

var _ Scanner = (*Wrapper)(nil)

// Wrapper is the decorator base for boundary scanners: it forwards the
// whole Scanner contract to a parent scanner and guarantees that
// ResetCounters is invoked on the wrapper itself after every successful
// reposition (GoTo, GoToSamePosition, NextBoundary). Measurement logic
// hooks in through the onReset callback, or by embedding Wrapper and
// shadowing the methods of interest (typically Next). Wrappers stack
// freely: a Wrapper is itself a Scanner. In a stack, an inner layer's
// counters are reset twice per reposition (once by its own GoTo or
// NextBoundary, once more when the outer layer's ResetCounters forwards
// down), so onReset hooks must tolerate repeated invocation.
type Wrapper struct {
	parent  Scanner
	onReset func()
}

// NewWrapper returns a decorator around parent. onReset, if non-nil, is
// called by ResetCounters after the parent's counters were reset; it is
// where decorators clear their own accumulated state.
// Returns ErrNilScanner for a nil parent.
func NewWrapper(parent Scanner, onReset func()) (*Wrapper, error) {
	if parent == nil {
		return nil, ErrNilScanner
	}
	return &Wrapper{parent: parent, onReset: onReset}, nil
}

// Parent returns the wrapped scanner.
func (w *Wrapper) Parent() Scanner { return w.parent }

func (w *Wrapper) Connectivity() connectivity.Kind { return w.parent.Connectivity() }
func (w *Wrapper) IsSingleBoundaryScanner() bool   { return w.parent.IsSingleBoundaryScanner() }
func (w *Wrapper) IsAllBoundariesScanner() bool    { return w.parent.IsAllBoundariesScanner() }
func (w *Wrapper) IsMainBoundariesScanner() bool   { return w.parent.IsMainBoundariesScanner() }
func (w *Wrapper) IsInitialized() bool             { return w.parent.IsInitialized() }
func (w *Wrapper) MovedAlongBoundary() bool        { return w.parent.MovedAlongBoundary() }
func (w *Wrapper) X() int                          { return w.parent.X() }
func (w *Wrapper) Y() int                          { return w.parent.Y() }
func (w *Wrapper) Side() Side                      { return w.parent.Side() }
func (w *Wrapper) CurrentIndex() int               { return w.parent.CurrentIndex() }
func (w *Wrapper) AtMatrixBoundary() bool          { return w.parent.AtMatrixBoundary() }
func (w *Wrapper) NestingLevel() int               { return w.parent.NestingLevel() }
func (w *Wrapper) Get() bool                       { return w.parent.Get() }

// GoTo repositions the parent and, on success, resets this wrapper's
// counters.
func (w *Wrapper) GoTo(x, y int, side Side) error {
	if err := w.parent.GoTo(x, y, side); err != nil {
		return err
	}
	w.ResetCounters()
	return nil
}

// GoToSamePosition repositions the parent at another scanner's position
// and, on success, resets this wrapper's counters.
func (w *Wrapper) GoToSamePosition(other Scanner) error {
	if err := w.parent.GoToSamePosition(other); err != nil {
		return err
	}
	w.ResetCounters()
	return nil
}

// NextBoundary advances the parent to the next boundary and, when one
// was found, resets this wrapper's counters.
func (w *Wrapper) NextBoundary() (bool, error) {
	found, err := w.parent.NextBoundary()
	if err != nil || !found {
		return found, err
	}
	w.ResetCounters()
	return true, nil
}

func (w *Wrapper) Next() error                       { return w.parent.Next() }
func (w *Wrapper) LastStep() (Step, error)           { return w.parent.LastStep() }
func (w *Wrapper) CoordinatesChanged() (bool, error) { return w.parent.CoordinatesChanged() }
func (w *Wrapper) BoundaryFinished() bool            { return w.parent.BoundaryFinished() }
func (w *Wrapper) StepCount() int64                  { return w.parent.StepCount() }
func (w *Wrapper) DiagonalStepCount() int64          { return w.parent.DiagonalStepCount() }
func (w *Wrapper) RotationStepCount() int64          { return w.parent.RotationStepCount() }
func (w *Wrapper) OrientedArea() int64               { return w.parent.OrientedArea() }

// ResetCounters resets the parent's counters and then notifies the
// onReset hook.
func (w *Wrapper) ResetCounters() {
	w.parent.ResetCounters()
	if w.onReset != nil {
		w.onReset()
	}
}
