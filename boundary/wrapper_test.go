package boundary_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridtrace/boundary"
	"github.com/katalvlaran/gridtrace/connectivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWrapper_NilParent(t *testing.T) {
	_, err := boundary.NewWrapper(nil, nil)
	assert.ErrorIs(t, err, boundary.ErrNilScanner)
}

// A wrapper is transparent: every observable of the parent is forwarded
// unchanged.
func TestWrapper_Transparency(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	parent, err := boundary.NewSingleBoundaryScanner(m, connectivity.StraightAndDiagonal)
	require.NoError(t, err)
	w, err := boundary.NewWrapper(parent, nil)
	require.NoError(t, err)

	assert.Equal(t, connectivity.StraightAndDiagonal, w.Connectivity())
	assert.True(t, w.IsSingleBoundaryScanner())
	assert.False(t, w.IsAllBoundariesScanner())
	assert.False(t, w.IsMainBoundariesScanner())
	assert.Same(t, boundary.Scanner(parent), w.Parent())

	require.NoError(t, w.GoTo(1, 1, boundary.XMinus))
	assert.True(t, parent.IsInitialized(), "GoTo reaches the parent")
	assert.Equal(t, parent.X(), w.X())
	assert.Equal(t, parent.Side(), w.Side())
	assert.Equal(t, parent.CurrentIndex(), w.CurrentIndex())
	assert.Equal(t, parent.Get(), w.Get())

	steps, err := boundary.ScanBoundary(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, int64(4), steps)
	assert.True(t, parent.BoundaryFinished())
	assert.Equal(t, parent.StepCount(), w.StepCount())
	assert.Equal(t, parent.OrientedArea(), w.OrientedArea())

	st, err := w.LastStep()
	require.NoError(t, err)
	pst, err := parent.LastStep()
	require.NoError(t, err)
	assert.Equal(t, pst, st)
}

// The onReset hook fires on ResetCounters and on every successful
// reposition, never on a failed one.
func TestWrapper_ResetHook(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 0, 1}})
	parent, err := boundary.NewSingleBoundaryScanner(m, connectivity.StraightOnly)
	require.NoError(t, err)

	resets := 0
	w, err := boundary.NewWrapper(parent, func() { resets++ })
	require.NoError(t, err)

	assert.ErrorIs(t, w.GoTo(5, 0, boundary.XMinus), boundary.ErrOutOfBounds)
	assert.Equal(t, 0, resets, "failed GoTo must not reset")

	require.NoError(t, w.GoTo(0, 0, boundary.XMinus))
	assert.Equal(t, 1, resets)

	found, err := w.NextBoundary()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, resets)

	w.ResetCounters()
	assert.Equal(t, 3, resets)
	assert.Equal(t, int64(0), parent.StepCount(), "ResetCounters reaches the parent")

	// Exhausting the boundaries does not reset.
	_, err = boundary.ScanBoundary(context.Background(), w)
	require.NoError(t, err)
	for {
		found, err = w.NextBoundary()
		require.NoError(t, err)
		if !found {
			break
		}
		_, err = boundary.ScanBoundary(context.Background(), w)
		require.NoError(t, err)
	}
	final := resets
	_, err = w.NextBoundary()
	require.NoError(t, err)
	assert.Equal(t, final, resets, "a fruitless NextBoundary must not reset")
}

// Wrappers stack: each layer's hook fires independently. The inner hook
// fires twice per reposition (once from the inner GoTo, once again when
// the outer ResetCounters forwards down), so hooks must stay idempotent.
func TestWrapper_Stacking(t *testing.T) {
	m := mustMatrix(t, [][]int{{1}})
	parent, err := boundary.NewSingleBoundaryScanner(m, connectivity.StraightOnly)
	require.NoError(t, err)

	var order []string
	inner, err := boundary.NewWrapper(parent, func() { order = append(order, "inner") })
	require.NoError(t, err)
	outer, err := boundary.NewWrapper(inner, func() { order = append(order, "outer") })
	require.NoError(t, err)

	require.NoError(t, outer.GoTo(0, 0, boundary.XMinus))
	assert.Equal(t, []string{"inner", "inner", "outer"}, order, "inner resets before outer")

	steps, err := boundary.ScanBoundary(context.Background(), outer)
	require.NoError(t, err)
	assert.Equal(t, int64(4), steps)
	assert.Equal(t, int64(4), parent.StepCount())
}

// perimeterMeasurer shows the intended decorator pattern: embed
// *Wrapper, shadow Next to accumulate, clear in the reset hook.
type perimeterMeasurer struct {
	*boundary.Wrapper
	style boundary.ContourLine
	sum   float64
}

func newPerimeterMeasurer(parent boundary.Scanner, style boundary.ContourLine) (*perimeterMeasurer, error) {
	pm := &perimeterMeasurer{style: style}
	w, err := boundary.NewWrapper(parent, func() { pm.sum = 0 })
	if err != nil {
		return nil, err
	}
	pm.Wrapper = w
	return pm, nil
}

func (pm *perimeterMeasurer) Next() error {
	if err := pm.Wrapper.Next(); err != nil {
		return err
	}
	st, err := pm.LastStep()
	if err != nil {
		return err
	}
	switch pm.style {
	case boundary.PixelCentersPolyline:
		pm.sum += st.DistanceBetweenPixelCenters()
	default:
		pm.sum += st.DistanceBetweenSegmentCenters()
	}
	return nil
}

func TestWrapper_MeasurerDecorator(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	parent, err := boundary.NewSingleBoundaryScanner(m, connectivity.StraightOnly)
	require.NoError(t, err)
	pm, err := newPerimeterMeasurer(parent, boundary.PixelCentersPolyline)
	require.NoError(t, err)

	require.NoError(t, pm.GoTo(1, 1, boundary.XMinus))
	_, err = boundary.ScanBoundary(context.Background(), pm)
	require.NoError(t, err)

	want, err := boundary.PixelCentersPolyline.Perimeter(parent)
	require.NoError(t, err)
	assert.Equal(t, want, pm.sum, "per-step accumulation matches the counter formula")

	// Repositioning clears the accumulated perimeter.
	require.NoError(t, pm.GoTo(1, 1, boundary.XMinus))
	assert.Equal(t, 0.0, pm.sum)
}
