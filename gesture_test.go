package trimview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	hook            string
	trimStart, trim int
}

type recorder struct {
	calls []call
}

func (r *recorder) add(hook string, trimStart, trim int) {
	r.calls = append(r.calls, call{hook, trimStart, trim})
}

func (r *recorder) OnDragStarted(trimStart, trim int)      { r.add("started", trimStart, trim) }
func (r *recorder) OnLeftEdgeChanged(trimStart, trim int)  { r.add("left", trimStart, trim) }
func (r *recorder) OnRightEdgeChanged(trimStart, trim int) { r.add("right", trimStart, trim) }
func (r *recorder) OnRangeChanged(trimStart, trim int)     { r.add("range", trimStart, trim) }
func (r *recorder) OnDragStopped(trimStart, trim int)      { r.add("stopped", trimStart, trim) }

func (r *recorder) count(hook string) int {
	n := 0
	for _, c := range r.calls {
		if c.hook == hook {
			n++
		}
	}
	return n
}

func TestGesture_RightHandleRejectsAboveMaxTrim(t *testing.T) {
	assert := assert.New(t)
	c, rec := newTestController(t, Range{Max: 100, Trim: 50, MinTrim: 20, MaxTrim: 80})

	// Right handle spans [74, 98).
	require.Equal(t, RightHandle, c.PointerDown(80, midY))

	ok, err := c.PointerMove(111, midY)
	require.NoError(t, err)
	assert.False(ok)
	assert.Equal(50, c.Trim())
	assert.Zero(rec.count("right"))

	// Back inside the limits, relative to the gesture baseline.
	ok, err = c.PointerMove(110, midY)
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal(80, c.Trim())
	assert.Equal(1, rec.count("right"))

	// Past the limit again: no creeping, the last accepted state stays.
	ok, _ = c.PointerMove(200, midY)
	assert.False(ok)
	assert.Equal(80, c.Trim())
	assert.Equal(1, rec.count("right"))
}

func TestGesture_RightHandleClampsProgress(t *testing.T) {
	c, rec := newTestController(t, Range{Max: 100, Trim: 70, Progress: 60})

	// Right handle spans [94, 118).
	require.Equal(t, RightHandle, c.PointerDown(100, midY))
	ok, err := c.PointerMove(70, midY)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 40, c.Trim())
	assert.Equal(t, 40, c.Progress())
	assert.Equal(t, []call{{"started", 0, 70}, {"right", 0, 40}}, rec.calls)
	assertInvariants(t, c)
}

func TestGesture_RightHandleStaysInsideTrack(t *testing.T) {
	c, _ := newTestController(t, Range{Max: 100, TrimStart: 40, Trim: 30})

	require.Equal(t, RightHandle, c.PointerDown(100, midY))
	ok, _ := c.PointerMove(131, midY)
	assert.False(t, ok, "window end would be 101")
	ok, _ = c.PointerMove(130, midY)
	assert.True(t, ok)
	assert.Equal(t, 60, c.Trim())
}

func TestGesture_WholeWindowPreservesWidth(t *testing.T) {
	assert := assert.New(t)
	c, rec := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30})

	// Active segment spans [34, 64).
	require.Equal(t, WholeWindow, c.PointerDown(50, midY))
	ok, err := c.PointerMove(65, midY)
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal(25, c.TrimStart())
	assert.Equal(30, c.Trim())
	assert.Equal(1, rec.count("range"))

	ok, _ = c.PointerMove(111, midY)
	assert.False(ok, "window end would be 101")
	assert.Equal(25, c.TrimStart())

	ok, _ = c.PointerMove(39, midY)
	assert.False(ok, "window start would be -1")
	ok, _ = c.PointerMove(40, midY)
	assert.True(ok)
	assert.Equal(0, c.TrimStart())
	assert.Equal(30, c.Trim())
}

func TestGesture_LeftHandleKeepsRightEdge(t *testing.T) {
	assert := assert.New(t)
	c, rec := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30, MinTrim: 20, Progress: 25})

	// Left handle spans [10, 34).
	require.Equal(t, LeftHandle, c.PointerDown(20, midY))

	ok, _ := c.PointerMove(15, midY)
	assert.True(ok)
	assert.Equal(5, c.TrimStart())
	assert.Equal(35, c.Trim())
	assert.Equal(40, c.TrimStart()+c.Trim())

	ok, _ = c.PointerMove(9, midY)
	assert.False(ok, "trimStart would be -1")
	assert.Equal(5, c.TrimStart())

	ok, _ = c.PointerMove(31, midY)
	assert.False(ok, "trim would be 19 < minTrim")

	ok, _ = c.PointerMove(30, midY)
	assert.True(ok)
	assert.Equal(20, c.TrimStart())
	assert.Equal(20, c.Trim())
	assert.Equal(20, c.Progress(), "progress is clamped to the narrower window")
	assert.Equal(2, rec.count("left"))
}

func TestGesture_SubUnitMoveReportsNoChange(t *testing.T) {
	for _, tc := range []struct {
		name string
		down float32
	}{
		{"left", 20},
		{"right", 70},
		{"window", 50},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30})
			c.PointerDown(tc.down, midY)

			ok, err := c.PointerMove(tc.down+0.3, midY)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, 10, c.TrimStart())
			assert.Equal(t, 30, c.Trim())
			assert.Equal(t, []call{{"started", 10, 30}}, rec.calls)

			ok, err = c.PointerMove(tc.down+2, midY)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Len(t, rec.calls, 2)
		})
	}
}

func TestGesture_HitTestPriority(t *testing.T) {
	c, _ := newTestController(t, Range{Max: 100, TrimStart: 50, Trim: 0})

	// Left handle [50, 74), right handle [74, 98).
	assert.Equal(t, LeftHandle, c.HitTest(71, midY))
	assert.Equal(t, RightHandle, c.HitTest(75, midY))
	assert.Equal(t, WholeWindow, c.HitTest(120, midY))
	assert.Equal(t, WholeWindow, c.HitTest(60, handleW+1), "below the handles")

	// With a slop the hit regions overlap on [68, 80).
	c.SetHitSlop(6)
	assert.Equal(t, RightHandle, c.HitTest(71, midY))
	assert.Equal(t, RightHandle, c.PointerDown(71, midY))
	assert.Equal(t, LeftHandle, c.HitTest(45, midY))
}

func TestGesture_EventsAndOrdering(t *testing.T) {
	c, rec := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30})

	ok, err := c.PointerMove(10, midY)
	assert.ErrorIs(t, err, ErrNoGesture)
	assert.False(t, ok)
	assert.ErrorIs(t, c.PointerUp(10, midY), ErrNoGesture)
	assert.Empty(t, rec.calls)

	c.PointerDown(50, midY)
	ok, _ = c.PointerMove(50.2, midY) // rounds to no change
	assert.False(t, ok)
	ok, _ = c.PointerMove(55, midY)
	assert.True(t, ok)
	require.NoError(t, c.PointerUp(55, midY))

	assert.Equal(t, []call{
		{"started", 10, 30},
		{"range", 15, 30},
		{"stopped", 15, 30},
	}, rec.calls)
	assert.Equal(t, DragNone, c.Mode())
}

func TestGesture_SecondDownRestartsBaseline(t *testing.T) {
	c, rec := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30})

	c.PointerDown(50, midY)
	_, _ = c.PointerMove(60, midY)
	require.Equal(t, 20, c.TrimStart())

	c.PointerDown(60, midY)
	_, _ = c.PointerMove(65, midY)
	assert.Equal(t, 25, c.TrimStart())
	assert.Equal(t, 2, rec.count("started"))
	assert.Zero(t, rec.count("stopped"))
}

func TestGesture_ResetGesture(t *testing.T) {
	c, rec := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30})

	c.PointerDown(50, midY)
	assert.True(t, c.Dragging())
	c.ResetGesture()
	assert.False(t, c.Dragging())
	assert.ErrorIs(t, c.PointerUp(50, midY), ErrNoGesture)
	assert.Equal(t, 1, len(rec.calls))
}

func TestGesture_Dispatch(t *testing.T) {
	c, rec := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30})

	events := []PointerEvent{
		{X: 50, Y: midY, Phase: PhaseDown},
		{X: 60, Y: midY, Phase: PhaseMove},
		{X: 60, Y: midY, Phase: PhaseUp},
	}
	for _, e := range events {
		require.NoError(t, c.Dispatch(e), e.Phase.String())
	}
	assert.Equal(t, 20, c.TrimStart())
	assert.Equal(t, 3, len(rec.calls))

	require.NoError(t, c.Dispatch(PointerEvent{X: 20, Y: midY, Phase: PhaseDown}))
	require.NoError(t, c.Dispatch(PointerEvent{Phase: PhaseCancel}))
	assert.ErrorIs(t, c.Dispatch(PointerEvent{X: 20, Y: midY, Phase: PhaseMove}), ErrNoGesture)
}

func TestGesture_NoTrackRejectsMoves(t *testing.T) {
	c, rec := newTestController(t, Range{Max: 100, Trim: 30})
	c.Resize(2*handleW, 0)

	c.PointerDown(10, midY)
	ok, err := c.PointerMove(40, midY)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.TrimStart())
	assert.Equal(t, 1, len(rec.calls))
}

func TestGesture_ScaledTrack(t *testing.T) {
	// 1000 logical units across a 200px track: one pixel moves the window by 5 units.
	c, _ := newTestController(t, Range{Max: 1000, TrimStart: 100, Trim: 300})
	c.Resize(200+2*handleW, 0)

	c.PointerDown(handleW+60+10, midY)
	ok, _ := c.PointerMove(handleW+60+10+7, midY)
	require.True(t, ok)
	assert.Equal(t, 135, c.TrimStart())
}

func TestEdgeChanged(t *testing.T) {
	var got []int
	l := EdgeChanged(func(trimStart, trim int) { got = append(got, trimStart) })

	l.OnDragStarted(1, 1)
	l.OnLeftEdgeChanged(2, 1)
	l.OnRightEdgeChanged(3, 1)
	l.OnRangeChanged(4, 1)
	l.OnDragStopped(5, 1)
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestListenerFuncs_SkipsNilHooks(t *testing.T) {
	var got []int
	c, _ := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30})
	c.SetListener(ListenerFuncs{
		DragStopped: func(trimStart, trim int) { got = append(got, trimStart, trim) },
	})

	c.PointerDown(50, midY)
	ok, err := c.PointerMove(55, midY)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, c.PointerUp(55, midY))
	assert.Equal(t, []int{15, 30}, got)

	c.SetListener(NopListener{})
	c.PointerDown(50, midY)
	ok, _ = c.PointerMove(45, midY)
	assert.True(t, ok)
	assert.Equal(t, 10, c.TrimStart())
}
