package trimview

import (
	"math"

	"github.com/hmomeni/trimview/utils"
)

// DragMode tells which part of the trim view the active gesture moves.
type DragMode uint8

const (
	// DragNone is reported while no gesture is in progress.
	DragNone DragMode = iota
	LeftHandle
	RightHandle
	WholeWindow
)

func (m DragMode) String() string {
	switch m {
	case DragNone:
		return "none"
	case LeftHandle:
		return "left-handle"
	case RightHandle:
		return "right-handle"
	case WholeWindow:
		return "whole-window"
	}
	return "unknown"
}

// gesture is the baseline captured on pointer down. Every move is computed
// relative to it, not to the previous move.
type gesture struct {
	active         bool
	mode           DragMode
	startX, startY float32
	startTrimStart int
	startTrim      int
}

// Mode returns the drag mode of the gesture in progress, or DragNone.
func (c *Controller) Mode() DragMode {
	if !c.gesture.active {
		return DragNone
	}
	return c.gesture.mode
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.gesture.active }

// HitTest returns the drag mode a pointer down at (x, y) would start.
// The right handle has priority over the left one where their hit regions overlap.
func (c *Controller) HitTest(x, y float32) DragMode {
	g := c.geom
	switch {
	case !g.RightHandle.Empty() && g.RightHandle.Widen(c.hitSlop).Contains(x, y):
		return RightHandle
	case !g.LeftHandle.Empty() && g.LeftHandle.Widen(c.hitSlop).Contains(x, y):
		return LeftHandle
	}
	return WholeWindow
}

// PointerDown starts a gesture. A down while a gesture is already in progress
// restarts it with a new baseline.
func (c *Controller) PointerDown(x, y float32) DragMode {
	c.gesture = gesture{
		active:         true,
		mode:           c.HitTest(x, y),
		startX:         x,
		startY:         y,
		startTrimStart: c.trimStart,
		startTrim:      c.trim,
	}
	c.listener.OnDragStarted(c.trimStart, c.trim)
	return c.gesture.mode
}

// PointerMove applies the horizontal distance from the gesture start to the state.
// It reports whether the state changed. A candidate that violates a limit is
// ignored as a whole, as is one that rounds to the current state; neither runs
// a listener hook.
func (c *Controller) PointerMove(x, y float32) (bool, error) {
	if !c.gesture.active {
		return false, ErrNoGesture
	}
	tw := c.metrics.trackWidth()
	if tw <= 0 {
		return false, nil
	}
	g := c.gesture
	d := int(math.Round(float64(x-g.startX) * float64(c.max) / float64(tw)))

	switch g.mode {
	case LeftHandle:
		ts := g.startTrimStart + d
		t := g.startTrim - (ts - g.startTrimStart)
		if !utils.InRange(t, c.minTrim, c.maxTrim) || ts < 0 || ts+t > c.max {
			return false, nil
		}
		if !c.update(ts, t) {
			return false, nil
		}
		c.listener.OnLeftEdgeChanged(c.trimStart, c.trim)
	case RightHandle:
		t := g.startTrim + d
		if !utils.InRange(t, c.minTrim, c.maxTrim) || c.trimStart+t > c.max {
			return false, nil
		}
		if !c.update(c.trimStart, t) {
			return false, nil
		}
		c.listener.OnRightEdgeChanged(c.trimStart, c.trim)
	case WholeWindow:
		ts := g.startTrimStart + d
		if ts < 0 || ts+c.trim > c.max {
			return false, nil
		}
		if !c.update(ts, c.trim) {
			return false, nil
		}
		c.listener.OnRangeChanged(c.trimStart, c.trim)
	default:
		return false, nil
	}
	return true, nil
}

// PointerUp ends the gesture in progress.
func (c *Controller) PointerUp(x, y float32) error {
	if !c.gesture.active {
		return ErrNoGesture
	}
	c.gesture = gesture{}
	c.listener.OnDragStopped(c.trimStart, c.trim)
	return nil
}

// ResetGesture drops the gesture in progress without notifying the listener.
// Hosts call it when the input stream was interrupted before the pointer went up.
func (c *Controller) ResetGesture() {
	c.gesture = gesture{}
}

// Dispatch routes e to the matching pointer handler.
func (c *Controller) Dispatch(e PointerEvent) error {
	switch e.Phase {
	case PhaseDown:
		c.PointerDown(e.X, e.Y)
	case PhaseMove:
		_, err := c.PointerMove(e.X, e.Y)
		return err
	case PhaseUp:
		return c.PointerUp(e.X, e.Y)
	case PhaseCancel:
		c.ResetGesture()
	}
	return nil
}

// update stores an accepted window and reports whether anything changed.
func (c *Controller) update(trimStart, trim int) bool {
	if trimStart == c.trimStart && trim == c.trim {
		return false
	}
	c.trimStart, c.trim = trimStart, trim
	c.clampProgress()
	c.recompute()
	return true
}
