package trimview

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometry_Layout(t *testing.T) {
	assert := assert.New(t)
	c, _ := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30, Progress: 15})
	g := c.Geometry()

	assert.Equal(float32(widgetW), g.Width)
	assert.Equal(float32(handleW), g.Height, "the widget is as tall as a handle")

	// The track is centered vertically and DefaultLineHeight thick.
	assert.Equal(Rect{Left: 24, Top: 8, Right: 124, Bottom: 16}, g.Track)
	assert.Equal(Rect{Left: 10, Top: 0, Right: 34, Bottom: 24}, g.LeftHandle)
	assert.Equal(Rect{Left: 34, Top: 8, Right: 64, Bottom: 16}, g.Active)
	assert.Equal(Rect{Left: 64, Top: 0, Right: 88, Bottom: 24}, g.RightHandle)
	assert.Equal(Rect{Left: 34, Top: 8, Right: 49, Bottom: 16}, g.Progress)
	assert.Equal(image.Rect(34, 8, 64, 16), g.Active.Image())
}

func TestGeometry_FullWindowSpansWidget(t *testing.T) {
	c, _ := newTestController(t, Range{Max: 100, Trim: 100})
	g := c.Geometry()

	assert.Equal(t, float32(0), g.LeftHandle.Left)
	assert.Equal(t, float32(widgetW), g.RightHandle.Right)
	assert.Equal(t, g.Track.Left, g.Active.Left)
	assert.Equal(t, g.Track.Right, g.Active.Right)
}

func TestGeometry_Idempotent(t *testing.T) {
	c, _ := newTestController(t, Range{Max: 300, TrimStart: 17, Trim: 123, Progress: 40})
	c.Resize(333, 40)

	first := c.Geometry()
	c.recompute()
	second := c.Geometry()
	c.Resize(333, 40)

	assert.Equal(t, first, second)
	assert.Equal(t, first, c.Geometry())
}

func TestGeometry_FollowsMutations(t *testing.T) {
	c, _ := newTestController(t, Range{Max: 100, TrimStart: 10, Trim: 30})
	before := c.Geometry()

	assert.NoError(t, c.SetTrimStart(20))
	after := c.Geometry()
	assert.NotEqual(t, before, after)
	assert.Equal(t, before.Active.Left+10, after.Active.Left)

	c.SetHandleWidth(30)
	assert.Equal(t, float32(30), c.Geometry().Height)
	assert.InDelta(t, 30, c.Geometry().LeftHandle.Dx(), 1e-4)

	c.SetLineHeight(4)
	assert.Equal(t, float32(4), c.Geometry().Track.Dy())
}

func TestGeometry_EmptyWithoutTrack(t *testing.T) {
	c := NewController()
	c.Resize(40, 0)
	g := c.Geometry()

	assert.True(t, g.Track.Empty())
	assert.True(t, g.LeftHandle.Empty())
	assert.True(t, g.RightHandle.Empty())
	assert.Equal(t, float32(40), g.Width)
}

func TestRect(t *testing.T) {
	assert := assert.New(t)
	r := Rect{Left: 10, Top: 0, Right: 20, Bottom: 10}

	assert.True(r.Contains(10, 0))
	assert.False(r.Contains(20, 5), "right edge is exclusive")
	assert.Equal(float32(15), r.CenterX())
	assert.Equal(float32(5), r.CenterY())
	assert.Equal(Rect{Left: 8, Top: 0, Right: 22, Bottom: 10}, r.Widen(2))
	assert.True(Rect{}.Empty())
}
