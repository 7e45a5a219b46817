package trimview

import (
	"image"
	"math"
)

// Rect is an axis aligned rectangle in the widget's local pixel space.
// Left and Top are inclusive, Right and Bottom exclusive.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Dx returns the width of r.
func (r Rect) Dx() float32 { return r.Right - r.Left }

// Dy returns the height of r.
func (r Rect) Dy() float32 { return r.Bottom - r.Top }

// Empty reports whether r contains no points.
func (r Rect) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// CenterX returns the horizontal center of r.
func (r Rect) CenterX() float32 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center of r.
func (r Rect) CenterY() float32 { return (r.Top + r.Bottom) / 2 }

// Widen grows r horizontally by dx on both sides.
func (r Rect) Widen(dx float32) Rect {
	r.Left -= dx
	r.Right += dx
	return r
}

// Image converts r to integer coordinates, rounding every edge to the nearest pixel.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.Left))),
		int(math.Round(float64(r.Top))),
		int(math.Round(float64(r.Right))),
		int(math.Round(float64(r.Bottom))),
	)
}

// Geometry holds every rectangle a rendering surface needs to draw the trim view.
// It is derived from the logical state and the measured size, never stored as ground truth.
type Geometry struct {
	Width, Height float32

	Track       Rect
	Active      Rect
	Progress    Rect
	LeftHandle  Rect
	RightHandle Rect
}

// Bounds returns the whole widget area.
func (g Geometry) Bounds() Rect {
	return Rect{Right: g.Width, Bottom: g.Height}
}

// metrics is the input of the geometry derivation.
type metrics struct {
	width, height float32
	autoHeight    bool
	handleWidth   float32
	lineHeight    float32
}

// trackWidth is the horizontal extent available for the trim window.
func (l metrics) trackWidth() float32 {
	return l.width - 2*l.handleWidth
}

// derive computes the geometry for the given logical state. It is a pure function.
func (l metrics) derive(max, trimStart, trim, progress int) Geometry {
	g := Geometry{Width: l.width, Height: l.height}
	tw := l.trackWidth()
	if tw <= 0 || max <= 0 || l.height <= 0 {
		return g
	}
	px := func(v int) float32 {
		return float32(v) * tw / float32(max)
	}

	hw := l.handleWidth
	cy := l.height / 2
	lh := l.lineHeight
	if lh <= 0 || lh > l.height {
		lh = l.height
	}
	top, bottom := cy-lh/2, cy+lh/2

	start := px(trimStart)
	end := px(trimStart + trim)

	g.Track = Rect{Left: hw, Top: top, Right: l.width - hw, Bottom: bottom}
	g.LeftHandle = Rect{Left: start, Top: 0, Right: start + hw, Bottom: l.height}
	g.Active = Rect{Left: hw + start, Top: top, Right: hw + end, Bottom: bottom}
	g.RightHandle = Rect{Left: hw + end, Top: 0, Right: 2*hw + end, Bottom: l.height}
	g.Progress = Rect{Left: g.Active.Left, Top: top, Right: g.Active.Left + px(progress), Bottom: bottom}

	return g
}
