package raster

import (
	"image"
	"image/color"

	"github.com/hmomeni/trimview/utils"
)

// rrect is an alpha mask covering a rectangle with rounded corners.
// A pixel is covered when its center lies inside the shape.
type rrect struct {
	r      image.Rectangle
	radius int
}

func newRRect(r image.Rectangle, radius int) *rrect {
	radius = utils.Clamp(radius, 0, utils.Min(r.Dx(), r.Dy())/2)
	return &rrect{r: r, radius: radius}
}

func (m *rrect) ColorModel() color.Model { return color.AlphaModel }

func (m *rrect) Bounds() image.Rectangle { return m.r }

func (m *rrect) At(x, y int) color.Color {
	if m.covers(x, y) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

func (m *rrect) covers(x, y int) bool {
	if !image.Pt(x, y).In(m.r) {
		return false
	}
	if m.radius == 0 {
		return true
	}
	rad := float64(m.radius)
	px, py := float64(x)+0.5, float64(y)+0.5

	// distance to the nearest corner circle center, zero outside of the corner squares
	cx := utils.Clamp(px, float64(m.r.Min.X)+rad, float64(m.r.Max.X)-rad)
	cy := utils.Clamp(py, float64(m.r.Min.Y)+rad, float64(m.r.Max.Y)-rad)
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= rad*rad
}
