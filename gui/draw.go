package gui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/hmomeni/trimview"
)

// draw paints the geometry of the controller in this order:
// track, active segment, handles, progress and finally the bracket glyphs.
func (v *TrimView) draw(gtx layout.Context) {
	g := v.Controller.Geometry()
	radius := gtx.Dp(unit.Dp(v.Style.Radius))

	fillRRect(gtx.Ops, g.Track, radius, v.Style.Track)
	fillRect(gtx.Ops, g.Active, v.Style.Active)
	fillRRect(gtx.Ops, g.LeftHandle, radius, v.Style.Handle)
	fillRRect(gtx.Ops, g.RightHandle, radius, v.Style.Handle)
	fillRect(gtx.Ops, g.Progress, v.Style.Progress)

	if v.Theme != nil {
		v.drawBracket(gtx, "[", g.LeftHandle)
		v.drawBracket(gtx, "]", g.RightHandle)
	}
}

// drawBracket centers the glyph s inside the handle rectangle r.
func (v *TrimView) drawBracket(gtx layout.Context, s string, r trimview.Rect) {
	if r.Empty() {
		return
	}
	rect := r.Image()
	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(rect.Min.X), float32(rect.Min.Y)))).Push(gtx.Ops).Pop()

	gtx.Constraints = layout.Exact(rect.Size())
	lbl := material.Label(v.Theme, unit.Sp(v.Style.BracketSize), s)
	lbl.Color = v.Style.Bracket
	layout.Center.Layout(gtx, lbl.Layout)
}

// fillRect paints r with a solid color.
func fillRect(ops *op.Ops, r trimview.Rect, c color.NRGBA) {
	if r.Empty() {
		return
	}
	paint.FillShape(ops, c, clip.Rect(r.Image()).Op())
}

// fillRRect paints r with rounded corners. The radius is capped to half of the shorter side.
func fillRRect(ops *op.Ops, r trimview.Rect, radius int, c color.NRGBA) {
	if r.Empty() {
		return
	}
	rect := r.Image()
	if m := minSide(rect) / 2; radius > m {
		radius = m
	}
	paint.FillShape(ops, c, clip.UniformRRect(rect, radius).Op(ops))
}

func minSide(r image.Rectangle) int {
	if r.Dx() < r.Dy() {
		return r.Dx()
	}
	return r.Dy()
}
