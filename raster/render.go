// Package raster renders the geometry of a trim view controller into an image.
// It is the headless host used by the snapshot command and by tests that want to look
// at what a widget would paint.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hmomeni/trimview"
	"github.com/hmomeni/trimview/imop"
)

// Renderer paints a controller with a Style.
type Renderer struct {
	Style trimview.Style
	// Frost is the sigma of the gaussian blur applied under the handles. Zero disables it.
	Frost float64
	// Blend is the imop blend mode used for the handle glass.
	Blend string
	// Composite is the imop composition operation used for the handle glass.
	// Empty means src_over.
	Composite string
	// Brackets enables the bracket glyphs drawn over the handles.
	Brackets bool
}

// NewRenderer returns a renderer with the default style, a light frost and brackets.
func NewRenderer() *Renderer {
	return &Renderer{
		Style:    trimview.DefaultStyle(),
		Frost:    1.5,
		Brackets: true,
	}
}

// Render paints the current geometry of c. The controller must have been resized;
// the image has the size of its geometry.
func (r *Renderer) Render(c *trimview.Controller) (*image.NRGBA, error) {
	g := c.Geometry()
	bounds := g.Bounds().Image()
	img := image.NewNRGBA(bounds)
	draw.Draw(img, bounds, &image.Uniform{r.Style.Background}, image.Point{}, draw.Src)

	radius := int(r.Style.Radius)
	op := imop.InitOp()
	fill := func(rect trimview.Rect, col color.NRGBA, rounded bool) {
		if rect.Empty() {
			return
		}
		var mask image.Image
		if rounded {
			mask = newRRect(rect.Image(), radius)
		}
		op.Fill(img, rect.Image(), col, mask)
	}

	fill(g.Track, r.Style.Track, true)
	fill(g.Active, r.Style.Active, false)

	if r.Blend != "" {
		blend := imop.NewBlend()
		if err := blend.Set(r.Blend); err != nil {
			return nil, err
		}
		op.SetBlend(blend)
	}
	if r.Composite != "" {
		if err := op.Set(r.Composite); err != nil {
			return nil, err
		}
	}
	for _, h := range []trimview.Rect{g.LeftHandle, g.RightHandle} {
		if h.Empty() {
			continue
		}
		r.frost(img, h.Image(), radius)
		fill(h, r.Style.Handle, true)
	}
	op.SetBlend(nil)
	if err := op.Set(imop.SrcOver); err != nil {
		return nil, err
	}

	fill(g.Progress, r.Style.Progress, false)

	if r.Brackets {
		r.bracket(img, "[", g.LeftHandle)
		r.bracket(img, "]", g.RightHandle)
	}
	return img, nil
}

// frost blurs the pixels under the rounded rectangle rect.
func (r *Renderer) frost(img *image.NRGBA, rect image.Rectangle, radius int) {
	rect = rect.Intersect(img.Bounds())
	if r.Frost <= 0 || rect.Empty() {
		return
	}
	blurred := imaging.Blur(imaging.Crop(img, rect), r.Frost)
	imop.InitOp().Draw(img, rect, blurred, image.Point{}, newRRect(rect, radius))
}

// bracket centers the glyph s inside rect.
func (r *Renderer) bracket(img *image.NRGBA, s string, rect trimview.Rect) {
	if rect.Empty() {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.Style.Bracket),
		Face: face,
	}
	metrics := face.Metrics()
	width := d.MeasureString(s)
	height := metrics.Ascent + metrics.Descent

	x := fixed.I(int(rect.CenterX())) - width/2
	y := fixed.I(int(rect.CenterY())) - height/2 + metrics.Ascent
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(s)
}

// Scale resizes img by factor, the way a display with factor pixels per dp would show it.
func Scale(img image.Image, factor float64) *image.NRGBA {
	b := img.Bounds()
	if factor <= 0 || factor == 1 {
		return imaging.Clone(img)
	}
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w == 0 || h == 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
