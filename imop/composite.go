// Package imop implements the Porter-Duff composition operations used by the raster
// renderer to lay the translucent parts of a trim view over their backdrop.
// The image/draw core package implements only source-over-destination and source,
// this package provides the remaining operators together with a few blend modes.
package imop

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hmomeni/trimview/utils"
)

const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

var compOps = []string{Clear, Copy, Dst, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor}

// Composite holds the currently active composition operation and an optional blend mode.
type Composite struct {
	current string
	blend   *Blend
}

// InitOp returns a Composite using SrcOver.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(compOps, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// SetBlend mixes the source with the backdrop through b before compositing.
// A nil b composes the source color as it is.
func (op *Composite) SetBlend(b *Blend) {
	op.blend = b
}

// Mix composes the source color s with the backdrop color b.
func (op *Composite) Mix(s, b color.NRGBA) color.NRGBA {
	cs := norm(s)
	cb := norm(b)
	as, ab := cs[3], cb[3]

	// The blended color replaces the source where the backdrop is opaque.
	if op.blend != nil && op.blend.Get() != "" {
		mixed := op.blend.apply(cs, cb)
		for i := 0; i < 3; i++ {
			cs[i] = (1-ab)*cs[i] + ab*mixed[i]
		}
	}

	var fa, fb float64
	switch op.current {
	case Clear:
		fa, fb = 0, 0
	case Copy:
		fa, fb = 1, 0
	case Dst:
		fa, fb = 0, 1
	case SrcOver:
		fa, fb = 1, 1-as
	case DstOver:
		fa, fb = 1-ab, 1
	case SrcIn:
		fa, fb = ab, 0
	case DstIn:
		fa, fb = 0, as
	case SrcOut:
		fa, fb = 1-ab, 0
	case DstOut:
		fa, fb = 0, 1-as
	case SrcAtop:
		fa, fb = ab, 1-as
	case DstAtop:
		fa, fb = 1-ab, as
	case Xor:
		fa, fb = 1-ab, 1-as
	}

	an := as*fa + ab*fb
	if an <= 0 {
		return color.NRGBA{}
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		// premultiplied result, converted back to straight alpha
		out[i] = (as*cs[i]*fa + ab*cb[i]*fb) / an
	}
	return color.NRGBA{
		R: denorm(out[0]),
		G: denorm(out[1]),
		B: denorm(out[2]),
		A: denorm(an),
	}
}

// Fill composes the uniform color c over the part of dst inside r.
// The alpha channel of mask, when not nil, scales the coverage of every pixel;
// the mask is addressed in the coordinates of dst.
func (op *Composite) Fill(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, mask image.Image) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if src, ok := cover(c, mask, x, y); ok {
				op.set(dst, x, y, src)
			}
		}
	}
}

// Draw composes the pixels of src, starting at sp, over the part of dst inside r.
// The mask works as in Fill.
func (op *Composite) Draw(dst *image.NRGBA, r image.Rectangle, src image.Image, sp image.Point, mask image.Image) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := image.Pt(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
			if !p.In(src.Bounds()) {
				continue
			}
			c := color.NRGBAModel.Convert(src.At(p.X, p.Y)).(color.NRGBA)
			if c, ok := cover(c, mask, x, y); ok {
				op.set(dst, x, y, c)
			}
		}
	}
}

// cover scales the alpha of c by the mask coverage at (x, y).
// It returns false where the mask is fully transparent.
func cover(c color.NRGBA, mask image.Image, x, y int) (color.NRGBA, bool) {
	if mask == nil {
		return c, true
	}
	_, _, _, ma := mask.At(x, y).RGBA()
	if ma == 0 {
		return c, false
	}
	c.A = uint8(uint32(c.A) * ma / 0xffff)
	return c, true
}

func (op *Composite) set(dst *image.NRGBA, x, y int, src color.NRGBA) {
	i := dst.PixOffset(x, y)
	pix := dst.Pix[i : i+4 : i+4]
	out := op.Mix(src, color.NRGBA{R: pix[0], G: pix[1], B: pix[2], A: pix[3]})
	pix[0], pix[1], pix[2], pix[3] = out.R, out.G, out.B, out.A
}

func norm(c color.NRGBA) [4]float64 {
	return [4]float64{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
		float64(c.A) / 255,
	}
}

func denorm(v float64) uint8 {
	return uint8(math.Round(utils.Clamp(v, 0, 1) * 255))
}
