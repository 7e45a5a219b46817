package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	assert.NoError(op.Set(Clear))
	assert.Equal(Clear, op.Get())

	assert.Error(op.Set("unsupported_composite_operation"))
	assert.Equal(Clear, op.Get())

	assert.NoError(op.Set(Dst))
	assert.Equal(Dst, op.Get())
}

func TestComp_Ops(t *testing.T) {
	transparent := color.NRGBA{}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	source := image.NewNRGBA(rect)
	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)

	// Three representative pixels: backdrop only, source only and the overlapping area.
	tests := []struct {
		op                           string
		topRight, bottomLeft, center color.NRGBA
	}{
		{Clear, transparent, transparent, transparent},
		{Copy, transparent, cyan, cyan},
		{Dst, magenta, transparent, magenta},
		{SrcOver, magenta, cyan, cyan},
		{DstOver, magenta, cyan, magenta},
		{SrcIn, transparent, transparent, cyan},
		{DstIn, transparent, transparent, magenta},
		{SrcOut, transparent, cyan, transparent},
		{DstOut, magenta, transparent, transparent},
		{SrcAtop, magenta, transparent, cyan},
		{DstAtop, transparent, cyan, magenta},
		{Xor, magenta, cyan, transparent},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			backdrop := image.NewNRGBA(rect)
			draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

			op := InitOp()
			require.NoError(t, op.Set(tt.op))
			op.Draw(backdrop, rect, source, image.Point{}, nil)

			assert.Equal(t, tt.topRight, backdrop.NRGBAAt(9, 0), "top right")
			assert.Equal(t, tt.bottomLeft, backdrop.NRGBAAt(0, 9), "bottom left")
			assert.Equal(t, tt.center, backdrop.NRGBAAt(5, 5), "center")
		})
	}
}

func TestComp_TranslucentSrcOver(t *testing.T) {
	op := InitOp()

	glass := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x33}
	black := color.NRGBA{A: 0xff}
	assert.Equal(t, color.NRGBA{R: 51, G: 51, B: 51, A: 255}, op.Mix(glass, black))

	gray := color.NRGBA{R: 48, G: 48, B: 48, A: 255}
	assert.Equal(t, color.NRGBA{R: 89, G: 89, B: 89, A: 255}, op.Mix(glass, gray))

	// Over a transparent backdrop the straight color is kept.
	assert.Equal(t, glass, op.Mix(glass, color.NRGBA{}))
}

func TestComp_FillWithMask(t *testing.T) {
	rect := image.Rect(0, 0, 4, 1)
	dst := image.NewNRGBA(rect)
	draw.Draw(dst, rect, &image.Uniform{color.NRGBA{A: 0xff}}, image.Point{}, draw.Src)

	mask := image.NewAlpha(rect)
	mask.SetAlpha(1, 0, color.Alpha{A: 0xff})
	mask.SetAlpha(2, 0, color.Alpha{A: 0x80})

	op := InitOp()
	op.Fill(dst, image.Rect(0, 0, 3, 1), color.NRGBA{R: 0xff, A: 0xff}, mask)

	assert.Equal(t, color.NRGBA{A: 0xff}, dst.NRGBAAt(0, 0), "masked out")
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, dst.NRGBAAt(1, 0), "full coverage")
	assert.Equal(t, color.NRGBA{R: 0x80, A: 0xff}, dst.NRGBAAt(2, 0), "half coverage")
	assert.Equal(t, color.NRGBA{A: 0xff}, dst.NRGBAAt(3, 0), "outside of the rectangle")
}

func TestComp_DrawWithMask(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.NRGBA{A: 0xff}}, image.Point{}, draw.Src)

	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.NRGBA{G: 0xff, A: 0xff}}, image.Point{}, draw.Src)

	mask := image.NewAlpha(dst.Bounds())
	mask.SetAlpha(2, 1, color.Alpha{A: 0xff})

	op := InitOp()
	op.Draw(dst, image.Rect(2, 1, 4, 2), src, image.Point{}, mask)

	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, dst.NRGBAAt(2, 1))
	assert.Equal(t, color.NRGBA{A: 0xff}, dst.NRGBAAt(3, 1), "masked out")
	assert.Equal(t, color.NRGBA{A: 0xff}, dst.NRGBAAt(2, 0), "outside the rectangle")
}
