package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmomeni/trimview"
	"github.com/hmomeni/trimview/imop"
)

// newController returns a controller where one logical unit is one pixel:
// track [24, 124], window [10, 40], progress 15.
func newController(t *testing.T) *trimview.Controller {
	t.Helper()

	c := trimview.NewController()
	require.NoError(t, c.Configure(trimview.Range{Max: 100, TrimStart: 10, Trim: 30, Progress: 15}))
	c.Resize(148, 0)
	return c
}

func plainRenderer() *Renderer {
	r := NewRenderer()
	r.Frost = 0
	r.Brackets = false
	return r
}

func TestRender_Size(t *testing.T) {
	img, err := plainRenderer().Render(newController(t))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 148, 24), img.Bounds())
}

func TestRender_Paints(t *testing.T) {
	r := plainRenderer()
	style := r.Style
	img, err := r.Render(newController(t))
	require.NoError(t, err)

	over := imop.InitOp()
	track := over.Mix(style.Track, style.Background)
	handle := over.Mix(style.Handle, style.Background)

	// Geometry: left handle [10, 34], active [34, 64], right handle [64, 88], progress [34, 49].
	assert.Equal(t, style.Background, img.NRGBAAt(0, 0), "background")
	assert.Equal(t, style.Background, img.NRGBAAt(100, 2), "background above the track")
	assert.Equal(t, track, img.NRGBAAt(100, 12), "track")
	assert.Equal(t, style.Active, img.NRGBAAt(60, 12), "active segment")
	assert.Equal(t, style.Progress, img.NRGBAAt(40, 12), "progress")
	assert.Equal(t, handle, img.NRGBAAt(20, 2), "left handle glass")
	assert.Equal(t, handle, img.NRGBAAt(76, 22), "right handle glass")
	assert.Equal(t, style.Background, img.NRGBAAt(10, 0), "rounded corner")
}

func TestRender_Brackets(t *testing.T) {
	plain, err := plainRenderer().Render(newController(t))
	require.NoError(t, err)

	r := plainRenderer()
	r.Brackets = true
	withBrackets, err := r.Render(newController(t))
	require.NoError(t, err)

	var changed int
	for y := 0; y < 24; y++ {
		for x := 10; x < 34; x++ {
			if plain.NRGBAAt(x, y) != withBrackets.NRGBAAt(x, y) {
				changed++
			}
		}
	}
	assert.Positive(t, changed, "no bracket drawn over the left handle")
	assert.Equal(t, plain.NRGBAAt(100, 12), withBrackets.NRGBAAt(100, 12))
}

func TestRender_FrostOnlyUnderHandles(t *testing.T) {
	plain, err := plainRenderer().Render(newController(t))
	require.NoError(t, err)

	r := plainRenderer()
	r.Frost = 3
	frosted, err := r.Render(newController(t))
	require.NoError(t, err)

	assert.Equal(t, plain.NRGBAAt(100, 12), frosted.NRGBAAt(100, 12))
	assert.Equal(t, plain.NRGBAAt(50, 12), frosted.NRGBAAt(50, 12))
	assert.NotEqual(t, plain.NRGBAAt(20, 9), frosted.NRGBAAt(20, 9), "track edge under the handle is blurred")
}

func TestRender_BlendMode(t *testing.T) {
	r := plainRenderer()
	r.Blend = "unknown"
	_, err := r.Render(newController(t))
	assert.Error(t, err)

	r.Blend = imop.Screen
	img, err := r.Render(newController(t))
	require.NoError(t, err)
	assert.Equal(t, r.Style.Background, img.NRGBAAt(0, 0))
}

func TestRender_Composite(t *testing.T) {
	r := plainRenderer()
	r.Composite = "plus"
	_, err := r.Render(newController(t))
	assert.Error(t, err)

	r.Composite = imop.Copy
	img, err := r.Render(newController(t))
	require.NoError(t, err)
	assert.Equal(t, r.Style.Handle, img.NRGBAAt(20, 2), "glass replaces the backdrop")
	assert.Equal(t, r.Style.Progress, img.NRGBAAt(40, 12), "later layers compose over")

	r.Composite = imop.DstOver
	img, err = r.Render(newController(t))
	require.NoError(t, err)
	assert.Equal(t, r.Style.Background, img.NRGBAAt(20, 2), "glass under an opaque backdrop")
}

func TestRender_SizeFollowsGeometry(t *testing.T) {
	c := newController(t)
	c.Resize(200.4, 30)
	img, err := plainRenderer().Render(c)
	require.NoError(t, err)
	assert.Equal(t, c.Geometry().Bounds().Image(), img.Bounds())
	assert.Equal(t, image.Rect(0, 0, 200, 30), img.Bounds())
}

func TestRender_WithoutTrack(t *testing.T) {
	c := trimview.NewController()
	c.Resize(40, 0)

	r := plainRenderer()
	img, err := r.Render(c)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 24), img.Bounds())
	for y := 0; y < 24; y++ {
		for x := 0; x < 40; x++ {
			require.Equal(t, r.Style.Background, img.NRGBAAt(x, y))
		}
	}
}

func TestScale(t *testing.T) {
	img, err := plainRenderer().Render(newController(t))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 296, 48), Scale(img, 2).Bounds())
	assert.Equal(t, img.Bounds(), Scale(img, 1).Bounds())
	assert.Equal(t, img.Pix, Scale(img, 0).Pix)
}

func TestRRect(t *testing.T) {
	m := newRRect(image.Rect(0, 0, 24, 24), 5)
	assert.Equal(t, color.Alpha{}, m.At(0, 0))
	assert.Equal(t, color.Alpha{A: 0xff}, m.At(5, 0))
	assert.Equal(t, color.Alpha{A: 0xff}, m.At(12, 12))
	assert.Equal(t, color.Alpha{}, m.At(23, 23))
	assert.Equal(t, color.Alpha{}, m.At(24, 12))

	// The radius is capped to half of the shorter side.
	assert.Equal(t, 4, newRRect(image.Rect(0, 0, 30, 8), 5).radius)
}

func TestEncode(t *testing.T) {
	img, err := plainRenderer().Render(newController(t))
	require.NoError(t, err)

	for _, format := range []string{PNG, JPEG, BMP} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, img, format))

			decoded, err := imaging.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), decoded.Bounds())
		})
	}

	err = Encode(&bytes.Buffer{}, img, "gif")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"out.png":  PNG,
		"out":      PNG,
		"out.JPEG": JPEG,
		"out.jpg":  JPEG,
		"a/b.bmp":  BMP,
	}
	for path, expected := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, got, path)
	}

	_, err := FormatFromPath("out.tiff")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteFile(t *testing.T) {
	img, err := plainRenderer().Render(newController(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.png")
	require.NoError(t, WriteFile(path, img))

	decoded, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
