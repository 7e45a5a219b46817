package trimview

import "image/color"

// Style describes how a trim view is painted. Sizes are in device independent pixels;
// every host converts them with its own density.
type Style struct {
	Background color.NRGBA
	Track      color.NRGBA
	Active     color.NRGBA
	Progress   color.NRGBA
	Handle     color.NRGBA
	Bracket    color.NRGBA

	HandleWidth float32
	LineHeight  float32
	Radius      float32
	HitSlop     float32
	BracketSize float32
}

// DefaultStyle returns translucent white glass handles on a dark background,
// a white active segment and a green progress bar.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
		Track:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x99},
		Active:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Progress:   color.NRGBA{G: 0xff, A: 0xff},
		Handle:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x33},
		Bracket:    color.NRGBA{A: 0xff},

		HandleWidth: 24,
		LineHeight:  8,
		Radius:      5,
		HitSlop:     0,
		BracketSize: 14,
	}
}

// Apply configures the pixel sizes of c for a display with pxPerDp pixels per dp.
func (s Style) Apply(c *Controller, pxPerDp float32) {
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	c.SetHandleWidth(s.HandleWidth * pxPerDp)
	c.SetLineHeight(s.LineHeight * pxPerDp)
	c.SetHitSlop(s.HitSlop * pxPerDp)
}
