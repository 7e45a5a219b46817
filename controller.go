package trimview

import (
	"github.com/hmomeni/trimview/utils"
)

const (
	// DefaultMax is the upper bound of the logical range of a new controller.
	DefaultMax = 100
	// DefaultHandleWidth is the handle width in pixels used until the host sets its own.
	DefaultHandleWidth = 24
	// DefaultLineHeight is the thickness of the track in pixels.
	DefaultLineHeight = 8
)

// Range is a snapshot of the logical state of a Controller.
type Range struct {
	Max       int
	TrimStart int
	Trim      int
	MinTrim   int
	// MaxTrim equal to zero means "same as Max" when passed to Configure.
	MaxTrim  int
	Progress int
}

// End returns the logical position of the right edge of the trim window.
func (r Range) End() int { return r.TrimStart + r.Trim }

// DefaultRange returns the state of a freshly constructed controller.
func DefaultRange() Range {
	return Range{
		Max:     DefaultMax,
		Trim:    DefaultMax / 3,
		MaxTrim: DefaultMax,
	}
}

// Validate checks r against the range invariants.
// A progress between Trim and Max is accepted; Configure clamps it.
func (r Range) Validate() error {
	maxTrim := r.MaxTrim
	if maxTrim == 0 {
		maxTrim = r.Max
	}
	switch {
	case r.Max <= 0:
		return invariantErr("max", r.Max, "must be greater than zero")
	case maxTrim < 0 || maxTrim > r.Max:
		return invariantErr("maxTrim", maxTrim, "must be within [0, max=%d]", r.Max)
	case r.MinTrim < 0 || r.MinTrim > maxTrim:
		return invariantErr("minTrim", r.MinTrim, "must be within [0, maxTrim=%d]", maxTrim)
	case r.Trim < r.MinTrim || r.Trim > maxTrim:
		return invariantErr("trim", r.Trim, "must be within [minTrim=%d, maxTrim=%d]", r.MinTrim, maxTrim)
	case r.TrimStart < 0 || r.TrimStart+r.Trim > r.Max:
		return invariantErr("trimStart", r.TrimStart, "window [%d, %d] exceeds [0, %d]", r.TrimStart, r.TrimStart+r.Trim, r.Max)
	case r.Progress < 0 || r.Progress > r.Max:
		return invariantErr("progress", r.Progress, "must not exceed max(%d)", r.Max)
	}
	return nil
}

// Controller owns the range and progress state of a trim view, interprets pointer
// events and notifies a Listener about changes. It is not safe for concurrent use:
// drive it from the goroutine delivering the input events.
type Controller struct {
	max        int
	trimStart  int
	trim       int
	minTrim    int
	maxTrim    int
	maxTrimSet bool
	progress   int

	metrics metrics
	hitSlop float32
	geom    Geometry

	gesture  gesture
	listener Listener
}

// NewController returns a controller holding DefaultRange.
// The geometry stays empty until the host reports its size with Resize.
func NewController() *Controller {
	r := DefaultRange()
	c := &Controller{
		max:       r.Max,
		trimStart: r.TrimStart,
		trim:      r.Trim,
		minTrim:   r.MinTrim,
		maxTrim:   r.MaxTrim,
		progress:  r.Progress,
		metrics: metrics{
			handleWidth: DefaultHandleWidth,
			lineHeight:  DefaultLineHeight,
		},
		listener: NopListener{},
	}
	c.recompute()
	return c
}

// Max returns the length of the whole range.
func (c *Controller) Max() int { return c.max }

// TrimStart returns the start of the trim window.
func (c *Controller) TrimStart() int { return c.trimStart }

// Trim returns the length of the trim window.
func (c *Controller) Trim() int { return c.trim }

// MinTrim returns the smallest length the window may be dragged to.
func (c *Controller) MinTrim() int { return c.minTrim }

// MaxTrim returns the largest length the window may be dragged to.
func (c *Controller) MaxTrim() int { return c.maxTrim }

// Progress returns the playback position, relative to the start of the window.
func (c *Controller) Progress() int { return c.progress }

// Range returns a snapshot of the logical state.
func (c *Controller) Range() Range {
	return Range{
		Max:       c.max,
		TrimStart: c.trimStart,
		Trim:      c.trim,
		MinTrim:   c.minTrim,
		MaxTrim:   c.maxTrim,
		Progress:  c.progress,
	}
}

// SetListener registers l, replacing any previous listener. A nil l unregisters it.
func (c *Controller) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	c.listener = l
}

// SetMax sets the upper bound of the logical range. Nothing is rescaled: values which
// no longer fit are saturated to the new bound. MaxTrim follows max until it is set
// explicitly with SetMaxTrim.
func (c *Controller) SetMax(v int) error {
	if v <= 0 {
		return invariantErr("max", v, "must be greater than zero")
	}
	c.max = v
	if !c.maxTrimSet || c.maxTrim > v {
		c.maxTrim = v
	}
	c.minTrim = utils.Min(c.minTrim, c.maxTrim)
	c.trim = utils.Clamp(c.trim, c.minTrim, c.maxTrim)
	c.trimStart = utils.Clamp(c.trimStart, 0, v-c.trim)
	c.clampProgress()
	c.recompute()
	return nil
}

// SetTrim sets the width of the trim window. The progress is clamped to the new width.
func (c *Controller) SetTrim(v int) error {
	if v < c.minTrim || v > c.maxTrim {
		return invariantErr("trim", v, "must be within [minTrim=%d, maxTrim=%d]", c.minTrim, c.maxTrim)
	}
	if c.trimStart+v > c.max {
		return invariantErr("trim", v, "window [%d, %d] exceeds max(%d)", c.trimStart, c.trimStart+v, c.max)
	}
	c.trim = v
	c.clampProgress()
	c.recompute()
	return nil
}

// SetTrimStart moves the trim window without changing its width.
func (c *Controller) SetTrimStart(v int) error {
	if v < 0 || v+c.trim > c.max {
		return invariantErr("trimStart", v, "window [%d, %d] exceeds [0, %d]", v, v+c.trim, c.max)
	}
	c.trimStart = v
	c.recompute()
	return nil
}

// SetMinTrim sets the smallest permitted trim width.
func (c *Controller) SetMinTrim(v int) error {
	switch {
	case v < 0:
		return invariantErr("minTrim", v, "must not be negative")
	case v > c.maxTrim:
		return invariantErr("minTrim", v, "must not exceed maxTrim(%d)", c.maxTrim)
	case v > c.trim:
		return invariantErr("minTrim", v, "must not exceed the current trim(%d)", c.trim)
	}
	c.minTrim = v
	c.recompute()
	return nil
}

// SetMaxTrim sets the largest permitted trim width.
func (c *Controller) SetMaxTrim(v int) error {
	switch {
	case v > c.max:
		return invariantErr("maxTrim", v, "must not exceed max(%d)", c.max)
	case v < c.minTrim:
		return invariantErr("maxTrim", v, "must not be below minTrim(%d)", c.minTrim)
	case v < c.trim:
		return invariantErr("maxTrim", v, "must not be below the current trim(%d)", c.trim)
	}
	c.maxTrim = v
	c.maxTrimSet = true
	c.recompute()
	return nil
}

// SetProgress sets the progress position inside the trim window.
// A value above max is a programming error and is reported without touching the state;
// a value between trim and max is clamped to trim.
func (c *Controller) SetProgress(v int) error {
	if v > c.max {
		return invariantErr("progress", v, "must not exceed max(%d)", c.max)
	}
	if v < 0 {
		return invariantErr("progress", v, "must not be negative")
	}
	c.progress = utils.Min(v, c.trim)
	c.recompute()
	return nil
}

// Configure replaces the whole logical state at once. Either every value is applied
// or, on error, none is.
func (c *Controller) Configure(r Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	c.max = r.Max
	c.maxTrimSet = r.MaxTrim != 0
	c.maxTrim = r.MaxTrim
	if !c.maxTrimSet {
		c.maxTrim = r.Max
	}
	c.minTrim = r.MinTrim
	c.trim = r.Trim
	c.trimStart = r.TrimStart
	c.progress = utils.Min(r.Progress, r.Trim)
	c.recompute()
	return nil
}

// Resize reports the measured size of the widget in pixels. A zero height makes the
// widget as tall as a handle.
func (c *Controller) Resize(width, height float32) {
	c.metrics.autoHeight = height <= 0
	if c.metrics.autoHeight {
		height = c.metrics.handleWidth
	}
	c.metrics.width = width
	c.metrics.height = height
	c.recompute()
}

// SetHandleWidth sets the width of both handles in pixels.
func (c *Controller) SetHandleWidth(px float32) {
	c.metrics.handleWidth = utils.Max(px, 0)
	if c.metrics.autoHeight {
		c.metrics.height = c.metrics.handleWidth
	}
	c.recompute()
}

// SetLineHeight sets the thickness of the track in pixels.
func (c *Controller) SetLineHeight(px float32) {
	c.metrics.lineHeight = utils.Max(px, 0)
	c.recompute()
}

// SetHitSlop widens the handle hit regions by px on both sides.
func (c *Controller) SetHitSlop(px float32) {
	c.hitSlop = utils.Max(px, 0)
}

// HandleWidth returns the handle width in pixels.
func (c *Controller) HandleWidth() float32 { return c.metrics.handleWidth }

// TrackWidth returns the pixel extent the trim window can be dragged across.
func (c *Controller) TrackWidth() float32 { return c.metrics.trackWidth() }

// Geometry returns the rectangles to draw, always consistent with the logical state.
func (c *Controller) Geometry() Geometry {
	return c.geom
}

func (c *Controller) clampProgress() {
	c.progress = utils.Clamp(c.progress, 0, c.trim)
}

// recompute is the single place where the geometry is derived from the state.
// Every accepted mutation ends with a call to it.
func (c *Controller) recompute() {
	c.geom = c.metrics.derive(c.max, c.trimStart, c.trim, c.progress)
}
