// Package gui hosts a trim view in a Gio window.
package gui

import (
	"context"
	"fmt"
	"image"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"github.com/hmomeni/trimview"
	"github.com/hmomeni/trimview/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// TrimView is a Gio widget hosting a Controller. It forwards the pointer events of its
// area to the controller and paints the controller's geometry.
type TrimView struct {
	Controller *trimview.Controller
	Style      trimview.Style
	// Theme is used to draw the bracket glyphs. They are skipped when it is nil.
	Theme *material.Theme

	pid pointer.ID
}

// Layout measures the widget to the maximum width and the handle height, handles the
// pending pointer events and draws the widget.
func (v *TrimView) Layout(gtx C) D {
	c := v.Controller
	v.Style.Apply(c, gtx.Metric.PxPerDp)

	size := image.Pt(gtx.Constraints.Max.X, int(c.HandleWidth()))
	c.Resize(float32(size.X), float32(size.Y))
	v.update(gtx)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	pointer.InputOp{
		Tag:   v,
		Grab:  c.Dragging(),
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(gtx.Ops)

	v.draw(gtx)
	return D{Size: size}
}

// update feeds the pointer events queued for v into the controller.
// Only the pointer which started the gesture is followed; other pointers are ignored
// until it is released.
func (v *TrimView) update(gtx C) {
	c := v.Controller
	for _, ev := range gtx.Events(v) {
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Press:
			if !(e.Buttons == pointer.ButtonPrimary || e.Source == pointer.Touch) {
				continue
			}
			if c.Dragging() && e.PointerID != v.pid {
				continue
			}
			v.pid = e.PointerID
			c.PointerDown(e.Position.X, e.Position.Y)
		case pointer.Drag:
			if !c.Dragging() || e.PointerID != v.pid {
				continue
			}
			_, _ = c.PointerMove(e.Position.X, e.Position.Y)
		case pointer.Release:
			if !c.Dragging() || e.PointerID != v.pid {
				continue
			}
			_ = c.PointerUp(e.Position.X, e.Position.Y)
		case pointer.Cancel:
			c.ResetGesture()
		}
	}
}

// Window is the sample host application: a window showing a TrimView and a status line.
// Configuration reloads and the progress auto-advance are received on channels and
// applied on the window's event goroutine, the only goroutine touching the controller.
type Window struct {
	cfg struct {
		title   string
		width   float32
		height  float32
		advance time.Duration
	}
	view   TrimView
	reload <-chan *trimview.Config
	log    logrus.FieldLogger
	ops    op.Ops
}

// NewWindow creates the window runner for c configured by cfg.
func NewWindow(c *trimview.Controller, cfg *trimview.Config, log logrus.FieldLogger) (*Window, error) {
	g := &Window{log: log}
	g.view.Controller = c
	g.view.Theme = material.NewTheme(gofont.Collection())

	if err := g.apply(cfg); err != nil {
		return nil, err
	}
	g.cfg.title = cfg.Window.Title
	g.cfg.width = float32(cfg.Window.Width)
	g.cfg.height = float32(cfg.Window.Height)
	return g, nil
}

// Watch makes Run apply every configuration received on ch.
func (g *Window) Watch(ch <-chan *trimview.Config) {
	g.reload = ch
}

// apply installs the style and the range of cfg. On error nothing changes.
func (g *Window) apply(cfg *trimview.Config) error {
	style, err := cfg.Style.Parse()
	if err != nil {
		return err
	}
	if err := g.view.Controller.Configure(cfg.Range.Range()); err != nil {
		return fmt.Errorf("invalid range: %w", err)
	}
	g.view.Style = style
	g.cfg.advance = cfg.Playback.Advance.Duration
	return nil
}

// Run opens the window and processes its events until the window is closed or the
// context is cancelled. Like every Gio program, app.Main must run on the main goroutine.
func (g *Window) Run(ctx context.Context) error {
	w := app.NewWindow(
		app.Title(g.cfg.title),
		app.Size(unit.Dp(g.cfg.width), unit.Dp(g.cfg.height)),
	)

	ticker := time.NewTicker(time.Hour)
	ticker.Stop()
	defer ticker.Stop()
	resetTicker := func() {
		if g.cfg.advance > 0 {
			ticker.Reset(g.cfg.advance)
		} else {
			ticker.Stop()
		}
	}
	resetTicker()

	done := ctx.Done()
	for {
		select {
		case <-done:
			done = nil
			w.Close()
		case e := <-w.Events():
			switch e := e.(type) {
			case system.FrameEvent:
				g.frame(e)
			case key.Event:
				if e.Name == key.NameEscape {
					w.Close()
				}
			case system.DestroyEvent:
				return e.Err
			}
		case cfg, ok := <-g.reload:
			if !ok {
				g.reload = nil
				continue
			}
			if err := g.apply(cfg); err != nil {
				g.log.WithError(err).Warn("configuration rejected, keeping the current one")
				continue
			}
			resetTicker()
			g.log.WithField("range", g.status()).Info("configuration reloaded")
			w.Invalidate()
		case <-ticker.C:
			if trimview.Advance(g.view.Controller) {
				w.Invalidate()
			}
		}
	}
}

// frame lays out the whole window for one frame.
func (g *Window) frame(e system.FrameEvent) {
	gtx := layout.NewContext(&g.ops, e)
	paint.Fill(gtx.Ops, g.view.Style.Background)

	th := g.view.Theme
	layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(g.view.Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx C) D {
				lbl := material.Body1(th, g.status())
				lbl.Color = g.view.Style.Active
				return lbl.Layout(gtx)
			}),
		)
	})
	e.Frame(gtx.Ops)
}

func (g *Window) status() string {
	c := g.view.Controller
	return fmt.Sprintf("%s  progress %d/%d", utils.FormatRange(c.TrimStart(), c.Trim(), c.Max()), c.Progress(), c.Trim())
}
