// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless in-memory driver, used for
// testing and for running examples without a windowing toolkit.
package offscreen

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/hovergo/hovertip/cursorimg"
	"github.com/hovergo/hovertip/cursors"
	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
)

// App is the headless [system.App] implementation. RunOnMain runs
// functions synchronously, and overlay windows are recorded in memory
// so tests can assert on them.
type App struct {

	// Nm is the application name.
	Nm string

	// VisibleBounds is the visible bounds of the single emulated
	// screen, in y-up coordinates.
	VisibleBounds math32.Box2

	// Cursor is the cursor reported as currently in effect.
	Cursor *cursorimg.Cursor

	mu       sync.Mutex
	overlays []*Overlay
	opened   int
}

// NewApp returns a new offscreen [App] with an 800x600 screen and the
// default arrow cursor, and installs it as [system.TheApp].
func NewApp() *App {
	app := &App{
		Nm:            "offscreen",
		VisibleBounds: math32.B2(0, 0, 800, 600),
		Cursor:        ArrowCursor(24),
	}
	system.TheApp = app
	return app
}

func (a *App) Name() string { return a.Nm }

// RunOnMain runs the given function synchronously. The offscreen
// driver has no real UI thread, so callers are serialized only by
// their own scheduling.
func (a *App) RunOnMain(f func()) { f() }

func (a *App) CurrentCursor() *cursorimg.Cursor { return a.Cursor }

func (a *App) WindowBackground() color.RGBA {
	return color.RGBA{236, 236, 236, 255}
}

// NewOverlay records and returns a new in-memory overlay window.
func (a *App) NewOverlay(cfg system.OverlayConfig) system.Overlay {
	ov := &Overlay{app: a, cfg: cfg}
	a.mu.Lock()
	a.overlays = append(a.overlays, ov)
	a.opened++
	a.mu.Unlock()
	return ov
}

// Overlays returns the overlay windows currently open.
func (a *App) Overlays() []*Overlay {
	a.mu.Lock()
	defer a.mu.Unlock()
	ovs := make([]*Overlay, len(a.overlays))
	copy(ovs, a.overlays)
	return ovs
}

// OpenedCount returns the total number of overlay windows ever
// created, including those since closed.
func (a *App) OpenedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.opened
}

func (a *App) closeOverlay(ov *Overlay) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, o := range a.overlays {
		if o == ov {
			a.overlays = append(a.overlays[:i], a.overlays[i+1:]...)
			return
		}
	}
}

// Overlay is an in-memory overlay window.
type Overlay struct {
	app *App
	cfg system.OverlayConfig

	mu     sync.Mutex
	pos    math32.Vector2
	closed bool
}

func (o *Overlay) Pos() math32.Vector2 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pos
}

func (o *Overlay) SetPos(p math32.Vector2) {
	o.mu.Lock()
	o.pos = p
	o.mu.Unlock()
}

func (o *Overlay) Size() math32.Vector2 { return o.cfg.Size }

// Closed reports whether the overlay has been closed.
func (o *Overlay) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

// Close hides and releases the overlay. It is idempotent.
func (o *Overlay) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()
	o.app.closeOverlay(o)
}

// Render composites the overlay into an image: background fill, a one
// pixel border, and the content inset by the margins.
func (o *Overlay) Render() *image.RGBA {
	sz := o.cfg.Size.ToPointCeil()
	dst := image.NewRGBA(image.Rect(0, 0, sz.X, sz.Y))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(o.cfg.Background), image.Point{}, draw.Src)
	border := color.RGBA{128, 128, 128, 255}
	for x := 0; x < sz.X; x++ {
		dst.SetRGBA(x, 0, border)
		dst.SetRGBA(x, sz.Y-1, border)
	}
	for y := 0; y < sz.Y; y++ {
		dst.SetRGBA(0, y, border)
		dst.SetRGBA(sz.X-1, y, border)
	}
	if o.cfg.Content != nil {
		o.cfg.Content.Render(dst, o.cfg.Margins.ToPointRound())
	}
	return dst
}

// ArrowCursor returns a simple generated arrow cursor of the given
// pixel size, for use as the emulated current cursor.
func ArrowCursor(size int) *cursorimg.Cursor {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	black := color.NRGBA{0, 0, 0, 255}
	// a solid right triangle hanging from the top-left corner
	for y := 0; y < size*3/4; y++ {
		for x := 0; x <= y && x < size/2; x++ {
			img.SetNRGBA(x, y, black)
		}
	}
	return cursorimg.New(img, cursors.Arrow)
}
