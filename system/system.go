// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the interface between the tooltip
// controller and the host windowing toolkit: the application driver,
// the host views that tips attach to, the content rendered inside a
// tip, and the floating overlay windows that display it.
package system

import (
	"image"
	"image/color"

	"github.com/hovergo/hovertip/cursorimg"
	"github.com/hovergo/hovertip/math32"
)

// TheApp is the current [App]; only one is ever in effect.
// It is set by the driver in use.
var TheApp App

// App is the interface to the host windowing toolkit driver.
// All methods other than RunOnMain must be called on the main thread.
type App interface {

	// Name is the overall name of the application.
	Name() string

	// RunOnMain runs the given function on the main UI thread.
	// All view mutation, window creation, and drawing must happen there.
	RunOnMain(f func())

	// NewOverlay creates a new borderless floating overlay window
	// with the given configuration. The driver fills the background,
	// strokes a thin border, and renders the content inset by the margins.
	NewOverlay(cfg OverlayConfig) Overlay

	// CurrentCursor returns the mouse cursor currently in effect,
	// or nil if it cannot be determined.
	CurrentCursor() *cursorimg.Cursor

	// WindowBackground returns the standard window background color
	// of the platform, used as the default tip background.
	WindowBackground() color.RGBA
}

// Directions is the text layout direction of a user interface.
type Directions int32

const (
	// LTR is a left-to-right layout direction.
	LTR Directions = iota

	// RTL is a right-to-left layout direction.
	RTL
)

func (d Directions) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// View is what the tooltip controller needs from a host widget.
// Implementations are typically thin wrappers around toolkit views.
type View interface {

	// Alive reports whether the underlying toolkit object still exists.
	// A false result invalidates any tooltip state held for the view.
	Alive() bool

	// ScreenBounds returns the view's bounding rect in non-flipped
	// (y-up) screen coordinates, and false if the view is not
	// currently attached to a window.
	ScreenBounds() (math32.Box2, bool)

	// ScreenVisibleBounds returns the visible bounds of the screen
	// that the view's window is on, and false if there is none.
	ScreenVisibleBounds() (math32.Box2, bool)

	// WindowToScreen converts the given point from the view's window
	// coordinates to screen coordinates.
	WindowToScreen(p math32.Vector2) math32.Vector2

	// Direction returns the layout direction of the view's interface.
	Direction() Directions
}

// Content is a widget that can be rendered inside a tip overlay.
type Content interface {

	// Size returns the rendered size of the content in points.
	Size() math32.Vector2

	// Render draws the content into the given image with its top-left
	// corner at the given raster point.
	Render(dst *image.RGBA, at image.Point)
}

// OverlayConfig configures a new overlay window.
type OverlayConfig struct {

	// Size is the total outer size of the overlay window,
	// already including margins on all sides.
	Size math32.Vector2

	// Margins is the padding between the content and the window border,
	// on each side, in the horizontal and vertical dimensions.
	Margins math32.Vector2

	// Background is the window fill color.
	Background color.RGBA

	// Content is the widget rendered inside the window. It may be nil.
	Content Content
}

// Overlay is a live borderless floating overlay window.
type Overlay interface {

	// Pos returns the window's bottom-left origin in screen coordinates.
	Pos() math32.Vector2

	// SetPos moves the window's bottom-left origin to the given
	// screen coordinates.
	SetPos(p math32.Vector2)

	// Size returns the total outer size of the window.
	Size() math32.Vector2

	// Close hides the window if it is still on screen and releases it.
	// It is safe to call multiple times.
	Close()
}

// HookInstaller is an optional capability on a [View]: views that
// implement it have InstallTipHooks called exactly once per concrete
// Go type on first tip attachment, so the view's wrapper can begin
// forwarding tracking-area and mouse events to the controller before
// running its own original handling.
type HookInstaller interface {
	InstallTipHooks()
}

// RegionTracker is an optional capability on a [View]: views that
// implement it are told the new tracking region bounds when the
// controller is notified of a layout change.
type RegionTracker interface {
	SetTrackingRegion(bounds math32.Box2)
}
