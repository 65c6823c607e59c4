// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tooltip implements the tool-tip lifecycle controller: it
// tracks per-view mouse state, decides when to show and hide a
// floating overlay window based on mouse dwell time, and computes
// where that overlay is placed relative to the owning view, the mouse
// cursor, and the visible screen bounds.
//
// Host views forward their tracking-area and mouse events into
// [MouseEnter], [MouseMove], [MouseExit], and [TrackingBoundsChanged];
// everything else is automatic. The host windowing toolkit is
// abstracted behind the interfaces in the system package.
package tooltip

import (
	"image/color"
	"reflect"
	"sync"

	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
)

// Option configures a tip attachment.
type Option func(e *Entry)

// WithMargins sets the horizontal and vertical padding between the tip
// content and the overlay window border.
func WithMargins(m math32.Vector2) Option {
	return func(e *Entry) {
		e.Margins = m
	}
}

// WithBackground sets the overlay fill color. The default is the
// platform window background.
func WithBackground(c color.RGBA) Option {
	return func(e *Entry) {
		e.Background = c
	}
}

// WithOffsets sets explicit horizontal and vertical offsets between
// the anchor rect and the overlay. Without this option, the horizontal
// offset defaults to half the anchor width, and the vertical offset
// to zero.
func WithOffsets(off math32.Vector2) Option {
	return func(e *Entry) {
		e.Offsets = off
		e.OffsetsSet = true
	}
}

// AtCursor anchors the tip to the visible bounds of the mouse cursor
// at its last known location, instead of to the owning view's rect.
func AtCursor() Option {
	return func(e *Entry) {
		e.AtCursor = true
	}
}

var (
	installedMu sync.Mutex

	// concrete view types whose event hooks have been installed
	installed = map[reflect.Type]bool{}
)

// Attach registers or updates the tip entry for the given owner view,
// with the given content to render inside the tip. A nil content is
// permitted; the tip then exists but never renders, and a currently
// visible overlay is hidden. On the first attachment for a concrete
// view type, the view's [system.HookInstaller] capability (if
// implemented) is invoked so the wrapper can start forwarding events
// to the controller.
func Attach(owner system.View, content system.Content, opts ...Option) {
	if owner == nil {
		return
	}
	installHooks(owner)
	e := &Entry{
		Owner:      owner,
		Content:    content,
		Margins:    TheSettings.Margins,
		Background: TheSettings.Background,
	}
	for _, opt := range opts {
		opt(e)
	}
	reg.upsert(e)
	if content == nil {
		if _, visible, ok := reg.state(owner); ok && visible {
			system.TheApp.RunOnMain(func() {
				hideTip(owner)
			})
		}
	}
}

// Detach removes the tip entry for the given owner and hides any
// visible overlay. It is a no-op if the owner has no entry.
func Detach(owner system.View) {
	ov := reg.remove(owner)
	if ov != nil {
		system.TheApp.RunOnMain(func() {
			ov.Close()
		})
	}
}

// TrackingBoundsChanged is called when the owning view's layout
// changes: it forwards the new bounds to the view's
// [system.RegionTracker] capability (if implemented) so the tracked
// mouse region can be widened or narrowed, and repositions a currently
// visible tip against the new geometry.
func TrackingBoundsChanged(owner system.View, bounds math32.Box2) {
	if owner == nil {
		return
	}
	if rt, ok := owner.(system.RegionTracker); ok {
		rt.SetTrackingRegion(bounds)
	}
	if _, visible, ok := reg.state(owner); ok && visible {
		system.TheApp.RunOnMain(func() {
			repositionTip(owner)
		})
	}
}

// Has reports whether the given owner currently has a tip entry.
func Has(owner system.View) bool {
	_, _, ok := reg.state(owner)
	return ok
}

// IsVisible reports whether the given owner's tip overlay is
// currently shown.
func IsVisible(owner system.View) bool {
	_, visible, ok := reg.state(owner)
	return ok && visible
}

// installHooks invokes the owner's hook-installation capability once
// per concrete Go type, so each view wrapper type starts forwarding
// events exactly once.
func installHooks(owner system.View) {
	hi, ok := owner.(system.HookInstaller)
	if !ok {
		return
	}
	typ := reflect.TypeOf(owner)
	installedMu.Lock()
	done := installed[typ]
	installed[typ] = true
	installedMu.Unlock()
	if !done {
		hi.InstallTipHooks()
	}
}
