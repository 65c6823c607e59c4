// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"sync"

	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
)

// View is a minimal [system.View] implementation for the emulated
// screen, used by tests and examples as a host widget stand-in.
// It also implements [system.HookInstaller] and [system.RegionTracker],
// recording the calls it receives.
type View struct {
	// App is the offscreen app whose screen the view is on.
	App *App

	// Frame is the view's bounding rect in y-up screen coordinates.
	Frame math32.Box2

	// Dir is the layout direction reported by the view.
	Dir system.Directions

	mu       sync.Mutex
	dead     bool
	detached bool
	region   math32.Box2
	hooksN   int
}

// NewView returns a new view with the given frame on the given app's screen.
func NewView(app *App, frame math32.Box2) *View {
	return &View{App: app, Frame: frame, region: frame}
}

func (v *View) Alive() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.dead
}

// Destroy marks the underlying toolkit object as gone.
func (v *View) Destroy() {
	v.mu.Lock()
	v.dead = true
	v.mu.Unlock()
}

// SetFrame moves the view to the given frame on screen.
func (v *View) SetFrame(frame math32.Box2) {
	v.mu.Lock()
	v.Frame = frame
	v.mu.Unlock()
}

// SetDetached controls whether the view reports being attached to a window.
func (v *View) SetDetached(detached bool) {
	v.mu.Lock()
	v.detached = detached
	v.mu.Unlock()
}

func (v *View) ScreenBounds() (math32.Box2, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dead || v.detached {
		return math32.Box2{}, false
	}
	return v.Frame, true
}

func (v *View) ScreenVisibleBounds() (math32.Box2, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dead || v.detached || v.App == nil {
		return math32.Box2{}, false
	}
	return v.App.VisibleBounds, true
}

// WindowToScreen converts window coordinates to screen coordinates.
// The emulated window fills the whole screen, so this is the identity.
func (v *View) WindowToScreen(p math32.Vector2) math32.Vector2 {
	return p
}

func (v *View) Direction() system.Directions {
	return v.Dir
}

// InstallTipHooks implements [system.HookInstaller], counting the calls.
func (v *View) InstallTipHooks() {
	v.mu.Lock()
	v.hooksN++
	v.mu.Unlock()
}

// HooksInstalled returns how many times InstallTipHooks has been called.
func (v *View) HooksInstalled() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hooksN
}

// SetTrackingRegion implements [system.RegionTracker].
func (v *View) SetTrackingRegion(bounds math32.Box2) {
	v.mu.Lock()
	v.region = bounds
	v.mu.Unlock()
}

// TrackingRegion returns the current tracked mouse region.
func (v *View) TrackingRegion() math32.Box2 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.region
}
