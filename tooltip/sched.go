// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"sync"
	"time"

	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
)

var (
	// DwellTime is the time the mouse must remain stationary inside a
	// view's tracking region before its tip shows. Process-wide.
	DwellTime = 1 * time.Second

	// PollInterval is the interval between recurring checks once a
	// dwell chain is running. Process-wide.
	PollInterval = 100 * time.Millisecond
)

// chains counts the check chains currently running, from the enter
// that starts one to the tick that terminates it. Tests wait on it to
// quiesce the package before changing the timing variables.
var chains sync.WaitGroup

// MouseEnter is called by the host view wrapper when the mouse enters
// the view's tracking region, with the location in window coordinates.
// It records the dwell start and begins the repeating check chain that
// drives delayed appearance.
func MouseEnter(owner system.View, posInWindow math32.Vector2) {
	ok := reg.update(owner, func(e *Entry) {
		e.DwellStart = time.Now()
		e.LastMouse = posInWindow
	})
	if !ok {
		return
	}
	chains.Add(1)
	time.AfterFunc(DwellTime, func() {
		dwellCheck(owner)
	})
}

// MouseMove is called by the host view wrapper on mouse movement
// inside the tracking region. A visible tip is hidden and the dwell
// countdown restarts, re-arming the tip without a fresh enter. The
// running check chain is left alone; it self-regulates.
func MouseMove(owner system.View, posInWindow math32.Vector2) {
	wasVisible := false
	ok := reg.update(owner, func(e *Entry) {
		wasVisible = e.Visible
		e.DwellStart = time.Now()
		e.LastMouse = posInWindow
	})
	if ok && wasVisible {
		system.TheApp.RunOnMain(func() {
			hideTip(owner)
		})
	}
}

// MouseExit is called by the host view wrapper when the mouse leaves
// the tracking region. It hides any visible tip and clears the dwell
// timestamp, which ends the check chain on its next tick.
func MouseExit(owner system.View) {
	wasVisible := false
	ok := reg.update(owner, func(e *Entry) {
		wasVisible = e.Visible
		e.DwellStart = time.Time{}
	})
	if ok && wasVisible {
		system.TheApp.RunOnMain(func() {
			hideTip(owner)
		})
	}
}

// dwellCheck is one step of the repeating check chain. The chain
// terminates when the entry is gone (owner teardown or detach) or the
// dwell timestamp is cleared (mouse exit); otherwise it keeps itself
// scheduled at [PollInterval]. While the tip is visible the step is an
// idempotent no-op, which is what tolerates re-arming after a
// hide-on-move without any cancellation tokens.
func dwellCheck(owner system.View) {
	dwell, visible, ok := reg.state(owner)
	if !ok || dwell.IsZero() {
		chains.Done()
		return
	}
	if !visible && time.Since(dwell) >= DwellTime {
		system.TheApp.RunOnMain(func() {
			showTip(owner)
		})
	}
	time.AfterFunc(PollInterval, func() {
		dwellCheck(owner)
	})
}
