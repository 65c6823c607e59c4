// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"image/color"
	"time"

	"github.com/hovergo/hovertip/system"
)

// showTip materializes the overlay window for the given owner's tip.
// Main thread only. It is idempotent: a second call while the tip is
// already visible neither creates a second overlay nor moves the
// existing one. A missing entry or nil content suppresses showing.
// The dwell is re-validated under the lock, so a move that lands
// between the background check and this call keeps the tip hidden.
func showTip(owner system.View) {
	reg.update(owner, func(e *Entry) {
		if e.Visible {
			return
		}
		if e.Content == nil {
			// tip exists but never renders
			return
		}
		if e.DwellStart.IsZero() || time.Since(e.DwellStart) < DwellTime {
			return
		}
		size := e.Content.Size().Add(e.Margins.MulScalar(2))
		ov := system.TheApp.NewOverlay(system.OverlayConfig{
			Size:       size,
			Margins:    e.Margins,
			Background: resolveBackground(e.Background),
			Content:    e.Content,
		})
		if pos, ok := tipPos(e, size); ok {
			ov.SetPos(pos)
		}
		e.Overlay = ov
		e.Visible = true
	})
}

// hideTip tears down the overlay window for the given owner's tip,
// if any. Main thread only. The overlay is fully released per hide;
// showing again re-creates it.
func hideTip(owner system.View) {
	var ov system.Overlay
	reg.update(owner, func(e *Entry) {
		ov = e.Overlay
		e.Overlay = nil
		e.Visible = false
	})
	if ov != nil {
		ov.Close()
	}
}

// repositionTip recomputes the placement of a visible tip against the
// owner's current geometry. Main thread only.
func repositionTip(owner system.View) {
	reg.update(owner, func(e *Entry) {
		if !e.Visible || e.Overlay == nil {
			return
		}
		if pos, ok := tipPos(e, e.Overlay.Size()); ok {
			e.Overlay.SetPos(pos)
		}
	})
}

// resolveBackground substitutes the platform window background for a
// fully transparent (unset) color.
func resolveBackground(c color.RGBA) color.RGBA {
	if c.A == 0 {
		return system.TheApp.WindowBackground()
	}
	return c
}
