// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
)

// place computes the bottom-left origin for an overlay window of the
// given size, anchored to the given rect on a screen with the given
// visible bounds. All geometry is in non-flipped (y-up) coordinates.
//
// Default placement is below the anchor, horizontally offset toward
// the reading direction: to the right of anchor.Min.X in
// left-to-right layouts, to the left of anchor.Max.X in right-to-left
// layouts. Placement that would extend past the trailing screen edge
// is clamped inward by edgePad from that edge; placement that would
// extend past the bottom edge flips above the anchor instead.
func place(anchor, screen math32.Box2, size, off math32.Vector2, dir system.Directions, edgePad float32) math32.Vector2 {
	var pos math32.Vector2
	switch dir {
	case system.RTL:
		pos.X = anchor.Max.X - off.X - size.X
		if pos.X < screen.Min.X {
			pos.X = screen.Min.X + edgePad
		}
	default:
		pos.X = anchor.Min.X + off.X
		if pos.X+size.X > screen.Max.X {
			pos.X = screen.Max.X - size.X - edgePad
		}
	}
	pos.Y = anchor.Min.Y - off.Y - size.Y
	if pos.Y < screen.Min.Y {
		// flip above the anchor
		pos.Y = anchor.Max.Y + off.Y
	}
	return pos
}

// tipPos computes the overlay origin for the given entry, or reports
// false when screen or owner geometry is unavailable, in which case
// placement is skipped and the overlay keeps its prior origin.
// The registry lock must be held by the caller.
func tipPos(e *Entry, size math32.Vector2) (math32.Vector2, bool) {
	anchor, ok := e.Owner.ScreenBounds()
	if !ok {
		return math32.Vector2{}, false
	}
	screen, ok := e.Owner.ScreenVisibleBounds()
	if !ok {
		return math32.Vector2{}, false
	}
	if e.AtCursor {
		if cur := system.TheApp.CurrentCursor(); cur != nil {
			mouse := e.Owner.WindowToScreen(e.LastMouse)
			anchor = cur.AnchorRect(mouse, TheSettings.AlphaThreshold)
		}
	}
	off := e.Offsets
	if !e.OffsetsSet {
		off = math32.Vec2(anchor.Size().X/2, 0)
	}
	return place(anchor, screen, size, off, e.Owner.Direction(), TheSettings.EdgePad), true
}
