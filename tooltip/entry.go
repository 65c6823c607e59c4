// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"image/color"
	"time"

	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
)

// Entry is the tooltip state for one owning view. Entries live in the
// process-wide registry, keyed by owner identity, and all field
// mutation happens under the registry lock.
type Entry struct {

	// Owner is the host view the tip is attached to. The entry is
	// invalid once the owner reports not being alive, and is then
	// lazily purged from the registry.
	Owner system.View

	// Content is the widget rendered inside the tip. When nil, the
	// entry exists but showing is suppressed.
	Content system.Content

	// Margins is the horizontal and vertical padding between the
	// content and the overlay window border.
	Margins math32.Vector2

	// Background is the overlay fill color. A fully transparent color
	// means the platform window background is used.
	Background color.RGBA

	// Offsets is the horizontal and vertical offset between the anchor
	// rect and the overlay, when OffsetsSet is true.
	Offsets math32.Vector2

	// OffsetsSet indicates that Offsets overrides the default
	// (half the anchor width horizontally, zero vertically).
	OffsetsSet bool

	// AtCursor anchors placement to the cursor's visible bounds at
	// LastMouse instead of the owner's rect.
	AtCursor bool

	// DwellStart is when the mouse last became stationary inside the
	// tracking region. The zero value means the mouse is outside the
	// region, which is what terminates a running check chain.
	DwellStart time.Time

	// LastMouse is the most recent mouse location in window
	// coordinates, used to re-derive cursor-anchored placement.
	LastMouse math32.Vector2

	// Visible is whether the overlay is currently shown.
	Visible bool

	// Overlay is the live overlay window; non-nil iff Visible.
	Overlay system.Overlay
}
