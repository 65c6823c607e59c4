// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors provides the standard cursor shapes and the
// geometry tables used to estimate their visible bounds on screen.
package cursors

import "image"

// Shapes are the standard mouse cursor shapes provided by
// desktop windowing toolkits.
type Shapes int32

const (
	// Arrow is the default arrow pointer.
	Arrow Shapes = iota

	// IBeam is the text-selection I-beam.
	IBeam

	// Crosshair is a thin crosshair for precise selection.
	Crosshair

	// PointingHand is a hand with the index finger extended,
	// typically used over links.
	PointingHand

	// OpenHand is an open hand, typically used for grabbable content.
	OpenHand

	// ClosedHand is a closed hand, shown while dragging content.
	ClosedHand

	// ResizeLeft indicates resizing toward the left edge.
	ResizeLeft

	// ResizeRight indicates resizing toward the right edge.
	ResizeRight

	// ResizeLeftRight indicates horizontal resizing in both directions.
	ResizeLeftRight

	// ResizeUp indicates resizing toward the top edge.
	ResizeUp

	// ResizeDown indicates resizing toward the bottom edge.
	ResizeDown

	// ResizeUpDown indicates vertical resizing in both directions.
	ResizeUpDown

	// NotAllowed indicates that the current operation is not permitted.
	NotAllowed

	// DragCopy indicates that a drag operation will copy.
	DragCopy

	// DragLink indicates that a drag operation will create a link.
	DragLink

	// ContextualMenu is the arrow with a small menu glyph.
	ContextualMenu

	// ShapesN is the number of defined cursor shapes.
	ShapesN
)

var shapeNames = map[Shapes]string{
	Arrow:           "arrow",
	IBeam:           "ibeam",
	Crosshair:       "crosshair",
	PointingHand:    "pointing-hand",
	OpenHand:        "open-hand",
	ClosedHand:      "closed-hand",
	ResizeLeft:      "resize-left",
	ResizeRight:     "resize-right",
	ResizeLeftRight: "resize-left-right",
	ResizeUp:        "resize-up",
	ResizeDown:      "resize-down",
	ResizeUpDown:    "resize-up-down",
	NotAllowed:      "not-allowed",
	DragCopy:        "drag-copy",
	DragLink:        "drag-link",
	ContextualMenu:  "contextual-menu",
}

func (s Shapes) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "unknown"
}

// Hotspots contains the cursor hotspot points for each shape,
// expressed in a 256-unit normalized space; scale by the actual
// cursor size and divide by 256 to get raw pixel coordinates.
var Hotspots = map[Shapes]image.Point{
	Arrow:           image.Pt(24, 16),
	IBeam:           image.Pt(128, 128),
	Crosshair:       image.Pt(128, 128),
	PointingHand:    image.Pt(88, 24),
	OpenHand:        image.Pt(128, 128),
	ClosedHand:      image.Pt(128, 128),
	ResizeLeft:      image.Pt(48, 128),
	ResizeRight:     image.Pt(208, 128),
	ResizeLeftRight: image.Pt(128, 128),
	ResizeUp:        image.Pt(128, 48),
	ResizeDown:      image.Pt(128, 208),
	ResizeUpDown:    image.Pt(128, 128),
	NotAllowed:      image.Pt(24, 16),
	DragCopy:        image.Pt(24, 16),
	DragLink:        image.Pt(24, 16),
	ContextualMenu:  image.Pt(24, 16),
}

// FracBounds is a rectangle expressed as fractions of a cursor
// image's size, in raster orientation: X0, Y0 is the top-left
// fraction and X1, Y1 the bottom-right.
type FracBounds struct {
	X0, Y0, X1, Y1 float32
}

// VisibleFractions contains empirically tuned visible-bounds
// rectangles for each shape, as fractions of the image size.
// They are the fallback used when pixel-level alpha inspection of
// the cursor image is unavailable. Shapes missing from this table
// fall back to the raw image bounds.
var VisibleFractions = map[Shapes]FracBounds{
	Arrow:           {0, 0, 0.6, 0.8},
	IBeam:           {0.3, 0.05, 0.7, 0.95},
	Crosshair:       {0.1, 0.1, 0.9, 0.9},
	PointingHand:    {0.1, 0, 0.9, 0.85},
	OpenHand:        {0.1, 0.1, 0.9, 0.9},
	ClosedHand:      {0.1, 0.2, 0.9, 0.85},
	ResizeLeft:      {0, 0.3, 0.7, 0.7},
	ResizeRight:     {0.3, 0.3, 1, 0.7},
	ResizeLeftRight: {0, 0.3, 1, 0.7},
	ResizeUp:        {0.3, 0, 0.7, 0.7},
	ResizeDown:      {0.3, 0.3, 0.7, 1},
	ResizeUpDown:    {0.3, 0, 0.7, 1},
	NotAllowed:      {0, 0, 0.8, 0.8},
	ContextualMenu:  {0, 0, 0.9, 0.8},
}

// Hotspot returns the hotspot for the given shape in raw pixels
// for a cursor image of the given size. Shapes without a known
// hotspot use the top-left corner.
func Hotspot(shape Shapes, size int) image.Point {
	hot, ok := Hotspots[shape]
	if !ok {
		return image.Point{}
	}
	return hot.Mul(size).Div(256)
}
