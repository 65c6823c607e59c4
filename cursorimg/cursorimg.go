// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursorimg provides cursor images and the estimation of
// their visible bounds, used to anchor tool tips to the mouse cursor.
package cursorimg

import (
	"image"

	"github.com/hovergo/hovertip/cursors"
	"github.com/hovergo/hovertip/math32"
)

// DefaultAlphaThreshold is the default alpha value above which a
// cursor pixel is considered visible.
const DefaultAlphaThreshold = 0.5

// Cursor represents a realized cursor, with the [image.Image]
// of the cursor, its shape, and its hotspot.
type Cursor struct {
	// The image of the cursor.
	Image image.Image

	// The shape of the cursor.
	Shape cursors.Shapes

	// The hotspot is expressed in terms of raw cursor pixels,
	// relative to the top-left corner of the image.
	Hotspot image.Point
}

// New returns a new [Cursor] of the given shape for the given image,
// with the hotspot taken from the standard hotspot table, scaled to
// the image size.
func New(img image.Image, shape cursors.Shapes) *Cursor {
	return &Cursor{
		Image:   img,
		Shape:   shape,
		Hotspot: cursors.Hotspot(shape, img.Bounds().Dx()),
	}
}

// VisibleBounds returns the minimal rectangle enclosing the visible
// (non-transparent) pixels of the cursor image, in raster coordinates
// relative to the top-left corner of the image. Pixels are visible when
// their alpha exceeds the given threshold (0..1).
//
// When pixel-level alpha inspection is unavailable for the image's
// pixel format, it falls back to the per-shape table of empirically
// tuned visible-bounds fractions, and finally to the raw image bounds
// for unrecognized shapes.
func (c *Cursor) VisibleBounds(threshold float32) image.Rectangle {
	ib := c.Image.Bounds()
	raw := image.Rect(0, 0, ib.Dx(), ib.Dy())
	if hasAlpha(c.Image) {
		if vb, ok := alphaBounds(c.Image, threshold); ok {
			return vb
		}
	}
	if fb, ok := cursors.VisibleFractions[c.Shape]; ok {
		w, h := float32(ib.Dx()), float32(ib.Dy())
		return image.Rect(int(fb.X0*w), int(fb.Y0*h), int(math32.Ceil(fb.X1*w)), int(math32.Ceil(fb.Y1*h)))
	}
	return raw
}

// AnchorRect returns the screen-space rect of the cursor's visible
// bounds when the cursor is drawn with its hotspot at the given mouse
// point, in non-flipped (y-up) screen coordinates.
func (c *Cursor) AnchorRect(mouse math32.Vector2, threshold float32) math32.Box2 {
	vb := c.VisibleBounds(threshold)
	// the image's top-left corner on screen, given the hotspot at the mouse
	left := mouse.X - float32(c.Hotspot.X)
	top := mouse.Y + float32(c.Hotspot.Y)
	return math32.B2(left+float32(vb.Min.X), top-float32(vb.Max.Y),
		left+float32(vb.Max.X), top-float32(vb.Min.Y))
}

// hasAlpha returns whether the given image's pixel format carries
// per-pixel alpha information that can be inspected directly.
func hasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64, *image.Alpha, *image.Alpha16:
		return true
	}
	return false
}

// alphaBounds computes the minimal rectangle enclosing pixels whose
// alpha exceeds the given threshold, relative to the top-left corner
// of the image. It reports false if no pixel exceeds the threshold.
func alphaBounds(img image.Image, threshold float32) (image.Rectangle, bool) {
	ib := img.Bounds()
	lim := uint32(threshold * 0xffff)
	vb := image.Rectangle{}
	found := false
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a <= lim {
				continue
			}
			px := image.Rect(x-ib.Min.X, y-ib.Min.Y, x-ib.Min.X+1, y-ib.Min.Y+1)
			if !found {
				vb = px
				found = true
			} else {
				vb = vb.Union(px)
			}
		}
	}
	return vb, found
}
