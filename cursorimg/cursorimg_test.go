// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursorimg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hovergo/hovertip/cursors"
	"github.com/hovergo/hovertip/math32"
)

func TestAlphaBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 3; y < 8; y++ {
		for x := 2; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	c := &Cursor{Image: img, Shape: cursors.Arrow}
	assert.Equal(t, image.Rect(2, 3, 6, 8), c.VisibleBounds(DefaultAlphaThreshold))
}

func TestAlphaBoundsThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	// below the 0.5 threshold: must not count as visible
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 100})
	img.SetNRGBA(4, 4, color.NRGBA{0, 0, 0, 255})
	c := &Cursor{Image: img, Shape: cursors.Arrow}
	assert.Equal(t, image.Rect(4, 4, 5, 5), c.VisibleBounds(0.5))
	// with a lower threshold the faint pixel counts too
	assert.Equal(t, image.Rect(0, 0, 5, 5), c.VisibleBounds(0.2))
}

func TestFractionFallback(t *testing.T) {
	// Gray carries no alpha, so the per-shape table applies
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	c := &Cursor{Image: img, Shape: cursors.Arrow}
	fb := cursors.VisibleFractions[cursors.Arrow]
	want := image.Rect(int(fb.X0*20), int(fb.Y0*20), int(math32.Ceil(fb.X1*20)), int(math32.Ceil(fb.Y1*20)))
	assert.Equal(t, want, c.VisibleBounds(DefaultAlphaThreshold))
}

func TestRawBoundsFallback(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	c := &Cursor{Image: img, Shape: cursors.Shapes(99)}
	assert.Equal(t, image.Rect(0, 0, 16, 16), c.VisibleBounds(DefaultAlphaThreshold))
}

func TestFullyTransparentFallsBack(t *testing.T) {
	// alpha inspection finds nothing; the shape table takes over
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	c := &Cursor{Image: img, Shape: cursors.IBeam}
	fb := cursors.VisibleFractions[cursors.IBeam]
	want := image.Rect(int(fb.X0*20), int(fb.Y0*20), int(math32.Ceil(fb.X1*20)), int(math32.Ceil(fb.Y1*20)))
	assert.Equal(t, want, c.VisibleBounds(DefaultAlphaThreshold))
}

func TestAnchorRect(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 1; y < 8; y++ {
		for x := 1; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	c := &Cursor{Image: img, Shape: cursors.Arrow, Hotspot: image.Pt(2, 2)}
	// visible bounds are (1,1)-(6,8); with the hotspot at (100,200),
	// the image top-left is at (98, 202) in y-up screen space
	got := c.AnchorRect(math32.Vec2(100, 200), DefaultAlphaThreshold)
	assert.Equal(t, math32.B2(99, 194, 104, 201), got)
}

func TestNewHotspot(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	c := New(img, cursors.Crosshair)
	assert.Equal(t, image.Pt(16, 16), c.Hotspot)
	assert.Equal(t, cursors.Crosshair, c.Shape)
}
