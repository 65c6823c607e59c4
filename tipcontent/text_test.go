// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tipcontent

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSize(t *testing.T) {
	short := NewText("ab")
	long := NewText("abcdef")
	assert.Less(t, short.Size().X, long.Size().X)
	assert.Equal(t, short.Size().Y, long.Size().Y)

	two := NewText("ab\ncd")
	assert.Equal(t, 2*short.Size().Y, two.Size().Y)
	assert.Equal(t, short.Size().X, two.Size().X)
}

func TestTextRender(t *testing.T) {
	txt := NewText("hi", WithColor(color.RGBA{255, 0, 0, 255}))
	sz := txt.Size().ToPointCeil()
	dst := image.NewRGBA(image.Rect(0, 0, sz.X+10, sz.Y+10))
	txt.Render(dst, image.Pt(5, 5))

	found := false
	for y := 0; y < dst.Bounds().Dy() && !found; y++ {
		for x := 0; x < dst.Bounds().Dx(); x++ {
			if dst.RGBAAt(x, y).R > 0 {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "rendering wrote no text pixels")
}
