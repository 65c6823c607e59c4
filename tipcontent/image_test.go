// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tipcontent

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hovergo/hovertip/math32"
)

func TestImageScaleModes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))

	assert.Equal(t, math32.Vec2(40, 20), NewImage(src, ScaleNone, math32.Vector2{}).Size())
	assert.Equal(t, math32.Vec2(80, 40), NewImage(src, ScaleFixedWidth, math32.Vec2(80, 0)).Size())
	assert.Equal(t, math32.Vec2(80, 40), NewImage(src, ScaleFixedHeight, math32.Vec2(0, 40)).Size())
	assert.Equal(t, math32.Vec2(10, 30), NewImage(src, ScaleFixedSize, math32.Vec2(10, 30)).Size())
	assert.Equal(t, math32.Vec2(20, 10), NewImage(src, ScaleFactor, math32.Vec2(0.5, 0)).Size())
}

func TestImageScaleFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	// wide image in a square box: width limits
	assert.Equal(t, math32.Vec2(30, 15), NewImage(src, ScaleFit, math32.Vec2(30, 30)).Size())

	tall := image.NewRGBA(image.Rect(0, 0, 20, 40))
	// tall image in a square box: height limits
	assert.Equal(t, math32.Vec2(15, 30), NewImage(tall, ScaleFit, math32.Vec2(30, 30)).Size())
}

func TestScaleModesString(t *testing.T) {
	assert.Equal(t, "fixed-width", ScaleFixedWidth.String())
	assert.Equal(t, "none", ScaleModes(42).String())
}
