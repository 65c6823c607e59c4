// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
)

func TestOverlayLifecycle(t *testing.T) {
	app := NewApp()
	ov := app.NewOverlay(system.OverlayConfig{
		Size:       math32.Vec2(20, 10),
		Background: color.RGBA{255, 0, 0, 255},
	})
	require.Len(t, app.Overlays(), 1)
	assert.Equal(t, 1, app.OpenedCount())

	ov.SetPos(math32.Vec2(3, 4))
	assert.Equal(t, math32.Vec2(3, 4), ov.Pos())

	ov.Close()
	ov.Close() // idempotent
	assert.Empty(t, app.Overlays())
	assert.Equal(t, 1, app.OpenedCount())
}

func TestOverlayRender(t *testing.T) {
	app := NewApp()
	ov := app.NewOverlay(system.OverlayConfig{
		Size:       math32.Vec2(20, 10),
		Margins:    math32.Vec2(5, 5),
		Background: color.RGBA{255, 0, 0, 255},
	}).(*Overlay)

	img := ov.Render()
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
	// border pixel at the corner, background fill inside it
	assert.NotEqual(t, img.RGBAAt(1, 1), img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 1))
}

func TestArrowCursor(t *testing.T) {
	cur := ArrowCursor(24)
	vb := cur.VisibleBounds(0.5)
	assert.False(t, vb.Empty())
	assert.LessOrEqual(t, vb.Max.X, 24)
}
