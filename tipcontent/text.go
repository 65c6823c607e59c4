// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tipcontent provides convenience content views for tool
// tips: plain or styled text and images with various scaling modes.
// These build a [system.Content] and hand it to [tooltip.Attach];
// they are conveniences on top of the controller, not part of it.
package tipcontent

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
	"github.com/hovergo/hovertip/tooltip"
)

// Text is a [system.Content] rendering one or more lines of text with
// a given font face and color.
type Text struct {

	// Text is the string to render; lines are separated by "\n".
	Text string

	// Face is the font face; [basicfont.Face7x13] by default.
	Face font.Face

	// Color is the text color; black by default.
	Color color.Color
}

// TextOption configures a [Text] content view.
type TextOption func(t *Text)

// WithFace sets the font face, for styled text.
func WithFace(face font.Face) TextOption {
	return func(t *Text) {
		t.Face = face
	}
}

// WithColor sets the text color, for styled text.
func WithColor(c color.Color) TextOption {
	return func(t *Text) {
		t.Color = c
	}
}

// NewText returns a new [Text] content view for the given string.
func NewText(s string, opts ...TextOption) *Text {
	t := &Text{Text: s, Face: basicfont.Face7x13, Color: color.Black}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the rendered size: the widest line by the line height
// times the number of lines.
func (t *Text) Size() math32.Vector2 {
	m := t.Face.Metrics()
	lh := float32(m.Height.Ceil())
	var w fixed.Int26_6
	lines := strings.Split(t.Text, "\n")
	for _, ln := range lines {
		adv := font.MeasureString(t.Face, ln)
		if adv > w {
			w = adv
		}
	}
	return math32.Vec2(float32(w.Ceil()), lh*float32(len(lines)))
}

// Render draws the text into the given image with its top-left corner
// at the given raster point.
func (t *Text) Render(dst *image.RGBA, at image.Point) {
	m := t.Face.Metrics()
	lh := m.Height.Ceil()
	asc := m.Ascent.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.Color),
		Face: t.Face,
	}
	for i, ln := range strings.Split(t.Text, "\n") {
		d.Dot = fixed.P(at.X, at.Y+asc+i*lh)
		d.DrawString(ln)
	}
}

// AttachText attaches a plain or styled text tip to the given owner.
func AttachText(owner system.View, s string, topts []TextOption, opts ...tooltip.Option) {
	tooltip.Attach(owner, NewText(s, topts...), opts...)
}
