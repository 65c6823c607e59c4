// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tipcontent

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"

	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
	"github.com/hovergo/hovertip/tooltip"
)

// ScaleModes are the ways an image can be scaled for display
// inside a tip.
type ScaleModes int32

const (
	// ScaleNone displays the image at its natural size.
	ScaleNone ScaleModes = iota

	// ScaleFixedWidth scales to the given width, preserving the
	// aspect ratio.
	ScaleFixedWidth

	// ScaleFixedHeight scales to the given height, preserving the
	// aspect ratio.
	ScaleFixedHeight

	// ScaleFixedSize scales to exactly the given size, stretching
	// if necessary.
	ScaleFixedSize

	// ScaleFactor scales both dimensions by a single uniform factor.
	ScaleFactor

	// ScaleFit scales as large as possible while fully fitting within
	// the given bounds and preserving the aspect ratio.
	ScaleFit
)

var scaleModeNames = map[ScaleModes]string{
	ScaleNone:        "none",
	ScaleFixedWidth:  "fixed-width",
	ScaleFixedHeight: "fixed-height",
	ScaleFixedSize:   "fixed-size",
	ScaleFactor:      "factor",
	ScaleFit:         "fit",
}

func (m ScaleModes) String() string {
	if n, ok := scaleModeNames[m]; ok {
		return n
	}
	return "none"
}

// Image is a [system.Content] rendering an image scaled per a
// [ScaleModes].
type Image struct {

	// Img is the image as displayed, already scaled.
	Img image.Image
}

// NewImage returns a new [Image] content view for the given image,
// scaled per the given mode. The meaning of arg depends on the mode:
// the target width (X) for [ScaleFixedWidth], the target height (Y)
// for [ScaleFixedHeight], the target size for [ScaleFixedSize], the
// uniform factor (X) for [ScaleFactor], and the bounding size for
// [ScaleFit]. It is ignored for [ScaleNone].
func NewImage(img image.Image, mode ScaleModes, arg math32.Vector2) *Image {
	sz := img.Bounds().Size()
	szx, szy := float32(sz.X), float32(sz.Y)
	if szx == 0 || szy == 0 {
		return &Image{Img: img}
	}
	var x, y float32
	switch mode {
	case ScaleFixedWidth:
		x = arg.X
		y = szy * (arg.X / szx)
	case ScaleFixedHeight:
		y = arg.Y
		x = szx * (arg.Y / szy)
	case ScaleFixedSize:
		x, y = arg.X, arg.Y
	case ScaleFactor:
		x = szx * arg.X
		y = szy * arg.X
	case ScaleFit:
		// image and box aspect ratio
		iar := szx / szy
		bar := arg.X / arg.Y
		if iar >= bar {
			// if we have a higher x:y than the box, x is the limiting size
			x = arg.X
			y = szy * (arg.X / szx)
		} else {
			y = arg.Y
			x = szx * (arg.Y / szy)
		}
	default:
		return &Image{Img: img}
	}
	if int(x) <= 0 || int(y) <= 0 {
		return &Image{Img: img}
	}
	return &Image{Img: transform.Resize(img, int(x), int(y), transform.Linear)}
}

// Size returns the displayed image size.
func (im *Image) Size() math32.Vector2 {
	return math32.FromPoint(im.Img.Bounds().Size())
}

// Render draws the image into the given image with its top-left
// corner at the given raster point.
func (im *Image) Render(dst *image.RGBA, at image.Point) {
	b := im.Img.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(dst, r, im.Img, b.Min, draw.Over)
}

// AttachImage attaches an image tip to the given owner, scaled per
// the given mode.
func AttachImage(owner system.View, img image.Image, mode ScaleModes, arg math32.Vector2, opts ...tooltip.Option) {
	tooltip.Attach(owner, NewImage(img, mode, arg), opts...)
}
