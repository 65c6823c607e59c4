// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tipcontent

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hovergo/hovertip/base/errors"
	"github.com/hovergo/hovertip/math32"
	"github.com/hovergo/hovertip/system"
	"github.com/hovergo/hovertip/tooltip"
)

// NewImageFile returns a new [Image] content view loaded from the
// given file, scaled per the given mode as in [NewImage].
func NewImageFile(filename string, mode ScaleModes, arg math32.Vector2) (*Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return NewImage(img, mode, arg), nil
}

// AttachImageFile attaches an image tip loaded from the given file to
// the given owner. A file that cannot be read or decoded is logged and
// leaves the owner without a tip.
func AttachImageFile(owner system.View, filename string, mode ScaleModes, arg math32.Vector2, opts ...tooltip.Option) {
	im, err := NewImageFile(filename, mode, arg)
	if errors.Log(err) != nil {
		return
	}
	tooltip.Attach(owner, im, opts...)
}
