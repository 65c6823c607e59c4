// Copyright (c) 2026, Hovertip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hovergo/hovertip/cursorimg"
	"github.com/hovergo/hovertip/math32"
)

// Settings are the process-wide tooltip defaults. Each of them can be
// overridden per attachment with an [Option]; the timing constants
// [DwellTime] and [PollInterval] are deliberately not here, as they
// are process-wide only.
type Settings struct {

	// Margins is the default padding between tip content and the
	// overlay window border.
	Margins math32.Vector2 `toml:"margins"`

	// Background is the default overlay fill color. Fully transparent
	// means the platform window background.
	Background color.RGBA `toml:"background"`

	// EdgePad is the minimum clearance kept from a screen edge when
	// clamping placement.
	EdgePad float32 `toml:"edge-pad"`

	// AlphaThreshold is the alpha value above which a cursor pixel
	// counts as visible when estimating cursor bounds.
	AlphaThreshold float32 `toml:"alpha-threshold"`
}

// Defaults sets standard default values.
func (s *Settings) Defaults() {
	s.Margins = math32.Vec2(5, 5)
	s.Background = color.RGBA{}
	s.EdgePad = 20
	s.AlphaThreshold = cursorimg.DefaultAlphaThreshold
}

// TheSettings are the currently active [Settings].
var TheSettings = defaultSettings()

func defaultSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// OpenSettings reads [TheSettings] overrides from the given TOML file.
// Missing fields keep their current values.
func OpenSettings(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, TheSettings)
}

// SaveSettings writes [TheSettings] to the given TOML file.
func SaveSettings(filename string) error {
	b, err := toml.Marshal(TheSettings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
