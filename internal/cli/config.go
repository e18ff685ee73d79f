// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/indextrown/ScaleKit/device"
	"github.com/indextrown/ScaleKit/scale"
)

// Config describes the device to scale for. Zero fields are unset.
//
// A config file looks like:
//
//	preset = "iphone-14"
//	class = "compact"
//
//	[viewport]
//	width = 390
//	height = 844
type Config struct {
	Preset   string        `toml:"preset"`
	Class    *device.Class `toml:"class"`
	Viewport Viewport      `toml:"viewport"`
}

// Viewport is the configured display size.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// LoadConfig decodes the TOML config file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// Merge returns c with the set fields of o taking precedence.
func (c Config) Merge(o Config) Config {
	if o.Preset != "" {
		c.Preset = o.Preset
	}
	if o.Class != nil {
		c.Class = o.Class
	}
	if o.Viewport.Width != 0 {
		c.Viewport.Width = o.Viewport.Width
	}
	if o.Viewport.Height != 0 {
		c.Viewport.Height = o.Viewport.Height
	}
	return c
}

// Resolve fills in the viewport and class. The viewport comes from
// the explicit size, then the preset, then the phone baseline. The
// class comes from the explicit class, then the preset, then a guess
// from the viewport.
func (c Config) Resolve() (Viewport, device.Class, error) {
	vp := Viewport{Width: scale.PhoneBaseline.Width(), Height: scale.PhoneBaseline.Height()}
	var preset *device.Preset
	if c.Preset != "" {
		p, err := device.Lookup(c.Preset)
		if err != nil {
			return Viewport{}, 0, err
		}
		preset = &p
		vp = Viewport{Width: p.Width, Height: p.Height}
	}
	if c.Viewport.Width != 0 {
		vp.Width = c.Viewport.Width
	}
	if c.Viewport.Height != 0 {
		vp.Height = c.Viewport.Height
	}

	switch {
	case c.Class != nil:
		return vp, *c.Class, nil
	case preset != nil:
		return vp, preset.Class, nil
	default:
		return vp, device.Classify(vp.Width, vp.Height), nil
	}
}

// Engine returns an engine for the resolved device.
func (c Config) Engine() (*scale.Engine, error) {
	vp, class, err := c.Resolve()
	if err != nil {
		return nil, err
	}
	return scale.New(
		scale.WithViewport(vp.Width, vp.Height),
		scale.WithClassifier(device.Static(class)),
	), nil
}
