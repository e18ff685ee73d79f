// SPDX-License-Identifier: Unlicense OR MIT

package device

import (
	"errors"
	"fmt"
	"strings"
)

// Preset is a named device with its portrait logical screen size.
type Preset struct {
	Name   string
	Width  float64
	Height float64
	Class  Class
}

// ErrUnknownPreset is returned by Lookup for unrecognized names.
var ErrUnknownPreset = errors.New("device: unknown preset")

// Presets lists well known devices, phones first.
var Presets = []Preset{
	{Name: "iphone-15-pro-max", Width: 430, Height: 932, Class: Compact},
	{Name: "iphone-15-pro", Width: 393, Height: 852, Class: Compact},
	{Name: "iphone-14", Width: 390, Height: 844, Class: Compact},
	{Name: "iphone-11", Width: 414, Height: 896, Class: Compact},
	{Name: "iphone-se", Width: 375, Height: 667, Class: Compact},
	{Name: "ipad-mini", Width: 744, Height: 1133, Class: Large},
	{Name: "ipad-air-11", Width: 834, Height: 1194, Class: Large},
	{Name: "ipad-pro-13", Width: 1024, Height: 1366, Class: Large},
}

// Lookup returns the preset with the given name, ignoring case.
func Lookup(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func (p Preset) String() string {
	return fmt.Sprintf("%s (%gx%g %s)", p.Name, p.Width, p.Height, p.Class)
}
