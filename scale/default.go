// SPDX-License-Identifier: Unlicense OR MIT

package scale

import (
	"github.com/indextrown/ScaleKit/device"
	"github.com/indextrown/ScaleKit/geom"
)

// Default is the process wide Engine used by the package level
// functions. Applications that can pass an *Engine around should
// prefer their own.
var Default = New()

// SetViewport sets the Viewport of the Default engine.
func SetViewport(width, height float64) { Default.SetViewport(width, height) }

// SetBounds sets the Viewport of the Default engine from r.
func SetBounds(r geom.Rectangle) { Default.SetBounds(r) }

// Viewport returns the Viewport of the Default engine.
func Viewport() geom.Rectangle { return Default.Viewport() }

// Width returns the Viewport width of the Default engine.
func Width() float64 { return Default.Width() }

// Height returns the Viewport height of the Default engine.
func Height() float64 { return Default.Height() }

// Factor returns the scale factor of the Default engine for class c.
func Factor(c device.Class) float64 { return Default.Factor(c) }

// Size scales nominal with the Default engine for class c.
func Size(nominal float64, c device.Class) float64 { return Default.Size(nominal, c) }

// Reset restores the default Viewport of the Default engine.
func Reset() { Default.Reset() }
