// SPDX-License-Identifier: Unlicense OR MIT

package scale

import (
	"fmt"

	"github.com/indextrown/ScaleKit/device"
	"github.com/indextrown/ScaleKit/geom"
)

// Baseline is a reference device size with its precomputed diagonal.
type Baseline struct {
	width, height float64
	diagonal      float64
}

const (
	// Phone reference: iPhone 15 Pro Max.
	phoneWidth  = 430
	phoneHeight = 932

	// Tablet reference: iPad Air 10.9".
	tabletWidth  = 834
	tabletHeight = 1194
)

var (
	// PhoneBaseline is the reference for Compact devices.
	PhoneBaseline = newBaseline(phoneWidth, phoneHeight)
	// TabletBaseline is the reference for Large devices.
	TabletBaseline = newBaseline(tabletWidth, tabletHeight)
)

func newBaseline(w, h float64) Baseline {
	return Baseline{width: w, height: h, diagonal: geom.Size(w, h).Diagonal()}
}

// BaselineFor returns the baseline selecting class c. Every class
// other than device.Large uses the phone baseline.
func BaselineFor(c device.Class) Baseline {
	if c == device.Large {
		return TabletBaseline
	}
	return PhoneBaseline
}

// Width returns the baseline width.
func (b Baseline) Width() float64 { return b.width }

// Height returns the baseline height.
func (b Baseline) Height() float64 { return b.height }

// Diagonal returns the baseline diagonal.
func (b Baseline) Diagonal() float64 { return b.diagonal }

// Bounds returns the baseline as a rectangle at the origin.
func (b Baseline) Bounds() geom.Rectangle {
	return geom.Size(b.width, b.height)
}

func (b Baseline) String() string {
	return fmt.Sprintf("%gx%g", b.width, b.height)
}
