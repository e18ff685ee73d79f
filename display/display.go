// SPDX-License-Identifier: Unlicense OR MIT

// Package display discovers the bounds of the host display, for
// passing to scale.Engine.SetBounds at startup.
package display

import (
	"errors"
	"fmt"

	"github.com/indextrown/ScaleKit/geom"
)

var (
	// ErrUnsupported is returned on platforms without display discovery.
	ErrUnsupported = errors.New("display: unsupported platform")
	// ErrNoPixelSize is returned when the terminal does not report its
	// size in pixels.
	ErrNoPixelSize = errors.New("display: terminal reports no pixel size")
)

// winsize mirrors the terminal window size reported by the OS.
type winsize struct {
	rows, cols uint16
	xpix, ypix uint16
}

// bounds returns the terminal bounds in device pixels. Character
// cells are no screen unit, so a terminal without pixel size yields
// ErrNoPixelSize.
func (w winsize) bounds() (geom.Rectangle, error) {
	r := geom.Size(float64(w.xpix), float64(w.ypix))
	if r.Empty() {
		return geom.Rectangle{}, fmt.Errorf("%w (%dx%d cells)", ErrNoPixelSize, w.cols, w.rows)
	}
	return r, nil
}

// Terminal returns the bounds of the terminal window attached to fd,
// in device pixels. Divide by the display's pixel ratio to obtain
// logical points.
func Terminal(fd uintptr) (geom.Rectangle, error) {
	ws, err := getWinsize(fd)
	if err != nil {
		return geom.Rectangle{}, err
	}
	return ws.bounds()
}
