// SPDX-License-Identifier: Unlicense OR MIT

//go:build unix

package display

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func getWinsize(fd uintptr) (winsize, error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return winsize{}, fmt.Errorf("display: terminal size: %w", err)
	}
	return winsize{rows: ws.Row, cols: ws.Col, xpix: ws.Xpixel, ypix: ws.Ypixel}, nil
}
