// SPDX-License-Identifier: Unlicense OR MIT

//go:build !unix

package display

func getWinsize(fd uintptr) (winsize, error) {
	return winsize{}, ErrUnsupported
}
