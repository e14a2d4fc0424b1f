//go:build !unix && !windows

package main

import "errors"

func getTerminalWidth(fd int) (int, error) {
	return 0, errors.New("terminal size not supported on this platform")
}
