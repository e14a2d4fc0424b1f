//go:build windows

package main

import "golang.org/x/sys/windows"

// getTerminalWidth returns the visible column count of the console on fd.
func getTerminalWidth(fd int) (int, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, err
	}
	return int(info.Window.Right - info.Window.Left + 1), nil
}
