package main

import (
	"os"

	textflow "github.com/grindlemire/go-textflow"
	"github.com/grindlemire/go-textflow/internal/debug"
)

// terminalWidth returns the width of the terminal on stdout, or
// textflow.DefaultWidth when stdout is not a terminal.
func terminalWidth() int {
	width, err := getTerminalWidth(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		debug.Log("terminal width unavailable (err=%v), using %d", err, textflow.DefaultWidth)
		return textflow.DefaultWidth
	}
	return width
}
