package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-textflow/internal/debug"
)

// runWrap implements the wrap subcommand.
// Each input becomes one column; inputs are separated by a blank line.
func runWrap(args []string, stdin io.Reader, stdout io.Writer) error {
	var flags columnFlags
	fs := newFlagSet("wrap")
	flags.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	stop, err := flags.startLog()
	if err != nil {
		return err
	}
	defer stop()

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	width := flags.width
	if width == 0 {
		width = terminalWidth()
	}
	debug.Log("wrap: width=%d indent=%d initialIndent=%d inputs=%d", width, flags.indent, flags.initialIndent, len(paths))

	texts, err := readInputs(paths, stdin)
	if err != nil {
		return err
	}

	for i, text := range texts {
		col := flags.newColumn(text, width)
		if err := col.Validate(); err != nil {
			return fmt.Errorf("invalid layout: %w", err)
		}
		if err := flags.checkBudget(width); err != nil {
			return fmt.Errorf("invalid layout: %w", err)
		}

		if i > 0 {
			if _, err := io.WriteString(stdout, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := col.WriteTo(stdout); err != nil {
			return err
		}
	}
	_, err = io.WriteString(stdout, "\n")
	return err
}
