package main

import (
	"errors"
	"fmt"
	"io"

	textflow "github.com/grindlemire/go-textflow"
	"github.com/grindlemire/go-textflow/internal/debug"
)

// runColumns implements the columns subcommand.
// Every input is wrapped to the same width and the columns are placed side
// by side, separated by a spacer.
func runColumns(args []string, stdin io.Reader, stdout io.Writer) error {
	var flags columnFlags
	fs := newFlagSet("columns")
	flags.register(fs)
	spacer := fs.Int("spacer", 4, "gap between columns")
	total := fs.Int("total", 0, "total layout width when -width is not set (0 = terminal width)")
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
		return errors.New("columns: no input files")
	}
	if *spacer < 0 {
		return fmt.Errorf("columns: negative spacer %d", *spacer)
	}

	width := flags.width
	if width == 0 {
		available := *total
		if available == 0 {
			available = terminalWidth()
		}
		width = (available - *spacer*(len(paths)-1)) / len(paths)
	}
	debug.Log("columns: width=%d spacer=%d inputs=%d", width, *spacer, len(paths))

	texts, err := readInputs(paths, stdin)
	if err != nil {
		return err
	}

	layout := textflow.Combine()
	for i, text := range texts {
		if i > 0 {
			layout.Add(textflow.NewSpacer(*spacer))
		}
		layout.Add(flags.newColumn(text, width))
	}
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	if err := flags.checkBudget(width); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	if _, err := layout.WriteTo(stdout); err != nil {
		return err
	}
	_, err = io.WriteString(stdout, "\n")
	return err
}
