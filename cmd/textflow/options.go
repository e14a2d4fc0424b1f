package main

import (
	"flag"
	"fmt"
	"io"

	textflow "github.com/grindlemire/go-textflow"
	"github.com/grindlemire/go-textflow/internal/debug"
)

// columnFlags are the flags shared by every subcommand that builds columns.
type columnFlags struct {
	width         int
	indent        int
	initialIndent int
	logPath       string
}

func (f *columnFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.width, "width", 0, "line width (0 = terminal width)")
	fs.IntVar(&f.indent, "indent", 0, "indent of every line after the first")
	fs.IntVar(&f.initialIndent, "initial-indent", -1, "indent of the first line (-1 = same as -indent)")
	fs.StringVar(&f.logPath, "log", "", "path to debug log file")
}

// newColumn builds a column from text using the parsed flags and the
// resolved width.
func (f *columnFlags) newColumn(text string, width int) *textflow.Column {
	col := textflow.NewColumn(text,
		textflow.WithWidth(width),
		textflow.WithIndent(f.indent),
	)
	if f.initialIndent >= 0 {
		col.SetInitialIndent(f.initialIndent)
	}
	return col
}

// checkBudget rejects widths that leave less than two columns of text after
// the widest indent. Such a column cannot hyphenate a long token and would
// panic while wrapping.
func (f *columnFlags) checkBudget(width int) error {
	indent := max(f.indent, f.initialIndent)
	if budget := width - indent; budget < 2 {
		return fmt.Errorf("width %d with indent %d leaves %d column(s): %w",
			width, indent, budget, textflow.ErrHyphenBudget)
	}
	return nil
}

// startLog opens the debug log when -log was given. The returned func
// closes it again.
func (f *columnFlags) startLog() (func(), error) {
	if f.logPath == "" {
		return func() {}, nil
	}
	if err := debug.Init(f.logPath); err != nil {
		return nil, err
	}
	return func() { debug.Close() }, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags parses args, wrapping errors with the subcommand name.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	return nil
}
