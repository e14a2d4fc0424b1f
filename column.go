package textflow

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// DefaultWidth is the width of a column that was never given one.
const DefaultWidth = 80

// Column is a block of text wrapped to a fixed width.
//
// The text is split into paragraphs at newline characters when the column is
// created. Each paragraph is wrapped independently, so a newline always forces
// a line break. Configuration may change between iterations but a Column is
// never modified by iterating it.
type Column struct {
	paragraphs []string

	width            int
	indent           int
	initialIndent    int
	hasInitialIndent bool
}

// Interface assertions
var (
	_ Block       = (*Column)(nil)
	_ io.WriterTo = (*Column)(nil)
)

// NewColumn creates a column holding text.
func NewColumn(text string, opts ...ColumnOption) *Column {
	c := &Column{
		paragraphs: strings.Split(text, "\n"),
		width:      DefaultWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Configuration ---

// SetWidth sets the total line width, including any indent.
func (c *Column) SetWidth(width int) *Column {
	c.width = width
	return c
}

// SetIndent sets the number of spaces prepended to every line except,
// when an initial indent is set, the first.
func (c *Column) SetIndent(indent int) *Column {
	c.indent = indent
	return c
}

// SetInitialIndent sets the indent used for the first line only.
func (c *Column) SetInitialIndent(indent int) *Column {
	c.initialIndent = indent
	c.hasInitialIndent = true
	return c
}

// ClearInitialIndent makes the first line use the regular indent again.
func (c *Column) ClearInitialIndent() *Column {
	c.initialIndent = 0
	c.hasInitialIndent = false
	return c
}

// Width returns the total line width.
func (c *Column) Width() int {
	return c.width
}

// Indent returns the indent applied to lines after the first.
func (c *Column) Indent() int {
	return c.indent
}

// InitialIndent returns the first-line indent and whether one is set.
func (c *Column) InitialIndent() (int, bool) {
	return c.initialIndent, c.hasInitialIndent
}

// Text returns the source text, newlines included.
func (c *Column) Text() string {
	return strings.Join(c.paragraphs, "\n")
}

// Validate checks the width and indents. A column that fails validation
// panics when iterated.
func (c *Column) Validate() error {
	if c.width <= 0 {
		return fmt.Errorf("width %d: %w", c.width, ErrZeroWidth)
	}
	if c.indent < 0 || c.indent >= c.width {
		return fmt.Errorf("indent %d with width %d: %w", c.indent, c.width, ErrIndentTooWide)
	}
	if c.hasInitialIndent && (c.initialIndent < 0 || c.initialIndent >= c.width) {
		return fmt.Errorf("initial indent %d with width %d: %w", c.initialIndent, c.width, ErrInitialIndentTooWide)
	}
	return nil
}

// clone returns a copy whose configuration is independent of c. The
// paragraphs are shared since they are never written.
func (c *Column) clone() *Column {
	cp := *c
	return &cp
}

// --- Output ---

// Iterator returns a cursor positioned at the first line.
// It panics if the column fails Validate.
func (c *Column) Iterator() *LineIterator {
	return newLineIterator(c)
}

// Lines returns the wrapped lines as a lazy sequence. Each range over the
// sequence starts again from the first line.
func (c *Column) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it := c.Iterator(); !it.Done(); it.Next() {
			if !yield(it.Line()) {
				return
			}
		}
	}
}

// Height returns the number of lines the column produces.
func (c *Column) Height() int {
	n := 0
	for it := c.Iterator(); !it.Done(); it.Next() {
		n++
	}
	return n
}

// WriteTo writes the wrapped lines to w separated by newlines, without a
// trailing newline.
func (c *Column) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, c.Lines())
}

// String returns the wrapped lines joined by newlines.
func (c *Column) String() string {
	var b strings.Builder
	c.WriteTo(&b)
	return b.String()
}

func (c *Column) source() lineSource {
	return c.Iterator()
}

// writeLines writes each line of seq to w, newline separated.
func writeLines(w io.Writer, seq iter.Seq[string]) (int64, error) {
	var total int64
	first := true
	for line := range seq {
		if !first {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		first = false

		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
