package textflow

import (
	"errors"
	"io"
	"iter"
	"strings"
)

// Columns lays several blocks out side by side.
//
// Row i of the layout is the i-th line of every block, left to right, each
// padded to its block's width. A block that has run out of lines
// contributes blank padding. Padding is only written when something follows
// it on the row, so rows never end in padding.
type Columns struct {
	blocks []Block
}

// Interface assertions
var (
	_ Block       = (*Columns)(nil)
	_ io.WriterTo = (*Columns)(nil)
)

// Combine lays blocks out side by side. Any *Columns argument is flattened
// into the result rather than nested. Columns are copied, so configuring a
// column after combining it does not change the layout.
func Combine(blocks ...Block) *Columns {
	cols := &Columns{}
	for _, b := range blocks {
		cols.Add(b)
	}
	return cols
}

// Add appends b to the right-hand side of the layout and returns cols.
func (cols *Columns) Add(b Block) *Columns {
	switch b := b.(type) {
	case *Columns:
		cols.blocks = append(cols.blocks, b.blocks...)
	case *Column:
		cols.blocks = append(cols.blocks, b.clone())
	default:
		cols.blocks = append(cols.blocks, b)
	}
	return cols
}

// Blocks returns the flattened blocks in left-to-right order.
func (cols *Columns) Blocks() []Block {
	out := make([]Block, len(cols.blocks))
	copy(out, cols.blocks)
	return out
}

// Width returns the sum of the block widths.
func (cols *Columns) Width() int {
	w := 0
	for _, b := range cols.blocks {
		w += b.Width()
	}
	return w
}

// Height returns the height of the tallest block.
func (cols *Columns) Height() int {
	h := 0
	for _, b := range cols.blocks {
		h = max(h, b.Height())
	}
	return h
}

// Validate validates every column in the layout.
func (cols *Columns) Validate() error {
	var errs []error
	for _, b := range cols.blocks {
		if c, ok := b.(*Column); ok {
			errs = append(errs, c.Validate())
		}
	}
	return errors.Join(errs...)
}

// Iterator returns a cursor positioned at the first row.
// It panics if any column fails Validate.
func (cols *Columns) Iterator() *RowIterator {
	it := &RowIterator{
		blocks:  cols.blocks,
		sources: make([]lineSource, len(cols.blocks)),
	}
	for i, b := range cols.blocks {
		it.sources[i] = b.source()
	}
	return it
}

// Lines returns the combined rows as a lazy sequence.
func (cols *Columns) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it := cols.Iterator(); !it.Done(); it.Next() {
			if !yield(it.Line()) {
				return
			}
		}
	}
}

// WriteTo writes the rows to w separated by newlines, without a trailing
// newline.
func (cols *Columns) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, cols.Lines())
}

// String returns the rows joined by newlines.
func (cols *Columns) String() string {
	var b strings.Builder
	cols.WriteTo(&b)
	return b.String()
}

func (cols *Columns) source() lineSource {
	return cols.Iterator()
}

// RowIterator walks the rows of a Columns layout.
type RowIterator struct {
	blocks  []Block
	sources []lineSource
}

// Done reports whether every block has run out of lines.
func (it *RowIterator) Done() bool {
	for _, s := range it.sources {
		if !s.done() {
			return false
		}
	}
	return true
}

// Line returns the current row. It panics if the iterator is done.
func (it *RowIterator) Line() string {
	if it.Done() {
		panic("textflow: Line called on finished iterator")
	}

	var row strings.Builder
	padding := 0
	for i, s := range it.sources {
		width := it.blocks[i].Width()
		if s.done() {
			padding += width
			continue
		}

		text := s.line()
		if text != "" {
			row.WriteString(strings.Repeat(" ", padding))
			row.WriteString(text)
			padding = 0
		}
		padding += max(width-len(text), 0)
	}
	return row.String()
}

// Next moves every block that still has lines to its next line.
func (it *RowIterator) Next() {
	for _, s := range it.sources {
		if !s.done() {
			s.next()
		}
	}
}

func (it *RowIterator) done() bool   { return it.Done() }
func (it *RowIterator) line() string { return it.Line() }
func (it *RowIterator) next()        { it.Next() }
