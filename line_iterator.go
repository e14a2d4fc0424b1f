package textflow

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-textflow/internal/debug"
)

// LineIterator walks the wrapped lines of a Column.
//
// The iterator is positioned on a line until Next moves it forward; Done
// reports when every line has been produced. Iterators hold no resources
// and any number of them may walk the same column at once.
type LineIterator struct {
	col *Column

	paragraph int  // index into col.paragraphs
	offset    int  // byte offset of the current line within the paragraph
	length    int  // bytes of the paragraph emitted on the current line
	hyphen    bool // current line is split mid-token
}

func newLineIterator(c *Column) *LineIterator {
	if err := c.Validate(); err != nil {
		panic("textflow: invalid column: " + err.Error())
	}

	it := &LineIterator{col: c}
	// A column holding only the empty string still produces one empty line.
	if len(c.paragraphs) == 1 && c.paragraphs[0] == "" {
		return it
	}

	it.calcLength()
	if it.length == 0 {
		// Leading empty paragraph.
		it.paragraph++
		if !it.Done() {
			it.calcLength()
		}
	}
	return it
}

// Done reports whether the iterator has moved past the last line.
func (it *LineIterator) Done() bool {
	return it.paragraph >= len(it.col.paragraphs)
}

// Line returns the current line with its indent and, when the line breaks
// inside a token, a trailing hyphen. It panics if the iterator is done.
func (it *LineIterator) Line() string {
	if it.Done() {
		panic("textflow: Line called on finished iterator")
	}

	text := it.current()[it.offset : it.offset+it.length]
	indent := it.indent()

	var b strings.Builder
	b.Grow(indent + len(text) + 1)
	for range indent {
		b.WriteByte(' ')
	}
	b.WriteString(text)
	if it.hyphen {
		b.WriteByte('-')
	}
	return b.String()
}

// Next moves to the following line. Whitespace between the current line and
// the next is consumed. Calling Next on a finished iterator does nothing.
func (it *LineIterator) Next() {
	if it.Done() {
		return
	}

	p := it.current()
	it.offset += it.length
	for it.offset < len(p) && isWhitespace(p[it.offset]) {
		it.offset++
	}

	if it.offset == len(p) {
		it.offset = 0
		it.paragraph++
	}
	if !it.Done() {
		it.calcLength()
	}
}

func (it *LineIterator) current() string {
	return it.col.paragraphs[it.paragraph]
}

// indent returns the indent for the current line.
func (it *LineIterator) indent() int {
	if it.paragraph == 0 && it.offset == 0 && it.col.hasInitialIndent {
		return it.col.initialIndent
	}
	return it.col.indent
}

// calcLength decides how much of the current paragraph goes on the line
// starting at it.offset.
func (it *LineIterator) calcLength() {
	it.hyphen = false

	p := it.current()
	budget := it.col.width - it.indent()
	if len(p)-it.offset < budget {
		it.length = len(p) - it.offset
		return
	}

	n := budget
	for n > 0 && !isBoundary(p, it.offset+n) {
		n--
	}
	for n > 0 && isWhitespace(p[it.offset+n-1]) {
		n--
	}
	if n > 0 {
		it.length = n
		return
	}

	// No break point fits. Split the token and leave room for the hyphen.
	if budget < 2 {
		panic(fmt.Sprintf("textflow: paragraph %d offset %d: budget %d: %v",
			it.paragraph, it.offset, budget, ErrHyphenBudget))
	}
	debug.Log("LineIterator: hyphenating paragraph=%d offset=%d budget=%d", it.paragraph, it.offset, budget)
	it.hyphen = true
	it.length = budget - 1
}

// done/line/next satisfy lineSource.
func (it *LineIterator) done() bool   { return it.Done() }
func (it *LineIterator) line() string { return it.Line() }
func (it *LineIterator) next()        { it.Next() }
