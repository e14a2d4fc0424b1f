package textflow

import "iter"

// Block is a piece of a combined layout: a *Column, a Spacer, or a
// *Columns. The set is closed; other packages cannot add variants.
type Block interface {
	// Width is the number of columns the block occupies in a row.
	Width() int
	// Height is the number of lines the block produces.
	Height() int
	// Lines returns the block's lines as a lazy sequence.
	Lines() iter.Seq[string]
	String() string

	source() lineSource
}

// lineSource is the cursor shape shared by all blocks.
type lineSource interface {
	done() bool
	line() string
	next()
}

// Spacer is a blank block of fixed width used to separate columns.
// It is one line tall and its line is empty, so it only ever shows up as
// padding between the blocks on either side.
type Spacer struct {
	width int
}

var _ Block = Spacer{}

// NewSpacer returns a spacer width columns wide. It panics if width is
// negative.
func NewSpacer(width int) Spacer {
	if width < 0 {
		panic("textflow: negative spacer width")
	}
	return Spacer{width: width}
}

// Width returns the spacer width.
func (s Spacer) Width() int { return s.width }

// Height is always 1.
func (s Spacer) Height() int { return 1 }

// Lines yields a single empty line.
func (s Spacer) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		yield("")
	}
}

// String returns the empty string.
func (s Spacer) String() string { return "" }

func (s Spacer) source() lineSource {
	return &spacerSource{}
}

type spacerSource struct {
	finished bool
}

func (s *spacerSource) done() bool   { return s.finished }
func (s *spacerSource) line() string { return "" }
func (s *spacerSource) next()        { s.finished = true }
