// Package textflow lays out plain text into fixed-width columns.
//
// A [Column] wraps one block of text to a width, breaking at whitespace and
// at punctuation break points, honoring embedded newlines and indentation,
// and hyphenating tokens too long to fit. Lines are produced lazily by a
// [LineIterator] or the [Column.Lines] sequence.
//
// Several columns can be placed side by side with [Combine]. A [Spacer]
// inserts a fixed-width gap:
//
//	left := textflow.NewColumn(summary, textflow.WithWidth(30))
//	right := textflow.NewColumn(details, textflow.WithWidth(40))
//	fmt.Println(textflow.Combine(left, textflow.NewSpacer(4), right))
//
// Widths are measured in bytes. Every byte occupies one column; wide or
// multi-byte characters are not measured specially.
package textflow
