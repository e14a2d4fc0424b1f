package textflow

// ColumnOption configures a Column.
type ColumnOption func(*Column)

// WithWidth sets the total line width, including indent.
func WithWidth(width int) ColumnOption {
	return func(c *Column) {
		c.SetWidth(width)
	}
}

// WithIndent sets the indent of every line after the first.
func WithIndent(indent int) ColumnOption {
	return func(c *Column) {
		c.SetIndent(indent)
	}
}

// WithInitialIndent sets the indent of the first line.
func WithInitialIndent(indent int) ColumnOption {
	return func(c *Column) {
		c.SetInitialIndent(indent)
	}
}
