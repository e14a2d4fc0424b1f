package textflow

import "errors"

// Configuration errors reported by Validate. Iterating a misconfigured
// column panics with one of these wrapped in a descriptive message.
var (
	ErrZeroWidth            = errors.New("width must be positive")
	ErrIndentTooWide        = errors.New("indent must be non-negative and less than width")
	ErrInitialIndentTooWide = errors.New("initial indent must be non-negative and less than width")

	// ErrHyphenBudget is raised when a token has to be hyphenated but the
	// line budget (width minus indent) leaves no room for any character
	// before the hyphen.
	ErrHyphenBudget = errors.New("line budget too small to hyphenate")
)
