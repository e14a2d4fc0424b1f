package textflow

import "strings"

const (
	whitespaceChars      = " \t\n\r"
	breakableBeforeChars = "[({<|"
	breakableAfterChars  = "])}>.,:;*+-=&/\\"
)

func isWhitespace(c byte) bool {
	return strings.IndexByte(whitespaceChars, c) >= 0
}

// isBreakableBefore reports whether a line may start with c.
func isBreakableBefore(c byte) bool {
	return strings.IndexByte(breakableBeforeChars, c) >= 0
}

// isBreakableAfter reports whether a line may end with c.
func isBreakableAfter(c byte) bool {
	return strings.IndexByte(breakableAfterChars, c) >= 0
}

// isBoundary reports whether a line break is allowed at offset at of s.
// at must be in (0, len(s)].
func isBoundary(s string, at int) bool {
	if at == len(s) {
		return true
	}
	return (isWhitespace(s[at]) && !isWhitespace(s[at-1])) ||
		isBreakableBefore(s[at]) ||
		isBreakableAfter(s[at-1])
}
