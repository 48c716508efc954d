package safeexpr

import "strings"

// Normalize prepares raw expression text for parsing. Every caret is
// rewritten to the two-character power operator, so "2^10" and "2**10"
// mean the same thing, and surrounding whitespace is trimmed. Interior
// whitespace is left for the lexer, which ignores it between tokens.
// Normalize never fails; the result may be empty.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "^", "**"))
}
