package wordchart

import "strings"

// Clean normalizes text into lowercase alphabetic tokens separated by
// single spaces. Every run of characters outside a-z (after lowercasing)
// becomes one space, and leading and trailing separators are dropped.
// Non-ASCII letters are treated as separators.
func Clean(text string) string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	gap := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c < 'a' || c > 'z' {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte(' ')
		}
		gap = false
		b.WriteByte(c)
	}
	return b.String()
}
