package caption

import (
	"strings"
	"unicode"
)

// Normalize collapses whitespace runs to one space, collapses runs of the same
// terminal punctuation mark to one, and trims. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var last rune
	for _, r := range s {
		if unicode.IsSpace(r) {
			if last != ' ' {
				b.WriteRune(' ')
				last = ' '
			}
			continue
		}
		if isTerminal(r) && r == last {
			continue
		}
		b.WriteRune(r)
		last = r
	}
	return strings.TrimSpace(b.String())
}

func isTerminal(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?':
		return true
	}
	return false
}
