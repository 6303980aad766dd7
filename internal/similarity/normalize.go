package similarity

import (
	"strings"
	"unicode"
)

// NormalizeWords lowercases the text, strips every rune that is neither
// alphanumeric nor whitespace, and splits the remainder into words.
// Punctuation disappears but word boundaries survive. The function is pure,
// so repeated calls on the same text always produce the same tokenization.
func NormalizeWords(text string) []string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Fields(b.String())
}

// WordCount counts whitespace-separated words in the raw text. The length
// filter runs on the raw text, before normalization.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
