package score

import (
	"strings"
	"unicode"
)

// Tokenize splits an already-normalized string into tokens: maximal
// runs of letters and digits. Empty tokens are discarded, left-to-right
// order is preserved, and duplicate tokens are kept. An empty or
// whitespace-only input yields no tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
