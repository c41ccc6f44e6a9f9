package score

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a raw string for comparison. It trims
// surrounding whitespace, strips combining diacritical marks so that
// "café" and "cafe" compare equal, and lower-cases the result unless
// caseSensitive is set. Every input character is treated as literal
// data; nothing is ever compiled into a pattern.
func Normalize(s string, caseSensitive bool) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = stripDiacritics(s)
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// stripDiacritics decomposes the string and removes combining marks.
// Returns the input unchanged if the transform fails, so callers stay
// total over arbitrary byte sequences.
func stripDiacritics(s string) string {
	// The chain carries per-call state, so build it here rather than in
	// package scope.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
