package score

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// TokenSimilarity scores how well a single query token matches a single
// field token, in [0, 1]. Rules apply in order of decreasing
// specificity: an exact match scores 1.0; a prefix match scores
// w.Prefix scaled by how much of the field token the query covers, so
// "serv" against "server" scores lower than "serv" against "servo";
// anything else falls back to edit-distance similarity, with values
// under w.FuzzyFloor discarded to zero.
func TokenSimilarity(queryTok, fieldTok string, w Weights) float64 {
	if queryTok == fieldTok {
		return 1.0
	}
	if queryTok == "" || fieldTok == "" {
		return 0
	}

	qLen := utf8.RuneCountInString(queryTok)
	fLen := utf8.RuneCountInString(fieldTok)

	if strings.HasPrefix(fieldTok, queryTok) {
		return w.Prefix * float64(qLen) / float64(fLen)
	}

	// Rune-based distance so multi-byte letters count as single edits.
	dist := fuzzy.LevenshteinDistance(queryTok, fieldTok)
	maxLen := max(qLen, fLen)
	sim := 1.0 - float64(dist)/float64(maxLen)
	if sim < w.FuzzyFloor {
		return 0
	}
	return sim
}
