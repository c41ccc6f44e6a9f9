package score

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Query is a search query compiled once per call: normalized,
// tokenized, and bound to a set of weights. It is the per-call cache
// that lets field scoring skip repeated normalization work without any
// shared mutable state; a Query is safe for concurrent use.
type Query struct {
	norm          string
	runeLen       int
	tokens        []string
	weights       Weights
	caseSensitive bool
}

// NewQuery normalizes and tokenizes raw once so that scoring many field
// values against it does not repeat the work. Out-of-range weights are
// clamped to [0, 1] rather than rejected.
func NewQuery(raw string, caseSensitive bool, w Weights) Query {
	normed := Normalize(raw, caseSensitive)
	return Query{
		norm:          normed,
		runeLen:       utf8.RuneCountInString(normed),
		tokens:        Tokenize(normed),
		weights:       w.clamped(),
		caseSensitive: caseSensitive,
	}
}

// Empty reports whether the query was empty or whitespace-only.
func (q Query) Empty() bool {
	return q.norm == ""
}

// Tokens returns a copy of the query tokens in input order.
func (q Query) Tokens() []string {
	return slices.Clone(q.tokens)
}

// Score computes the relevance of one field value against the query, in
// [0, 1]. An exact whole-string match scores 1.0; contiguous substring
// containment scores Substring plus a coverage boost; otherwise the
// score is the arithmetic mean, over query tokens, of the best
// TokenSimilarity against any field token. An empty query scores zero
// here — the search layer treats empty queries as match-everything
// before per-field scoring starts.
func (q Query) Score(value string) float64 {
	if q.Empty() {
		return 0
	}

	field := Normalize(value, q.caseSensitive)
	if field == q.norm {
		return 1.0
	}
	if field == "" {
		return 0
	}

	// Contiguous containment outranks any token-level pairing. Plain
	// substring search keeps query characters literal.
	if strings.Contains(field, q.norm) {
		coverage := float64(q.runeLen) / float64(utf8.RuneCountInString(field))
		return clamp01(q.weights.Substring + q.weights.SubstringBoost*coverage)
	}

	// A query of pure punctuation tokenizes to nothing and matches
	// nothing past this point.
	if len(q.tokens) == 0 {
		return 0
	}

	fieldToks := Tokenize(field)
	if len(fieldToks) == 0 {
		return 0
	}

	var sum float64
	for _, qt := range q.tokens {
		var best float64
		for _, ft := range fieldToks {
			if s := TokenSimilarity(qt, ft, q.weights); s > best {
				best = s
				if best == 1.0 {
					break
				}
			}
		}
		sum += best
	}
	return clamp01(sum / float64(len(q.tokens)))
}
