// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package rankit

import (
	"slices"
	"sort"

	"github.com/poiesic/rankit/score"
)

// Field is one named text attribute of a searched item, produced by an
// Extractor. Valid marks the value as present; a field with Valid false
// does not participate in matching and never appears in MatchedFields.
type Field struct {
	Name  string
	Value string
	Valid bool
}

// NewField returns a present field.
func NewField(name, value string) Field {
	return Field{Name: name, Value: value, Valid: true}
}

// OptionalField returns a field that is absent when value is empty.
func OptionalField(name, value string) Field {
	return Field{Name: name, Value: value, Valid: value != ""}
}

// Extractor produces the ordered named fields to match for one item.
// It must be pure: the engine calls it once per item per search call
// and holds no reference to its output afterwards.
type Extractor[T any] func(item T) []Field

// SearchResult pairs an input item with its relevance score and the
// fields that contributed to it.
type SearchResult[T any] struct {
	// Item is the same value that was passed in, not a copy.
	Item T

	// Score is the item relevance in [0, 1].
	Score float64

	// MatchedFields lists the fields that scored above zero, in
	// extractor order. It is nil for empty queries.
	MatchedFields []string
}

// Search scores every item against query, drops items under the
// configured threshold, and returns the survivors ordered by score
// descending; items with equal scores keep their relative input order.
// An empty or whitespace-only query matches every item with score 1.0
// and no matched fields, so clearing a search box restores the full
// list. Search never fails: malformed options are clamped and a nil
// extractor simply matches nothing for non-empty queries.
func Search[T any](items []T, query string, extract Extractor[T], opts ...Option) []SearchResult[T] {
	return runSearch(items, query, extract, newSettings(opts...))
}

// Filter is Search with the scores stripped: it returns only the
// retained items, in ranked order.
func Filter[T any](items []T, query string, extract Extractor[T], opts ...Option) []T {
	results := Search(items, query, extract, opts...)
	out := make([]T, len(results))
	for i, r := range results {
		out[i] = r.Item
	}
	return out
}

func runSearch[T any](items []T, query string, extract Extractor[T], s settings) []SearchResult[T] {
	q := score.NewQuery(query, s.caseSensitive, s.weights)
	s.monitor.Start(query)

	results := make([]SearchResult[T], len(items))
	for i, item := range items {
		sc, matched := scoreItem(q, item, extract)
		results[i] = SearchResult[T]{Item: item, Score: sc, MatchedFields: matched}
		s.monitor.ItemScored(i, sc, matched)
	}

	results = rank(results, s.threshold)
	s.monitor.Finish(len(results), len(items))
	return results
}

// scoreItem aggregates per-field scores for one item. The item score is
// the best field score: one strong field is enough to surface a record,
// and the result does not depend on field order.
func scoreItem[T any](q score.Query, item T, extract Extractor[T]) (float64, []string) {
	if q.Empty() {
		return 1.0, nil
	}
	if extract == nil {
		return 0, nil
	}

	var (
		best    float64
		matched []string
	)
	for _, f := range extract(item) {
		if !f.Valid {
			continue
		}
		fs := q.Score(f.Value)
		if fs <= 0 {
			continue
		}
		if !slices.Contains(matched, f.Name) {
			matched = append(matched, f.Name)
		}
		if fs > best {
			best = fs
		}
	}
	return best, matched
}

// rank filters scored results by threshold and orders them by score
// descending. The sort is stable; input order is the only tie-break.
func rank[T any](results []SearchResult[T], threshold float64) []SearchResult[T] {
	kept := make([]SearchResult[T], 0, len(results))
	for _, r := range results {
		if r.Score >= threshold {
			kept = append(kept, r)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	return kept
}
