package rankit

import (
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/rankit/score"
)

// Ranker binds an extractor and options once for repeated searches over
// the same shape of item, the typical per-keystroke usage. With
// WithParallelism above 1 it spreads per-item scoring across a worker
// pool; results are identical to the pure Search function in every
// case, because scores land by input index before the shared filter and
// sort run.
type Ranker[T any] struct {
	extract  Extractor[T]
	settings settings
	pool     *ants.Pool
	logger   *slog.Logger
}

// NewRanker creates a new ranker for the given extractor.
func NewRanker[T any](extract Extractor[T], opts ...Option) (*Ranker[T], error) {
	if extract == nil {
		return nil, ErrExtractorRequired
	}

	s := newSettings(opts...)

	r := &Ranker[T]{
		extract:  extract,
		settings: s,
		logger:   s.logger,
	}

	if s.parallelism > 1 {
		pool, err := ants.NewPool(s.parallelism)
		if err != nil {
			return nil, err
		}
		r.pool = pool
	}

	return r, nil
}

// Search ranks items against query. Safe for concurrent use on
// independent inputs.
func (r *Ranker[T]) Search(items []T, query string) []SearchResult[T] {
	if r.pool == nil {
		return runSearch(items, query, r.extract, r.settings)
	}

	q := score.NewQuery(query, r.settings.caseSensitive, r.settings.weights)
	r.settings.monitor.Start(query)

	results := make([]SearchResult[T], len(items))
	var wg sync.WaitGroup
	for i := range items {
		idx := i
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			sc, matched := scoreItem(q, items[idx], r.extract)
			results[idx] = SearchResult[T]{Item: items[idx], Score: sc, MatchedFields: matched}
		})
		if err != nil {
			// Pool rejected the task; score on the calling goroutine.
			r.logger.Warn("worker pool rejected scoring task", "index", idx, "err", err)
			sc, matched := scoreItem(q, items[idx], r.extract)
			results[idx] = SearchResult[T]{Item: items[idx], Score: sc, MatchedFields: matched}
			wg.Done()
		}
	}
	wg.Wait()

	// Monitor hooks fire after the pool drains so observers see items
	// in input order.
	for i, res := range results {
		r.settings.monitor.ItemScored(i, res.Score, res.MatchedFields)
	}

	results = rank(results, r.settings.threshold)
	r.settings.monitor.Finish(len(results), len(items))
	return results
}

// Filter ranks items against query and returns only the retained
// items, in ranked order.
func (r *Ranker[T]) Filter(items []T, query string) []T {
	results := r.Search(items, query)
	out := make([]T, len(results))
	for i, res := range results {
		out[i] = res.Item
	}
	return out
}

// Release releases the worker pool, if any.
// The ranker should not be used after calling Release.
func (r *Ranker[T]) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
