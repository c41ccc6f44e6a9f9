package rankit

import (
	"log/slog"

	"github.com/poiesic/rankit/score"
)

// DefaultThreshold is the minimum item score retained in results when
// no threshold option is given.
const DefaultThreshold = 0.3

type settings struct {
	threshold     float64
	caseSensitive bool
	weights       score.Weights
	parallelism   int
	monitor       Monitor
	logger        *slog.Logger
}

// Option configures a search call or a Ranker. Every option is total:
// out-of-range values are clamped or coerced, never rejected, so the
// search functions cannot fail on bad configuration.
type Option func(*settings)

func newSettings(opts ...Option) settings {
	s := settings{
		threshold:   DefaultThreshold,
		weights:     score.DefaultWeights(),
		parallelism: 1,
		monitor:     &noopMonitor{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithThreshold sets the minimum item score an item needs to appear in
// results. Values outside [0, 1] are clamped to the nearest bound.
// Default is DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(s *settings) {
		if threshold < 0 {
			threshold = 0
		}
		if threshold > 1 {
			threshold = 1
		}
		s.threshold = threshold
	}
}

// WithCaseSensitive makes matching distinguish letter case. Matching is
// case-insensitive by default.
func WithCaseSensitive() Option {
	return func(s *settings) {
		s.caseSensitive = true
	}
}

// WithWeights overrides the score constants used by the matching
// pipeline. Out-of-range constants are clamped during scoring.
// Default is score.DefaultWeights().
func WithWeights(w score.Weights) Option {
	return func(s *settings) {
		s.weights = w
	}
}

// WithMonitor installs hooks that observe the search process.
// A nil monitor falls back to the no-op default.
func WithMonitor(m Monitor) Option {
	return func(s *settings) {
		if m == nil {
			m = &noopMonitor{}
		}
		s.monitor = m
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// WithParallelism sets the Ranker worker pool size for per-item
// scoring. Values below 2 keep scoring on the calling goroutine. The
// pure Search and Filter functions always score on the calling
// goroutine and ignore this option.
func WithParallelism(n int) Option {
	return func(s *settings) {
		if n < 1 {
			n = 1
		}
		s.parallelism = n
	}
}
