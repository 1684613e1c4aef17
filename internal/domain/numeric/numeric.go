// Package numeric holds pipelines over flat lists of decimals and integers:
// latencies in seconds, prices and game scores.
package numeric

import (
	"slices"

	"github.com/okian/streamkata/internal/domain/model"
)

// Thresholds and sizes used by the queries.
const (
	legendaryScore  = 100
	scoreMultiple   = 6
	noMultiple      = -1
	topTimes        = 2
	topScores       = 3
	priceDecimals   = 2
	millisPerSecond = 1000
)

// Option applies a configuration option to a Kata.
type Option func(*Kata)

// WithTimes replaces the latency dataset. The slice is copied.
func WithTimes(times []float64) Option {
	return func(k *Kata) {
		k.times = slices.Clone(times)
	}
}

// WithPrices replaces the price dataset. The slice is copied.
func WithPrices(prices []float64) Option {
	return func(k *Kata) {
		k.prices = slices.Clone(prices)
	}
}

// WithScores replaces the score dataset. The slice is copied.
func WithScores(scores []int) Option {
	return func(k *Kata) {
		k.scores = slices.Clone(scores)
	}
}

// Kata answers queries over fixed decimal and integer datasets. A Kata is
// never modified after New returns and is safe for concurrent use.
type Kata struct {
	times  []float64
	prices []float64
	scores []int
}

// New creates a Kata over the sample datasets unless options replace them.
func New(opts ...Option) *Kata {
	k := &Kata{
		times:  model.SampleTimes(),
		prices: model.SamplePrices(),
		scores: model.SampleScores(),
	}

	for _, opt := range opts {
		opt(k)
	}

	return k
}

func positive[T int | float64](v T) bool    { return v > 0 }
func nonNegative[T int | float64](v T) bool { return v >= 0 }
