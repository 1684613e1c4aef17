// Package session holds pipelines over grouped measurements: latencies per
// game session and scores per match round. Every query flattens the groups
// first, keeping session order and the order within each session.
package session

import (
	"slices"

	"github.com/okian/streamkata/internal/domain/model"
	"github.com/okian/streamkata/internal/domain/stream"
)

const topRounds = 5

// Option applies a configuration option to a Kata.
type Option func(*Kata)

// WithTimesBySession replaces the per-session latency dataset.
func WithTimesBySession(groups [][]float64) Option {
	return func(k *Kata) {
		k.timesBySession = cloneGroups(groups)
	}
}

// WithRoundsByMatch replaces the per-match round dataset.
func WithRoundsByMatch(groups [][]int) Option {
	return func(k *Kata) {
		k.roundsByMatch = cloneGroups(groups)
	}
}

// Kata answers queries over grouped datasets. Safe for concurrent use.
type Kata struct {
	timesBySession [][]float64
	roundsByMatch  [][]int
}

// New creates a Kata over the sample groups unless options replace them.
func New(opts ...Option) *Kata {
	k := &Kata{
		timesBySession: model.SampleTimesBySession(),
		roundsByMatch:  model.SampleRoundsByMatch(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func cloneGroups[T any](groups [][]T) [][]T {
	return stream.Map(groups, func(g []T) []T { return slices.Clone(g) })
}

func positive[T int | float64](v T) bool { return v > 0 }

// AllSessionTimes flattens every session into one list.
func (k *Kata) AllSessionTimes() []float64 {
	return stream.Flatten(k.timesBySession)
}

// MeanPositiveSessionTimes returns the mean of latencies > 0 across all
// sessions, or 0.0 if there are none.
func (k *Kata) MeanPositiveSessionTimes() float64 {
	mean, ok := stream.Average(stream.Filter(k.AllSessionTimes(), positive[float64]))
	return stream.OrElse(mean, ok, 0.0)
}

// UniquePositiveSessionTimesAsc returns distinct latencies > 0 across all
// sessions, ascending.
func (k *Kata) UniquePositiveSessionTimesAsc() []float64 {
	return stream.Sorted(stream.Distinct(stream.Filter(k.AllSessionTimes(), positive[float64])))
}

// MaxSessionTime returns the highest latency across all sessions, or 0.0 when
// there are no measurements.
func (k *Kata) MaxSessionTime() float64 {
	hi, ok := stream.Max(k.AllSessionTimes())
	return stream.OrElse(hi, ok, 0.0)
}

// AllRounds flattens every match into one list of round scores.
func (k *Kata) AllRounds() []int {
	return stream.Flatten(k.roundsByMatch)
}

// Top5UniquePositiveRounds returns the five highest distinct positive round
// scores across all matches.
func (k *Kata) Top5UniquePositiveRounds() []int {
	return stream.Limit(stream.SortedDesc(stream.Distinct(stream.Filter(k.AllRounds(), positive[int]))), topRounds)
}

// SumPositiveRounds returns the total of round scores > 0 across all matches.
func (k *Kata) SumPositiveRounds() int {
	return stream.Sum(stream.Filter(k.AllRounds(), positive[int]))
}
