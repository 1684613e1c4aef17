package numeric

import "github.com/okian/streamkata/internal/domain/stream"

// PositiveScores returns scores > 0 in original order.
func (k *Kata) PositiveScores() []int {
	return stream.Filter(k.scores, positive[int])
}

// PositiveScoresAsc returns scores > 0 ascending, repeats included.
func (k *Kata) PositiveScoresAsc() []int {
	return stream.Sorted(k.PositiveScores())
}

// UniquePositiveScoresAsc returns scores > 0 without repeats, ascending.
func (k *Kata) UniquePositiveScoresAsc() []int {
	return stream.Sorted(stream.Distinct(k.PositiveScores()))
}

// Top3UniqueScoresDesc returns the three highest distinct positive scores.
func (k *Kata) Top3UniqueScoresDesc() []int {
	return stream.Limit(stream.SortedDesc(stream.Distinct(k.PositiveScores())), topScores)
}

// SumPositiveScores returns the total of scores > 0.
func (k *Kata) SumPositiveScores() int {
	return stream.Sum(k.PositiveScores())
}

// FirstMultipleOf6 returns the first score divisible by 6 in original order,
// or -1 if there is none.
func (k *Kata) FirstMultipleOf6() int {
	first, ok := stream.FindFirst(k.scores, func(p int) bool { return p%scoreMultiple == 0 })
	return stream.OrElse(first, ok, noMultiple)
}

// HasLegendary reports whether any score is >= 100.
func (k *Kata) HasLegendary() bool {
	return stream.AnyMatch(k.scores, func(p int) bool { return p >= legendaryScore })
}

// MeanPositiveScores returns the mean of scores > 0, or 0.0 if there are none.
func (k *Kata) MeanPositiveScores() float64 {
	mean, ok := stream.Average(k.PositiveScores())
	return stream.OrElse(mean, ok, 0.0)
}

// PositiveScoreRange returns max - min over scores > 0, or 0 if there are none.
func (k *Kata) PositiveScoreRange() int {
	positives := k.PositiveScores()
	hi, ok := stream.Max(positives)
	if !ok {
		return 0
	}
	lo, _ := stream.Min(positives)
	return hi - lo
}
