package numeric

import "github.com/okian/streamkata/internal/domain/stream"

// PositiveTimes returns latencies > 0 in original order.
func (k *Kata) PositiveTimes() []float64 {
	return stream.Filter(k.times, positive[float64])
}

// UniquePositiveTimesAsc returns latencies > 0 without repeats, ascending.
func (k *Kata) UniquePositiveTimesAsc() []float64 {
	return stream.Sorted(stream.Distinct(k.PositiveTimes()))
}

// Top2UniqueTimesDesc returns the two highest distinct positive latencies.
func (k *Kata) Top2UniqueTimesDesc() []float64 {
	return stream.Limit(stream.SortedDesc(stream.Distinct(k.PositiveTimes())), topTimes)
}

// MeanPositiveTimes returns the mean of latencies > 0, or 0.0 if there are none.
func (k *Kata) MeanPositiveTimes() float64 {
	mean, ok := stream.Average(k.PositiveTimes())
	return stream.OrElse(mean, ok, 0.0)
}

// SumRoundedMillis converts positive latencies to milliseconds, rounding
// half up, and returns the total. 2.5s is 2500ms, 4.75s is 4750ms.
func (k *Kata) SumRoundedMillis() int {
	millis := stream.Map(k.PositiveTimes(), func(t float64) int {
		return stream.RoundToInt(t * millisPerSecond)
	})
	return stream.Sum(millis)
}

// RoundedPricesAsc returns prices >= 0 rounded half up to two decimals,
// ascending. Prices that round to the same value are all kept.
func (k *Kata) RoundedPricesAsc() []float64 {
	rounded := stream.Map(stream.Filter(k.prices, nonNegative[float64]), func(p float64) float64 {
		return stream.RoundHalfUp(p, priceDecimals)
	})
	return stream.Sorted(rounded)
}

// MaxPrice returns the highest price >= 0, or 0.0 if there is none.
func (k *Kata) MaxPrice() float64 {
	hi, ok := stream.Max(stream.Filter(k.prices, nonNegative[float64]))
	return stream.OrElse(hi, ok, 0.0)
}
