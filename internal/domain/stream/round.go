package stream

import "math"

// RoundHalfUp rounds x to the given number of decimal places, sending exact
// halves toward positive infinity. The half test is done on the scaled value
// against its floor, so x*10^places is never shifted by 0.5 in floating point.
func RoundHalfUp(x float64, places int) float64 {
	scale := math.Pow10(places)
	return halfUp(x*scale) / scale
}

// RoundToInt rounds x to the nearest integer with halves going up. NaN yields
// 0 and values outside the int range saturate at math.MinInt or math.MaxInt.
func RoundToInt(x float64) int {
	r := halfUp(x)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= float64(math.MaxInt):
		return math.MaxInt
	case r <= float64(math.MinInt):
		return math.MinInt
	}
	return int(r)
}

func halfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		return f + 1
	}
	return f
}
