package model

// Sample datasets. Each accessor returns a fresh copy, so callers may keep or
// modify the result without affecting anyone else.

// SampleTimes returns latencies in seconds, with repeats and one negative
// noise value.
func SampleTimes() []float64 {
	return []float64{2.5, 1.2, -0.5, 3.0, 2.5, 4.75, 1.2}
}

// SamplePrices returns prices with three decimals and one negative noise value.
func SamplePrices() []float64 {
	return []float64{9.999, 10.0, 4.555, 4.554, -1.0, 12.345}
}

// SampleTimesBySession returns latencies grouped by game session.
func SampleTimesBySession() [][]float64 {
	return [][]float64{
		{1.2, 2.5, -0.5},
		{4.75, 1.2},
		{3.0, 2.5},
	}
}

// SampleScores returns game point totals, with repeats and one negative value.
func SampleScores() []int {
	return []int{15, 42, 7, 42, 100, 3, -5, 18, 60, 60, 1}
}

// SampleRoundsByMatch returns per-round scores grouped by match.
func SampleRoundsByMatch() [][]int {
	return [][]int{
		{10, 20, -5},
		{42, 7},
		{100, 0, 5},
		{18, 60, 60},
	}
}

// SamplePlaylist returns the playlist. "Refactor" by Noa appears twice on
// purpose.
func SamplePlaylist() []Song {
	return []Song{
		{Title: "Midnight Run", Artist: "Noa", Seconds: 210, Rating: 4.6},
		{Title: "Campus Life", Artist: "Leo", Seconds: 180, Rating: 4.1},
		{Title: "Refactor", Artist: "Noa", Seconds: 240, Rating: 4.9},
		{Title: "Bug Hunter", Artist: "Ana", Seconds: 200, Rating: 3.8},
		{Title: "Streams Day", Artist: "Leo", Seconds: 195, Rating: 4.7},
		{Title: "Refactor", Artist: "Noa", Seconds: 240, Rating: 4.9},
		{Title: "Clean Code", Artist: "Ana", Seconds: 230, Rating: 4.2},
	}
}
