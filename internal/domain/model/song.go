// Package model contains the records and sample datasets the katas query.
package model

// Song is one playlist entry. Song is comparable, so == compares every field
// and two songs with identical fields are the same song.
type Song struct {
	Title   string  `koanf:"title"`
	Artist  string  `koanf:"artist"`
	Seconds int     `koanf:"seconds"` // duration in seconds
	Rating  float64 `koanf:"rating"`
}
