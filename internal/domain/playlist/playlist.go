// Package playlist holds pipelines over song records: counting, projection,
// multi-key ordering, aggregation and text joins.
package playlist

import (
	"slices"

	"github.com/okian/streamkata/internal/domain/model"
	"github.com/okian/streamkata/internal/domain/stream"
)

// Rating and duration thresholds, result sizes and the empty-lookup answer.
const (
	recommendedRating = 4.5
	goodRating        = 4.0
	longSongSeconds   = 240
	topOverall        = 2
	topPerArtist      = 3
	csvSeparator      = ", "
	noTitle           = "N/A"
)

// Option applies a configuration option to a Kata.
type Option func(*Kata)

// WithSongs replaces the playlist. The slice is copied.
func WithSongs(songs []model.Song) Option {
	return func(k *Kata) {
		k.songs = slices.Clone(songs)
	}
}

// Kata answers queries over a fixed playlist. Safe for concurrent use.
type Kata struct {
	songs []model.Song
}

// New creates a Kata over the sample playlist unless WithSongs replaces it.
func New(opts ...Option) *Kata {
	k := &Kata{songs: model.SamplePlaylist()}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Projections and orderings shared by the queries.
var (
	title   = func(s model.Song) string { return s.Title }
	artist  = func(s model.Song) string { return s.Artist }
	seconds = func(s model.Song) int { return s.Seconds }
	rating  = func(s model.Song) float64 { return s.Rating }

	byTitle   = stream.Comparing(title)
	byArtist  = stream.Comparing(artist)
	bySeconds = stream.Comparing(seconds)
	byRating  = stream.Comparing(rating)
)

func ratedAtLeast(threshold float64) func(model.Song) bool {
	return func(s model.Song) bool { return s.Rating >= threshold }
}

func byArtistName(name string) func(model.Song) bool {
	return func(s model.Song) bool { return s.Artist == name }
}
