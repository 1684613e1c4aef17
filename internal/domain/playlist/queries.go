package playlist

import (
	"github.com/okian/streamkata/internal/domain/model"
	"github.com/okian/streamkata/internal/domain/stream"
)

// CountRecommended counts songs rated >= 4.5, duplicates included.
func (k *Kata) CountRecommended() int {
	return stream.Count(k.songs, ratedAtLeast(recommendedRating))
}

// TitlesByArtist returns the titles of one artist's songs in playlist order.
func (k *Kata) TitlesByArtist(name string) []string {
	return stream.Map(stream.Filter(k.songs, byArtistName(name)), title)
}

// UniqueRecommendedTitles returns titles of songs rated >= 4.5, each once,
// alphabetically.
func (k *Kata) UniqueRecommendedTitles() []string {
	recommended := stream.Distinct(stream.Filter(k.songs, ratedAtLeast(recommendedRating)))
	return stream.Sorted(stream.Map(recommended, title))
}

// Top2ByRatingThenDuration returns the titles of the two best distinct songs,
// ordered by rating desc and then by duration desc.
func (k *Kata) Top2ByRatingThenDuration() []string {
	ordered := stream.SortedFunc(stream.Distinct(k.songs),
		stream.Then(stream.Reversed(byRating), stream.Reversed(bySeconds)))
	return stream.Map(stream.Limit(ordered, topOverall), title)
}

// TotalDuration sums every song's seconds, duplicates included.
func (k *Kata) TotalDuration() int {
	return stream.Sum(stream.Map(k.songs, seconds))
}

// MeanRating averages every song's rating, duplicates included, or returns
// 0.0 for an empty playlist.
func (k *Kata) MeanRating() float64 {
	mean, ok := stream.Average(stream.Map(k.songs, rating))
	return stream.OrElse(mean, ok, 0.0)
}

// GoodTitlesCSV joins the titles of distinct songs rated >= 4.0, ordered by
// artist and then title, as "t1, t2, t3".
func (k *Kata) GoodTitlesCSV() string {
	good := stream.SortedFunc(stream.Distinct(stream.Filter(k.songs, ratedAtLeast(goodRating))),
		stream.Then(byArtist, byTitle))
	return stream.Join(good, csvSeparator, title)
}

// HasLongSong reports whether any song lasts >= 240 seconds.
func (k *Kata) HasLongSong() bool {
	return stream.AnyMatch(k.songs, func(s model.Song) bool { return s.Seconds >= longSongSeconds })
}

// ShortestTitle returns the title of the shortest song, breaking duration ties
// alphabetically, or "N/A" for an empty playlist.
func (k *Kata) ShortestTitle() string {
	shortest, ok := stream.MinFunc(k.songs, stream.Then(bySeconds, byTitle))
	if !ok {
		return noTitle
	}
	return shortest.Title
}

// Top3ByArtist returns up to three distinct titles by one artist, ordered by
// rating desc and then title asc. Unknown artists yield an empty list.
func (k *Kata) Top3ByArtist(name string) []string {
	ordered := stream.SortedFunc(stream.Distinct(stream.Filter(k.songs, byArtistName(name))),
		stream.Then(stream.Reversed(byRating), byTitle))
	return stream.Map(stream.Limit(ordered, topPerArtist), title)
}

// MaxGoodDuration returns the longest duration among songs rated >= 4.0, or 0
// if there are none.
func (k *Kata) MaxGoodDuration() int {
	longest, ok := stream.Max(stream.Map(stream.Filter(k.songs, ratedAtLeast(goodRating)), seconds))
	return stream.OrElse(longest, ok, 0)
}

// UniqueArtists returns every artist once, alphabetically.
func (k *Kata) UniqueArtists() []string {
	return stream.Sorted(stream.Distinct(stream.Map(k.songs, artist)))
}
