package app

// Kata names used as the first part of every query name.
const (
	KataNumeric  = "numeric"
	KataSession  = "session"
	KataPlaylist = "playlist"
)

// Query is one named pipeline in the catalog.
type Query struct {
	Kata        string
	Name        string
	Description string
	// Eval computes the result. A nil Eval marks a query as not implemented.
	Eval func() any
}

// ID returns the catalog name, "<kata>.<name>".
func (q Query) ID() string {
	return q.Kata + "." + q.Name
}

func (s *Service) builtinQueries() []Query {
	n, ss, p := s.numeric, s.sessions, s.playlist
	artist := s.artist

	return []Query{
		{KataNumeric, "positive_times", "latencies > 0 in original order", func() any { return n.PositiveTimes() }},
		{KataNumeric, "unique_positive_times_asc", "distinct latencies > 0, ascending", func() any { return n.UniquePositiveTimesAsc() }},
		{KataNumeric, "top2_unique_times_desc", "two highest distinct positive latencies", func() any { return n.Top2UniqueTimesDesc() }},
		{KataNumeric, "mean_positive_times", "mean of latencies > 0, 0.0 if none", func() any { return n.MeanPositiveTimes() }},
		{KataNumeric, "sum_rounded_millis", "total of positive latencies in rounded milliseconds", func() any { return n.SumRoundedMillis() }},
		{KataNumeric, "rounded_prices_asc", "prices >= 0 rounded to 2 places, ascending", func() any { return n.RoundedPricesAsc() }},
		{KataNumeric, "max_price", "highest price >= 0, 0.0 if none", func() any { return n.MaxPrice() }},
		{KataNumeric, "positive_scores", "scores > 0 in original order", func() any { return n.PositiveScores() }},
		{KataNumeric, "positive_scores_asc", "scores > 0 ascending with repeats", func() any { return n.PositiveScoresAsc() }},
		{KataNumeric, "unique_positive_scores_asc", "distinct scores > 0, ascending", func() any { return n.UniquePositiveScoresAsc() }},
		{KataNumeric, "top3_unique_scores_desc", "three highest distinct positive scores", func() any { return n.Top3UniqueScoresDesc() }},
		{KataNumeric, "sum_positive_scores", "total of scores > 0", func() any { return n.SumPositiveScores() }},
		{KataNumeric, "first_multiple_of_6", "first score divisible by 6, -1 if none", func() any { return n.FirstMultipleOf6() }},
		{KataNumeric, "has_legendary", "any score >= 100", func() any { return n.HasLegendary() }},
		{KataNumeric, "mean_positive_scores", "mean of scores > 0, 0.0 if none", func() any { return n.MeanPositiveScores() }},
		{KataNumeric, "positive_score_range", "max - min of scores > 0, 0 if none", func() any { return n.PositiveScoreRange() }},

		{KataSession, "all_session_times", "every session flattened in order", func() any { return ss.AllSessionTimes() }},
		{KataSession, "mean_positive_session_times", "mean of latencies > 0 across sessions, 0.0 if none", func() any { return ss.MeanPositiveSessionTimes() }},
		{KataSession, "unique_positive_session_times_asc", "distinct latencies > 0 across sessions, ascending", func() any { return ss.UniquePositiveSessionTimesAsc() }},
		{KataSession, "max_session_time", "highest latency across sessions, 0.0 if none", func() any { return ss.MaxSessionTime() }},
		{KataSession, "all_rounds", "every match flattened in order", func() any { return ss.AllRounds() }},
		{KataSession, "top5_unique_positive_rounds", "five highest distinct positive rounds", func() any { return ss.Top5UniquePositiveRounds() }},
		{KataSession, "sum_positive_rounds", "total of rounds > 0 across matches", func() any { return ss.SumPositiveRounds() }},

		{KataPlaylist, "count_recommended", "songs rated >= 4.5, duplicates included", func() any { return p.CountRecommended() }},
		{KataPlaylist, "titles_by_artist", "titles of the configured artist in playlist order", func() any { return p.TitlesByArtist(artist) }},
		{KataPlaylist, "unique_recommended_titles", "distinct titles rated >= 4.5, alphabetical", func() any { return p.UniqueRecommendedTitles() }},
		{KataPlaylist, "top2_by_rating_then_duration", "two best distinct songs by rating then duration", func() any { return p.Top2ByRatingThenDuration() }},
		{KataPlaylist, "total_duration", "sum of every song's seconds", func() any { return p.TotalDuration() }},
		{KataPlaylist, "mean_rating", "mean rating of the playlist, 0.0 if empty", func() any { return p.MeanRating() }},
		{KataPlaylist, "good_titles_csv", "titles rated >= 4.0 by artist then title, comma joined", func() any { return p.GoodTitlesCSV() }},
		{KataPlaylist, "has_long_song", "any song >= 240 seconds", func() any { return p.HasLongSong() }},
		{KataPlaylist, "shortest_title", "shortest song, ties by title, N/A if empty", func() any { return p.ShortestTitle() }},
		{KataPlaylist, "top3_by_artist", "configured artist's top 3 by rating then title", func() any { return p.Top3ByArtist(artist) }},
		{KataPlaylist, "max_good_duration", "longest song rated >= 4.0, 0 if none", func() any { return p.MaxGoodDuration() }},
		{KataPlaylist, "unique_artists", "distinct artists, alphabetical", func() any { return p.UniqueArtists() }},
	}
}
