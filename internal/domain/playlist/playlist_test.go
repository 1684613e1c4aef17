package playlist_test

import (
	"testing"

	"github.com/okian/streamkata/internal/domain/model"
	"github.com/okian/streamkata/internal/domain/playlist"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlaylistQueries(t *testing.T) {
	Convey("Given a kata over the sample playlist", t, func() {
		k := playlist.New()

		Convey("When counting recommended songs", func() {
			Convey("Then the duplicate is counted too", func() {
				So(k.CountRecommended(), ShouldEqual, 4)
			})
		})

		Convey("When listing one artist's titles", func() {
			So(k.TitlesByArtist("Noa"), ShouldResemble, []string{"Midnight Run", "Refactor", "Refactor"})
			So(k.TitlesByArtist("Nobody"), ShouldBeEmpty)
		})

		Convey("When listing unique recommended titles", func() {
			So(k.UniqueRecommendedTitles(), ShouldResemble, []string{"Midnight Run", "Refactor", "Streams Day"})
		})

		Convey("When taking the top 2 by rating then duration", func() {
			So(k.Top2ByRatingThenDuration(), ShouldResemble, []string{"Refactor", "Streams Day"})
		})

		Convey("When aggregating durations and ratings", func() {
			So(k.TotalDuration(), ShouldEqual, 1495)
			So(k.MeanRating(), ShouldAlmostEqual, 31.2/7, 1e-9)
			So(k.MaxGoodDuration(), ShouldEqual, 240)
		})

		Convey("When joining good titles", func() {
			So(k.GoodTitlesCSV(), ShouldEqual, "Clean Code, Campus Life, Streams Day, Midnight Run, Refactor")
		})

		Convey("When checking for long songs", func() {
			So(k.HasLongSong(), ShouldBeTrue)
		})

		Convey("When looking up the shortest song", func() {
			So(k.ShortestTitle(), ShouldEqual, "Campus Life")
		})

		Convey("When ranking one artist", func() {
			So(k.Top3ByArtist("Noa"), ShouldResemble, []string{"Refactor", "Midnight Run"})
			So(k.Top3ByArtist("Leo"), ShouldResemble, []string{"Streams Day", "Campus Life"})
			So(k.Top3ByArtist("Nobody"), ShouldBeEmpty)
		})

		Convey("When listing artists", func() {
			So(k.UniqueArtists(), ShouldResemble, []string{"Ana", "Leo", "Noa"})
		})
	})
}

func TestPlaylistTieBreaks(t *testing.T) {
	Convey("Given songs that tie on the primary key", t, func() {
		k := playlist.New(playlist.WithSongs([]model.Song{
			{Title: "Zeta", Artist: "Ana", Seconds: 150, Rating: 4.8},
			{Title: "Alpha", Artist: "Ana", Seconds: 150, Rating: 4.8},
			{Title: "Mid", Artist: "Ana", Seconds: 300, Rating: 4.8},
			{Title: "Low", Artist: "Ana", Seconds: 100, Rating: 3.0},
		}))

		Convey("Then the shortest lookup prefers the alphabetically first title", func() {
			So(k.ShortestTitle(), ShouldEqual, "Low")
		})

		Convey("Then rating ties fall back to duration desc", func() {
			So(k.Top2ByRatingThenDuration(), ShouldResemble, []string{"Mid", "Zeta"})
		})

		Convey("Then per-artist ranking breaks rating ties by title", func() {
			So(k.Top3ByArtist("Ana"), ShouldResemble, []string{"Alpha", "Mid", "Zeta"})
		})
	})

	Convey("Given two songs with the same shortest duration", t, func() {
		k := playlist.New(playlist.WithSongs([]model.Song{
			{Title: "Beta", Artist: "Leo", Seconds: 90, Rating: 4.0},
			{Title: "Alpha", Artist: "Noa", Seconds: 90, Rating: 4.0},
		}))

		Convey("Then the alphabetically first title wins", func() {
			So(k.ShortestTitle(), ShouldEqual, "Alpha")
		})
	})
}

func TestPlaylistFallbacks(t *testing.T) {
	Convey("Given an empty playlist", t, func() {
		k := playlist.New(playlist.WithSongs(nil))

		Convey("Then every query answers with its fallback", func() {
			So(k.ShortestTitle(), ShouldEqual, "N/A")
			So(k.CountRecommended(), ShouldEqual, 0)
			So(k.TotalDuration(), ShouldEqual, 0)
			So(k.MeanRating(), ShouldEqual, 0.0)
			So(k.MaxGoodDuration(), ShouldEqual, 0)
			So(k.GoodTitlesCSV(), ShouldEqual, "")
			So(k.HasLongSong(), ShouldBeFalse)
			So(k.UniqueArtists(), ShouldBeEmpty)
			So(k.Top3ByArtist("Noa"), ShouldBeEmpty)
			So(k.Top2ByRatingThenDuration(), ShouldBeEmpty)
		})
	})

	Convey("Given a playlist with only poorly rated songs", t, func() {
		k := playlist.New(playlist.WithSongs([]model.Song{
			{Title: "Bug Hunter", Artist: "Ana", Seconds: 200, Rating: 3.8},
		}))

		Convey("Then good-song reductions fall back", func() {
			So(k.MaxGoodDuration(), ShouldEqual, 0)
			So(k.GoodTitlesCSV(), ShouldEqual, "")
			So(k.UniqueRecommendedTitles(), ShouldBeEmpty)
		})
	})
}

func TestPlaylistDistinctIsStructural(t *testing.T) {
	Convey("Given two songs that share a title but not an artist", t, func() {
		k := playlist.New(playlist.WithSongs([]model.Song{
			{Title: "Refactor", Artist: "Noa", Seconds: 240, Rating: 4.9},
			{Title: "Refactor", Artist: "Leo", Seconds: 240, Rating: 4.9},
			{Title: "Refactor", Artist: "Noa", Seconds: 240, Rating: 4.9},
		}))

		Convey("Then only the exact duplicate is removed", func() {
			So(k.UniqueRecommendedTitles(), ShouldResemble, []string{"Refactor", "Refactor"})
			So(k.CountRecommended(), ShouldEqual, 3)
		})
	})
}
