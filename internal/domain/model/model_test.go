package model_test

import (
	"testing"

	"github.com/okian/streamkata/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSong(t *testing.T) {
	Convey("Given two songs with identical fields", t, func() {
		a := model.Song{Title: "Refactor", Artist: "Noa", Seconds: 240, Rating: 4.9}
		b := model.Song{Title: "Refactor", Artist: "Noa", Seconds: 240, Rating: 4.9}

		Convey("Then they are equal", func() {
			So(a == b, ShouldBeTrue)
		})

		Convey("And changing one field makes them differ", func() {
			b.Seconds = 241
			So(a == b, ShouldBeFalse)
		})
	})
}

func TestSampleDatasets(t *testing.T) {
	Convey("Given the sample datasets", t, func() {
		Convey("When a caller modifies a returned copy", func() {
			times := model.SampleTimes()
			times[0] = 99

			songs := model.SamplePlaylist()
			songs[0].Title = "changed"

			Convey("Then later copies are unaffected", func() {
				So(model.SampleTimes()[0], ShouldEqual, 2.5)
				So(model.SamplePlaylist()[0].Title, ShouldEqual, "Midnight Run")
			})
		})

		Convey("Then the playlist carries the deliberate duplicate", func() {
			songs := model.SamplePlaylist()
			So(songs, ShouldHaveLength, 7)
			So(songs[2] == songs[5], ShouldBeTrue)
		})

		Convey("Then the grouped datasets have their sessions and matches", func() {
			So(model.SampleTimesBySession(), ShouldHaveLength, 3)
			So(model.SampleRoundsByMatch(), ShouldHaveLength, 4)
			So(model.SampleScores(), ShouldHaveLength, 11)
			So(model.SamplePrices(), ShouldHaveLength, 6)
		})
	})
}
