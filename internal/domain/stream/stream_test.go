package stream_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/okian/streamkata/internal/domain/stream"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	times  = []float64{2.5, 1.2, -0.5, 3.0, 2.5, 4.75, 1.2}
	scores = []int{15, 42, 7, 42, 100, 3, -5, 18, 60, 60, 1}
)

func positive[T int | float64](v T) bool { return v > 0 }

func TestFilter(t *testing.T) {
	Convey("Given a list of decimal times", t, func() {
		Convey("When keeping positive values", func() {
			got := stream.Filter(times, positive[float64])

			Convey("Then original order is preserved", func() {
				So(got, ShouldResemble, []float64{2.5, 1.2, 3.0, 2.5, 4.75, 1.2})
			})

			Convey("And the input is left untouched", func() {
				So(times, ShouldResemble, []float64{2.5, 1.2, -0.5, 3.0, 2.5, 4.75, 1.2})
			})
		})

		Convey("When nothing matches", func() {
			got := stream.Filter(times, func(v float64) bool { return v > 100 })

			Convey("Then the result is empty but not nil", func() {
				So(got, ShouldNotBeNil)
				So(got, ShouldBeEmpty)
			})
		})
	})
}

func TestMapAndFlatten(t *testing.T) {
	Convey("Given groups of rounds", t, func() {
		groups := [][]int{{10, 20, -5}, {42, 7}, {100, 0, 5}}

		Convey("When flattening", func() {
			got := stream.Flatten(groups)

			Convey("Then outer then inner order is kept", func() {
				So(got, ShouldResemble, []int{10, 20, -5, 42, 7, 100, 0, 5})
			})
		})

		Convey("When flattening [[a,b],[c]]", func() {
			got := stream.Flatten([][]string{{"a", "b"}, {"c"}})

			Convey("Then it equals [a,b,c]", func() {
				So(got, ShouldResemble, []string{"a", "b", "c"})
			})
		})

		Convey("When flattening no groups", func() {
			So(stream.Flatten[int](nil), ShouldBeEmpty)
		})

		Convey("When mapping to text", func() {
			got := stream.Map([]int{1, 2, 3}, strconv.Itoa)

			Convey("Then each value is projected in order", func() {
				So(got, ShouldResemble, []string{"1", "2", "3"})
			})
		})

		Convey("When flat-mapping each value to two", func() {
			got := stream.FlatMap([]int{1, 2}, func(v int) []int { return []int{v, v * 10} })

			Convey("Then results are concatenated in source order", func() {
				So(got, ShouldResemble, []int{1, 10, 2, 20})
			})
		})
	})
}

func TestDistinct(t *testing.T) {
	Convey("Given values with repeats", t, func() {
		Convey("When removing duplicates", func() {
			got := stream.Distinct(scores)

			Convey("Then first occurrences stay in order", func() {
				So(got, ShouldResemble, []int{15, 42, 7, 100, 3, -5, 18, 60, 1})
			})
		})

		Convey("When the values are structs", func() {
			type song struct {
				title  string
				rating float64
			}
			got := stream.Distinct([]song{{"Refactor", 4.9}, {"Run", 4.6}, {"Refactor", 4.9}})

			Convey("Then equality is field by field", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].title, ShouldEqual, "Refactor")
				So(got[1].title, ShouldEqual, "Run")
			})
		})

		Convey("When the values are floats with signed zeros and NaN", func() {
			nan := math.NaN()
			got := stream.Distinct([]float64{0, math.Copysign(0, -1), nan, 1.5, nan, 0, 1.5})

			Convey("Then every NaN is one value and the zeros stay apart", func() {
				So(got, ShouldHaveLength, 4)
				So(got[0], ShouldEqual, 0.0)
				So(math.Signbit(got[0]), ShouldBeFalse)
				So(math.Signbit(got[1]), ShouldBeTrue)
				So(math.IsNaN(got[2]), ShouldBeTrue)
				So(got[3], ShouldEqual, 1.5)
			})
		})

		Convey("When the values are float32", func() {
			nan := float32(math.NaN())
			got := stream.Distinct([]float32{nan, 2, nan, 2})
			So(got, ShouldHaveLength, 2)
		})
	})
}

func TestSortingAndLimit(t *testing.T) {
	Convey("Given unsorted values", t, func() {
		Convey("When sorting ascending", func() {
			got := stream.Sorted(stream.Distinct(stream.Filter(times, positive[float64])))

			Convey("Then values ascend", func() {
				So(got, ShouldResemble, []float64{1.2, 2.5, 3.0, 4.75})
			})
		})

		Convey("When taking the top 3 unique descending", func() {
			got := stream.Limit(stream.SortedDesc(stream.Distinct(stream.Filter(scores, positive[int]))), 3)

			Convey("Then it is [100, 60, 42]", func() {
				So(got, ShouldResemble, []int{100, 60, 42})
			})
		})

		Convey("When the limit exceeds the length", func() {
			So(stream.Limit([]int{1, 2}, 5), ShouldResemble, []int{1, 2})
		})

		Convey("When the limit is zero or negative", func() {
			So(stream.Limit([]int{1, 2}, 0), ShouldBeEmpty)
			So(stream.Limit([]int{1, 2}, -1), ShouldBeEmpty)
		})

		Convey("When sorting does not touch the source", func() {
			src := []int{3, 1, 2}
			_ = stream.Sorted(src)
			So(src, ShouldResemble, []int{3, 1, 2})
		})

		Convey("When sorting an empty slice", func() {
			So(stream.Sorted[int](nil), ShouldNotBeNil)
		})
	})
}

func TestComparators(t *testing.T) {
	type song struct {
		title   string
		seconds int
		rating  float64
	}
	songs := []song{
		{"b", 200, 4.5},
		{"a", 240, 4.9},
		{"c", 240, 4.5},
		{"d", 180, 4.5},
	}
	byTitle := stream.Comparing(func(s song) string { return s.title })
	bySeconds := stream.Comparing(func(s song) int { return s.seconds })
	byRating := stream.Comparing(func(s song) float64 { return s.rating })

	Convey("Given songs with tied ratings", t, func() {
		Convey("When ordering by rating desc then seconds desc", func() {
			got := stream.SortedFunc(songs, stream.Then(stream.Reversed(byRating), stream.Reversed(bySeconds)))

			Convey("Then ties are broken by the second key", func() {
				So(stream.Map(got, func(s song) string { return s.title }), ShouldResemble, []string{"a", "c", "b", "d"})
			})
		})

		Convey("When ordering only by rating desc", func() {
			got := stream.SortedFunc(songs, stream.Reversed(byRating))

			Convey("Then ties keep their source order", func() {
				So(stream.Map(got, func(s song) string { return s.title }), ShouldResemble, []string{"a", "b", "c", "d"})
			})
		})

		Convey("When picking the minimum by seconds then title", func() {
			got, ok := stream.MinFunc(songs, stream.Then(bySeconds, byTitle))

			Convey("Then the shortest wins", func() {
				So(ok, ShouldBeTrue)
				So(got.title, ShouldEqual, "d")
			})
		})
	})
}

func TestReductions(t *testing.T) {
	Convey("Given numeric values", t, func() {
		Convey("When summing", func() {
			So(stream.Sum(stream.Filter(scores, positive[int])), ShouldEqual, 348)
			So(stream.Sum([]int{}), ShouldEqual, 0)
		})

		Convey("When averaging", func() {
			mean, ok := stream.Average(stream.Filter(times, positive[float64]))
			So(ok, ShouldBeTrue)
			So(mean, ShouldAlmostEqual, 2.525, 1e-9)

			Convey("And the input is empty", func() {
				mean, ok := stream.Average([]float64{})
				So(ok, ShouldBeFalse)
				So(stream.OrElse(mean, ok, 0.0), ShouldEqual, 0.0)
			})
		})

		Convey("When finding extremes", func() {
			hi, ok := stream.Max(scores)
			So(ok, ShouldBeTrue)
			So(hi, ShouldEqual, 100)

			lo, ok := stream.Min(scores)
			So(ok, ShouldBeTrue)
			So(lo, ShouldEqual, -5)

			_, ok = stream.Max([]int{})
			So(ok, ShouldBeFalse)
		})

		Convey("When searching", func() {
			first, ok := stream.FindFirst(scores, func(v int) bool { return v%6 == 0 })
			So(ok, ShouldBeTrue)
			So(first, ShouldEqual, 42)

			none, ok := stream.FindFirst(scores, func(v int) bool { return v > 1000 })
			So(ok, ShouldBeFalse)
			So(stream.OrElse(none, ok, -1), ShouldEqual, -1)

			So(stream.AnyMatch(scores, func(v int) bool { return v >= 100 }), ShouldBeTrue)
			So(stream.AnyMatch([]int{}, func(int) bool { return true }), ShouldBeFalse)
			So(stream.Count(scores, func(v int) bool { return v == 42 }), ShouldEqual, 2)
		})

		Convey("When joining", func() {
			got := stream.Join([]string{"a", "b", "c"}, ", ", strings.ToUpper)
			So(got, ShouldEqual, "A, B, C")
			So(stream.Join([]string{}, ", ", strings.ToUpper), ShouldEqual, "")
		})
	})
}

func TestRounding(t *testing.T) {
	Convey("Given prices with three decimals", t, func() {
		Convey("When rounding to two places", func() {
			So(stream.RoundHalfUp(9.999, 2), ShouldEqual, 10.0)
			So(stream.RoundHalfUp(4.555, 2), ShouldEqual, 4.56)
			So(stream.RoundHalfUp(4.554, 2), ShouldEqual, 4.55)
			So(stream.RoundHalfUp(12.345, 2), ShouldEqual, 12.35)
		})

		Convey("When rounding twice", func() {
			for _, x := range []float64{9.999, 10.0, 4.555, 4.554, 12.345, 0.005, 1.0 / 3} {
				once := stream.RoundHalfUp(x, 2)
				So(stream.RoundHalfUp(once, 2), ShouldEqual, once)
			}
		})

		Convey("When converting seconds to milliseconds", func() {
			So(stream.RoundToInt(2.5*1000), ShouldEqual, 2500)
			So(stream.RoundToInt(4.75*1000), ShouldEqual, 4750)
			So(stream.RoundToInt(0.5), ShouldEqual, 1)
		})

		Convey("When the value sits just below a half", func() {
			So(stream.RoundToInt(0.49999999999999994), ShouldEqual, 0)
			So(stream.RoundHalfUp(0.0049999999999999994, 2), ShouldEqual, 0.0)
		})

		Convey("When the value is a large odd integer", func() {
			So(stream.RoundToInt(1<<52+1), ShouldEqual, 1<<52+1)
			So(stream.RoundHalfUp(1<<52+1, 0), ShouldEqual, float64(1<<52+1))
		})

		Convey("When negative halves are rounded", func() {
			So(stream.RoundToInt(-2.5), ShouldEqual, -2)
			So(stream.RoundToInt(-2.6), ShouldEqual, -3)
		})

		Convey("When the value is outside the int range", func() {
			So(stream.RoundToInt(1e19), ShouldEqual, math.MaxInt)
			So(stream.RoundToInt(-1e19), ShouldEqual, math.MinInt)
			So(stream.RoundToInt(math.Inf(1)), ShouldEqual, math.MaxInt)
			So(stream.RoundToInt(math.NaN()), ShouldEqual, 0)
		})
	})
}
