// Package stream provides eager, slice-based collection pipeline operators.
//
// Every operator returns a freshly allocated slice and never writes to its
// input, so the same source can feed any number of pipelines, including from
// concurrent goroutines.
//
// A pipeline is written inside-out, selection first:
//
//	top := stream.Limit(stream.SortedDesc(stream.Distinct(stream.Filter(scores, positive))), 3)
package stream

import (
	"math"

	"github.com/okian/streamkata/internal/domain/dedupe"
)

// Filter keeps only values that satisfy keep, preserving order.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map transforms each value using fn, preserving order.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// FlatMap transforms each value into a slice and concatenates the results in
// source order.
func FlatMap[T, R any](s []T, fn func(T) []R) []R {
	out := make([]R, 0, len(s))
	for _, v := range s {
		out = append(out, fn(v)...)
	}
	return out
}

// Flatten concatenates groups: every element of groups[0] precedes every
// element of groups[1], and so on. Order within a group is kept.
func Flatten[T any](groups [][]T) []T {
	return FlatMap(groups, func(g []T) []T { return g })
}

// Distinct removes repeated values, keeping the first occurrence of each.
// Equality is ==, so struct values compare field by field. Float slices
// compare by bit pattern instead: every NaN is one value and 0.0 and -0.0
// are two.
func Distinct[T comparable](s []T) []T {
	switch fs := any(s).(type) {
	case []float64:
		return any(distinctBy(fs, float64Key)).([]T)
	case []float32:
		return any(distinctBy(fs, float32Key)).([]T)
	}
	return distinctBy(s, func(v T) T { return v })
}

func distinctBy[T any, K comparable](s []T, key func(T) K) []T {
	seen := dedupe.NewSet[K](dedupe.WithCapacity(len(s)))
	return Filter(s, func(v T) bool { return !seen.SeenAndRecord(key(v)) })
}

func float64Key(v float64) uint64 {
	if math.IsNaN(v) {
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(v)
}

func float32Key(v float32) uint32 {
	if math.IsNaN(float64(v)) {
		return math.Float32bits(float32(math.NaN()))
	}
	return math.Float32bits(v)
}

// Limit keeps at most the first n values. n <= 0 yields an empty slice.
func Limit[T any](s []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(s) {
		n = len(s)
	}
	out := make([]T, n)
	copy(out, s[:n])
	return out
}
