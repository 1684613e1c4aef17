package stream

import (
	"cmp"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds every value. The sum of an empty slice is 0.
func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Average returns the arithmetic mean. ok is false for an empty slice.
func Average[T Number](s []T) (mean float64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	var total float64
	for _, v := range s {
		total += float64(v)
	}
	return total / float64(len(s)), true
}

// Max returns the largest value. ok is false for an empty slice.
func Max[T cmp.Ordered](s []T) (largest T, ok bool) {
	return pick(s, func(a, b T) bool { return a > b })
}

// Min returns the smallest value. ok is false for an empty slice.
func Min[T cmp.Ordered](s []T) (smallest T, ok bool) {
	return pick(s, func(a, b T) bool { return a < b })
}

// MinFunc returns the first value that c orders before every other value.
// ok is false for an empty slice.
func MinFunc[T any](s []T, c Comparator[T]) (smallest T, ok bool) {
	return pick(s, func(a, b T) bool { return c(a, b) < 0 })
}

func pick[T any](s []T, better func(a, b T) bool) (T, bool) {
	var best T
	if len(s) == 0 {
		return best, false
	}
	best = s[0]
	for _, v := range s[1:] {
		if better(v, best) {
			best = v
		}
	}
	return best, true
}

// FindFirst returns the first value in source order that satisfies pred.
func FindFirst[T any](s []T, pred func(T) bool) (T, bool) {
	for _, v := range s {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// AnyMatch reports whether any value satisfies pred. False for an empty slice.
func AnyMatch[T any](s []T, pred func(T) bool) bool {
	_, ok := FindFirst(s, pred)
	return ok
}

// Count returns how many values satisfy pred.
func Count[T any](s []T, pred func(T) bool) int {
	n := 0
	for _, v := range s {
		if pred(v) {
			n++
		}
	}
	return n
}

// OrElse returns v when ok is set and fallback otherwise. It pairs with the
// (value, ok) reductions above.
func OrElse[T any](v T, ok bool, fallback T) T {
	if !ok {
		return fallback
	}
	return v
}

// Join projects each value to text and joins the results with sep.
func Join[T any](s []T, sep string, text func(T) string) string {
	return strings.Join(Map(s, text), sep)
}
