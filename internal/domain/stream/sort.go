package stream

import (
	"cmp"
	"slices"
)

// Comparator orders two values: negative when a sorts first, positive when b
// does, zero when they tie.
type Comparator[T any] func(a, b T) int

// Sorted returns s in ascending natural order.
func Sorted[T cmp.Ordered](s []T) []T {
	return SortedFunc(s, cmp.Compare[T])
}

// SortedDesc returns s in descending natural order.
func SortedDesc[T cmp.Ordered](s []T) []T {
	return SortedFunc(s, Reversed(cmp.Compare[T]))
}

// SortedFunc returns s ordered by c. The sort is stable: values that tie
// keep their relative source order.
func SortedFunc[T any](s []T, c Comparator[T]) []T {
	out := slices.Clone(s)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, c)
	return out
}

// Comparing builds an ascending Comparator on an ordered key.
func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reversed flips the direction of c.
func Reversed[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then chains comparators by precedence: later ones only break ties left by
// earlier ones.
func Then[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}
