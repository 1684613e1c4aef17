// Package dedupe tracks which values have already been seen.
package dedupe

// Set records comparable values and reports whether a value was seen before.
// Equality is structural: two struct values with identical fields are the
// same key.
//
// A Set is not safe for concurrent use; each pipeline invocation owns its own.
type Set[K comparable] struct {
	seen map[K]struct{}
}

// NewSet creates an empty, unbounded Set.
func NewSet[K comparable](opts ...Option) *Set[K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Set[K]{seen: make(map[K]struct{}, o.capacity)}
}

// SeenAndRecord checks if k was seen and records it if not.
// Returns true if k was already seen, false if it was newly recorded.
func (s *Set[K]) SeenAndRecord(k K) bool {
	if _, exists := s.seen[k]; exists {
		return true
	}
	s.seen[k] = struct{}{}
	return false
}

// Contains reports whether k has been recorded without recording it.
func (s *Set[K]) Contains(k K) bool {
	_, exists := s.seen[k]
	return exists
}

// Size returns the number of distinct values recorded.
func (s *Set[K]) Size() int {
	return len(s.seen)
}
