// Package app wires the katas into a catalog of named queries that can be
// evaluated one at a time or as a concurrent run.
package app

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/okian/streamkata/internal/domain/numeric"
	"github.com/okian/streamkata/internal/domain/playlist"
	"github.com/okian/streamkata/internal/domain/session"
	"github.com/okian/streamkata/pkg/logger"
	"github.com/okian/streamkata/pkg/metrics"
)

const defaultArtist = "Noa"

// Service holds the katas and the catalog of queries over them. The katas are
// read-only, so a Service is safe for concurrent use once New returns.
type Service struct {
	numeric  *numeric.Kata
	sessions *session.Kata
	playlist *playlist.Kata

	artist      string
	concurrency int
	extra       []Query

	catalog []Query
	index   map[string]int

	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithNumeric sets the numeric kata.
func WithNumeric(k *numeric.Kata) Option {
	return func(s *Service) {
		if k != nil {
			s.numeric = k
		}
	}
}

// WithSession sets the session kata.
func WithSession(k *session.Kata) Option {
	return func(s *Service) {
		if k != nil {
			s.sessions = k
		}
	}
}

// WithPlaylist sets the playlist kata.
func WithPlaylist(k *playlist.Kata) Option {
	return func(s *Service) {
		if k != nil {
			s.playlist = k
		}
	}
}

// WithArtist sets the argument of the per-artist playlist queries.
func WithArtist(artist string) Option {
	return func(s *Service) {
		if artist != "" {
			s.artist = artist
		}
	}
}

// WithConcurrency bounds how many queries Run evaluates at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithQuery registers an additional query after the built-in catalog. A query
// without an evaluator is kept and reports ErrNotImplemented.
func WithQuery(q Query) Option {
	return func(s *Service) {
		s.extra = append(s.extra, q)
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to metrics.Default().
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New constructs a Service over the sample datasets unless options replace
// the katas. It fails only when registered queries collide by name.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		numeric:     numeric.New(),
		sessions:    session.New(),
		playlist:    playlist.New(),
		artist:      defaultArtist,
		concurrency: runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("app")
	}
	if s.metrics == nil {
		s.metrics = metrics.Default()
	}

	queries := append(s.builtinQueries(), s.extra...)
	s.index = make(map[string]int, len(queries))
	for i, q := range queries {
		id := q.ID()
		if _, exists := s.index[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateQuery, id)
		}
		s.index[id] = i
	}
	s.catalog = queries
	s.metrics.SetCatalogSize(len(queries))

	return s, nil
}

// Queries returns every query name in the catalog, sorted.
func (s *Service) Queries() []string {
	names := make([]string, 0, len(s.catalog))
	for _, q := range s.catalog {
		names = append(names, q.ID())
	}
	sort.Strings(names)
	return names
}

// Describe returns the catalog entry for a query name.
func (s *Service) Describe(name string) (Query, error) {
	i, ok := s.index[name]
	if !ok {
		return Query{}, fmt.Errorf("%w: %s", ErrUnknownQuery, name)
	}
	return s.catalog[i], nil
}
