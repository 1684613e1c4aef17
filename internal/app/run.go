package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/streamkata/pkg/logger"
)

// Result is one evaluated query.
type Result struct {
	Query string
	Kata  string
	Value any
	Took  time.Duration
}

// Report is the outcome of one Run, with results in catalog order.
type Report struct {
	RunID   uuid.UUID
	Results []Result
	Took    time.Duration
}

// Evaluate runs a single query by name.
func (s *Service) Evaluate(ctx context.Context, name string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	q, err := s.Describe(name)
	if err != nil {
		s.metrics.RecordQueryError("app", "unknown")
		return Result{}, err
	}
	if q.Eval == nil {
		s.metrics.RecordQueryError(q.Kata, "not_implemented")
		return Result{}, fmt.Errorf("%w: %s", ErrNotImplemented, name)
	}

	start := time.Now()
	value := q.Eval()
	took := time.Since(start)

	s.metrics.ObserveQuery(q.Kata, q.Name, took)
	s.logger.Debug(ctx, "query evaluated",
		logger.String("query", name),
		logger.Duration("took", took))

	return Result{Query: name, Kata: q.Kata, Value: value, Took: took}, nil
}

// Run evaluates the named queries, or the whole catalog when names is empty,
// with at most the configured number running at once. Every name is checked
// before anything runs; the first failure cancels the rest.
func (s *Service) Run(ctx context.Context, names ...string) (*Report, error) {
	if len(names) == 0 {
		names = s.catalogOrder()
	}
	for _, name := range names {
		if _, err := s.Describe(name); err != nil {
			s.metrics.RecordQueryError("app", "unknown")
			return nil, err
		}
	}

	report := &Report{RunID: uuid.New(), Results: make([]Result, len(names))}
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			r, err := s.Evaluate(gctx, name)
			if err != nil {
				return err
			}
			report.Results[i] = r
			return nil
		})
	}

	err := g.Wait()
	report.Took = time.Since(start)
	if err != nil {
		level := s.logger.Error
		if errors.Is(err, context.Canceled) {
			level = s.logger.Warn
		}
		level(ctx, "run failed",
			logger.String("run_id", report.RunID.String()),
			logger.Error(err))
		return nil, err
	}

	s.metrics.ObserveRun(report.Took)
	s.logger.Info(ctx, "run completed",
		logger.String("run_id", report.RunID.String()),
		logger.Int("queries", len(names)),
		logger.Duration("took", report.Took))
	return report, nil
}

// catalogOrder returns query names in registration order.
func (s *Service) catalogOrder() []string {
	names := make([]string, len(s.catalog))
	for i, q := range s.catalog {
		names[i] = q.ID()
	}
	return names
}
