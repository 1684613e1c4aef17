package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/streamkata/internal/app"
	"github.com/okian/streamkata/internal/config"
	"github.com/okian/streamkata/internal/domain/numeric"
	"github.com/okian/streamkata/internal/domain/playlist"
	"github.com/okian/streamkata/internal/domain/session"
	"github.com/okian/streamkata/pkg/logger"
	"github.com/okian/streamkata/pkg/metrics"
)

const catalogSizeMetric = "streamkata_kata_catalog_size"

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	code := 0
	if err := run(ctx, cfg, logger.Get(), metrics.Default()); err != nil {
		code = 1
	}
	stop()
	if err := logger.Sync(); err != nil {
		os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
	}
	os.Exit(code)
}

// run evaluates the configured queries and logs every result followed by a
// metrics summary.
func run(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Manager) error {
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := newService(cfg, log, m)
	if err != nil {
		log.Error(ctx, "failed to build service", logger.Error(err))
		return err
	}

	log.Info(ctx, "starting kata run",
		logger.Int("catalog", len(svc.Queries())),
		logger.Int("selected", len(cfg.Queries)),
		logger.Int("concurrency", cfg.Concurrency),
		logger.String("artist", cfg.Artist),
		logger.Bool("verbose", cfg.Verbose))

	report, err := svc.Run(ctx, cfg.Queries...)
	if err != nil {
		log.Error(ctx, "kata run failed", logger.Error(err))
		return err
	}

	for _, r := range report.Results {
		fields := []logger.Field{
			logger.String("run_id", report.RunID.String()),
			logger.String("query", r.Query),
			logger.Duration("took", r.Took),
		}
		if cfg.Verbose {
			q, _ := svc.Describe(r.Query)
			fields = append(fields, logger.String("description", q.Description))
		}
		fields = append(fields, logger.String("value", fmt.Sprint(r.Value)))
		log.Info(ctx, "result", fields...)
	}

	snap, err := m.Snapshot()
	if err != nil {
		log.Warn(ctx, "failed to gather metrics", logger.Error(err))
		return nil
	}
	log.Info(ctx, "kata run completed",
		logger.String("run_id", report.RunID.String()),
		logger.Duration("took", report.Took),
		logger.Float64("catalog_size", snap[catalogSizeMetric]),
		logger.Any("metrics", snap))
	return nil
}

// newService builds the katas from the configured datasets. Datasets left
// unset keep the built-in samples.
func newService(cfg *config.Config, log logger.Logger, m *metrics.Manager) (*app.Service, error) {
	d := cfg.Datasets

	var numOpts []numeric.Option
	if d.Times != nil {
		numOpts = append(numOpts, numeric.WithTimes(d.Times))
	}
	if d.Prices != nil {
		numOpts = append(numOpts, numeric.WithPrices(d.Prices))
	}
	if d.Scores != nil {
		numOpts = append(numOpts, numeric.WithScores(d.Scores))
	}

	var sessOpts []session.Option
	if d.TimesBySession != nil {
		sessOpts = append(sessOpts, session.WithTimesBySession(d.TimesBySession))
	}
	if d.RoundsByMatch != nil {
		sessOpts = append(sessOpts, session.WithRoundsByMatch(d.RoundsByMatch))
	}

	var playOpts []playlist.Option
	if d.Songs != nil {
		playOpts = append(playOpts, playlist.WithSongs(d.Songs))
	}

	return app.New(
		app.WithLogger(log.Named("app")),
		app.WithMetrics(m),
		app.WithNumeric(numeric.New(numOpts...)),
		app.WithSession(session.New(sessOpts...)),
		app.WithPlaylist(playlist.New(playOpts...)),
		app.WithArtist(cfg.Artist),
		app.WithConcurrency(cfg.Concurrency),
	)
}
