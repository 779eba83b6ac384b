package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hiretrack-backend/internal/adapter/nats"
	"github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres"
	candidaterepo "github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres/candidate"
	eventrepo "github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres/event"
	noterepo "github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres/note"
	postingrepo "github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres/posting"
	"github.com/heartmarshall/hiretrack-backend/internal/adapter/redis"
	"github.com/heartmarshall/hiretrack-backend/internal/config"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/metrics"
	candidatesvc "github.com/heartmarshall/hiretrack-backend/internal/service/candidate"
	postingsvc "github.com/heartmarshall/hiretrack-backend/internal/service/posting"
)

type summaryCache interface {
	Get(ctx context.Context) (domain.Summary, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, s domain.Summary, gen int64) error
	Invalidate(ctx context.Context) error
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Deps holds the infrastructure and services shared by the HTTP server and
// the hirectl commands.
type Deps struct {
	Config  *config.Config
	Log     *slog.Logger
	Pool    *pgxpool.Pool
	Metrics *metrics.Collector

	// Cache and Events are nil when the feature is disabled.
	Cache  *redis.SummaryCache
	Events *nats.Publisher

	Notes      *noterepo.Repo
	Postings   *postingsvc.Service
	Candidates *candidatesvc.Service
}

// Build connects to every configured backend and wires the services.
// On error, everything opened so far is closed again.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *Deps, err error) {
	d := &Deps{
		Config:  cfg,
		Log:     logger,
		Metrics: metrics.NewCollector(),
	}
	defer func() {
		if err != nil {
			d.Close()
		}
	}()

	d.Pool, err = postgres.NewPool(ctx, cfg.Database, cfg.Telemetry.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	var cache summaryCache = redis.Nop{}
	if cfg.Cache.Enabled {
		d.Cache, err = redis.New(ctx, cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("connect to cache: %w", err)
		}
		cache = d.Cache
		logger.Info("summary cache enabled", slog.String("addr", cfg.Cache.Addr), slog.Duration("ttl", cfg.Cache.TTL))
	}

	var publisher eventPublisher = nats.Nop{}
	if cfg.Events.Enabled {
		d.Events, err = nats.NewPublisher(logger, cfg.Events)
		if err != nil {
			return nil, fmt.Errorf("connect to event bus: %w", err)
		}
		publisher = d.Events
		logger.Info("event publishing enabled", slog.String("subject_prefix", cfg.Events.SubjectPrefix))
	}

	txm := postgres.NewTxManager(d.Pool)
	postings := postingrepo.New(d.Pool)
	candidates := candidaterepo.New(d.Pool)
	events := eventrepo.New(d.Pool)
	d.Notes = noterepo.New(d.Pool)

	d.Postings = postingsvc.NewService(
		logger, postings, candidates, d.Notes, events, txm,
		publisher, cache, d.Metrics, cfg.Pipeline,
	)
	d.Candidates = candidatesvc.NewService(
		logger, candidates, postings, d.Notes, events, txm,
		publisher, cache, d.Metrics, cfg.Pipeline,
	)

	return d, nil
}

// Close releases every connection Build opened. Safe on a partially built Deps.
func (d *Deps) Close() {
	if d.Events != nil {
		if err := d.Events.Close(); err != nil {
			d.Log.Warn("close event publisher", slog.String("error", err.Error()))
		}
	}
	if d.Cache != nil {
		if err := d.Cache.Close(); err != nil {
			d.Log.Warn("close cache", slog.String("error", err.Error()))
		}
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
}
