// Package redis caches the dashboard summary in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/hiretrack-backend/internal/config"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

const (
	summaryKey    = "hiretrack:dashboard:summary"
	generationKey = "hiretrack:dashboard:summary:gen"
)

var errStale = errors.New("summary generation changed")

// SummaryCache stores the latest domain.Summary under a single key.
//
// A generation counter guards against caching a summary computed from data
// that a concurrent write has since invalidated: callers read Generation
// before loading data and pass it to Set, which stores only if no
// Invalidate happened in between.
type SummaryCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// New connects to Redis and pings it to fail fast.
func New(ctx context.Context, cfg config.CacheConfig) (*SummaryCache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &SummaryCache{client: client, ttl: cfg.TTL}, nil
}

type summaryPayload struct {
	ActiveCount     int `json:"activeCount"`
	TotalCandidates int `json:"totalCandidates"`
}

// Get returns the cached summary. ok is false on a cache miss.
func (c *SummaryCache) Get(ctx context.Context) (s domain.Summary, ok bool, err error) {
	raw, err := c.client.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.Summary{}, false, nil
	}
	if err != nil {
		return domain.Summary{}, false, fmt.Errorf("redis get summary: %w", err)
	}

	var p summaryPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Summary{}, false, fmt.Errorf("decode cached summary: %w", err)
	}
	return domain.Summary{ActiveCount: p.ActiveCount, TotalCandidates: p.TotalCandidates}, true, nil
}

// Generation returns the current invalidation counter. A missing counter is 0.
func (c *SummaryCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get summary generation: %w", err)
	}
	return gen, nil
}

// Set stores s with the configured TTL if the generation still equals gen.
// A stale summary is dropped silently.
func (c *SummaryCache) Set(ctx context.Context, s domain.Summary, gen int64) error {
	raw, err := json.Marshal(summaryPayload{ActiveCount: s.ActiveCount, TotalCandidates: s.TotalCandidates})
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		cur, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(p goredis.Pipeliner) error {
			p.Set(ctx, summaryKey, raw, c.ttl)
			return nil
		})
		return err
	}, generationKey)

	switch {
	case err == nil, errors.Is(err, errStale), errors.Is(err, goredis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("redis set summary: %w", err)
	}
}

// Invalidate bumps the generation and drops the cached summary atomically.
func (c *SummaryCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Incr(ctx, generationKey)
		p.Del(ctx, summaryKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate summary: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *SummaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (c *SummaryCache) Close() error {
	return c.client.Close()
}

// Nop is used when caching is disabled: every Get misses.
type Nop struct{}

func (Nop) Get(context.Context) (domain.Summary, bool, error) { return domain.Summary{}, false, nil }
func (Nop) Generation(context.Context) (int64, error)         { return 0, nil }
func (Nop) Set(context.Context, domain.Summary, int64) error  { return nil }
func (Nop) Invalidate(context.Context) error                  { return nil }
