package posting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/metrics"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
)

// Summary returns the dashboard aggregate. A cached value is served when
// present; cache failures fall back to computing it. The cache generation is
// read before the data so a write committed meanwhile keeps the result out
// of the cache.
func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	cached, ok, err := s.cache.Get(ctx)
	switch {
	case err != nil:
		s.metrics.RecordCacheLookup(metrics.CacheError)
		s.log.WarnContext(ctx, "summary cache get", slog.String("error", err.Error()))
	case ok:
		s.metrics.RecordCacheLookup(metrics.CacheHit)
		return cached, nil
	default:
		s.metrics.RecordCacheLookup(metrics.CacheMiss)
	}

	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.log.WarnContext(ctx, "summary cache generation", slog.String("error", genErr.Error()))
	}

	postings, err := s.postings.List(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("list job postings: %w", err)
	}

	candidates, err := s.candidates.List(ctx, domain.CandidateFilter{})
	if err != nil {
		return domain.Summary{}, fmt.Errorf("list candidates: %w", err)
	}

	attach(postings, candidates, nil)
	summary := pipeline.Summarize(postings, s.cfg.ActiveStatus)

	if genErr == nil {
		if err := s.cache.Set(ctx, summary, gen); err != nil {
			s.log.WarnContext(ctx, "summary cache set", slog.String("error", err.Error()))
		}
	}

	return summary, nil
}
