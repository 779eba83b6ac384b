package candidate

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
)

// Search returns candidates whose text contains every query token, in the
// requested order. An empty query returns the full listing.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.Candidate, error) {
	if err := input.Validate(s.cfg.MaxQueryLength); err != nil {
		return nil, err
	}

	if input.PostingID != nil {
		if err := s.ensurePosting(ctx, *input.PostingID); err != nil {
			return nil, err
		}
	}

	all, err := s.snapshot(ctx, domain.CandidateFilter{PostingID: input.PostingID})
	if err != nil {
		return nil, err
	}

	matched := pipeline.FilterCandidates(all, input.Query)
	sorted := pipeline.SortCandidates(matched, input.SortBy, input.SortOrder)

	s.metrics.RecordSearch(input.PostingID != nil, len(sorted))
	s.log.DebugContext(ctx, "candidate search",
		slog.Int("tokens", len(pipeline.Tokenize(input.Query))),
		slog.Int("scanned", len(all)),
		slog.Int("matched", len(sorted)),
	)

	return sorted, nil
}

// Board builds the hiring stages view of one posting. Query and sort narrow
// and order the rows exactly as Search does.
func (s *Service) Board(ctx context.Context, input BoardInput) (pipeline.Board, error) {
	candidates, err := s.Search(ctx, input.search())
	if err != nil {
		return pipeline.Board{}, err
	}
	return pipeline.BuildBoard(candidates), nil
}
