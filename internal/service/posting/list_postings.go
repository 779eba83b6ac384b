package posting

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// ListPostings returns every posting in id order with its candidates and
// their notes attached.
func (s *Service) ListPostings(ctx context.Context) ([]domain.JobPosting, error) {
	postings, err := s.postings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}

	candidates, err := s.candidates.List(ctx, domain.CandidateFilter{})
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	notes, err := s.notes.ListByCandidateIDs(ctx, candidateIDs(candidates))
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	attach(postings, candidates, notes)
	return postings, nil
}

// GetPosting returns one posting with its candidates and their notes.
func (s *Service) GetPosting(ctx context.Context, id int64) (*domain.JobPosting, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	p, err := s.postings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job posting: %w", err)
	}

	if err := s.loadCandidates(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) loadCandidates(ctx context.Context, p *domain.JobPosting) error {
	candidates, err := s.candidates.List(ctx, domain.CandidateFilter{PostingID: &p.ID})
	if err != nil {
		return fmt.Errorf("list candidates: %w", err)
	}

	notes, err := s.notes.ListByCandidateIDs(ctx, candidateIDs(candidates))
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	one := []domain.JobPosting{*p}
	attach(one, candidates, notes)
	*p = one[0]
	return nil
}
