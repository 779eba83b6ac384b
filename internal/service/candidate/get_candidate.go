package candidate

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
)

// GetCandidate returns a candidate with notes in display order.
func (s *Service) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	c, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	notes, err := s.notes.ListByCandidate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	c.Notes = pipeline.SortNotes(notes)

	return c, nil
}

// ListNotes returns a candidate's notes, newest first.
func (s *Service) ListNotes(ctx context.Context, candidateID int64) ([]domain.Note, error) {
	if candidateID <= 0 {
		return nil, domain.NewValidationError("candidate_id", "required")
	}

	if _, err := s.candidates.GetByID(ctx, candidateID); err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	notes, err := s.notes.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return pipeline.SortNotes(notes), nil
}

// History returns the candidate's event log, newest first.
func (s *Service) History(ctx context.Context, candidateID int64) ([]domain.Event, error) {
	if candidateID <= 0 {
		return nil, domain.NewValidationError("candidate_id", "required")
	}

	if _, err := s.candidates.GetByID(ctx, candidateID); err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	events, err := s.events.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
