package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// CreateCandidate adds a candidate to an existing posting. Stage defaults
// to Applied.
func (s *Service) CreateCandidate(ctx context.Context, input CreateCandidateInput) (*domain.Candidate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stage := input.Stage
	if stage == 0 {
		stage = domain.StageApplied
	}

	var (
		created *domain.Candidate
		event   domain.Event
	)
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensurePosting(txCtx, input.JobPostingID); err != nil {
			return err
		}

		var err error
		created, err = s.candidates.Create(txCtx, &domain.Candidate{
			JobPostingID: input.JobPostingID,
			Name:         strings.TrimSpace(input.Name),
			Role:         strings.TrimSpace(input.Role),
			Location:     strings.TrimSpace(input.Location),
			Experience:   strings.TrimSpace(input.Experience),
			Education:    strings.TrimSpace(input.Education),
			ResumeText:   input.ResumeText,
			Skills:       normalizeSkills(input.Skills),
			Score:        input.Score,
			Stage:        stage,
		})
		if err != nil {
			return fmt.Errorf("create candidate: %w", err)
		}

		event = s.newEvent(created, domain.EventCandidateCreated, map[string]any{
			"name":  created.Name,
			"stage": int(created.Stage),
		})
		if err := s.events.Create(txCtx, event); err != nil {
			return fmt.Errorf("record event: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	created.Notes = []domain.Note{}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "invalidate summary cache", slog.String("error", err.Error()))
	}
	s.publish(ctx, event)

	s.log.InfoContext(ctx, "candidate created",
		slog.Int64("candidate_id", created.ID),
		slog.Int64("posting_id", created.JobPostingID),
	)

	return created, nil
}
