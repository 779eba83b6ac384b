package posting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// CreatePosting stores a new job posting. Status defaults to the configured
// active literal; an empty application URL is derived from the new id.
func (s *Service) CreatePosting(ctx context.Context, input CreatePostingInput) (*domain.JobPosting, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = s.cfg.ActiveStatus
	}

	var (
		created *domain.JobPosting
		event   domain.Event
	)
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.postings.Create(txCtx, &domain.JobPosting{
			Title:          strings.TrimSpace(input.Title),
			Department:     strings.TrimSpace(input.Department),
			Location:       strings.TrimSpace(input.Location),
			Description:    input.Description,
			JobType:        strings.TrimSpace(input.JobType),
			CompanyName:    strings.TrimSpace(input.CompanyName),
			ExternalID:     strings.TrimSpace(input.ExternalID),
			ApplicationURL: strings.TrimSpace(input.ApplicationURL),
			Salary:         input.Salary.toDomain(),
			Status:         status,
		})
		if err != nil {
			return fmt.Errorf("create job posting: %w", err)
		}

		if created.ApplicationURL == "" {
			created.ApplicationURL = fmt.Sprintf(s.cfg.ApplicationURLFmt, created.ID)
			created, err = s.postings.Update(txCtx, created)
			if err != nil {
				return fmt.Errorf("set application url: %w", err)
			}
		}

		event = newEvent(created.ID, domain.EventPostingCreated, map[string]any{
			"title":  created.Title,
			"status": created.Status,
		})
		if err := s.events.Create(txCtx, event); err != nil {
			return fmt.Errorf("record event: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	created.Candidates = []domain.Candidate{}

	s.invalidateSummary(ctx)
	s.publish(ctx, event)

	s.log.InfoContext(ctx, "job posting created",
		slog.Int64("posting_id", created.ID),
		slog.String("title", created.Title),
	)

	return created, nil
}
