package posting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// UpdatePosting applies the non-nil fields of input to an existing posting.
// Candidates are not touched; the returned posting carries them.
func (s *Service) UpdatePosting(ctx context.Context, input UpdatePostingInput) (*domain.JobPosting, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.JobPosting
		event   domain.Event
	)
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.postings.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get job posting: %w", err)
		}

		next, changes := applyUpdate(*current, input)
		if len(changes) == 0 {
			updated = current
			return nil
		}

		updated, err = s.postings.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update job posting: %w", err)
		}

		event = newEvent(updated.ID, domain.EventPostingUpdated, changes)
		if err := s.events.Create(txCtx, event); err != nil {
			return fmt.Errorf("record event: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.loadCandidates(ctx, updated); err != nil {
		return nil, err
	}

	if event.Type == "" {
		return updated, nil
	}

	s.invalidateSummary(ctx)
	s.publish(ctx, event)

	s.log.InfoContext(ctx, "job posting updated",
		slog.Int64("posting_id", updated.ID),
		slog.Int("changed_fields", len(event.Changes)),
	)

	return updated, nil
}

// applyUpdate returns p with input applied and a field -> new value map of
// what actually changed.
func applyUpdate(p domain.JobPosting, input UpdatePostingInput) (domain.JobPosting, map[string]any) {
	changes := map[string]any{}

	set := func(field string, dst *string, v *string, trim bool) {
		if v == nil {
			return
		}
		nv := *v
		if trim {
			nv = strings.TrimSpace(nv)
		}
		if nv != *dst {
			*dst = nv
			changes[field] = nv
		}
	}

	set("title", &p.Title, input.Title, true)
	set("department", &p.Department, input.Department, true)
	set("location", &p.Location, input.Location, true)
	set("description", &p.Description, input.Description, false)
	set("jobType", &p.JobType, input.JobType, true)
	set("companyName", &p.CompanyName, input.CompanyName, true)
	set("externalId", &p.ExternalID, input.ExternalID, true)
	set("applicationUrl", &p.ApplicationURL, input.ApplicationURL, true)
	set("status", &p.Status, input.Status, true)

	if input.Salary != nil {
		salary := input.Salary.toDomain()
		if salary != p.Salary {
			p.Salary = salary
			changes["salary"] = map[string]any{
				"minimum":  salary.Minimum,
				"maximum":  salary.Maximum,
				"currency": string(salary.Currency),
				"interval": string(salary.Interval),
			}
		}
	}

	return p, changes
}
