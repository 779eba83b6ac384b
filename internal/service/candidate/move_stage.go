package candidate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
)

// MoveToStage places a candidate in another stage column. Any jump is
// allowed; moving to the current stage changes nothing. Each real move is
// recorded in the candidate's history.
func (s *Service) MoveToStage(ctx context.Context, input MoveStageInput) (*MoveStageResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result MoveStageResult
		event  domain.Event
	)
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.candidates.GetForUpdate(txCtx, input.CandidateID)
		if err != nil {
			return fmt.Errorf("get candidate: %w", err)
		}
		result.Previous = current.Stage

		if current.Stage == input.Stage {
			result.Candidate = current
			return nil
		}

		moved := pipeline.MoveToStage(*current, input.Stage)
		moved.UpdatedAt, err = s.candidates.UpdateStage(txCtx, moved.ID, moved.Stage)
		if err != nil {
			return fmt.Errorf("update stage: %w", err)
		}

		event = s.newEvent(&moved, domain.EventStageChanged, map[string]any{
			"from": int(current.Stage),
			"to":   int(moved.Stage),
		})
		if err := s.events.Create(txCtx, event); err != nil {
			return fmt.Errorf("record event: %w", err)
		}

		result.Candidate = &moved
		result.Changed = true
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	notes, err := s.notes.ListByCandidate(ctx, input.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	result.Candidate.Notes = pipeline.SortNotes(notes)

	if !result.Changed {
		return &result, nil
	}

	s.metrics.RecordStageTransition(result.Previous, input.Stage)
	s.publish(ctx, event)

	s.log.InfoContext(ctx, "candidate stage changed",
		slog.Int64("candidate_id", input.CandidateID),
		slog.String("from", result.Previous.Label()),
		slog.String("to", input.Stage.Label()),
	)

	return &result, nil
}
