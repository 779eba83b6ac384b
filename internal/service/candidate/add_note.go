package candidate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
)

// AddNote stores a note on a candidate and returns the updated timeline.
// Blank content stores nothing and returns the timeline as it is.
func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (*AddNoteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result AddNoteResult
		event  domain.Event
	)
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.candidates.GetForUpdate(txCtx, input.CandidateID)
		if err != nil {
			return fmt.Errorf("get candidate: %w", err)
		}

		existing, err := s.notes.ListByCandidate(txCtx, c.ID)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		existing = pipeline.SortNotes(existing)

		stage := c.Stage
		if input.Stage != nil {
			stage = *input.Stage
		}

		notes, added := pipeline.AddNote(existing, c.ID, input.Content, input.CreatedBy, stage, s.now())
		if !added {
			result.Notes = notes
			return nil
		}

		note := notes[0]
		result.Notes = pipeline.SortNotes(notes)
		if err := s.notes.Create(txCtx, &note); err != nil {
			return fmt.Errorf("create note: %w", err)
		}
		result.Note = &note

		event = s.newEvent(c, domain.EventNoteAdded, map[string]any{
			"noteId":    note.ID.String(),
			"createdBy": note.CreatedBy,
			"stage":     int(note.Stage),
		})
		if err := s.events.Create(txCtx, event); err != nil {
			return fmt.Errorf("record event: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if result.Note == nil {
		return &result, nil
	}

	s.metrics.RecordNoteAdded()
	s.publish(ctx, event)

	s.log.InfoContext(ctx, "note added",
		slog.Int64("candidate_id", input.CandidateID),
		slog.String("note_id", result.Note.ID.String()),
	)

	return &result, nil
}
