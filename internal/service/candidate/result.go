package candidate

import (
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// MoveStageResult describes the outcome of a stage move.
type MoveStageResult struct {
	Candidate *domain.Candidate
	Previous  domain.Stage
	Changed   bool
}

// AddNoteResult carries the candidate's notes in display order after the
// call. Note is nil when the content was blank and nothing was stored.
type AddNoteResult struct {
	Note  *domain.Note
	Notes []domain.Note
}
