package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// NewNote builds a note from raw user input. It reports false when the
// trimmed content is empty, in which case nothing should be stored.
func NewNote(candidateID int64, content, author string, stage domain.Stage, now time.Time) (domain.Note, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Note{}, false
	}
	return domain.Note{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Content:     content,
		CreatedAt:   now,
		CreatedBy:   strings.TrimSpace(author),
		Stage:       stage,
	}, true
}

// AddNote returns a new slice with the note prepended to existing. Blank
// content is a no-op: existing is returned unchanged and added is false.
func AddNote(existing []domain.Note, candidateID int64, content, author string, stage domain.Stage, now time.Time) (notes []domain.Note, added bool) {
	n, ok := NewNote(candidateID, content, author, stage, now)
	if !ok {
		return existing, false
	}
	out := make([]domain.Note, 0, len(existing)+1)
	out = append(out, n)
	out = append(out, existing...)
	return out, true
}

// SortNotes returns the notes in display order, newest first.
// Notes created at the same instant keep their relative order.
func SortNotes(notes []domain.Note) []domain.Note {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b domain.Note) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
