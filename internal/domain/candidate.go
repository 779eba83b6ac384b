package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Candidate is a person applying to exactly one job posting.
// JobTitle mirrors the owning posting's title and is never written directly.
type Candidate struct {
	ID           int64
	JobPostingID int64
	JobTitle     string
	Name         string
	Role         string
	Location     string
	Experience   string
	Education    string
	ResumeText   string
	Skills       []string
	Score        int
	Stage        Stage
	Notes        []Note
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy so callers can transform it without
// touching the original snapshot.
func (c Candidate) Clone() Candidate {
	c.Skills = slices.Clone(c.Skills)
	c.Notes = slices.Clone(c.Notes)
	return c
}

// Note is a recruiter comment on a candidate. Stage records the candidate's
// stage at the time of writing and is never updated afterwards.
type Note struct {
	ID          uuid.UUID
	CandidateID int64
	Content     string
	CreatedAt   time.Time
	CreatedBy   string
	Stage       Stage
	EditedAt    *time.Time
	EditedBy    *string
}

// Editor returns the last editor's name, or "" if the note was never edited.
func (n Note) Editor() string {
	if n.EditedBy == nil {
		return ""
	}
	return *n.EditedBy
}

// Event is an entry in the pipeline history of a posting or candidate.
type Event struct {
	ID           uuid.UUID
	JobPostingID int64
	CandidateID  *int64
	Type         EventType
	Changes      map[string]any
	CreatedAt    time.Time
}

// CandidateFilter narrows a candidate listing. The zero value matches every
// candidate. A non-nil, empty IDs matches none.
type CandidateFilter struct {
	PostingID *int64
	IDs       []int64
}
