package candidate

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

const (
	maxNameLen       = 200
	maxShortFieldLen = 500
	maxResumeLen     = 100000
	maxSkills        = 100
	maxSkillLen      = 100
	maxNoteLen       = 10000
	maxAuthorLen     = 200
)

// SearchInput holds the parameters of a candidate search. A nil PostingID
// searches across every posting.
type SearchInput struct {
	Query     string
	PostingID *int64
	SortBy    domain.SortField
	SortOrder domain.SortOrder
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate(maxQueryLen int) error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(i.Query) > maxQueryLen {
		errs = append(errs, domain.FieldError{Field: "q", Message: "query too long"})
	}
	if i.PostingID != nil && *i.PostingID <= 0 {
		errs = append(errs, domain.FieldError{Field: "posting_id", Message: "must be positive"})
	}
	if !i.SortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be one of name, role, score, stage"})
	}
	if i.SortOrder != "" && !i.SortOrder.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BoardInput selects the candidates shown on a posting's stage board.
type BoardInput struct {
	PostingID int64
	Query     string
	SortBy    domain.SortField
	SortOrder domain.SortOrder
}

func (i BoardInput) search() SearchInput {
	id := i.PostingID
	return SearchInput{Query: i.Query, PostingID: &id, SortBy: i.SortBy, SortOrder: i.SortOrder}
}

// CreateCandidateInput holds the parameters for adding a candidate to a posting.
type CreateCandidateInput struct {
	JobPostingID int64
	Name         string
	Role         string
	Location     string
	Experience   string
	Education    string
	ResumeText   string
	Skills       []string
	Score        int
	Stage        domain.Stage
}

// Validate checks all fields and collects all errors.
func (i CreateCandidateInput) Validate() error {
	var errs []domain.FieldError

	if i.JobPostingID <= 0 {
		errs = append(errs, domain.FieldError{Field: "job_posting_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	for _, f := range []struct{ name, value string }{
		{"role", i.Role},
		{"location", i.Location},
		{"experience", i.Experience},
		{"education", i.Education},
	} {
		if len(f.value) > maxShortFieldLen {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "max 500 characters"})
		}
	}
	if len(i.ResumeText) > maxResumeLen {
		errs = append(errs, domain.FieldError{Field: "resume_text", Message: "too long"})
	}

	if len(i.Skills) > maxSkills {
		errs = append(errs, domain.FieldError{Field: "skills", Message: "max 100 skills"})
	}
	for _, sk := range i.Skills {
		if len(sk) > maxSkillLen {
			errs = append(errs, domain.FieldError{Field: "skills", Message: "skill max 100 characters"})
			break
		}
	}

	if i.Stage != 0 && !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be in 1..5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// MoveStageInput is the drag-and-drop payload: a candidate and its target column.
type MoveStageInput struct {
	CandidateID int64
	Stage       domain.Stage
}

// Validate checks all fields and collects all errors.
func (i MoveStageInput) Validate() error {
	var errs []domain.FieldError
	if i.CandidateID <= 0 {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "required"})
	}
	if !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be in 1..5"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddNoteInput holds a new note. Blank content is accepted and ignored.
// A nil Stage records the candidate's current stage.
type AddNoteInput struct {
	CandidateID int64
	Content     string
	CreatedBy   string
	Stage       *domain.Stage
}

// Validate checks all fields and collects all errors.
func (i AddNoteInput) Validate() error {
	var errs []domain.FieldError
	if i.CandidateID <= 0 {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "required"})
	}
	if len(i.Content) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 10000 characters"})
	}
	if len(i.CreatedBy) > maxAuthorLen {
		errs = append(errs, domain.FieldError{Field: "created_by", Message: "max 200 characters"})
	}
	if i.Stage != nil && !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be in 1..5"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// normalizeSkills trims each skill and drops empties, keeping order.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
