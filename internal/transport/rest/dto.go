package rest

import (
	"time"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type salaryDTO struct {
	Minimum  float64 `json:"minimum"`
	Maximum  float64 `json:"maximum"`
	Currency string  `json:"currency"`
	Interval string  `json:"interval"`
}

type postingResponse struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Department     string              `json:"department"`
	Location       string              `json:"location"`
	Description    string              `json:"description"`
	JobType        string              `json:"jobType"`
	CompanyName    string              `json:"companyName"`
	ExternalID     string              `json:"externalId"`
	ApplicationURL string              `json:"applicationUrl"`
	Salary         salaryDTO           `json:"salary"`
	Status         string              `json:"status"`
	CandidateCount int                 `json:"candidateCount"`
	Candidates     []candidateResponse `json:"candidates"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type candidateResponse struct {
	ID           int64          `json:"id"`
	JobPostingID int64          `json:"jobPostingId"`
	JobTitle     string         `json:"jobTitle"`
	Name         string         `json:"name"`
	Role         string         `json:"role"`
	Location     string         `json:"location"`
	Experience   string         `json:"experience"`
	Education    string         `json:"education"`
	ResumeText   string         `json:"resumeText"`
	Skills       []string       `json:"skills"`
	Score        int            `json:"score"`
	Stage        int            `json:"stage"`
	StageLabel   string         `json:"stageLabel"`
	StageColor   string         `json:"stageColor"`
	Notes        []noteResponse `json:"notes"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type noteResponse struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
	CreatedBy  string     `json:"createdBy"`
	Stage      int        `json:"stage"`
	StageLabel string     `json:"stageLabel"`
	EditedAt   *time.Time `json:"editedAt,omitempty"`
	EditedBy   *string    `json:"editedBy,omitempty"`
}

type eventResponse struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	JobPostingID int64          `json:"jobPostingId"`
	CandidateID  *int64         `json:"candidateId,omitempty"`
	Changes      map[string]any `json:"changes"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type summaryResponse struct {
	ActiveCount     int `json:"activeCount"`
	TotalCandidates int `json:"totalCandidates"`
}

type stageResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	BadgeClass string `json:"badgeClass"`
}

type boardColumnResponse struct {
	Stage int    `json:"stage"`
	Label string `json:"label"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type boardRowResponse struct {
	CandidateID int64    `json:"candidateId"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Score       int      `json:"score"`
	Stage       int      `json:"stage"`
	StageLabel  string   `json:"stageLabel"`
	StageColor  string   `json:"stageColor"`
	Markers     []string `json:"markers"`
}

type boardResponse struct {
	Columns []boardColumnResponse `json:"columns"`
	Rows    []boardRowResponse    `json:"rows"`
}

type moveStageResponse struct {
	Candidate     candidateResponse `json:"candidate"`
	PreviousStage int               `json:"previousStage"`
	Changed       bool              `json:"changed"`
}

type addNoteResponse struct {
	Note  *noteResponse  `json:"note"`
	Notes []noteResponse `json:"notes"`
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type salaryRequest struct {
	Minimum  float64 `json:"minimum"`
	Maximum  float64 `json:"maximum"`
	Currency string  `json:"currency"`
	Interval string  `json:"interval"`
}

type createPostingRequest struct {
	Title          string        `json:"title"`
	Department     string        `json:"department"`
	Location       string        `json:"location"`
	Description    string        `json:"description"`
	JobType        string        `json:"jobType"`
	CompanyName    string        `json:"companyName"`
	ExternalID     string        `json:"externalId"`
	ApplicationURL string        `json:"applicationUrl"`
	Salary         salaryRequest `json:"salary"`
	Status         string        `json:"status"`
}

type updatePostingRequest struct {
	Title          *string        `json:"title"`
	Department     *string        `json:"department"`
	Location       *string        `json:"location"`
	Description    *string        `json:"description"`
	JobType        *string        `json:"jobType"`
	CompanyName    *string        `json:"companyName"`
	ExternalID     *string        `json:"externalId"`
	ApplicationURL *string        `json:"applicationUrl"`
	Salary         *salaryRequest `json:"salary"`
	Status         *string        `json:"status"`
}

type createCandidateRequest struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Location   string   `json:"location"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	ResumeText string   `json:"resumeText"`
	Skills     []string `json:"skills"`
	Score      int      `json:"score"`
	Stage      int      `json:"stage"`
}

// moveStageRequest is the drag-and-drop payload. CandidateID is optional;
// when present it must match the path.
type moveStageRequest struct {
	CandidateID *int64 `json:"candidateId"`
	StageID     int    `json:"stageId"`
}

type addNoteRequest struct {
	Content   string `json:"content"`
	CreatedBy string `json:"createdBy"`
	Stage     *int   `json:"stage"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toPostingResponse(p *domain.JobPosting) postingResponse {
	candidates := make([]candidateResponse, len(p.Candidates))
	for i := range p.Candidates {
		candidates[i] = toCandidateResponse(&p.Candidates[i])
	}
	return postingResponse{
		ID:             p.ID,
		Title:          p.Title,
		Department:     p.Department,
		Location:       p.Location,
		Description:    p.Description,
		JobType:        p.JobType,
		CompanyName:    p.CompanyName,
		ExternalID:     p.ExternalID,
		ApplicationURL: p.ApplicationURL,
		Salary: salaryDTO{
			Minimum:  p.Salary.Minimum,
			Maximum:  p.Salary.Maximum,
			Currency: string(p.Salary.Currency),
			Interval: string(p.Salary.Interval),
		},
		Status:         p.Status,
		CandidateCount: p.CandidateCount(),
		Candidates:     candidates,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toCandidateResponse(c *domain.Candidate) candidateResponse {
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	return candidateResponse{
		ID:           c.ID,
		JobPostingID: c.JobPostingID,
		JobTitle:     c.JobTitle,
		Name:         c.Name,
		Role:         c.Role,
		Location:     c.Location,
		Experience:   c.Experience,
		Education:    c.Education,
		ResumeText:   c.ResumeText,
		Skills:       skills,
		Score:        c.Score,
		Stage:        int(c.Stage),
		StageLabel:   c.Stage.Label(),
		StageColor:   c.Stage.Color(),
		Notes:        toNoteResponses(c.Notes),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCandidateResponses(cs []domain.Candidate) []candidateResponse {
	out := make([]candidateResponse, len(cs))
	for i := range cs {
		out[i] = toCandidateResponse(&cs[i])
	}
	return out
}

func toNoteResponse(n domain.Note) noteResponse {
	return noteResponse{
		ID:         n.ID.String(),
		Content:    n.Content,
		CreatedAt:  n.CreatedAt,
		CreatedBy:  n.CreatedBy,
		Stage:      int(n.Stage),
		StageLabel: n.Stage.Label(),
		EditedAt:   n.EditedAt,
		EditedBy:   n.EditedBy,
	}
}

func toNoteResponses(ns []domain.Note) []noteResponse {
	out := make([]noteResponse, len(ns))
	for i, n := range ns {
		out[i] = toNoteResponse(n)
	}
	return out
}

func toEventResponses(es []domain.Event) []eventResponse {
	out := make([]eventResponse, len(es))
	for i, e := range es {
		changes := e.Changes
		if changes == nil {
			changes = map[string]any{}
		}
		out[i] = eventResponse{
			ID:           e.ID.String(),
			Type:         string(e.Type),
			JobPostingID: e.JobPostingID,
			CandidateID:  e.CandidateID,
			Changes:      changes,
			CreatedAt:    e.CreatedAt,
		}
	}
	return out
}

func toBoardResponse(b pipeline.Board) boardResponse {
	cols := make([]boardColumnResponse, len(b.Columns))
	for i, c := range b.Columns {
		cols[i] = boardColumnResponse{Stage: int(c.Stage), Label: c.Label, Color: c.Color, Count: c.Count}
	}
	rows := make([]boardRowResponse, len(b.Rows))
	for i, r := range b.Rows {
		markers := make([]string, len(r.Markers))
		for j, m := range r.Markers {
			markers[j] = string(m)
		}
		rows[i] = boardRowResponse{
			CandidateID: r.CandidateID,
			Name:        r.Name,
			Role:        r.Role,
			Score:       r.Score,
			Stage:       int(r.Stage),
			StageLabel:  r.StageLabel,
			StageColor:  r.StageColor,
			Markers:     markers,
		}
	}
	return boardResponse{Columns: cols, Rows: rows}
}
