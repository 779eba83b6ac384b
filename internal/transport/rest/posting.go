package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/service/posting"
)

// postingService defines the minimal interface needed by PostingHandler.
type postingService interface {
	CreatePosting(ctx context.Context, input posting.CreatePostingInput) (*domain.JobPosting, error)
	ListPostings(ctx context.Context) ([]domain.JobPosting, error)
	GetPosting(ctx context.Context, id int64) (*domain.JobPosting, error)
	UpdatePosting(ctx context.Context, input posting.UpdatePostingInput) (*domain.JobPosting, error)
	Summary(ctx context.Context) (domain.Summary, error)
}

// PostingHandler serves job posting and dashboard endpoints.
type PostingHandler struct {
	svc postingService
	log *slog.Logger
}

// NewPostingHandler creates a PostingHandler.
func NewPostingHandler(svc postingService, logger *slog.Logger) *PostingHandler {
	return &PostingHandler{svc: svc, log: logger.With("handler", "posting")}
}

// List handles GET /api/job-postings.
func (h *PostingHandler) List(w http.ResponseWriter, r *http.Request) {
	postings, err := h.svc.ListPostings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]postingResponse, len(postings))
	for i := range postings {
		out[i] = toPostingResponse(&postings[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/job-postings.
func (h *PostingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.CreatePosting(r.Context(), posting.CreatePostingInput{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		Description:    req.Description,
		JobType:        req.JobType,
		CompanyName:    req.CompanyName,
		ExternalID:     req.ExternalID,
		ApplicationURL: req.ApplicationURL,
		Salary:         toSalaryInput(req.Salary),
		Status:         req.Status,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/job-postings/"+itoa(p.ID))
	writeJSON(w, http.StatusCreated, toPostingResponse(p))
}

// Get handles GET /api/job-postings/{id}.
func (h *PostingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.GetPosting(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostingResponse(p))
}

// Update handles PUT /api/job-postings/{id}.
func (h *PostingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updatePostingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := posting.UpdatePostingInput{
		ID:             id,
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		Description:    req.Description,
		JobType:        req.JobType,
		CompanyName:    req.CompanyName,
		ExternalID:     req.ExternalID,
		ApplicationURL: req.ApplicationURL,
		Status:         req.Status,
	}
	if req.Salary != nil {
		s := toSalaryInput(*req.Salary)
		input.Salary = &s
	}

	p, err := h.svc.UpdatePosting(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostingResponse(p))
}

// Summary handles GET /api/dashboard/summary.
func (h *PostingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		ActiveCount:     s.ActiveCount,
		TotalCandidates: s.TotalCandidates,
	})
}

func toSalaryInput(s salaryRequest) posting.SalaryInput {
	return posting.SalaryInput{
		Minimum:  s.Minimum,
		Maximum:  s.Maximum,
		Currency: domain.Currency(s.Currency),
		Interval: domain.SalaryInterval(s.Interval),
	}
}
