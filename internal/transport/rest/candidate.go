package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
	"github.com/heartmarshall/hiretrack-backend/internal/service/candidate"
	"github.com/heartmarshall/hiretrack-backend/pkg/ctxutil"
)

// candidateService defines the minimal interface needed by CandidateHandler.
type candidateService interface {
	Search(ctx context.Context, input candidate.SearchInput) ([]domain.Candidate, error)
	Board(ctx context.Context, input candidate.BoardInput) (pipeline.Board, error)
	GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error)
	CreateCandidate(ctx context.Context, input candidate.CreateCandidateInput) (*domain.Candidate, error)
	MoveToStage(ctx context.Context, input candidate.MoveStageInput) (*candidate.MoveStageResult, error)
	AddNote(ctx context.Context, input candidate.AddNoteInput) (*candidate.AddNoteResult, error)
	ListNotes(ctx context.Context, candidateID int64) ([]domain.Note, error)
	History(ctx context.Context, candidateID int64) ([]domain.Event, error)
}

// CandidateHandler serves candidate search, stage and note endpoints.
type CandidateHandler struct {
	svc candidateService
	log *slog.Logger
}

// NewCandidateHandler creates a CandidateHandler.
func NewCandidateHandler(svc candidateService, logger *slog.Logger) *CandidateHandler {
	return &CandidateHandler{svc: svc, log: logger.With("handler", "candidate")}
}

// Search handles GET /api/candidates?q=&sort=&order=&postingId=.
func (h *CandidateHandler) Search(w http.ResponseWriter, r *http.Request) {
	input := searchFromQuery(r)

	if raw := r.URL.Query().Get("postingId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid postingId %q", raw))
			return
		}
		input.PostingID = &id
	}

	h.search(w, r, input)
}

// SearchInPosting handles GET /api/job-postings/{id}/candidates.
func (h *CandidateHandler) SearchInPosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := searchFromQuery(r)
	input.PostingID = &id
	h.search(w, r, input)
}

func (h *CandidateHandler) search(w http.ResponseWriter, r *http.Request, input candidate.SearchInput) {
	cs, err := h.svc.Search(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCandidateResponses(cs))
}

// Board handles GET /api/job-postings/{id}/board.
func (h *CandidateHandler) Board(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := searchFromQuery(r)
	board, err := h.svc.Board(r.Context(), candidate.BoardInput{
		PostingID: id,
		Query:     q.Query,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(board))
}

// Create handles POST /api/job-postings/{id}/candidates.
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	postingID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req createCandidateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.CreateCandidate(r.Context(), candidate.CreateCandidateInput{
		JobPostingID: postingID,
		Name:         req.Name,
		Role:         req.Role,
		Location:     req.Location,
		Experience:   req.Experience,
		Education:    req.Education,
		ResumeText:   req.ResumeText,
		Skills:       req.Skills,
		Score:        req.Score,
		Stage:        domain.Stage(req.Stage),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/candidates/"+itoa(c.ID))
	writeJSON(w, http.StatusCreated, toCandidateResponse(c))
}

// Get handles GET /api/candidates/{id}.
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.GetCandidate(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCandidateResponse(c))
}

// MoveStage handles PUT /api/candidates/{id}/stage with the drag-and-drop
// payload {candidateId, stageId}.
func (h *CandidateHandler) MoveStage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req moveStageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.CandidateID != nil && *req.CandidateID != id {
		writeError(w, http.StatusBadRequest, "candidateId does not match path")
		return
	}

	res, err := h.svc.MoveToStage(r.Context(), candidate.MoveStageInput{
		CandidateID: id,
		Stage:       domain.Stage(req.StageID),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, moveStageResponse{
		Candidate:     toCandidateResponse(res.Candidate),
		PreviousStage: int(res.Previous),
		Changed:       res.Changed,
	})
}

// ListNotes handles GET /api/candidates/{id}/notes.
func (h *CandidateHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	notes, err := h.svc.ListNotes(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponses(notes))
}

// AddNote handles POST /api/candidates/{id}/notes. Blank content is not an
// error: it answers 200 with the unchanged timeline instead of 201.
func (h *CandidateHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req addNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	author := req.CreatedBy
	if author == "" {
		author, _ = ctxutil.ActorFromCtx(r.Context())
	}

	input := candidate.AddNoteInput{
		CandidateID: id,
		Content:     req.Content,
		CreatedBy:   author,
	}
	if req.Stage != nil {
		s := domain.Stage(*req.Stage)
		input.Stage = &s
	}

	res, err := h.svc.AddNote(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := addNoteResponse{Notes: toNoteResponses(res.Notes)}
	status := http.StatusOK
	if res.Note != nil {
		n := toNoteResponse(*res.Note)
		resp.Note = &n
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

// History handles GET /api/candidates/{id}/history.
func (h *CandidateHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.svc.History(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

func searchFromQuery(r *http.Request) candidate.SearchInput {
	q := r.URL.Query()
	return candidate.SearchInput{
		Query:     q.Get("q"),
		SortBy:    domain.SortField(q.Get("sort")),
		SortOrder: domain.SortOrder(q.Get("order")),
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
