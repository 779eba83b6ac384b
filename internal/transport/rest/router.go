package rest

import (
	"net/http"

	"github.com/heartmarshall/hiretrack-backend/internal/transport/middleware"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Health     *HealthHandler
	Postings   *PostingHandler
	Candidates *CandidateHandler

	// Metrics is served at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string

	// API wraps every /api route individually, e.g. with rate limiting.
	// Nil leaves the routes unwrapped.
	API middleware.Middleware
}

// NewRouter registers all HTTP routes on a new ServeMux. Route patterns are
// used as metric and span labels, so keep them free of concrete ids.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil && rt.MetricsPath != "" {
		mux.Handle("GET "+rt.MetricsPath, rt.Metrics)
	}

	wrap := middleware.Chain(rt.API)
	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, wrap(h))
	}

	api("GET /api/stages", Stages)
	api("GET /api/dashboard/summary", rt.Postings.Summary)

	api("GET /api/job-postings", rt.Postings.List)
	api("POST /api/job-postings", rt.Postings.Create)
	api("GET /api/job-postings/{id}", rt.Postings.Get)
	api("PUT /api/job-postings/{id}", rt.Postings.Update)
	api("GET /api/job-postings/{id}/candidates", rt.Candidates.SearchInPosting)
	api("POST /api/job-postings/{id}/candidates", rt.Candidates.Create)
	api("GET /api/job-postings/{id}/board", rt.Candidates.Board)

	api("GET /api/candidates", rt.Candidates.Search)
	api("GET /api/candidates/{id}", rt.Candidates.Get)
	api("PUT /api/candidates/{id}/stage", rt.Candidates.MoveStage)
	api("GET /api/candidates/{id}/notes", rt.Candidates.ListNotes)
	api("POST /api/candidates/{id}/notes", rt.Candidates.AddNote)
	api("GET /api/candidates/{id}/history", rt.Candidates.History)

	return mux
}
