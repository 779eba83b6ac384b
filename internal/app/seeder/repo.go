// Package seeder loads sample job postings, candidates and notes into an
// empty database.
package seeder

import (
	"context"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/service/candidate"
	"github.com/heartmarshall/hiretrack-backend/internal/service/posting"
)

// PostingCreator is implemented by posting.Service.
type PostingCreator interface {
	CreatePosting(ctx context.Context, input posting.CreatePostingInput) (*domain.JobPosting, error)
}

// CandidateCreator is implemented by candidate.Service.
type CandidateCreator interface {
	CreateCandidate(ctx context.Context, input candidate.CreateCandidateInput) (*domain.Candidate, error)
}

// NoteWriter stores a fully built note. Fixture notes keep their original
// timestamps, so they bypass the service, which always stamps the current time.
// Implemented by the postgres note repository.
type NoteWriter interface {
	Create(ctx context.Context, n *domain.Note) error
}
