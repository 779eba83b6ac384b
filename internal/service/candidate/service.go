package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hiretrack-backend/internal/config"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type candidateRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Candidate, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Candidate, error)
	List(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error)
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	UpdateStage(ctx context.Context, id int64, stage domain.Stage) (time.Time, error)
}

type postingRepo interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type noteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Note, error)
	ListByCandidateIDs(ctx context.Context, candidateIDs []int64) (map[int64][]domain.Note, error)
}

type eventRepo interface {
	Create(ctx context.Context, e domain.Event) error
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Event, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type recorder interface {
	RecordStageTransition(from, to domain.Stage)
	RecordNoteAdded()
	RecordSearch(scoped bool, results int)
	RecordEventPublished(t domain.EventType, err error)
}

// Service runs the candidate side of the hiring pipeline: search, stage
// moves and the note timeline.
type Service struct {
	candidates candidateRepo
	postings   postingRepo
	notes      noteRepo
	events     eventRepo
	tx         txManager
	publisher  publisher
	cache      cacheInvalidator
	metrics    recorder
	cfg        config.PipelineConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new candidate service.
func NewService(
	log *slog.Logger,
	candidates candidateRepo,
	postings postingRepo,
	notes noteRepo,
	events eventRepo,
	tx txManager,
	publisher publisher,
	cache cacheInvalidator,
	metrics recorder,
	cfg config.PipelineConfig,
) *Service {
	return &Service{
		candidates: candidates,
		postings:   postings,
		notes:      notes,
		events:     events,
		tx:         tx,
		publisher:  publisher,
		cache:      cache,
		metrics:    metrics,
		cfg:        cfg,
		log:        log.With("service", "candidate"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// snapshot loads candidates matching f with their notes in display order.
func (s *Service) snapshot(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	candidates, err := s.candidates.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	ids := make([]int64, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	notes, err := s.notes.ListByCandidateIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	for i := range candidates {
		candidates[i].Notes = pipeline.SortNotes(notes[candidates[i].ID])
	}
	return candidates, nil
}

func (s *Service) ensurePosting(ctx context.Context, id int64) error {
	ok, err := s.postings.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check job posting: %w", err)
	}
	if !ok {
		return fmt.Errorf("job posting %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *Service) newEvent(c *domain.Candidate, t domain.EventType, changes map[string]any) domain.Event {
	id := c.ID
	return domain.Event{
		ID:           uuid.New(),
		JobPostingID: c.JobPostingID,
		CandidateID:  &id,
		Type:         t,
		Changes:      changes,
		CreatedAt:    s.now(),
	}
}

// publish hands e to the event bus once the transaction has committed.
// Failures are logged only: the event row is already the durable record.
func (s *Service) publish(ctx context.Context, e domain.Event) {
	err := s.publisher.Publish(ctx, e)
	s.metrics.RecordEventPublished(e.Type, err)
	if err != nil {
		s.log.WarnContext(ctx, "publish event failed",
			slog.String("event_id", e.ID.String()),
			slog.String("type", string(e.Type)),
			slog.String("error", err.Error()),
		)
	}
}
