package posting

import (
	"context"
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

type postingRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.JobPosting, error)
	List(ctx context.Context) ([]domain.JobPosting, error)
	Create(ctx context.Context, p *domain.JobPosting) (*domain.JobPosting, error)
	Update(ctx context.Context, p *domain.JobPosting) (*domain.JobPosting, error)
}

type candidateRepo interface {
	List(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error)
}

type noteRepo interface {
	ListByCandidateIDs(ctx context.Context, candidateIDs []int64) (map[int64][]domain.Note, error)
}

type eventRepo interface {
	Create(ctx context.Context, e domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

type summaryCache interface {
	Get(ctx context.Context) (domain.Summary, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, s domain.Summary, gen int64) error
	Invalidate(ctx context.Context) error
}

type recorder interface {
	RecordCacheLookup(result string)
	RecordEventPublished(t domain.EventType, err error)
}

// Service manages job postings and the dashboard summary.
type Service struct {
	postings   postingRepo
	candidates candidateRepo
	notes      noteRepo
	events     eventRepo
	tx         txManager
	publisher  publisher
	cache      summaryCache
	metrics    recorder
	cfg        config.PipelineConfig
	log        *slog.Logger
}

// NewService creates a new posting service.
func NewService(
	log *slog.Logger,
	postings postingRepo,
	candidates candidateRepo,
	notes noteRepo,
	events eventRepo,
	tx txManager,
	publisher publisher,
	cache summaryCache,
	metrics recorder,
	cfg config.PipelineConfig,
) *Service {
	return &Service{
		postings:   postings,
		candidates: candidates,
		notes:      notes,
		events:     events,
		tx:         tx,
		publisher:  publisher,
		cache:      cache,
		metrics:    metrics,
		cfg:        cfg,
		log:        log.With("service", "posting"),
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

func (s *Service) invalidateSummary(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "invalidate summary cache", slog.String("error", err.Error()))
	}
}

func newEvent(postingID int64, t domain.EventType, changes map[string]any) domain.Event {
	return domain.Event{
		ID:           uuid.New(),
		JobPostingID: postingID,
		Type:         t,
		Changes:      changes,
		CreatedAt:    time.Now().UTC(),
	}
}

// attach distributes candidates over their postings and notes over their
// candidates. Candidate order follows the input; notes are in display order.
func attach(postings []domain.JobPosting, candidates []domain.Candidate, notes map[int64][]domain.Note) {
	byPosting := make(map[int64][]domain.Candidate, len(postings))
	for _, c := range candidates {
		c.Notes = pipeline.SortNotes(notes[c.ID])
		byPosting[c.JobPostingID] = append(byPosting[c.JobPostingID], c)
	}
	for i := range postings {
		cs := byPosting[postings[i].ID]
		if cs == nil {
			cs = []domain.Candidate{}
		}
		postings[i].Candidates = cs
	}
}

func candidateIDs(candidates []domain.Candidate) []int64 {
	ids := make([]int64, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}
	return ids
}
