// Package event implements the pipeline event log using PostgreSQL.
package event

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// Repo provides append-only event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an event. Changes are stored as JSONB.
func (r *Repo) Create(ctx context.Context, e domain.Event) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changes := e.Changes
	if changes == nil {
		changes = map[string]any{}
	}

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert("pipeline_events").
		Columns("id", "job_posting_id", "candidate_id", "event_type", "changes", "created_at").
		Values(e.ID, e.JobPostingID, e.CandidateID, string(e.Type), changes, e.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "event", e.ID)
	}
	return nil
}

// ListByCandidate returns a candidate's history, newest first.
func (r *Repo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder.
		Select("id", "job_posting_id", "candidate_id", "event_type", "changes", "created_at").
		From("pipeline_events").
		Where(sq.Eq{"candidate_id": candidateID}).
		OrderBy("created_at DESC", "id"))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var (
			e         domain.Event
			eventType string
		)
		if err := rows.Scan(&e.ID, &e.JobPostingID, &e.CandidateID, &eventType, &e.Changes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("list events: scan: %w", err)
		}
		e.Type = domain.EventType(eventType)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
