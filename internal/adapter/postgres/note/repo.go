// Package note implements the candidate note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

var columns = []string{
	"id", "candidate_id", "content", "created_by", "stage",
	"created_at", "edited_at", "edited_by",
}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a note. The id is generated by the caller.
// Returns domain.ErrNotFound if the candidate does not exist and
// domain.ErrValidation if the content is blank.
func (r *Repo) Create(ctx context.Context, n *domain.Note) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert("candidate_notes").
		Columns(columns...).
		Values(n.ID, n.CandidateID, n.Content, n.CreatedBy, int16(n.Stage), n.CreatedAt, n.EditedAt, n.EditedBy))
	if err != nil {
		return postgres.MapError(err, "note", n.ID)
	}
	return nil
}

// ListByCandidate returns the notes of one candidate, newest first.
func (r *Repo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Note, error) {
	return r.list(ctx, sq.Eq{"candidate_id": candidateID})
}

// ListByCandidateIDs returns the notes of many candidates grouped by
// candidate id, each group newest first.
func (r *Repo) ListByCandidateIDs(ctx context.Context, candidateIDs []int64) (map[int64][]domain.Note, error) {
	out := make(map[int64][]domain.Note, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return out, nil
	}

	notes, err := r.list(ctx, sq.Expr("candidate_id = ANY(?)", candidateIDs))
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		out[n.CandidateID] = append(out[n.CandidateID], n)
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder.
		Select(columns...).
		From("candidate_notes").
		Where(where).
		OrderBy("created_at DESC", "id"))
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("list notes: scan: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func scanNote(row pgx.Row) (domain.Note, error) {
	var (
		n     domain.Note
		stage int16
	)
	err := row.Scan(&n.ID, &n.CandidateID, &n.Content, &n.CreatedBy, &stage, &n.CreatedAt, &n.EditedAt, &n.EditedBy)
	if err != nil {
		return domain.Note{}, err
	}
	n.Stage = domain.Stage(stage)
	return n, nil
}
