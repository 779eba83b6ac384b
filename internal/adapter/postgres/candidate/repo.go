// Package candidate implements the candidate repository using PostgreSQL.
// Candidates are always read together with their posting's title.
package candidate

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

var selectColumns = []string{
	"c.id", "c.job_posting_id", "p.title", "c.name", "c.role", "c.location",
	"c.experience", "c.education", "c.resume_text", "c.skills", "c.score",
	"c.stage", "c.created_at", "c.updated_at",
}

// Repo provides candidate persistence backed by PostgreSQL.
// Notes are not loaded here; see the note repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new candidate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectBase() sq.SelectBuilder {
	return postgres.Builder.
		Select(selectColumns...).
		From("candidates c").
		Join("job_postings p ON p.id = c.job_posting_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a candidate by primary key.
// Returns domain.ErrNotFound if the candidate does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, selectBase().Where(sq.Eq{"c.id": id}))
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	c, err := scanCandidate(row)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", id)
	}
	return &c, nil
}

// GetForUpdate is GetByID with a row lock; it must run inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, selectBase().
		Where(sq.Eq{"c.id": id}).
		Suffix("FOR UPDATE OF c"))
	if err != nil {
		return nil, fmt.Errorf("get candidate for update: %w", err)
	}

	c, err := scanCandidate(row)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", id)
	}
	return &c, nil
}

// List returns candidates matching f, ordered by posting then id.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := selectBase().OrderBy("c.job_posting_id", "c.id")
	if f.PostingID != nil {
		b = b.Where(sq.Eq{"c.job_posting_id": *f.PostingID})
	}
	if f.IDs != nil {
		if len(f.IDs) == 0 {
			return []domain.Candidate{}, nil
		}
		b = b.Where("c.id = ANY(?)", f.IDs)
	}

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	out := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("list candidates: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a candidate and returns it as stored.
// Returns domain.ErrNotFound if the owning posting does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}

	row, err := postgres.QueryRow(ctx, q, postgres.Builder.
		Insert("candidates").
		Columns(
			"job_posting_id", "name", "role", "location", "experience",
			"education", "resume_text", "skills", "score", "stage",
		).
		Values(
			c.JobPostingID, c.Name, c.Role, c.Location, c.Experience,
			c.Education, c.ResumeText, skills, c.Score, int16(c.Stage),
		).
		Suffix("RETURNING id"))
	if err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}

	var id int64
	if err := row.Scan(&id); err != nil {
		return nil, postgres.MapError(err, "candidate for job posting", c.JobPostingID)
	}

	return r.GetByID(ctx, id)
}

// UpdateStage sets the stage of candidate id and bumps updated_at.
// Returns domain.ErrNotFound if the candidate does not exist.
func (r *Repo) UpdateStage(ctx context.Context, id int64, stage domain.Stage) (time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder.
		Update("candidates").
		Set("stage", int16(stage)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING updated_at"))
	if err != nil {
		return time.Time{}, fmt.Errorf("update candidate stage: %w", err)
	}

	var updatedAt time.Time
	if err := row.Scan(&updatedAt); err != nil {
		return time.Time{}, postgres.MapError(err, "candidate", id)
	}
	return updatedAt, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanCandidate(row pgx.Row) (domain.Candidate, error) {
	var (
		c     domain.Candidate
		stage int16
	)
	err := row.Scan(
		&c.ID, &c.JobPostingID, &c.JobTitle, &c.Name, &c.Role, &c.Location,
		&c.Experience, &c.Education, &c.ResumeText, &c.Skills, &c.Score,
		&stage, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Candidate{}, err
	}
	c.Stage = domain.Stage(stage)
	return c, nil
}
