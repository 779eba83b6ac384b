// Package posting implements the job posting repository using PostgreSQL.
package posting

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hiretrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

const table = "job_postings"

var columns = []string{
	"id", "title", "department", "location", "description", "job_type",
	"company_name", "external_id", "application_url",
	"salary_min", "salary_max", "salary_currency", "salary_interval",
	"status", "created_at", "updated_at",
}

// Repo provides job posting persistence backed by PostgreSQL.
// Postings are returned without candidates; callers attach them.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new job posting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a posting by primary key.
// Returns domain.ErrNotFound if the posting does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, fmt.Errorf("get job posting: %w", err)
	}

	p, err := scanPosting(row)
	if err != nil {
		return nil, postgres.MapError(err, "job posting", id)
	}
	return &p, nil
}

// List returns every posting ordered by id.
// Returns an empty slice (not nil) when there are no postings.
func (r *Repo) List(ctx context.Context) ([]domain.JobPosting, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	defer rows.Close()

	postings := []domain.JobPosting{}
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("list job postings: scan: %w", err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}

	return postings, nil
}

// Exists reports whether a posting with id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_postings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "job posting", id)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a posting and returns it with the store-assigned id and timestamps.
func (r *Repo) Create(ctx context.Context, p *domain.JobPosting) (*domain.JobPosting, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder.
		Insert(table).
		Columns(
			"title", "department", "location", "description", "job_type",
			"company_name", "external_id", "application_url",
			"salary_min", "salary_max", "salary_currency", "salary_interval", "status",
		).
		Values(
			p.Title, p.Department, p.Location, p.Description, p.JobType,
			p.CompanyName, p.ExternalID, p.ApplicationURL,
			p.Salary.Minimum, p.Salary.Maximum, string(p.Salary.Currency), string(p.Salary.Interval), p.Status,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")))
	if err != nil {
		return nil, fmt.Errorf("create job posting: %w", err)
	}

	created, err := scanPosting(row)
	if err != nil {
		return nil, postgres.MapError(err, "job posting", "new")
	}
	return &created, nil
}

// Update overwrites the editable fields of the posting with p.ID.
// Returns domain.ErrNotFound if the posting does not exist.
func (r *Repo) Update(ctx context.Context, p *domain.JobPosting) (*domain.JobPosting, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"title":           p.Title,
			"department":      p.Department,
			"location":        p.Location,
			"description":     p.Description,
			"job_type":        p.JobType,
			"company_name":    p.CompanyName,
			"external_id":     p.ExternalID,
			"application_url": p.ApplicationURL,
			"salary_min":      p.Salary.Minimum,
			"salary_max":      p.Salary.Maximum,
			"salary_currency": string(p.Salary.Currency),
			"salary_interval": string(p.Salary.Interval),
			"status":          p.Status,
			"updated_at":      time.Now().UTC(),
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")))
	if err != nil {
		return nil, fmt.Errorf("update job posting: %w", err)
	}

	updated, err := scanPosting(row)
	if err != nil {
		return nil, postgres.MapError(err, "job posting", p.ID)
	}
	return &updated, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanPosting(row pgx.Row) (domain.JobPosting, error) {
	var (
		p                  domain.JobPosting
		currency, interval string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Department, &p.Location, &p.Description, &p.JobType,
		&p.CompanyName, &p.ExternalID, &p.ApplicationURL,
		&p.Salary.Minimum, &p.Salary.Maximum, &currency, &interval,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.JobPosting{}, err
	}
	p.Salary.Currency = domain.Currency(currency)
	p.Salary.Interval = domain.SalaryInterval(interval)
	return p, nil
}
