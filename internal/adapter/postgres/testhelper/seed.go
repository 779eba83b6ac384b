package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPosting inserts an active job posting with a unique title.
func SeedPosting(t *testing.T, pool *pgxpool.Pool) domain.JobPosting {
	t.Helper()

	p := domain.JobPosting{
		Title:       "Engineer " + uniqueSuffix(),
		Department:  "Engineering",
		Location:    "Remote",
		Description: "Build things",
		JobType:     "Full-time",
		CompanyName: "Acme",
		Salary: domain.Salary{
			Minimum:  100000,
			Maximum:  150000,
			Currency: domain.CurrencyUSD,
			Interval: domain.SalaryIntervalYear,
		},
		Status: domain.PostingStatusActive,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO job_postings (title, department, location, description, job_type, company_name,
		     salary_min, salary_max, salary_currency, salary_interval, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Department, p.Location, p.Description, p.JobType, p.CompanyName,
		p.Salary.Minimum, p.Salary.Maximum, string(p.Salary.Currency), string(p.Salary.Interval), p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPosting: %v", err)
	}

	return p
}

// SeedCandidate inserts a candidate under postingID at the given stage.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool, postingID int64, stage domain.Stage) domain.Candidate {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Candidate{
		JobPostingID: postingID,
		Name:         "Candidate " + suffix,
		Role:         "Developer",
		Location:     "Berlin",
		Experience:   "4 years",
		Education:    "BSc",
		ResumeText:   "resume " + suffix,
		Skills:       []string{"Go", "PostgreSQL"},
		Score:        70,
		Stage:        stage,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO candidates (job_posting_id, name, role, location, experience, education,
		     resume_text, skills, score, stage)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		c.JobPostingID, c.Name, c.Role, c.Location, c.Experience, c.Education,
		c.ResumeText, c.Skills, c.Score, int16(c.Stage),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCandidate: %v", err)
	}

	return c
}

// SeedNote inserts a note on candidateID created at the given time.
func SeedNote(t *testing.T, pool *pgxpool.Pool, candidateID int64, content string, at time.Time) domain.Note {
	t.Helper()

	n := domain.Note{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Content:     content,
		CreatedAt:   at.UTC().Truncate(time.Microsecond),
		CreatedBy:   "Recruiter",
		Stage:       domain.StageApplied,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO candidate_notes (id, candidate_id, content, created_by, stage, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.CandidateID, n.Content, n.CreatedBy, int16(n.Stage), n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}

	return n
}
