package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
	"github.com/heartmarshall/hiretrack-backend/internal/pipeline"
	"github.com/heartmarshall/hiretrack-backend/internal/service/candidate"
	"github.com/heartmarshall/hiretrack-backend/internal/service/posting"
)

// Result holds the outcome of a seeding run.
type Result struct {
	Postings   int
	Candidates int
	Notes      int
	Duration   time.Duration
}

// Seeder writes fixtures through the services, so validation, defaults and
// pipeline events apply exactly as for API clients.
type Seeder struct {
	log        *slog.Logger
	postings   PostingCreator
	candidates CandidateCreator
	notes      NoteWriter
	cfg        Config
}

// New creates a Seeder.
func New(log *slog.Logger, postings PostingCreator, candidates CandidateCreator, notes NoteWriter, cfg Config) *Seeder {
	return &Seeder{
		log:        log.With("component", "seeder"),
		postings:   postings,
		candidates: candidates,
		notes:      notes,
		cfg:        cfg,
	}
}

// Fixtures resolves the configured fixtures: the file at FixturesPath, or
// the embedded sample data.
func (s *Seeder) Fixtures() (*Fixtures, error) {
	if s.cfg.FixturesPath != "" {
		return LoadFixtures(s.cfg.FixturesPath)
	}
	return DefaultFixtures()
}

// Run seeds fx. In dry-run mode nothing is written and Result reports what
// would have been created. It stops at the first failure; rows already
// written stay in place.
func (s *Seeder) Run(ctx context.Context, fx *Fixtures) (Result, error) {
	start := time.Now()

	if s.cfg.DryRun {
		p, c, n := fx.Counts()
		s.log.Info("dry run, nothing written",
			slog.Int("postings", p),
			slog.Int("candidates", c),
			slog.Int("notes", n),
		)
		return Result{Postings: p, Candidates: c, Notes: n, Duration: time.Since(start)}, nil
	}

	var res Result
	for i, pf := range fx.Postings {
		p, err := s.postings.CreatePosting(ctx, posting.CreatePostingInput{
			Title:          pf.Title,
			Department:     pf.Department,
			Location:       pf.Location,
			Description:    pf.Description,
			JobType:        pf.JobType,
			CompanyName:    pf.CompanyName,
			ExternalID:     pf.ExternalID,
			ApplicationURL: pf.ApplicationURL,
			Status:         pf.Status,
			Salary: posting.SalaryInput{
				Minimum:  pf.Salary.Minimum,
				Maximum:  pf.Salary.Maximum,
				Currency: domain.Currency(pf.Salary.Currency),
				Interval: domain.SalaryInterval(pf.Salary.Interval),
			},
		})
		if err != nil {
			return res, fmt.Errorf("posting %d (%q): %w", i, pf.Title, err)
		}
		res.Postings++

		for _, cf := range pf.Candidates {
			notes, err := s.seedCandidate(ctx, p.ID, cf)
			if err != nil {
				return res, fmt.Errorf("posting %q candidate %q: %w", pf.Title, cf.Name, err)
			}
			res.Candidates++
			res.Notes += notes
		}

		s.log.Info("seeded posting",
			slog.Int64("posting_id", p.ID),
			slog.String("title", p.Title),
			slog.Int("candidates", len(pf.Candidates)),
		)
	}

	res.Duration = time.Since(start)
	return res, nil
}

func (s *Seeder) seedCandidate(ctx context.Context, postingID int64, cf CandidateFixture) (int, error) {
	c, err := s.candidates.CreateCandidate(ctx, candidate.CreateCandidateInput{
		JobPostingID: postingID,
		Name:         cf.Name,
		Role:         cf.Role,
		Location:     cf.Location,
		Experience:   cf.Experience,
		Education:    cf.Education,
		ResumeText:   cf.ResumeText,
		Skills:       cf.Skills,
		Score:        cf.Score,
		Stage:        domain.Stage(cf.Stage),
	})
	if err != nil {
		return 0, err
	}

	written := 0
	for _, nf := range cf.Notes {
		stage := c.Stage
		if nf.Stage != 0 {
			stage = domain.Stage(nf.Stage)
		}
		if !stage.IsValid() {
			return written, domain.NewValidationError("notes.stage", "must be in 1..5")
		}

		createdAt := nf.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		n, ok := pipeline.NewNote(c.ID, nf.Content, nf.CreatedBy, stage, createdAt.UTC())
		if !ok {
			continue
		}
		if err := s.notes.Create(ctx, &n); err != nil {
			return written, fmt.Errorf("note: %w", err)
		}
		written++
	}
	return written, nil
}
