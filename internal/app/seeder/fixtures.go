package seeder

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the YAML document consumed by the seeder.
type Fixtures struct {
	Postings []PostingFixture `yaml:"postings"`
}

// PostingFixture is one job posting with its candidates.
type PostingFixture struct {
	Title          string             `yaml:"title"`
	Department     string             `yaml:"department"`
	Location       string             `yaml:"location"`
	Description    string             `yaml:"description"`
	JobType        string             `yaml:"job_type"`
	CompanyName    string             `yaml:"company_name"`
	ExternalID     string             `yaml:"external_id"`
	ApplicationURL string             `yaml:"application_url"`
	Status         string             `yaml:"status"`
	Salary         SalaryFixture      `yaml:"salary"`
	Candidates     []CandidateFixture `yaml:"candidates"`
}

// SalaryFixture is a pay range; empty currency and interval use the service defaults.
type SalaryFixture struct {
	Minimum  float64 `yaml:"minimum"`
	Maximum  float64 `yaml:"maximum"`
	Currency string  `yaml:"currency"`
	Interval string  `yaml:"interval"`
}

// CandidateFixture is one applicant.
type CandidateFixture struct {
	Name       string        `yaml:"name"`
	Role       string        `yaml:"role"`
	Location   string        `yaml:"location"`
	Experience string        `yaml:"experience"`
	Education  string        `yaml:"education"`
	ResumeText string        `yaml:"resume_text"`
	Skills     []string      `yaml:"skills"`
	Score      int           `yaml:"score"`
	Stage      int           `yaml:"stage"`
	Notes      []NoteFixture `yaml:"notes"`
}

// NoteFixture is a recruiter note. Stage 0 records the candidate's stage.
type NoteFixture struct {
	Content   string    `yaml:"content"`
	CreatedBy string    `yaml:"created_by"`
	CreatedAt time.Time `yaml:"created_at"`
	Stage     int       `yaml:"stage"`
}

// DefaultFixtures returns the embedded sample data: two postings and four
// candidates.
func DefaultFixtures() (*Fixtures, error) {
	return parseFixtures(defaultFixtures)
}

// LoadFixtures reads fixtures from path.
func LoadFixtures(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	return parseFixtures(raw)
}

func parseFixtures(raw []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

// Counts returns the number of postings, candidates and notes in fx.
func (fx *Fixtures) Counts() (postings, candidates, notes int) {
	postings = len(fx.Postings)
	for _, p := range fx.Postings {
		candidates += len(p.Candidates)
		for _, c := range p.Candidates {
			notes += len(c.Notes)
		}
	}
	return postings, candidates, notes
}
