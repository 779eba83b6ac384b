package domain

import "time"

// PostingStatusActive is the status literal counted as an active posting.
const PostingStatusActive = "Active"

// Salary is the advertised pay range of a posting.
type Salary struct {
	Minimum  float64
	Maximum  float64
	Currency Currency
	Interval SalaryInterval
}

// JobPosting is an open (or closed) position. It owns its candidates.
// Status is free-form; only the exact literal "Active" is treated as active.
type JobPosting struct {
	ID             int64
	Title          string
	Department     string
	Location       string
	Description    string
	JobType        string
	CompanyName    string
	ExternalID     string
	ApplicationURL string
	Salary         Salary
	Status         string
	Candidates     []Candidate
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CandidateCount returns the number of candidates attached to the posting.
func (p JobPosting) CandidateCount() int { return len(p.Candidates) }

// Summary is the dashboard aggregate over all postings.
type Summary struct {
	ActiveCount     int
	TotalCandidates int
}
