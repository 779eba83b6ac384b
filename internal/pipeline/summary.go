package pipeline

import "github.com/heartmarshall/hiretrack-backend/internal/domain"

// Summarize counts postings whose status is exactly activeStatus and the
// total number of candidates across all postings.
func Summarize(postings []domain.JobPosting, activeStatus string) domain.Summary {
	var s domain.Summary
	for _, p := range postings {
		if p.Status == activeStatus {
			s.ActiveCount++
		}
		s.TotalCandidates += p.CandidateCount()
	}
	return s
}
