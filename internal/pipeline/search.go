// Package pipeline holds the pure hiring-pipeline rules: candidate search,
// stage transitions and board markers, the note timeline and the dashboard
// summary. Every function takes value snapshots and returns new values;
// nothing here touches storage.
package pipeline

import (
	"strings"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// FilterCandidates returns the candidates whose searchable text contains every
// whitespace-separated token of query, case-insensitively. Tokens are plain
// substrings, so "go" also matches "Django". An empty or blank query matches
// every candidate. Input order is preserved and the input slice is not modified.
func FilterCandidates(candidates []domain.Candidate, query string) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(candidates))
	tokens := Tokenize(query)

	for _, c := range candidates {
		if matchesAll(Haystack(c), tokens) {
			out = append(out, c)
		}
	}
	return out
}

// Tokenize lowercases query and splits it on any run of whitespace.
// Empty tokens never appear in the result.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Haystack builds the lowercase text a candidate is searched against:
// profile fields, skills, the owning posting's title and, per note,
// its content, author and last editor.
func Haystack(c domain.Candidate) string {
	var b strings.Builder

	write := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	write(c.Name)
	write(c.Role)
	write(strings.Join(c.Skills, " "))
	write(c.Experience)
	write(c.Location)
	write(c.ResumeText)
	write(c.Education)
	write(c.JobTitle)
	for _, n := range c.Notes {
		write(n.Content)
		write(n.CreatedBy)
		write(n.Editor())
	}

	return strings.ToLower(b.String())
}

func matchesAll(haystack string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}
