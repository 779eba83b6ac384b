package pipeline

import (
	"cmp"
	"slices"
	"strings"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// SortCandidates returns a copy of candidates ordered by field. The sort is
// stable, so ties keep their incoming order. SortByNone, or any field the
// pipeline does not know, returns the candidates in their original order.
func SortCandidates(candidates []domain.Candidate, field domain.SortField, order domain.SortOrder) []domain.Candidate {
	out := slices.Clone(candidates)
	if out == nil {
		out = []domain.Candidate{}
	}

	compare := comparator(field)
	if compare == nil {
		return out
	}
	if order == domain.SortDesc {
		asc := compare
		compare = func(a, b domain.Candidate) int { return asc(b, a) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparator(field domain.SortField) func(a, b domain.Candidate) int {
	switch field {
	case domain.SortByName:
		return func(a, b domain.Candidate) int { return strings.Compare(a.Name, b.Name) }
	case domain.SortByRole:
		return func(a, b domain.Candidate) int { return strings.Compare(a.Role, b.Role) }
	case domain.SortByScore:
		return func(a, b domain.Candidate) int { return cmp.Compare(a.Score, b.Score) }
	case domain.SortByStage:
		return func(a, b domain.Candidate) int { return cmp.Compare(a.Stage, b.Stage) }
	}
	return nil
}
