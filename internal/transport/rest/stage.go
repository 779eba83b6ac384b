package rest

import (
	"net/http"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

// Stages handles GET /api/stages: the fixed pipeline catalogue.
func Stages(w http.ResponseWriter, _ *http.Request) {
	out := make([]stageResponse, len(domain.AllStages))
	for i, s := range domain.AllStages {
		out[i] = stageResponse{
			ID:         int(s),
			Name:       s.Label(),
			Color:      s.Color(),
			BadgeClass: s.BadgeClass(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}
