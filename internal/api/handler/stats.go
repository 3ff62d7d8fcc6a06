package handler

import (
	"net/http"

	"github.com/nikrus/rpsduel-go/internal/api/response"
	"github.com/nikrus/rpsduel-go/internal/services/stats"
)

// StatsHandler serves the read-only stats endpoint
type StatsHandler struct {
	stats *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *stats.Service) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
