// internal/handler/dashboard_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/unclebandit/influencer-campaign-backend/internal/middleware"
	"github.com/unclebandit/influencer-campaign-backend/internal/service"
)

// DashboardHandler serves the per-user counters.
type DashboardHandler struct {
	Service *service.DashboardService
	Log     zerolog.Logger
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	stats, err := h.Service.Stats(r.Context(), userID)
	if err != nil {
		h.Log.Error().Err(err).Str("user_id", userID).Msg("failed to load dashboard stats")
		http.Error(w, "failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
