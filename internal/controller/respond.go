package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
)

// msgSubmitFailed is the one message users see for any failed write.
const msgSubmitFailed = "Error al crear la campaña. Por favor intenta de nuevo."

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error kinds to status codes. Validation errors carry
// their fields; anything else gets a generic message.
func writeError(w http.ResponseWriter, err error) {
	var verr *appErrors.ValidationError
	var notFound *appErrors.ErrCampaignNotFound

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, appErrors.ErrUnauthenticated):
		http.Error(w, "authentication required", http.StatusUnauthorized)
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func isClientError(err error) bool {
	return appErrors.IsValidation(err) || errors.Is(err, appErrors.ErrUnauthenticated)
}
