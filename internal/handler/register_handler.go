package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/unclebandit/influencer-campaign-backend/internal/auth"
	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
	"github.com/unclebandit/influencer-campaign-backend/internal/model"
	"github.com/unclebandit/influencer-campaign-backend/internal/service"
)

type Registrar interface {
	Register(ctx context.Context, in service.RegisterInput) (*model.Profile, error)
}

type RegisterHandler struct {
	Service Registrar
}

func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.Service.Register(r.Context(), in)
	if err != nil {
		var verr *appErrors.ValidationError
		switch {
		case errors.As(err, &verr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]interface{}{"error": "validation failed", "fields": verr.Fields})
		case errors.Is(err, auth.ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileCreation):
			http.Error(w, "Error al crear el perfil", http.StatusInternalServerError)
		default:
			http.Error(w, "Ocurrió un error inesperado", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(profile)
}
