package handler

import (
	"encoding/json"
	"net/http"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
)

// GetCatalog returns the fixed reference tables the forms are built from.
func GetCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"categories":      catalog.Categories(),
		"follower_ranges": catalog.FollowerRanges(),
		"budget_ranges":   catalog.BudgetRanges(),
		"languages":       catalog.Languages(),
		"countries":       catalog.Countries(),
	})
}
