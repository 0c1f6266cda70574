package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/unclebandit/influencer-campaign-backend/internal/classifier"
)

// Analyzer is satisfied by *classifier.Analyzer.
type Analyzer interface {
	Analyze(ctx context.Context, in classifier.AnalysisInput) (*classifier.Result, error)
}

type AnalyzerController struct {
	Analyzer Analyzer
	Log      zerolog.Logger
}

func (c *AnalyzerController) Analyze(w http.ResponseWriter, r *http.Request) {
	var in classifier.AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	res, err := c.Analyzer.Analyze(r.Context(), in)
	if err != nil {
		c.Log.Error().Err(err).Msg("business analysis failed")
		http.Error(w, "analysis failed, please try again", http.StatusGatewayTimeout)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
