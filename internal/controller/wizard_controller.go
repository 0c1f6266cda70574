// internal/controller/wizard_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/unclebandit/influencer-campaign-backend/internal/middleware"
	"github.com/unclebandit/influencer-campaign-backend/internal/wizard"
)

type WizardController struct {
	Store     wizard.Store
	Submitter wizard.Submitter
	Log       zerolog.Logger
	Now       func() time.Time

	locks keyedMutex
}

// WizardState is everything a step page needs to render itself without
// assuming earlier steps ran.
type WizardState struct {
	Draft               wizard.Draft       `json:"draft"`
	DetailsForm         wizard.DetailsForm `json:"details_form"`
	SearchForm          wizard.SearchForm  `json:"search_form"`
	SuggestedNiches     []string           `json:"suggested_niches"`
	DefaultCampaignName string             `json:"default_campaign_name"`
	Summary             wizard.Summary     `json:"summary"`
}

func (c *WizardController) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// open loads the caller's session and holds its lock until release.
func (c *WizardController) open(w http.ResponseWriter, r *http.Request) (*wizard.Session, func(), bool) {
	clientID := middleware.ClientIDFromContext(r.Context())
	if clientID == "" {
		http.Error(w, "missing client id", http.StatusBadRequest)
		return nil, nil, false
	}

	key := wizard.StorageKey(clientID)
	unlock := c.locks.lock(key)

	s, err := wizard.Open(r.Context(), c.Store, key)
	if err != nil {
		unlock()
		c.Log.Error().Err(err).Str("client_id", clientID).Msg("failed to load wizard draft")
		http.Error(w, "failed to load wizard", http.StatusInternalServerError)
		return nil, nil, false
	}
	return s, unlock, true
}

func (c *WizardController) state(s *wizard.Session) WizardState {
	d := s.Draft()
	return WizardState{
		Draft:               d,
		DetailsForm:         s.DetailsForm(),
		SearchForm:          s.SearchForm(),
		SuggestedNiches:     s.SuggestedNiches(),
		DefaultCampaignName: s.DefaultCampaignName(c.now()),
		Summary:             wizard.Summarize(&d),
	}
}

func (c *WizardController) GetWizard(w http.ResponseWriter, r *http.Request) {
	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	writeJSON(w, http.StatusOK, c.state(s))
}

func (c *WizardController) SetMode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Mode wizard.Mode `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	if err := s.SetMode(r.Context(), body.Mode); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.state(s))
}

func (c *WizardController) SetProductDetails(w http.ResponseWriter, r *http.Request) {
	var form wizard.DetailsForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	if err := s.SetProductDetails(r.Context(), form); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.state(s))
}

func (c *WizardController) ToggleNiche(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	changed, err := s.ToggleNiche(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"changed":         changed,
		"selected_niches": s.Draft().SelectedNiches,
	})
}

func (c *WizardController) SetSelectedNiches(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SelectedNiches []string `json:"selected_niches"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	if err := s.SetSelectedNiches(r.Context(), body.SelectedNiches); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.state(s))
}

func (c *WizardController) SetSearchCriteria(w http.ResponseWriter, r *http.Request) {
	var body struct {
		wizard.SearchForm
		// Index into the follower bands; overrides min/max followers.
		FollowerRange *int `json:"follower_range"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	form := body.SearchForm
	if body.FollowerRange != nil {
		var ok bool
		if form, ok = form.WithFollowerRange(*body.FollowerRange); !ok {
			http.Error(w, "unknown follower range", http.StatusBadRequest)
			return
		}
	}

	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	if err := s.SetSearchCriteria(r.Context(), form); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.state(s))
}

func (c *WizardController) AdvanceStep(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Step wizard.Step `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	if err := s.AdvanceStep(r.Context(), body.Step); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.state(s))
}

func (c *WizardController) RetreatStep(w http.ResponseWriter, r *http.Request) {
	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	if err := s.RetreatStep(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.state(s))
}

// Reset is the cancel action.
func (c *WizardController) Reset(w http.ResponseWriter, r *http.Request) {
	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	if err := s.Reset(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.state(s))
}

func (c *WizardController) Submit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignName string `json:"campaign_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	s, release, ok := c.open(w, r)
	if !ok {
		return
	}
	defer release()

	userID := middleware.UserIDFromContext(r.Context())
	campaign, err := s.Submit(r.Context(), c.Submitter, userID, body.CampaignName)
	switch {
	case err == nil:
	case campaign != nil && wizard.IsDraftNotReset(err):
		c.Log.Warn().Err(err).Str("campaign_id", campaign.ID).Msg("wizard draft left behind after submit")
	default:
		c.writeSubmitError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

// writeSubmitError keeps validation and auth errors distinct; every write
// failure, partial or not, gets the same message.
func (c *WizardController) writeSubmitError(w http.ResponseWriter, err error) {
	if isClientError(err) {
		writeError(w, err)
		return
	}
	c.Log.Error().Err(err).Msg("campaign submission failed")
	writeJSON(w, http.StatusBadGateway, map[string]string{"error": msgSubmitFailed})
}
