package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/unclebandit/influencer-campaign-backend/internal/controller"
	"github.com/unclebandit/influencer-campaign-backend/internal/handler"
	"github.com/unclebandit/influencer-campaign-backend/internal/middleware"
)

type Deps struct {
	Log       zerolog.Logger
	Wizard    *controller.WizardController
	Analyzer  *controller.AnalyzerController
	Campaigns *controller.CampaignController
	Dashboard *handler.DashboardHandler
	Register  *handler.RegisterHandler
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.Identity)

	r.Get("/catalog", handler.GetCatalog)
	r.Post("/register", d.Register.Register)
	r.Post("/analyzer", d.Analyzer.Analyze)

	// Drafts belong to a client; the user is only needed to submit.
	r.Route("/wizard", func(r chi.Router) {
		r.Get("/", d.Wizard.GetWizard)
		r.Delete("/", d.Wizard.Reset)
		r.Post("/mode", d.Wizard.SetMode)
		r.Post("/details", d.Wizard.SetProductDetails)
		r.Post("/niches", d.Wizard.SetSelectedNiches)
		r.Post("/niches/{id}/toggle", d.Wizard.ToggleNiche)
		r.Post("/search", d.Wizard.SetSearchCriteria)
		r.Post("/step", d.Wizard.AdvanceStep)
		r.Post("/back", d.Wizard.RetreatStep)
		r.With(middleware.RequireUser).Post("/submit", d.Wizard.Submit)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/dashboard", d.Dashboard.GetStats)
		r.Get("/campaigns", d.Campaigns.ListCampaigns)
		r.Get("/campaigns/{id}", d.Campaigns.GetCampaignDetails)
	})

	return r
}
