// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/unclebandit/influencer-campaign-backend/internal/auth"
	"github.com/unclebandit/influencer-campaign-backend/internal/classifier"
	"github.com/unclebandit/influencer-campaign-backend/internal/config"
	"github.com/unclebandit/influencer-campaign-backend/internal/controller"
	"github.com/unclebandit/influencer-campaign-backend/internal/db"
	"github.com/unclebandit/influencer-campaign-backend/internal/draftstore"
	"github.com/unclebandit/influencer-campaign-backend/internal/handler"
	"github.com/unclebandit/influencer-campaign-backend/internal/logger"
	"github.com/unclebandit/influencer-campaign-backend/internal/queue"
	"github.com/unclebandit/influencer-campaign-backend/internal/repository"
	"github.com/unclebandit/influencer-campaign-backend/internal/router"
	"github.com/unclebandit/influencer-campaign-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	drafts, err := draftstore.Open(cfg.DraftDBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DraftDBPath).Msg("failed to open draft store")
	}
	defer drafts.Close()

	q, closeQueue := newQueue(cfg, log)
	defer closeQueue()

	productRepo := &repository.ProductRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	profileRepo := &repository.ProfileRepository{DB: conn}
	matchRepo := &repository.MatchRepository{DB: conn}

	campaignService := &service.CampaignService{
		ProductRepo:  productRepo,
		CampaignRepo: campaignRepo,
		Queue:        q,
		WriteTimeout: cfg.WriteTimeout,
		Log:          log,
	}
	dashboardService := &service.DashboardService{
		ProductRepo:  productRepo,
		CampaignRepo: campaignRepo,
		MatchRepo:    matchRepo,
	}
	registrationService := &service.RegistrationService{
		Auth:        &auth.PasswordAuthenticator{DB: conn},
		ProfileRepo: profileRepo,
		Log:         log,
	}

	h := router.New(router.Deps{
		Log: log,
		Wizard: &controller.WizardController{
			Store:     drafts,
			Submitter: campaignService,
			Log:       log,
		},
		Analyzer: &controller.AnalyzerController{
			Analyzer: classifier.NewAnalyzer(cfg.AnalyzerDelay, cfg.AnalyzerTimeout),
			Log:      log,
		},
		Campaigns: &controller.CampaignController{CampaignService: campaignService},
		Dashboard: &handler.DashboardHandler{Service: dashboardService, Log: log},
		Register:  &handler.RegisterHandler{Service: registrationService},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.AppEnv).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newQueue picks RabbitMQ when AMQP_URL is set and the in-memory queue
// otherwise. The in-memory queue only logs campaign.created.
func newQueue(cfg *config.Config, log zerolog.Logger) (queue.Queue, func()) {
	if cfg.AMQPURL != "" {
		q, err := queue.DialAMQP(cfg.AMQPURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}
		return q, func() {
			if err := q.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close rabbitmq connection")
			}
		}
	}

	q := queue.NewInMemoryQueue(log)
	if err := queue.LogCampaignCreated(q, log); err != nil {
		log.Fatal().Err(err).Msg("failed to subscribe to campaign events")
	}
	return q, q.Wait
}
