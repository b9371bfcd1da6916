package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencehub/config"
	"conferencehub/internal/adapters/email"
	"conferencehub/internal/adapters/feed"
	deliveryhttp "conferencehub/internal/delivery/http"
	"conferencehub/internal/delivery/http/controllers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
	"conferencehub/internal/ledger"
	"conferencehub/internal/repository/postgres"
	"conferencehub/internal/services"
	"conferencehub/migrations"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title ConferenceHub API
// @version 1.0
// @description Conference discovery and registration API.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	startupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(startupCtx); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}
	if err := migrations.Apply(startupCtx, db); err != nil {
		logger.Error("failed to apply migrations", "err", err)
		os.Exit(1)
	}

	conferenceRepo := postgres.NewConferenceRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	ledgerStore, err := ledger.Open(cfg.LedgerPath)
	if err != nil {
		logger.Error("failed to open ledger", "path", cfg.LedgerPath, "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer())

	catalogSvc := services.NewCatalogService(conferenceRepo, speakerRepo, serviceTimeout)
	attendeeSvc := services.NewAttendeeService(conferenceRepo, registrationRepo, ledgerStore, emailSvc, logger)

	if cfg.CatalogFeedURL != "" {
		seedCatalog(startupCtx, logger, catalogSvc, cfg.CatalogFeedURL)
	}

	conferenceController := controllers.NewConferenceController(logger, catalogSvc)
	attendeeController := controllers.NewAttendeeController(logger, attendeeSvc)

	mux := deliveryhttp.NewRouter(conferenceController, attendeeController)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("api listening", "port", cfg.Port, "env", cfg.Environment)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "err", err)
	}
	logger.Info("server stopped")
}

// seedCatalog imports conferences from the configured feed when the catalog
// is empty. Records go through the catalog service so they pick up the same
// id assignment and field defaults as admin-created conferences. Seeding is
// best-effort: a failure is logged and the server starts with whatever the
// database already holds.
func seedCatalog(ctx context.Context, logger *slog.Logger, svc domain.CatalogService, url string) {
	existing, err := svc.ListConferences(ctx, domain.FilterSpec{})
	if err != nil {
		logger.Warn("catalog seed skipped: list failed", "err", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	fetcher := feed.NewHTTPFetcher(nil)
	confs, err := fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("catalog seed skipped: fetch failed", "url", url, "err", err)
		return
	}

	seeded := 0
	for _, conf := range confs {
		if err := svc.CreateConference(ctx, conf); err != nil {
			logger.Warn("catalog seed: create failed", "name", conf.Name, "err", err)
			continue
		}
		seeded++
	}
	logger.Info("catalog seeded from feed", "url", url, "count", seeded)
}
