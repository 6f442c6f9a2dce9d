package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"attorneycrm/config"
	_ "attorneycrm/docs"
	authadapter "attorneycrm/internal/adapters/auth"
	"attorneycrm/internal/adapters/email"
	httpdelivery "attorneycrm/internal/delivery/http"
	"attorneycrm/internal/delivery/http/controllers"
	"attorneycrm/internal/delivery/http/middleware"
	"attorneycrm/internal/domain"
	"attorneycrm/internal/repository/airtable"
	"attorneycrm/internal/repository/postgres"
	"attorneycrm/internal/services"
)

type repositories struct {
	attorneys domain.AttorneyRepository
	contacts  domain.ContactRepository
	companies domain.CompanyRepository
	events    domain.EventRepository
	rsvps     domain.RSVPRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	var repos repositories
	switch cfg.StoreProvider {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			logger.Error("database ping failed", "err", err)
			os.Exit(1)
		}
		repos = repositories{
			attorneys: postgres.NewAttorneyRepository(db),
			contacts:  postgres.NewContactRepository(db),
			companies: postgres.NewCompanyRepository(db),
			events:    postgres.NewEventRepository(db),
			rsvps:     postgres.NewRSVPRepository(db),
		}
	case "airtable":
		if cfg.AirtableAPIKey == "" || cfg.AirtableBaseID == "" {
			logger.Error("AIRTABLE_API_KEY and AIRTABLE_BASE_ID are required")
			os.Exit(1)
		}
		client := airtable.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID, &http.Client{Timeout: 30 * time.Second})
		repos = repositories{
			attorneys: airtable.NewAttorneyRepository(client),
			contacts:  airtable.NewContactRepository(client),
			companies: airtable.NewCompanyRepository(client),
			events:    airtable.NewEventRepository(client),
			rsvps:     airtable.NewRSVPRepository(client),
		}
	default:
		logger.Error("unknown store provider", "provider", cfg.StoreProvider)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	tokens := authadapter.NewJWTTokens(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(0)

	resolver := services.NewResolver(
		services.NewRepositoryFetcher(repos.companies, repos.events),
		logger,
		services.ResolverConfig{},
	)
	contactService := services.NewContactService(
		repos.contacts, repos.companies, repos.events, repos.rsvps,
		resolver, mailer, logger,
	)
	eventService := services.NewEventService(repos.events)
	authService := services.NewAuthService(repos.attorneys, hasher, tokens, cfg.JWTExpiry)

	mux := httpdelivery.NewRouter(
		controllers.NewAuthController(logger, authService),
		controllers.NewContactController(logger, contactService),
		controllers.NewEventController(logger, eventService),
		tokens,
	)

	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", srv.Addr, "store", cfg.StoreProvider, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
