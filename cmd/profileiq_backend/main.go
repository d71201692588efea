package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/core/services"
	"github.com/profileiq/profileiq-backend/internal/handlers"
	"github.com/profileiq/profileiq-backend/internal/middleware"
	"github.com/profileiq/profileiq-backend/internal/repositories/database/pgsql"
	"github.com/profileiq/profileiq-backend/internal/repositories/memory"
	"github.com/profileiq/profileiq-backend/pkg/config"
	"github.com/profileiq/profileiq-backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title ProfileIQ Backend API
// @version 1.0
// @description Admin dashboard backend for the ProfileIQ behavioral assessment platform.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container, cleanup, err := buildServices(cfg, logger)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig()))

	if client := newAnalyticsClient(cfg, logger); client != nil {
		defer client.Close()
		r.Use(middleware.AnalyticsMiddleware(client))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires repositories and services for the configured store.
// The returned cleanup closes the database pool when one was opened.
func buildServices(cfg *config.Config, logger *slog.Logger) (*portssvc.ServiceContainer, func(), error) {
	authService := services.NewAuthService(services.AuthConfig{
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		JWTSecret:         cfg.JWTSecret,
		JWTExpiryDuration: cfg.JWTExpiryDuration,
		JWTIssuer:         cfg.JWTIssuer,
	})

	if cfg.UseMemoryStore {
		logger.Info("Using in-memory store")
		store := memory.NewStore()
		container := &portssvc.ServiceContainer{
			Auth:      authService,
			Client:    services.NewClientService(store, store, cfg.DefaultCredits),
			Ledger:    services.NewLedgerService(store, store),
			Reporting: services.NewReportingService(store, store),
		}
		return container, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return nil, nil, err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := &portssvc.ServiceContainer{
		Auth:   authService,
		Client: services.NewClientService(repos.ClientRepo, repos.LedgerRepo, cfg.DefaultCredits),
		Ledger: services.NewLedgerService(repos.ClientRepo, repos.LedgerRepo),
		Reporting: services.NewReportingService(repos.ClientRepo, repos.LedgerRepo,
			services.WithCatalogCounters(repos.QuestionnaireRepo, repos.ProfileRepo)),
		Questionnaire: services.NewQuestionnaireService(repos.QuestionnaireRepo),
		Profile:       services.NewProfileService(repos.ProfileRepo),
		Chatbot:       services.NewChatbotService(repos.ChatbotRepo),
		Group:         services.NewGroupService(repos.GroupRepo),
	}
	return container, func() { database.ClosePgxPool(dbPool) }, nil
}

// runMigrations applies all pending "up" migrations before the server
// starts serving traffic.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func corsConfig() cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return corsCfg
}

// newAnalyticsClient creates a PostHog client when an API key is configured.
func newAnalyticsClient(cfg *config.Config, logger *slog.Logger) posthog.Client {
	if cfg.PostHogAPIKey == "" {
		logger.Warn("PostHog API key is empty, analytics disabled.")
		return nil
	}
	client, err := posthog.NewWithConfig(cfg.PostHogAPIKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	if err != nil {
		logger.Error("Failed to initialize PostHog client", slog.String("error", err.Error()))
		return nil
	}
	return client
}
