package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	_ "eventhub/docs"

	"eventhub/config"
	"eventhub/internal/adapters/auth"
	"eventhub/internal/adapters/email"
	httpdelivery "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
	"eventhub/internal/metrics"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/server"
	"eventhub/internal/services"
)

var (
	// Server flags (override config/env)
	serverPort  string
	skipMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables
- Apply pending database migrations (unless --skip-migrate)
- Serve the API, /metrics, /healthz, /readyz and /swagger/
- Shut down gracefully on SIGINT/SIGTERM

Examples:
  # Start with default configuration (from env vars)
  server serve

  # Start on another port with debug logging
  server serve --port 9090 --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "server port (default: PORT or 8080)")
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations on startup")
}

func runServer(ctx context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	if !skipMigrate {
		if err := postgres.Migrate(db); err != nil {
			db.Close()
			return err
		}
	}

	metrics.Init()
	if err := metrics.RegisterDB(db, "eventhub"); err != nil {
		logger.Warn("db stats collector not registered", "err", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mailer.SESRegion,
			AccessKeyID:     cfg.Mailer.SESAccessKeyID,
			SecretAccessKey: cfg.Mailer.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		db.Close()
		return fmt.Errorf("mailer: %w", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	handler := newHandler(cfg, logger, db, mailer, limiter)

	srv := server.New(handler, server.Options{
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)
	srv.OnShutdown("postgres", func(ctx context.Context) error {
		return db.Close()
	})
	if limiter != nil {
		srv.OnShutdown("rate limiter", func(ctx context.Context) error {
			limiter.Close()
			return nil
		})
	}

	logger.Info("starting eventhub", "env", cfg.Environment, "port", cfg.Port, "mailer", cfg.Mailer.Provider)
	return srv.Run(ctx)
}

// newHandler wires repositories, services and controllers into the router.
func newHandler(cfg *config.Config, logger *slog.Logger, db *sql.DB, mailer domain.Mailer, limiter *middleware.RateLimiter) http.Handler {
	tokens := auth.NewJWT(cfg.JWTSecret)

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)

	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	userSvc := services.NewUserService(userRepo, auth.NewBcryptHasher(cfg.BcryptCost), tokens, cfg.JWTExpiry, emailSvc, logger, cfg.RequestTimeout)
	eventSvc := services.NewEventService(eventRepo, cfg.RequestTimeout)
	attendeeSvc := services.NewAttendeeService(eventRepo, attendeeRepo, cfg.RequestTimeout)

	return httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:         logger,
		Verifier:       tokens,
		RateLimiter:    limiter,
		AllowedOrigins: cfg.AllowedOrigins(),
		Users:          controllers.NewUserController(logger, userSvc),
		Events:         controllers.NewEventController(logger, eventSvc),
		Attendees:      controllers.NewAttendeeController(logger, attendeeSvc),
		Health:         controllers.NewHealthController(logger, db),
	})
}
