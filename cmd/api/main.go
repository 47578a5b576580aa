package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"backoffice-cms/internal/common/pagination"
	"backoffice-cms/internal/config"
	pgRepo "backoffice-cms/internal/infra/adapter/persistence/postgres"
	"backoffice-cms/internal/infra/db"
	"backoffice-cms/internal/observability/logging"
	"backoffice-cms/internal/observability/metrics"
	"backoffice-cms/internal/observability/tracing"
	"backoffice-cms/internal/repository"
	"backoffice-cms/internal/resilience/circuitbreaker"

	artUC "backoffice-cms/internal/usecase/article"
	catUC "backoffice-cms/internal/usecase/category"
	userUC "backoffice-cms/internal/usecase/user"

	hhttp "backoffice-cms/internal/handler/http"
	harticle "backoffice-cms/internal/handler/http/article"
	hauth "backoffice-cms/internal/handler/http/auth"
	hcategory "backoffice-cms/internal/handler/http/category"
	huser "backoffice-cms/internal/handler/http/user"
	"backoffice-cms/internal/handler/http/requestid"
)

func main() {
	logger := initLogger()
	cfg := loadSecurityConfig(logger)
	secret := loadJWTSecret(logger, cfg)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	components := setupServer(logger, database, cfg, secret, version)

	runServer(logger, components, version)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadSecurityConfig reads the security policy file. The server refuses to
// start without a valid one so authorization never runs on implicit defaults.
func loadSecurityConfig(logger *slog.Logger) *config.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG")
	if path == "" {
		path = "configs/security.yaml"
	}
	cfg, err := config.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security configuration",
			slog.String("path", path),
			slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// loadJWTSecret reads and validates the token signing secret from the
// environment variable named by the security configuration.
func loadJWTSecret(logger *slog.Logger, cfg *config.SecurityConfig) []byte {
	envName := cfg.GetJWTSecretEnv()
	secret := os.Getenv(envName)
	if secret == "" {
		logger.Error("JWT signing secret must be set", slog.String("env", envName))
		os.Exit(1)
	}
	// Enforce a minimum of 32 characters (256 bits).
	if len(secret) < 32 {
		logger.Error("JWT signing secret must be at least 32 characters (256 bits)",
			slog.String("env", envName))
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT signing secret must not be a common weak value",
				slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler http.Handler
	Cron    *cron.Cron
}

// setupServer wires repositories, services, routes and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.SecurityConfig, secret []byte, version string) *ServerComponents {
	// All queries go through the circuit breaker so a struggling database
	// fails fast instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	articleRepo := pgRepo.NewArticleRepo(breaker)
	categoryRepo := pgRepo.NewCategoryRepo(breaker)
	userRepo := pgRepo.NewUserRepo(breaker)

	artSvc := &artUC.Service{Repo: articleRepo, Categories: categoryRepo}
	catSvc := &catUC.Service{Repo: categoryRepo}
	userSvc := &userUC.Service{
		Repo:              userRepo,
		MinPasswordLength: cfg.GetMinPasswordLength(),
		WeakPasswords:     cfg.GetWeakPasswords(),
	}

	hauth.SetPublicEndpoints(cfg.GetPublicEndpoints())

	collector := &metrics.Collector{
		Articles:   articleRepo,
		Users:      userRepo,
		Categories: categoryRepo,
		Logger:     logger,
	}
	cronJob, err := collector.Start("@every 1m")
	if err != nil {
		logger.Error("failed to start metrics collector", slog.Any("error", err))
		os.Exit(1)
	}

	rootMux := setupRoutes(database, version, cfg, secret, artSvc, catSvc, userSvc, userRepo, logger)
	handler := applyMiddleware(logger, rootMux)

	return &ServerComponents{
		Handler: handler,
		Cron:    cronJob,
	}
}

// setupRoutes registers all HTTP routes (public and protected).
func setupRoutes(
	database *sql.DB,
	version string,
	cfg *config.SecurityConfig,
	secret []byte,
	artSvc *artUC.Service,
	catSvc *catUC.Service,
	userSvc *userUC.Service,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) *http.ServeMux {
	loginLimiter := hauth.NewLoginLimiter(cfg.GetLoginRatePerMinute(), cfg.GetLoginBurst())
	tokenExpiry := time.Duration(cfg.GetJWTExpiryHours()) * time.Hour

	publicMux := http.NewServeMux()
	publicMux.Handle("POST /auth/login", hauth.LoginHandler(userSvc, secret, tokenExpiry, loginLimiter))
	publicMux.Handle("POST /auth/register", hauth.RegisterHandler(userSvc))

	publicMux.Handle("/healthz", &hhttp.HealthHandler{DB: database, Version: version})
	publicMux.Handle("/readyz", &hhttp.ReadyHandler{DB: database})
	publicMux.Handle("/livez", &hhttp.LiveHandler{})
	publicMux.Handle("/metrics", hhttp.MetricsHandler())

	paginationCfg := pagination.LoadFromEnv()

	privateMux := http.NewServeMux()
	privateMux.Handle("GET /auth/me", hauth.MeHandler(userSvc))
	harticle.Register(privateMux, artSvc, paginationCfg, logger)
	hcategory.Register(privateMux, catSvc)
	huser.Register(privateMux, userSvc, paginationCfg)

	protected := hauth.Authz(secret, userRepo)(privateMux)

	rootMux := http.NewServeMux()
	rootMux.Handle("/auth/login", publicMux)
	rootMux.Handle("/auth/register", publicMux)
	rootMux.Handle("/healthz", publicMux)
	rootMux.Handle("/readyz", publicMux)
	rootMux.Handle("/livez", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/", protected)

	return rootMux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Recovery → Logging → Tracing → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost).
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = tracing.Middleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, components *ServerComponents, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		if components.Cron != nil {
			components.Cron.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
