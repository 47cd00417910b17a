// Package app wires configuration, storage, providers, services, and
// the HTTP server into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/topiclens/topiclens-backend/internal/adapter/postgres"
	historyrepo "github.com/topiclens/topiclens-backend/internal/adapter/postgres/history"
	userrepo "github.com/topiclens/topiclens-backend/internal/adapter/postgres/user"
	"github.com/topiclens/topiclens-backend/internal/adapter/provider/openai"
	"github.com/topiclens/topiclens-backend/internal/adapter/provider/reddit"
	jwtauth "github.com/topiclens/topiclens-backend/internal/auth"
	"github.com/topiclens/topiclens-backend/internal/config"
	"github.com/topiclens/topiclens-backend/internal/service/analysis"
	authsvc "github.com/topiclens/topiclens-backend/internal/service/auth"
	historysvc "github.com/topiclens/topiclens-backend/internal/service/history"
	searchsvc "github.com/topiclens/topiclens-backend/internal/service/search"
	"github.com/topiclens/topiclens-backend/internal/transport/middleware"
	"github.com/topiclens/topiclens-backend/internal/transport/rest"
	"github.com/topiclens/topiclens-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects
// to the database, builds the service graph, and serves HTTP until the
// context is cancelled or the process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txManager := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	records := historyrepo.New(pool)

	redditClient := reddit.NewClient(cfg.Reddit, logger)
	openaiClient := openai.NewClient(cfg.OpenAI, logger)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService, err := authsvc.NewService(logger, users, jwtManager, txManager, cfg.Auth)
	if err != nil {
		return fmt.Errorf("create auth service: %w", err)
	}
	historyService := historysvc.NewService(logger, records)
	analysisAdapter := analysis.NewAdapter(logger, openaiClient, cfg.Search)
	searchService := searchsvc.NewService(logger, redditClient, analysisAdapter, historyService, cfg.Search)

	authHandler := rest.NewAuthHandler(authService, logger)
	historyHandler := rest.NewHistoryHandler(historyService, logger)
	searchHandler := rest.NewSearchHandler(searchService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	requireAuth := middleware.Auth(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /auth/me/history", requireAuth(http.HandlerFunc(historyHandler.List)))
	mux.Handle("POST /auth/me/history", requireAuth(http.HandlerFunc(historyHandler.Append)))
	mux.Handle("DELETE /auth/me/history/{id}", requireAuth(http.HandlerFunc(historyHandler.Delete)))
	mux.Handle("POST /search", requireAuth(http.HandlerFunc(searchHandler.Search)))
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
