package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/turkishstudent/backend/docs"
	"github.com/turkishstudent/backend/internal/cache"
	"github.com/turkishstudent/backend/internal/config"
	"github.com/turkishstudent/backend/internal/generation"
	"github.com/turkishstudent/backend/internal/handlers"
	"github.com/turkishstudent/backend/internal/logger"
	"github.com/turkishstudent/backend/internal/metrics"
	"github.com/turkishstudent/backend/internal/middleware"
	"github.com/turkishstudent/backend/internal/repositories"
	"github.com/turkishstudent/backend/internal/services"
	"go.uber.org/zap"
)

const aiRetryCount = 2

// routeRegistrar is implemented by every API handler
type routeRegistrar interface {
	RegisterRoutes(r chi.Router)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	logger.Logger.Info("Starting TurkishStudent API")

	db, err := connectDB(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := runMigrations(db, cfg.Migrations.Path); err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		if rdb, err = cache.Connect(context.Background(), cfg.Redis.URL); err != nil {
			return err
		}
		defer rdb.Close()
		logger.Logger.Info("Redis cache enabled", zap.Duration("ttl", cfg.Redis.TTL))
	}

	m := metrics.New()
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(cfg, m, buildHandlers(cfg, db, rdb, m)...),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AIService.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
	return nil
}

// buildHandlers wires repositories, services and handlers. A nil rdb disables the read cache.
func buildHandlers(cfg *config.Config, db *sql.DB, rdb *redis.Client, m *metrics.Metrics) []routeRegistrar {
	// Initialize repositories
	var vocabularyRepo services.VocabularyRepository = repositories.NewVocabularyRepository(db, logger.Logger)
	var grammarRepo services.GrammarRepository = repositories.NewGrammarRepository(db, logger.Logger)
	if rdb != nil {
		vocabularyRepo = cache.NewVocabularyRepository(vocabularyRepo,
			cache.NewStore(rdb, "turkishstudent:vocabulary", cfg.Redis.TTL, logger.Logger))
		grammarRepo = cache.NewGrammarRepository(grammarRepo,
			cache.NewStore(rdb, "turkishstudent:grammar", cfg.Redis.TTL, logger.Logger))
	}

	aiClient := generation.NewClient(generation.Config{
		BaseURL:    cfg.AIService.URL,
		APIKey:     cfg.AIService.APIKey,
		Timeout:    cfg.AIService.Timeout,
		RetryCount: aiRetryCount,
	}, logger.Logger)
	if cfg.AIService.URL == "" {
		logger.Logger.Warn("AI_SERVICE_URL is not set, generation endpoints will answer 503")
	}

	// Initialize services
	vocabularyService := services.NewVocabularyService(vocabularyRepo, m, logger.Logger)
	grammarService := services.NewGrammarService(grammarRepo, m, logger.Logger)
	generationService := services.NewGenerationService(aiClient, m, logger.Logger)

	return []routeRegistrar{
		handlers.NewVocabularyHandler(vocabularyService, logger.Logger),
		handlers.NewGrammarHandler(grammarService, logger.Logger),
		handlers.NewGenerationHandler(generationService, logger.Logger),
	}
}

func newRouter(cfg *config.Config, m *metrics.Metrics, apiHandlers ...routeRegistrar) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.MaxRequestSize))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		for _, h := range apiHandlers {
			h.RegisterRoutes(r)
		}
	})

	return r
}
