package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/denistssx-code/botanus/internal/config"
	"github.com/denistssx-code/botanus/internal/db"
	dbMemory "github.com/denistssx-code/botanus/internal/db/memory"
	dbRedis "github.com/denistssx-code/botanus/internal/db/redis"
	dbSqlite "github.com/denistssx-code/botanus/internal/db/sqlite"
	logpkg "github.com/denistssx-code/botanus/internal/logger"
	"github.com/denistssx-code/botanus/internal/metrics"
	libraryrepo "github.com/denistssx-code/botanus/internal/repository/library"
	plantrepo "github.com/denistssx-code/botanus/internal/repository/plant"
	"github.com/denistssx-code/botanus/internal/seed"
	chiTransport "github.com/denistssx-code/botanus/internal/transport/chi"
	cataloguc "github.com/denistssx-code/botanus/internal/usecase/catalog"
	healthuc "github.com/denistssx-code/botanus/internal/usecase/health"
	libraryuc "github.com/denistssx-code/botanus/internal/usecase/library"
	searchuc "github.com/denistssx-code/botanus/internal/usecase/search"
	statsuc "github.com/denistssx-code/botanus/internal/usecase/stats"
	suggestuc "github.com/denistssx-code/botanus/internal/usecase/suggest"
	"github.com/denistssx-code/botanus/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting botanus API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// Create database store based on driver
	var store db.Store
	switch cfg.Database.Driver {
	case "memory":
		store = dbMemory.NewStore()
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	case "sqlite":
		store, err = dbSqlite.NewStore(cfg.Database.Path)
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	// Create repositories
	plantRepo := plantrepo.New(store)
	entryRepo := libraryrepo.New(store)

	// Create use case services
	catalogSvc := cataloguc.New(plantRepo)
	searchSvc := searchuc.New(plantRepo)
	librarySvc := libraryuc.New(entryRepo, plantRepo)
	statsSvc := statsuc.New(plantRepo, librarySvc)
	suggestSvc := suggestuc.New(plantRepo, cfg.Catalog.SuggestionLimit)
	healthSvc := healthuc.New(store)

	// Load the reference catalog. Seeding is idempotent: records
	// already present dedupe onto their existing IDs.
	if cfg.Catalog.SeedEnabled() {
		seedPlants, err := seed.Plants()
		if err != nil {
			logger.Fatal("Failed to load seed catalog", zap.Error(err))
		}
		created, err := catalogSvc.Seed(ctx, seedPlants)
		if err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		logger.Info("Catalog seeded",
			zap.Int("plants", len(seedPlants)),
			zap.Int("created", created),
		)
	}

	// Create chi server
	server := chiTransport.NewServer(
		catalogSvc, searchSvc, librarySvc, statsSvc, suggestSvc, healthSvc, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
