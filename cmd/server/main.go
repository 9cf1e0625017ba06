package main

import (
	"attractions-service/internal/adapters/places"
	"attractions-service/internal/adapters/repositories"
	"attractions-service/internal/api"
	"attractions-service/internal/config"
	"attractions-service/internal/platform/db"
	"attractions-service/internal/platform/logger"
	"attractions-service/internal/ports"
	"attractions-service/internal/services"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// main is the application composition root.
// It loads configuration, builds the logger and hands over to run until a signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, appLogger)
	stop()

	if err != nil {
		appLogger.Error("server stopped with error", zap.Error(err))
		_ = appLogger.Sync()
		os.Exit(1)
	}

	appLogger.Info("server exiting")
	_ = appLogger.Sync()
}

// run wires concrete adapters (Google Places, Postgres) behind ports and serves
// HTTP until ctx is cancelled. Every resource it opens is released before it returns.
func run(ctx context.Context, cfg config.Config, appLogger *zap.Logger) error {
	// A missing key is reported per request, so the server still starts without one.
	var provider ports.PlacesProvider
	if cfg.GoogleMapsAPIKey == "" {
		appLogger.Warn("GOOGLE_MAPS_API_KEY is not set; attraction lookups will fail")
	} else {
		p, err := places.NewGooglePlacesProvider(cfg.GoogleMapsAPIKey, appLogger)
		if err != nil {
			return fmt.Errorf("create places provider: %w", err)
		}
		provider = p
	}

	var history ports.SearchLog
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(ctx, conn); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}
		history = repositories.NewSQLSearchLog(conn)
		appLogger.Info("search history enabled")
	}

	finder := services.NewAttractionFinder(provider, history, services.FinderConfig{
		APIKey:       cfg.GoogleMapsAPIKey,
		RadiusMeters: cfg.PlacesRadiusMeters,
		PlaceType:    cfg.PlacesType,
		Language:     cfg.PlacesLanguage,
	}, appLogger)

	router := api.NewRouter(finder, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.ServerPort), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}
