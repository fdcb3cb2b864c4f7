package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/config"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/db"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/draws"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/handlers"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/repositories"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/routes"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/services"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/storage"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/tennisapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	database, err := db.Connect(cfg.DatabaseURL, 10*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	var archive storage.Archive
	if cfg.ArchiveConfigured() {
		archive, err = storage.NewCloudflareR2Archive(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
		})
		if err != nil {
			logger.Error("failed to configure payload archive", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("payload archiving enabled", slog.String("bucket", cfg.R2BucketName))
	}

	hub := draws.NewHub(logger)
	go hub.Run()

	tournamentRepo := repositories.NewPostgresTournamentRepository(database)
	eventRepo := repositories.NewPostgresEventRepository(database)
	drawRepo := repositories.NewPostgresDrawRepository(database)
	matchRepo := repositories.NewPostgresMatchRepository(database)
	bracketRepo := repositories.NewPostgresBracketRepository(database)

	apiClient := tennisapi.NewClient(cfg.TennisAPIURL, cfg.UpstreamTimeout)

	drawService := services.NewDrawService(tournamentRepo, eventRepo, drawRepo, matchRepo, bracketRepo)
	collector := services.NewCollectorService(database, apiClient, eventRepo, drawRepo, matchRepo, bracketRepo,
		hub, archive, logger, services.CollectorConfig{
			Concurrency: cfg.CollectConcurrency,
			Delay:       cfg.CollectDelay,
		})

	router := routes.SetupRoutes(routes.Handlers{
		Tournament: handlers.NewTournamentHandler(drawService),
		Draw:       handlers.NewDrawHandler(drawService),
		Health:     handlers.NewHealthHandler(database),
		WebSocket:  handlers.NewWebSocketHandler(hub, logger),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go runCollectionScheduler(ctx, collector, cfg, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", slog.Int("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

// runCollectionScheduler sweeps the tracked events on a fixed interval until
// the context is cancelled.
func runCollectionScheduler(ctx context.Context, collector services.CollectorService, cfg *config.Config, logger *slog.Logger) {
	if cfg.CollectOnStart {
		if _, err := collector.RunSweep(ctx); err != nil {
			logger.Error("initial collection sweep failed", slog.Any("error", err))
		}
	}

	ticker := time.NewTicker(cfg.CollectInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := collector.RunSweep(ctx); err != nil {
				logger.Error("collection sweep failed", slog.Any("error", err))
			}
		case <-ctx.Done():
			return
		}
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
